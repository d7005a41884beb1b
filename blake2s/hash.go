package blake2s

import "hash"

// hasher adapts a Digest to hash.Hash: Sum leaves the state untouched and
// Reset starts over from the construction options.
type hasher struct {
	cfg *config
	d   *Digest
}

// NewHash returns a hash.Hash computing BLAKE2s with the given options.
func NewHash(opts ...Option) (hash.Hash, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	return &hasher{cfg: cfg, d: fromConfig(cfg)}, nil
}

// New256 returns an unkeyed BLAKE2s-256 hash.Hash.
func New256() hash.Hash {
	h, _ := NewHash()
	return h
}

func (h *hasher) Write(p []byte) (int, error) {
	h.d.absorb(p)
	return len(p), nil
}

func (h *hasher) Sum(b []byte) []byte {
	out := make([]byte, h.d.size)
	h.d.finalize(out)
	return append(b, out...)
}

func (h *hasher) Reset() { h.d = fromConfig(h.cfg) }

func (h *hasher) Size() int { return h.d.size }

func (h *hasher) BlockSize() int { return BlockSize }
