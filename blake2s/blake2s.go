// Package blake2s implements the BLAKE2s hashing algorithm with optional
// keying. BLAKE2s is optimized for 8- to 32-bit platforms and produces digests
// of any size between 1 and 32 bytes.
package blake2s

import (
	"encoding/binary"
	"math/bits"

	"github.com/pkg/errors"

	"github.com/hashkit/blake2/internal/consts"
	"github.com/hashkit/blake2/internal/utils"
)

const (
	// The length of the key field.
	KeyLength = 32
	// The maximum number of bytes to produce.
	MaxOutput = 32
	// Number of G function rounds for BLAKE2s.
	RoundCount = 10
	// Size of a block buffer in bytes
	BlockSize = consts.BlockSize2s
	// Size of a default BLAKE2s-256 digest.
	Size = 32
)

var (
	// ErrInvalidArgument is returned by constructors for an out-of-range size
	// or an oversized key.
	ErrInvalidArgument = errors.New("blake2s: invalid argument")
	// ErrFrozen is returned when input is offered to a finalized Digest.
	ErrFrozen = errors.New("blake2s: digest is frozen")
)

// Digest represents the internal state of the BLAKE2s algorithm.
type Digest struct {
	h      [8]uint32
	t0, t1 uint32

	buf    [BlockSize]byte
	offset int

	size int

	frozen bool
	sum    []byte
	sumHex string
}

type config struct {
	size int
	key  []byte
	data []byte
}

// Option configures a Digest built by New.
type Option func(*config)

// WithSize sets the digest length in bytes, 1 to 32. The default is 32.
func WithSize(n int) Option {
	return func(c *config) { c.size = n }
}

// WithKey turns the hash into a keyed hash. The key must be at most 32
// bytes; an empty key is the same as no key.
func WithKey(key []byte) Option {
	return func(c *config) { c.key = utils.Normalize(key) }
}

// WithData absorbs data right after construction, as if passed to Update.
func WithData[T ~string | ~[]byte](data T) Option {
	return func(c *config) { c.data = utils.Normalize(data) }
}

func newConfig(opts []Option) (*config, error) {
	cfg := &config{size: MaxOutput}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.size < 1 || cfg.size > MaxOutput {
		return nil, errors.Wrapf(ErrInvalidArgument, "output size %d not in [1, %d]", cfg.size, MaxOutput)
	}
	if len(cfg.key) > KeyLength {
		return nil, errors.Wrapf(ErrInvalidArgument, "key of %d bytes exceeds %d", len(cfg.key), KeyLength)
	}
	return cfg, nil
}

// New constructs a BLAKE2s digest. Without options it computes BLAKE2s-256.
func New(opts ...Option) (*Digest, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	return fromConfig(cfg), nil
}

// NewDigest constructs a BLAKE2s digest from a key and an output size.
func NewDigest(key []byte, outputBytes int) (*Digest, error) {
	return New(WithSize(outputBytes), WithKey(key))
}

func fromConfig(cfg *config) *Digest {
	d := &Digest{size: cfg.size}
	for i := range d.h {
		d.h[i] = consts.IV32(i)
	}
	// BLAKE2s has no parameter block beyond its first word: digest length,
	// key length, fanout 1, depth 1.
	d.h[0] ^= 0x01010000 ^ uint32(len(cfg.key))<<8 ^ uint32(cfg.size)

	if len(cfg.key) > 0 {
		var keyBlock [BlockSize]byte
		copy(keyBlock[:], cfg.key)
		d.absorb(keyBlock[:])
	}
	if len(cfg.data) > 0 {
		d.absorb(cfg.data)
	}
	return d
}

// Sum256 returns the BLAKE2s-256 checksum of the data.
func Sum256(data []byte) [Size]byte {
	var sum [Size]byte
	d := fromConfig(&config{size: Size})
	d.absorb(data)
	d.finalize(sum[:])
	return sum
}

func (d *Digest) compress(final bool) {
	var v [16]uint32
	copy(v[:8], d.h[:])
	for i := 0; i < 8; i++ {
		v[i+8] = consts.IV32(i)
	}
	v[12] ^= d.t0
	v[13] ^= d.t1
	if final {
		v[14] = ^v[14]
	}

	var m [16]uint32
	for i := range m {
		m[i] = utils.LoadUint32LE(d.buf[:], 4*i)
	}

	for r := 0; r < RoundCount; r++ {
		s := consts.SigmaRow(r)
		v[0], v[4], v[8], v[12] = g(v[0], v[4], v[8], v[12], m[s[0]], m[s[1]])
		v[1], v[5], v[9], v[13] = g(v[1], v[5], v[9], v[13], m[s[2]], m[s[3]])
		v[2], v[6], v[10], v[14] = g(v[2], v[6], v[10], v[14], m[s[4]], m[s[5]])
		v[3], v[7], v[11], v[15] = g(v[3], v[7], v[11], v[15], m[s[6]], m[s[7]])

		v[0], v[5], v[10], v[15] = g(v[0], v[5], v[10], v[15], m[s[8]], m[s[9]])
		v[1], v[6], v[11], v[12] = g(v[1], v[6], v[11], v[12], m[s[10]], m[s[11]])
		v[2], v[7], v[8], v[13] = g(v[2], v[7], v[8], v[13], m[s[12]], m[s[13]])
		v[3], v[4], v[9], v[14] = g(v[3], v[4], v[9], v[14], m[s[14]], m[s[15]])
	}

	for i := 0; i < 8; i++ {
		d.h[i] ^= v[i] ^ v[i+8]
	}
}

// The internal BLAKE2s round function.
func g(a, b, c, d, m0, m1 uint32) (uint32, uint32, uint32, uint32) {
	a = a + b + m0
	d = bits.RotateLeft32(d^a, -16)
	c = c + d
	b = bits.RotateLeft32(b^c, -12)
	a = a + b + m1
	d = bits.RotateLeft32(d^a, -8)
	c = c + d
	b = bits.RotateLeft32(b^c, -7)
	return a, b, c, d
}

func (d *Digest) incrementCounter(n uint32) {
	d.t0 += n
	if d.t0 < n {
		d.t1++
	}
}

func (d *Digest) absorb(input []byte) {
	for len(input) > 0 {
		if d.offset == BlockSize {
			d.incrementCounter(BlockSize)
			d.compress(false)
			d.offset = 0
		}
		n := copy(d.buf[d.offset:], input)
		d.offset += n
		input = input[n:]
	}
}

func (d *Digest) finalize(out []byte) {
	dCopy := *d
	clear(dCopy.buf[dCopy.offset:])
	dCopy.incrementCounter(uint32(dCopy.offset))
	dCopy.compress(true)

	var full [Size]byte
	for i, w := range dCopy.h {
		binary.LittleEndian.PutUint32(full[4*i:], w)
	}
	copy(out, full[:d.size])
}

// Update adds more data to the running hash. It fails with ErrFrozen once the
// digest has been finalized, in which case nothing is absorbed.
func (d *Digest) Update(input []byte) error {
	if d.frozen {
		return errors.Wrapf(ErrFrozen, "update of %d bytes", len(input))
	}
	d.absorb(input)
	return nil
}

// UpdateString adds the UTF-8 bytes of s to the running hash.
func (d *Digest) UpdateString(s string) error {
	return d.Update(utils.Normalize(s))
}

// Write implements io.Writer on top of Update.
func (d *Digest) Write(p []byte) (int, error) {
	if err := d.Update(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Hash finalizes the digest and returns a copy of the result.
func (d *Digest) Hash() []byte {
	d.frozen = true
	if d.sum == nil {
		d.sum = make([]byte, d.size)
		d.finalize(d.sum)
	}
	out := make([]byte, len(d.sum))
	copy(out, d.sum)
	return out
}

// HashHex returns Hash as uppercase hexadecimal.
func (d *Digest) HashHex() string {
	if d.sumHex == "" {
		d.sumHex = utils.UpperHex(d.Hash())
	}
	return d.sumHex
}

func (d *Digest) Freeze() { d.frozen = true }

func (d *Digest) Frozen() bool { return d.frozen }

func (d *Digest) Size() int { return d.size }

func (d *Digest) BlockSize() int { return BlockSize }
