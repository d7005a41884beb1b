package blake2b

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/hashkit/blake2/internal/consts"
	"github.com/hashkit/blake2/internal/utils"
)

// These are the user-visible parameters of a BLAKE2 hash instance. The
// parameter block is XOR'd with the IV at the beginning of the hash.
// Only sequential mode is supported, so the tree fields keep their defaults.
// They are nevertheless defined for clarity.
type parameterBlock struct {
	DigestSize      byte   // 0
	KeyLength       byte   // 1
	fanout          byte   // 2
	depth           byte   // 3
	leafLength      uint32 // 4-7
	nodeOffset      uint64 // 8-15
	nodeDepth       byte   // 16
	innerLength     byte   // 17
	Salt            [SaltLength]byte
	Personalization [SeparatorLength]byte
}

// Marshal packs the parameter block into its 64-byte wire form. Bytes 18-31
// are reserved and stay zero.
func (p *parameterBlock) Marshal() [64]byte {
	var buf [64]byte
	buf[0] = p.DigestSize
	buf[1] = p.KeyLength
	buf[2] = p.fanout
	buf[3] = p.depth
	binary.LittleEndian.PutUint32(buf[4:], p.leafLength)
	binary.LittleEndian.PutUint64(buf[8:], p.nodeOffset)
	buf[16] = p.nodeDepth
	buf[17] = p.innerLength
	copy(buf[32:], p.Salt[:])
	copy(buf[48:], p.Personalization[:])
	return buf
}

// chainingValue folds the parameter block into the IV.
func (p *parameterBlock) chainingValue() [8]uint64 {
	paramBytes := p.Marshal()

	var h [8]uint64
	for i := range h {
		h[i] = consts.IV64(i) ^ utils.LoadUint64LE(paramBytes[:], 8*i)
	}
	return h
}

type config struct {
	size     int
	key      []byte
	salt     []byte
	personal []byte
	data     []byte
}

// Option configures a Digest built by New.
type Option func(*config)

// WithSize sets the digest length in bytes, 1 to 64. The default is 64.
func WithSize(n int) Option {
	return func(c *config) { c.size = n }
}

// WithKey turns the hash into a keyed hash. The key must be at most 64
// bytes; an empty key is the same as no key.
func WithKey(key []byte) Option {
	return func(c *config) { c.key = utils.Normalize(key) }
}

// WithSalt sets the 16-byte salt.
func WithSalt[T ~string | ~[]byte](salt T) Option {
	return func(c *config) { c.salt = utils.Normalize(salt) }
}

// WithPersonal sets the 16-byte personalization string.
func WithPersonal[T ~string | ~[]byte](personal T) Option {
	return func(c *config) { c.personal = utils.Normalize(personal) }
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
	if cfg.salt != nil && len(cfg.salt) != SaltLength {
		return nil, errors.Wrapf(ErrInvalidArgument, "salt must be %d bytes, got %d", SaltLength, len(cfg.salt))
	}
	if cfg.personal != nil && len(cfg.personal) != SeparatorLength {
		return nil, errors.Wrapf(ErrInvalidArgument, "personalization must be %d bytes, got %d", SeparatorLength, len(cfg.personal))
	}
	return cfg, nil
}

func (c *config) params() *parameterBlock {
	p := &parameterBlock{
		DigestSize: byte(c.size),
		KeyLength:  byte(len(c.key)),
		fanout:     1, // sequential mode
		depth:      1, // sequential mode
	}
	copy(p.Salt[:], c.salt)
	copy(p.Personalization[:], c.personal)
	return p
}
