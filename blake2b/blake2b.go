// Package blake2b implements the BLAKE2b secure hashing algorithm with support
// for keying, salting and personalization. BLAKE2b is optimized for 64-bit
// platforms and produces digests of any size between 1 and 64 bytes.
//
// A Digest absorbs input through Update and is finalized once: the first call
// to Hash (or Freeze) freezes it, and later updates fail with ErrFrozen.
package blake2b

import (
	"encoding/binary"
	"math/bits"

	"github.com/pkg/errors"

	"github.com/hashkit/blake2/internal/consts"
	"github.com/hashkit/blake2/internal/utils"
)

// The constant values will be different for other BLAKE2 variants. These are
// appropriate for BLAKE2b.
const (
	// The length of the key field.
	KeyLength = 64
	// The maximum number of bytes to produce.
	MaxOutput = 64
	// Size of the salt, in bytes
	SaltLength = 16
	// Size of the personalization string, in bytes
	SeparatorLength = 16
	// Number of G function rounds for BLAKE2b.
	RoundCount = 12
	// Size of a block buffer in bytes
	BlockSize = consts.BlockSize2b
	// Size of a default BLAKE2b-512 digest.
	Size = 64
)

var (
	// ErrInvalidArgument is returned by constructors for an out-of-range size
	// or a malformed key, salt or personalization string.
	ErrInvalidArgument = errors.New("blake2b: invalid argument")
	// ErrFrozen is returned when input is offered to a finalized Digest.
	ErrFrozen = errors.New("blake2b: digest is frozen")
)

// sigma is the message schedule for all twelve rounds.
var sigma [RoundCount][16]uint8

func init() {
	for r := range sigma {
		copy(sigma[r][:], consts.SigmaRow(r))
	}
}

// Digest represents the internal state of the BLAKE2b algorithm.
type Digest struct {
	h [8]uint64
	// Byte counter. t1 only moves once t0 wraps, so the full 128-bit range of
	// the algorithm is counted.
	t0, t1 uint64

	buf    [BlockSize]byte
	offset int // current offset inside the block

	// size is the number of digest bytes Hash returns.
	size int

	frozen bool
	sum    []byte
	sumHex string
}

// New constructs a BLAKE2b digest. Without options it computes BLAKE2b-512.
func New(opts ...Option) (*Digest, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	return fromConfig(cfg), nil
}

// NewDigest constructs a new instance of a BLAKE2b hash with the provided
// configuration. A nil salt or personalization leaves that field zeroed.
func NewDigest(key, salt, personalization []byte, outputBytes int) (*Digest, error) {
	opts := []Option{WithSize(outputBytes), WithKey(key)}
	if salt != nil {
		opts = append(opts, WithSalt(salt))
	}
	if personalization != nil {
		opts = append(opts, WithPersonal(personalization))
	}
	return New(opts...)
}

func fromConfig(cfg *config) *Digest {
	d := &Digest{
		h:    cfg.params().chainingValue(),
		size: cfg.size,
	}

	if len(cfg.key) > 0 {
		// The key, zero padded, is the first block. It stays buffered so a
		// keyed hash of empty input still compresses it as the last block.
		var keyBlock [BlockSize]byte
		copy(keyBlock[:], cfg.key)
		d.absorb(keyBlock[:])
	}
	if len(cfg.data) > 0 {
		d.absorb(cfg.data)
	}
	return d
}

// Sum512 returns the BLAKE2b-512 checksum of the data.
func Sum512(data []byte) [Size]byte {
	var sum [Size]byte
	d := fromConfig(&config{size: Size})
	d.absorb(data)
	d.finalize(sum[:])
	return sum
}

func (d *Digest) compress(final bool) {
	// Top half is the chaining value, bottom half the IV with the counter and
	// the last-block flag mixed in.
	var v [16]uint64
	copy(v[:8], d.h[:])
	for i := 0; i < 8; i++ {
		v[i+8] = consts.IV64(i)
	}
	v[12] ^= d.t0
	v[13] ^= d.t1
	if final {
		v[14] = ^v[14]
	}

	var m [16]uint64
	for i := range m {
		m[i] = utils.LoadUint64LE(d.buf[:], 8*i)
	}

	for r := 0; r < RoundCount; r++ {
		s := &sigma[r]
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

// The internal BLAKE2b round function.
func g(a, b, c, d, m0, m1 uint64) (uint64, uint64, uint64, uint64) {
	a = a + b + m0
	d = bits.RotateLeft64(d^a, -32)
	c = c + d
	b = bits.RotateLeft64(b^c, -24)
	a = a + b + m1
	d = bits.RotateLeft64(d^a, -16)
	c = c + d
	b = bits.RotateLeft64(b^c, -63)
	return a, b, c, d
}

func (d *Digest) incrementCounter(n uint64) {
	d.t0 += n
	if d.t0 < n {
		d.t1++
	}
}

// absorb buffers input. A full buffer is only compressed once more input
// arrives, so the final block is always left for finalize.
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

// finalize writes the digest of everything absorbed so far into out. It works
// on a copy, so the receiver's state is left as it was.
func (d *Digest) finalize(out []byte) {
	dCopy := *d

	clear(dCopy.buf[dCopy.offset:])

	// increment counter by size of pending input before padding
	dCopy.incrementCounter(uint64(dCopy.offset))
	dCopy.compress(true)

	var full [Size]byte
	for i, w := range dCopy.h {
		binary.LittleEndian.PutUint64(full[8*i:], w)
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

// Hash finalizes the digest and returns a copy of the result. The first call
// freezes d; later calls return the same bytes.
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

// Freeze rejects further input without computing the digest.
func (d *Digest) Freeze() { d.frozen = true }

// Frozen reports whether d still accepts input.
func (d *Digest) Frozen() bool { return d.frozen }

// Size returns the digest output size in bytes.
func (d *Digest) Size() int { return d.size }

// BlockSize returns the hash's underlying block size.
func (d *Digest) BlockSize() int { return BlockSize }
