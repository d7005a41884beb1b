package blake2

import (
	"hash"

	multihash "github.com/multiformats/go-multihash/core"

	"github.com/hashkit/blake2/blake2b"
	"github.com/hashkit/blake2/blake2s"
)

// Multicodec ranges for the BLAKE2 family. The code minus the range start,
// plus one, is the digest size in bytes.
const (
	Blake2bMin = 0xb201
	Blake2bMax = 0xb240
	Blake2sMin = 0xb241
	Blake2sMax = 0xb260
)

// RegisterMultihash installs these engines as the hashers for every
// blake2b-* and blake2s-* multihash code, replacing any earlier registration.
func RegisterMultihash() {
	for c := uint64(Blake2bMin); c <= Blake2bMax; c++ {
		size := int(c-Blake2bMin) + 1
		multihash.Register(c, func() hash.Hash {
			h, err := blake2b.NewHash(blake2b.WithSize(size))
			if err != nil {
				panic(err)
			}
			return h
		})
	}
	for c := uint64(Blake2sMin); c <= Blake2sMax; c++ {
		size := int(c-Blake2sMin) + 1
		multihash.Register(c, func() hash.Hash {
			h, err := blake2s.NewHash(blake2s.WithSize(size))
			if err != nil {
				panic(err)
			}
			return h
		})
	}
}
