// Package blake2 ties together the BLAKE2s and BLAKE2b engines. BLAKE2s is
// optimized for 8- to 32-bit platforms and produces digests of any size
// between 1 and 32 bytes. BLAKE2b is optimized for 64-bit platforms, produces
// digests of any size between 1 and 64 bytes and supports salting and
// personalization.
//
// The engines live in the blake2b and blake2s subpackages. This package adds
// a variant-neutral Engine, a reader adapter and go-multihash registration.
package blake2

//go:generate python3 gen_vectors.py testdata
