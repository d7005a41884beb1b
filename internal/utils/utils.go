// Package utils has the byte-level helpers used by both engines.
package utils

import (
	"encoding/binary"
	"encoding/hex"
	"strings"
)

// LoadUint32LE decodes the four bytes of b starting at i as a little-endian word.
func LoadUint32LE(b []byte, i int) uint32 {
	return binary.LittleEndian.Uint32(b[i : i+4])
}

// LoadUint64LE decodes the eight bytes of b starting at i as a little-endian word.
func LoadUint64LE(b []byte, i int) uint64 {
	return binary.LittleEndian.Uint64(b[i : i+8])
}

// Normalize turns text or bytes into a fresh byte slice. Go strings are
// already UTF-8, so text is taken byte for byte.
func Normalize[T ~string | ~[]byte](in T) []byte {
	out := make([]byte, len(in))
	copy(out, in)
	return out
}

// UpperHex renders b as uppercase hexadecimal, two digits per byte.
func UpperHex(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}
