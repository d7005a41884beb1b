// Package consts holds the tables shared by the BLAKE2b and BLAKE2s engines.
package consts

const (
	// BLAKE2b block size in bytes.
	BlockSize2b = 128
	// BLAKE2s block size in bytes.
	BlockSize2s = 64

	// Rows in Sigma. BLAKE2b runs two more rounds than that and wraps around.
	SigmaRows = 10
)

// IV is the BLAKE2b initialization vector, eight 64-bit words stored as
// sixteen 32-bit halves, low half first. The high halves are the BLAKE2s IV.
var IV = [16]uint32{
	0xf3bcc908, 0x6a09e667, 0x84caa73b, 0xbb67ae85,
	0xfe94f82b, 0x3c6ef372, 0x5f1d36f1, 0xa54ff53a,
	0xade682d1, 0x510e527f, 0x2b3e6c1f, 0x9b05688c,
	0xfb41bd6b, 0x1f83d9ab, 0x137e2179, 0x5be0cd19,
}

// Sigma is the message schedule: one row of sixteen word indices per round.
var Sigma = [SigmaRows * 16]uint8{
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
	14, 10, 4, 8, 9, 15, 13, 6, 1, 12, 0, 2, 11, 7, 5, 3,
	11, 8, 12, 0, 5, 2, 15, 13, 10, 14, 3, 6, 7, 1, 9, 4,
	7, 9, 3, 1, 13, 12, 11, 14, 2, 6, 5, 10, 4, 0, 15, 8,
	9, 0, 5, 7, 2, 4, 10, 15, 14, 1, 11, 12, 6, 8, 3, 13,
	2, 12, 6, 10, 0, 11, 8, 3, 4, 13, 7, 5, 15, 14, 1, 9,
	12, 5, 1, 15, 14, 13, 4, 10, 0, 7, 6, 3, 9, 2, 8, 11,
	13, 11, 7, 14, 12, 1, 3, 9, 5, 0, 15, 4, 8, 6, 2, 10,
	6, 15, 14, 9, 11, 3, 0, 8, 12, 2, 13, 7, 1, 4, 10, 5,
	10, 2, 8, 4, 7, 6, 1, 5, 15, 11, 9, 14, 3, 12, 13, 0,
}

// IV64 returns the i-th 64-bit word of the initialization vector.
func IV64(i int) uint64 {
	return uint64(IV[2*i]) | uint64(IV[2*i+1])<<32
}

// IV32 returns the i-th word of the BLAKE2s initialization vector.
func IV32(i int) uint32 {
	return IV[2*i+1]
}

// SigmaRow returns the permutation used by round r. Rounds past the end of
// the table reuse it from the top.
func SigmaRow(r int) []uint8 {
	r %= SigmaRows
	return Sigma[r*16 : r*16+16]
}
