// Package digest implements the SHA-256 hash (FIPS 180-4) and the
// seed derivation used to feed the avatar generator. The hash is
// written out in full rather than taken from crypto/sha256 so that the
// byte-for-byte pipeline from input to pixels lives in this module and
// can be ported or audited as one unit.
package digest

import (
	"encoding/hex"
	"math/bits"
)

// Initial hash values: the first 32 bits of the fractional parts of
// the square roots of the first 8 primes.
var initHash = [8]uint32{
	0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
	0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
}

// Round constants: the first 32 bits of the fractional parts of the
// cube roots of the first 64 primes.
var roundK = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5,
	0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3,
	0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc,
	0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7,
	0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13,
	0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3,
	0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5,
	0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208,
	0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

// Sum computes the SHA-256 digest of data.
func Sum(data []byte) [32]byte {
	h := initHash

	// All complete 64-byte blocks of the message body.
	n := len(data) &^ 63
	for i := 0; i < n; i += 64 {
		compress(&h, data[i:i+64])
	}

	// Tail: remaining bytes, the 0x80 terminator, zero fill and the
	// 64-bit big-endian message length in bits. One extra block is
	// needed when fewer than 8 length bytes fit after the terminator.
	var tail [128]byte
	rest := copy(tail[:], data[n:])
	tail[rest] = 0x80
	blocks := 1
	if rest+1+8 > 64 {
		blocks = 2
	}
	bitLen := uint64(len(data)) * 8
	for i := 0; i < 8; i++ {
		tail[blocks*64-1-i] = byte(bitLen >> (8 * i))
	}
	for i := 0; i < blocks; i++ {
		compress(&h, tail[i*64:(i+1)*64])
	}

	var out [32]byte
	for i, v := range h {
		out[i*4] = byte(v >> 24)
		out[i*4+1] = byte(v >> 16)
		out[i*4+2] = byte(v >> 8)
		out[i*4+3] = byte(v)
	}
	return out
}

// SumHex returns the digest of data as a lowercase hex string.
func SumHex(data []byte) string {
	sum := Sum(data)
	return hex.EncodeToString(sum[:])
}

// compress runs the 64-round compression function over one 512-bit
// block, updating the running hash state in place.
func compress(h *[8]uint32, block []byte) {
	var w [64]uint32
	for i := 0; i < 16; i++ {
		w[i] = uint32(block[i*4])<<24 | uint32(block[i*4+1])<<16 |
			uint32(block[i*4+2])<<8 | uint32(block[i*4+3])
	}
	for i := 16; i < 64; i++ {
		s0 := bits.RotateLeft32(w[i-15], -7) ^ bits.RotateLeft32(w[i-15], -18) ^ (w[i-15] >> 3)
		s1 := bits.RotateLeft32(w[i-2], -17) ^ bits.RotateLeft32(w[i-2], -19) ^ (w[i-2] >> 10)
		w[i] = w[i-16] + s0 + w[i-7] + s1
	}

	a, b, c, d, e, f, g, hh := h[0], h[1], h[2], h[3], h[4], h[5], h[6], h[7]
	for i := 0; i < 64; i++ {
		sum1 := bits.RotateLeft32(e, -6) ^ bits.RotateLeft32(e, -11) ^ bits.RotateLeft32(e, -25)
		ch := (e & f) ^ (^e & g)
		t1 := hh + sum1 + ch + roundK[i] + w[i]
		sum0 := bits.RotateLeft32(a, -2) ^ bits.RotateLeft32(a, -13) ^ bits.RotateLeft32(a, -22)
		maj := (a & b) ^ (a & c) ^ (b & c)
		t2 := sum0 + maj

		hh = g
		g = f
		f = e
		e = d + t1
		d = c
		c = b
		b = a
		a = t1 + t2
	}

	h[0] += a
	h[1] += b
	h[2] += c
	h[3] += d
	h[4] += e
	h[5] += f
	h[6] += g
	h[7] += hh
}
