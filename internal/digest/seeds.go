package digest

import "encoding/binary"

// Seeds splits b into consecutive 4-byte big-endian words. A trailing
// partial chunk carries fewer than 32 bits of entropy and is dropped
// rather than zero-padded, so equal prefixes yield equal seeds.
// A standard 32-byte digest yields exactly 8 words.
func Seeds(b []byte) []uint32 {
	seeds := make([]uint32, 0, len(b)/4)
	for i := 0; i+4 <= len(b); i += 4 {
		seeds = append(seeds, binary.BigEndian.Uint32(b[i:]))
	}
	return seeds
}
