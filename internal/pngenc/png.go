// Package pngenc writes RGBA buffers as standard PNG files. The
// encoder is deliberately minimal and self-contained: one color mode
// (8-bit RGBA), filter type none on every row, and store-mode DEFLATE
// blocks inside the zlib wrapper, so the emitted bytes are a pure
// function of the pixels with no codec version drift. Only CRC-32
// comes from the standard library; the Adler-32 checksum is written
// out by hand.
package pngenc

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"
)

const pngHeader = "\x89PNG\r\n\x1a\n"

// zlib header pair: CM=8 with a 32K window, fastest-compression hint.
// (0x78<<8 | 0x01) is divisible by 31 as RFC 1950 requires.
const (
	zlibCMF = 0x78
	zlibFLG = 0x01
)

// maxStored is the largest payload of one stored DEFLATE block.
const maxStored = 65535

// Encode renders a tightly packed width*height*4 RGBA buffer as a
// complete PNG file.
func Encode(width, height int, rgba []byte) []byte {
	rowBytes := width * 4
	raw := make([]byte, 0, height*(rowBytes+1))
	for y := 0; y < height; y++ {
		raw = append(raw, 0) // filter type none
		raw = append(raw, rgba[y*rowBytes:(y+1)*rowBytes]...)
	}

	var buf bytes.Buffer
	buf.Grow(len(raw) + 128)
	buf.WriteString(pngHeader)
	writeChunk(&buf, "IHDR", ihdr(width, height))
	writeChunk(&buf, "IDAT", zlibStored(raw))
	writeChunk(&buf, "IEND", nil)
	return buf.Bytes()
}

// EncodeTo validates the buffer shape and writes the encoded PNG to w.
func EncodeTo(w io.Writer, width, height int, rgba []byte) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("pngenc: invalid dimensions %dx%d", width, height)
	}
	if len(rgba) != width*height*4 {
		return fmt.Errorf("pngenc: buffer is %d bytes, want %d for %dx%d RGBA", len(rgba), width*height*4, width, height)
	}
	_, err := w.Write(Encode(width, height, rgba))
	return err
}

// ihdr packs the 13-byte header: big-endian dimensions, bit depth 8,
// color type 6 (RGBA), compression/filter/interlace all zero.
func ihdr(width, height int) []byte {
	var d [13]byte
	binary.BigEndian.PutUint32(d[0:4], uint32(width))
	binary.BigEndian.PutUint32(d[4:8], uint32(height))
	d[8] = 8
	d[9] = 6
	return d[:]
}

// writeChunk frames one chunk: big-endian length, ASCII type, data,
// then CRC-32 (IEEE) over type plus data.
func writeChunk(buf *bytes.Buffer, typ string, data []byte) {
	var word [4]byte
	binary.BigEndian.PutUint32(word[:], uint32(len(data)))
	buf.Write(word[:])
	buf.WriteString(typ)
	buf.Write(data)

	crc := crc32.Checksum([]byte(typ), crc32.IEEETable)
	crc = crc32.Update(crc, crc32.IEEETable, data)
	binary.BigEndian.PutUint32(word[:], crc)
	buf.Write(word[:])
}

// zlibStored wraps raw in a zlib stream of stored (uncompressed)
// DEFLATE blocks of at most maxStored bytes each, BFINAL set on the
// last, followed by the big-endian Adler-32 of raw.
func zlibStored(raw []byte) []byte {
	blocks := len(raw)/maxStored + 1
	out := make([]byte, 0, 2+len(raw)+5*blocks+4)
	out = append(out, zlibCMF, zlibFLG)

	for off := 0; ; off += maxStored {
		n := len(raw) - off
		var final byte
		if n <= maxStored {
			final = 1
		} else {
			n = maxStored
		}
		nlen := ^uint16(n)
		out = append(out, final, byte(n), byte(n>>8), byte(nlen), byte(nlen>>8))
		out = append(out, raw[off:off+n]...)
		if final == 1 {
			break
		}
	}

	var ad adigest
	ad.reset()
	ad.update(raw)
	var sum [4]byte
	binary.BigEndian.PutUint32(sum[:], ad.sum32())
	return append(out, sum[:]...)
}

// adigest accumulates the Adler-32 checksum (RFC 1950, modulus 65521)
// of the uncompressed row stream.
type adigest struct {
	a, b uint32
}

const amod = 65521

func (d *adigest) reset() {
	d.a, d.b = 1, 0
}

func (d *adigest) update(p []byte) {
	for _, x := range p {
		d.a = (d.a + uint32(x)) % amod
		d.b = (d.b + d.a) % amod
	}
}

func (d *adigest) sum32() uint32 {
	return d.b<<16 | d.a
}
