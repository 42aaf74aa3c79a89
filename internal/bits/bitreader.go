/*
DESCRIPTION
  bitreader.go provides a bit reader for fixed-size, little-endian-bit-order
  buffers such as a single 16-byte BC7 compressed block.

AUTHORS
  AusOcean Texture Team <texture@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package bits provides a stateful cursor for reading unsigned integer
// fields of 1-8 bits from a small, fixed-size buffer in little-endian bit
// order: bit 0 of byte 0 is the first bit read.
package bits

import "errors"

// ErrOverflow is returned when a read would advance the cursor past the end
// of the buffer.
var ErrOverflow = errors.New("bits: read would overflow buffer")

// ErrWidth is returned when a requested field width is outside [0, 8].
var ErrWidth = errors.New("bits: field width must be in [0, 8]")

// Reader is a cursor over a fixed byte buffer, reading bits least-significant
// bit first within each byte, bytes in increasing order. It carries no heap
// state beyond the buffer reference and is cheap to construct per block.
type Reader struct {
	buf    []byte
	cursor int // Next bit to read, counted from the start of buf.
}

// NewReader returns a Reader positioned at the start of buf.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Pos returns the current bit offset from the start of the buffer.
func (r *Reader) Pos() int { return r.cursor }

// Len returns the total number of bits available in the buffer.
func (r *Reader) Len() int { return len(r.buf) * 8 }

// Read consumes width bits (0 <= width <= 8) and returns them as the
// low-order bits of the result, advancing the cursor by width. A field that
// straddles a byte boundary is assembled low-to-high, matching BC7's packed
// little-endian-bit layout.
//
// For example, with buf = []byte{0x8f, 0xe3} (bits 1111 0001, 1100 0111 in
// read order), successive reads of width 4 then 6 yield 0xf (read order
// 1111) then 0x38 (read order 000111): the low nibble of byte 0 first, then
// the next 6 bits spanning into byte 1.
func (r *Reader) Read(width int) (uint32, error) {
	if width < 0 || width > 8 {
		return 0, ErrWidth
	}
	if width == 0 {
		return 0, nil
	}
	if r.cursor+width > r.Len() {
		return 0, ErrOverflow
	}

	var bits uint32
	var got int
	for got < width {
		byteIdx := (r.cursor) / 8
		bitOff := (r.cursor) % 8

		avail := 8 - bitOff
		take := width - got
		if take > avail {
			take = avail
		}

		mask := byte((1 << uint(take)) - 1)
		chunk := (r.buf[byteIdx] >> uint(bitOff)) & mask

		bits |= uint32(chunk) << uint(got)

		got += take
		r.cursor += take
	}
	return bits, nil
}
