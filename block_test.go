package bc7

import (
	"errors"
	"testing"

	"github.com/ausocean/bc7/internal/bits"
)

// putBits writes width bits of v, least-significant bit first, starting at
// bit offset *pos within buf. This mirrors internal/bits.Reader.Read's bit
// order so tests can hand-assemble blocks byte-for-byte.
func putBits(buf *[16]byte, pos *int, v uint32, width int) {
	for i := 0; i < width; i++ {
		bit := uint8((v >> uint(i)) & 1)
		byteIdx := *pos / 8
		bitOff := uint(*pos % 8)
		buf[byteIdx] |= bit << bitOff
		*pos++
	}
}

// solidMode6Block builds a mode-6 block (1 subset, 8-bit RGBA precision,
// per-endpoint parity) whose two endpoints are identical, producing a solid
// color regardless of palette index. Mode 6 shares each endpoint's parity
// bit across all four channels and this helper takes it from r, so g, b and
// a decode exactly only when their low bit matches r's; otherwise their low
// bit becomes r's.
func solidMode6Block(r, g, b, a uint8) Block {
	var buf [16]byte
	pos := 0

	// Mode prefix: 6 leading zeros then a terminating 1.
	for i := 0; i < 6; i++ {
		putBits(&buf, &pos, 0, 1)
	}
	putBits(&buf, &pos, 1, 1)

	// Channel-major endpoint pairs, 7 stored bits each (precision 8 minus
	// the 1 parity bit), for a single subset.
	channels := [4]uint8{r, g, b, a}
	for _, full := range channels {
		stored := uint32(full >> 1)
		putBits(&buf, &pos, stored, 7)
		putBits(&buf, &pos, stored, 7)
	}

	// Two parity bits (e0, e1), each shared across all four channels; both
	// are set to the low bit of r, so (stored<<1)|parity reconstructs every
	// channel whose low bit matches r's.
	putBits(&buf, &pos, uint32(channels[0]&1), 1)
	putBits(&buf, &pos, uint32(channels[0]&1), 1)

	// Primary indices: pixel 0 is the anchor (3 bits), the rest take 4.
	putBits(&buf, &pos, 0, 3)
	for i := 1; i < 16; i++ {
		putBits(&buf, &pos, 0, 4)
	}

	return Block(buf)
}

func TestDecodeBlockMode6SolidWhite(t *testing.T) {
	blk := solidMode6Block(255, 255, 255, 255)
	pixels, err := DecodeBlock(blk)
	if err != nil {
		t.Fatalf("DecodeBlock: %v", err)
	}
	for i, px := range pixels {
		if px != (Pixel{255, 255, 255, 255}) {
			t.Errorf("pixel %d = %+v, want opaque white", i, px)
		}
	}
}

func TestDecodeBlockMode6SolidColor(t *testing.T) {
	blk := solidMode6Block(10, 20, 30, 40)
	pixels, err := DecodeBlock(blk)
	if err != nil {
		t.Fatalf("DecodeBlock: %v", err)
	}
	want := Pixel{10, 20, 30, 40}
	for i, px := range pixels {
		if px != want {
			t.Errorf("pixel %d = %+v, want %+v", i, px, want)
		}
	}
}

func TestDecodeBlockInvalidMode(t *testing.T) {
	var blk Block // all zero bytes: eight leading zero bits, no terminator.
	_, err := DecodeBlock(blk)
	if !errors.Is(err, ErrInvalidMode) {
		t.Fatalf("DecodeBlock(zero block) error = %v, want ErrInvalidMode", err)
	}
}

func TestExpandBitsReplication(t *testing.T) {
	cases := []struct {
		v    uint8
		p    uint
		want uint8
	}{
		{0, 5, 0},
		{0x1f, 5, 0xff}, // all-ones at precision 5 replicates to all-ones at 8.
		{0, 8, 0},
		{0xff, 8, 0xff},
	}
	for _, c := range cases {
		if got := expandBits(c.v, c.p); got != c.want {
			t.Errorf("expandBits(%#x, %d) = %#x, want %#x", c.v, c.p, got, c.want)
		}
	}
}

func TestInterpolateEndpoints(t *testing.T) {
	if got := interpolate(0, 255, 0); got != 0 {
		t.Errorf("interpolate at weight 0 = %d, want 0", got)
	}
	if got := interpolate(0, 255, 64); got != 255 {
		t.Errorf("interpolate at weight 64 = %d, want 255", got)
	}
}

func TestInterpolateMonotonic(t *testing.T) {
	var prev uint8
	for w := uint8(0); w <= 64; w++ {
		got := interpolate(0, 255, w)
		if w > 0 && got < prev {
			t.Fatalf("interpolate not monotonic at weight %d: %d < %d", w, got, prev)
		}
		prev = got
	}
}

// TestAnchorIndexWidthReduction exercises the anchor-index width reduction
// directly: with every bit in the stream set, a non-anchor pixel should read
// back the maximum value for its full bit width, while the anchor pixel
// (whose top bit is implicitly 0) should read back the maximum value for one
// fewer bit.
func TestAnchorIndexWidthReduction(t *testing.T) {
	var all0xFF [16]byte
	for i := range all0xFF {
		all0xFF[i] = 0xFF
	}

	var out [16]uint8
	r := bits.NewReader(all0xFF[:])
	if err := readIndices(r, 3, 1, 0, &out); err != nil {
		t.Fatalf("readIndices: %v", err)
	}

	if out[0] != 3 { // 2 bits available (3-1), max value 3.
		t.Errorf("anchor pixel 0 index = %d, want 3", out[0])
	}
	for p := 1; p < 16; p++ {
		if out[p] != 7 { // full 3 bits, max value 7.
			t.Errorf("non-anchor pixel %d index = %d, want 7", p, out[p])
		}
	}
}

func TestRotate(t *testing.T) {
	px := Pixel{R: 1, G: 2, B: 3, A: 4}

	if got, err := rotate(px, 0); err != nil || got != px {
		t.Errorf("rotate 0 = %+v, %v, want %+v, nil", got, err, px)
	}
	if got, err := rotate(px, 1); err != nil || got != (Pixel{4, 2, 3, 1}) {
		t.Errorf("rotate 1 = %+v, %v, want swapped R/A", got, err)
	}
	if got, err := rotate(px, 2); err != nil || got != (Pixel{1, 4, 3, 2}) {
		t.Errorf("rotate 2 = %+v, %v, want swapped G/A", got, err)
	}
	if got, err := rotate(px, 3); err != nil || got != (Pixel{1, 2, 4, 3}) {
		t.Errorf("rotate 3 = %+v, %v, want swapped B/A", got, err)
	}
	if _, err := rotate(px, 4); !errors.Is(err, ErrInvalidRotation) {
		t.Errorf("rotate 4 error = %v, want ErrInvalidRotation", err)
	}
}
