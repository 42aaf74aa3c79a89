package tga

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestWriteHeaderAndPixelOrder(t *testing.T) {
	pixels := []Pixel{
		{R: 1, G: 2, B: 3, A: 4},
		{R: 5, G: 6, B: 7, A: 8},
	}
	var buf bytes.Buffer
	if err := Write(&buf, 2, 1, pixels); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got := buf.Bytes()
	if len(got) != 18+2*4 {
		t.Fatalf("output length = %d, want %d", len(got), 18+2*4)
	}
	if got[2] != imageTypeUncompressedTrueColor {
		t.Errorf("image type = %d, want %d", got[2], imageTypeUncompressedTrueColor)
	}
	if w := binary.LittleEndian.Uint16(got[12:14]); w != 2 {
		t.Errorf("width = %d, want 2", w)
	}
	if h := binary.LittleEndian.Uint16(got[14:16]); h != 1 {
		t.Errorf("height = %d, want 1", h)
	}
	if got[17] != originTopLeft {
		t.Errorf("descriptor = %#x, want %#x", got[17], originTopLeft)
	}

	body := got[18:]
	want := []byte{3, 2, 1, 4, 7, 6, 5, 8} // BGRA per pixel.
	if !bytes.Equal(body, want) {
		t.Errorf("pixel body = %v, want %v", body, want)
	}
}

func TestWriteRejectsMismatchedPixelCount(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, 2, 2, []Pixel{{}}); err == nil {
		t.Fatal("Write with too few pixels: want error, got nil")
	}
}
