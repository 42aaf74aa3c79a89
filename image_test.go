package bc7

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeImageRejectsBadDimensions(t *testing.T) {
	cases := []struct {
		name          string
		width, height int
	}{
		{"zero width", 0, 4},
		{"zero height", 4, 0},
		{"width not multiple of 4", 5, 4},
		{"height not multiple of 4", 4, 5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := DecodeImage(nil, c.width, c.height, Options{})
			if !errors.Is(err, ErrDimension) {
				t.Errorf("DecodeImage(%d, %d) error = %v, want ErrDimension", c.width, c.height, err)
			}
		})
	}
}

func TestDecodeImageRejectsBufferSizeMismatch(t *testing.T) {
	_, err := DecodeImage(make([]byte, 15), 4, 4, Options{})
	if !errors.Is(err, ErrDimension) {
		t.Fatalf("DecodeImage with short buffer error = %v, want ErrDimension", err)
	}
}

func TestDecodeImageSingleBlock(t *testing.T) {
	blk := solidMode6Block(1, 3, 5, 7)
	img, err := DecodeImage(blk[:], 4, 4, Options{})
	if err != nil {
		t.Fatalf("DecodeImage: %v", err)
	}
	if img.Width != 4 || img.Height != 4 {
		t.Fatalf("Image dims = (%d, %d), want (4, 4)", img.Width, img.Height)
	}
	want := Pixel{1, 3, 5, 7}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := img.At(x, y); got != want {
				t.Errorf("At(%d, %d) = %+v, want %+v", x, y, got, want)
			}
		}
	}
}

func TestDecodeImageTilingAndConcurrencyAgree(t *testing.T) {
	const blocksWide, blocksHigh = 5, 3
	data := make([]byte, 0, blocksWide*blocksHigh*16)
	for by := 0; by < blocksHigh; by++ {
		for bx := 0; bx < blocksWide; bx++ {
			blk := solidMode6Block(uint8(bx*10), uint8(by*10), 0, 254)
			data = append(data, blk[:]...)
		}
	}

	serial, err := DecodeImage(data, blocksWide*4, blocksHigh*4, Options{Workers: 1})
	if err != nil {
		t.Fatalf("serial DecodeImage: %v", err)
	}
	parallel, err := DecodeImage(data, blocksWide*4, blocksHigh*4, Options{Workers: 4})
	if err != nil {
		t.Fatalf("parallel DecodeImage: %v", err)
	}

	if diff := cmp.Diff(serial.Pixels, parallel.Pixels); diff != "" {
		t.Errorf("serial vs parallel decode mismatch (-serial +parallel):\n%s", diff)
	}

	for by := 0; by < blocksHigh; by++ {
		for bx := 0; bx < blocksWide; bx++ {
			want := Pixel{uint8(bx * 10), uint8(by * 10), 0, 254}
			got := serial.At(bx*4, by*4)
			if got != want {
				t.Errorf("block (%d,%d) top-left pixel = %+v, want %+v", bx, by, got, want)
			}
		}
	}
}

func TestDecodeImagePropagatesBlockError(t *testing.T) {
	var bad [16]byte // invalid mode block
	data := append(solidMode6Block(0, 0, 0, 0)[:], bad[:]...)
	_, err := DecodeImage(data, 8, 4, Options{Workers: 1})
	if !errors.Is(err, ErrInvalidMode) {
		t.Fatalf("DecodeImage error = %v, want wrapping ErrInvalidMode", err)
	}
}
