package compare

import (
	"testing"

	"github.com/ausocean/bc7"
)

func image(pixels ...bc7.Pixel) *bc7.Image {
	return &bc7.Image{Width: len(pixels), Height: 1, Pixels: pixels}
}

func TestImagesIdentical(t *testing.T) {
	img := image(bc7.Pixel{R: 10, G: 20, B: 30, A: 255}, bc7.Pixel{R: 1, G: 2, B: 3, A: 4})
	res, err := Images(img, img)
	if err != nil {
		t.Fatalf("Images: %v", err)
	}
	if res.AbsoluteError != 0 || res.MSE != 0 || res.RMSE != 0 {
		t.Errorf("identical images: got %+v, want all-zero error", res)
	}
}

func TestImagesAbsoluteError(t *testing.T) {
	ref := image(bc7.Pixel{R: 10, G: 10, B: 10, A: 10})
	decoded := image(bc7.Pixel{R: 12, G: 8, B: 10, A: 11})
	res, err := Images(ref, decoded)
	if err != nil {
		t.Fatalf("Images: %v", err)
	}
	// diffs: R=2, G=2, B=0, A=1 -> absolute 5.
	if res.AbsoluteError != 5 {
		t.Errorf("AbsoluteError = %d, want 5", res.AbsoluteError)
	}
	wantMSE := (4.0 + 4.0 + 0.0 + 1.0) / 4.0
	if res.MSE != wantMSE {
		t.Errorf("MSE = %f, want %f", res.MSE, wantMSE)
	}
}

func TestImagesDimensionMismatch(t *testing.T) {
	a := &bc7.Image{Width: 2, Height: 1, Pixels: make([]bc7.Pixel, 2)}
	b := &bc7.Image{Width: 1, Height: 1, Pixels: make([]bc7.Pixel, 1)}
	if _, err := Images(a, b); err == nil {
		t.Fatal("Images with mismatched dimensions: want error, got nil")
	}
}

func TestPerPixelError(t *testing.T) {
	ref := image(bc7.Pixel{R: 10}, bc7.Pixel{R: 0})
	decoded := image(bc7.Pixel{R: 12}, bc7.Pixel{R: 0})
	errs := PerPixelError(ref, decoded)
	if len(errs) != 2 {
		t.Fatalf("len(errs) = %d, want 2", len(errs))
	}
	if errs[0] != 2 || errs[1] != 0 {
		t.Errorf("errs = %v, want [2 0]", errs)
	}
}
