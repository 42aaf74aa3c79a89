/*
DESCRIPTION
  compare.go scores a decoded BC7 image against a reference image: absolute
  error, mean-squared error, and root-mean-squared error across all four
  channels, plus an optional error-histogram plot for visual inspection.

AUTHORS
  AusOcean Texture Team <texture@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package compare scores decoded BC7 imagery against a reference image,
// the way bc7dump's predecessor tooling reported compression quality: total
// absolute error and RGBA mean-squared/root-mean-squared error.
package compare

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"

	"github.com/ausocean/bc7"
)

// Result holds the error metrics between two equally-sized RGBA images.
type Result struct {
	AbsoluteError uint64
	MSE           float64
	RMSE          float64
}

// Images computes the absolute, mean-squared, and root-mean-squared error
// between a reference image and a decoded one, each taken over all four RGBA
// channels together. Both must have the same dimensions.
func Images(reference, decoded *bc7.Image) (Result, error) {
	if reference.Width != decoded.Width || reference.Height != decoded.Height {
		return Result{}, errors.Errorf("compare: dimension mismatch: reference %dx%d, decoded %dx%d",
			reference.Width, reference.Height, decoded.Width, decoded.Height)
	}
	if len(reference.Pixels) != len(decoded.Pixels) {
		return Result{}, errors.New("compare: reference and decoded pixel counts differ")
	}

	sqDiffs := make([]float64, 0, len(reference.Pixels)*4)
	var absErr uint64

	for i, ref := range reference.Pixels {
		got := decoded.Pixels[i]

		dr := absDiff(ref.R, got.R)
		dg := absDiff(ref.G, got.G)
		db := absDiff(ref.B, got.B)
		da := absDiff(ref.A, got.A)

		absErr += uint64(dr) + uint64(dg) + uint64(db) + uint64(da)

		sqDiffs = append(sqDiffs, float64(dr)*float64(dr))
		sqDiffs = append(sqDiffs, float64(dg)*float64(dg))
		sqDiffs = append(sqDiffs, float64(db)*float64(db))
		sqDiffs = append(sqDiffs, float64(da)*float64(da))
	}

	mse := stat.Mean(sqDiffs, nil)
	return Result{
		AbsoluteError: absErr,
		MSE:           mse,
		RMSE:          math.Sqrt(mse),
	}, nil
}

// PerPixelError returns the summed absolute RGBA error for each pixel, for
// building an error-distribution histogram.
func PerPixelError(reference, decoded *bc7.Image) []float64 {
	errs := make([]float64, len(reference.Pixels))
	for i, ref := range reference.Pixels {
		got := decoded.Pixels[i]
		errs[i] = float64(absDiff(ref.R, got.R)) +
			float64(absDiff(ref.G, got.G)) +
			float64(absDiff(ref.B, got.B)) +
			float64(absDiff(ref.A, got.A))
	}
	return errs
}

func absDiff(a, b uint8) int32 {
	d := int32(a) - int32(b)
	if d < 0 {
		return -d
	}
	return d
}
