package compare

import (
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// SaveErrorHistogram renders a histogram of per-pixel error values (see
// PerPixelError) to a PNG file at path, with the given bin count.
func SaveErrorHistogram(errs []float64, bins int, path string) error {
	p := plot.New()
	p.Title.Text = "BC7 decode error distribution"
	p.X.Label.Text = "summed RGBA absolute error"
	p.Y.Label.Text = "pixel count"

	hist, err := plotter.NewHist(plotter.Values(errs), bins)
	if err != nil {
		return errors.Wrap(err, "compare: building histogram")
	}
	p.Add(hist)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.Wrapf(err, "compare: saving histogram to %s", path)
	}
	return nil
}
