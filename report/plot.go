// Copyright ©2026 The count-fasta-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// SaveLengthHist renders a histogram of the sequence length distribution
// to path. The image format follows the file extension (png, svg, pdf,
// ...).
func SaveLengthHist(path string, lengths []int) error {
	p := plot.New()
	p.Title.Text = "Sequence length distribution"
	p.X.Label.Text = "Length (bp)"
	p.Y.Label.Text = "Sequences"

	vals := make(plotter.Values, len(lengths))
	for i, l := range lengths {
		vals[i] = float64(l)
	}
	h, err := plotter.NewHist(vals, 20)
	if err != nil {
		return fmt.Errorf("report: histogram: %v", err)
	}
	p.Add(h)

	if err := p.Save(15*vg.Centimeter, 10*vg.Centimeter, path); err != nil {
		return fmt.Errorf("report: save %q: %v", path, err)
	}
	return nil
}
