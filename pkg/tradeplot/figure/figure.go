// Package figure assembles plotly figures: subplot grids, traces, controls and annotations.
package figure

import (
	"errors"
	"fmt"

	"github.com/ukaji3/tradeplot-go/pkg/tradeplot/models"
)

// ErrInvalidGrid indicates a subplot grid with a non-positive dimension.
var ErrInvalidGrid = errors.New("invalid subplot grid")

// MakeSubplots creates an empty figure with a rows x cols grid of plotting regions.
// Regions are numbered row-major from the top-left cell, each x axis anchored to
// the y axis of the same region. Spacing follows plotly's defaults.
func MakeSubplots(rows, cols int) (*models.Figure, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidGrid, rows, cols)
	}

	hSpacing := 0.2 / float64(cols)
	vSpacing := 0.3 / float64(rows)
	width := (1 - hSpacing*float64(cols-1)) / float64(cols)
	height := (1 - vSpacing*float64(rows-1)) / float64(rows)

	fig := &models.Figure{
		Data:   []models.Trace{},
		Config: models.Config{Responsive: true},
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			i := r*cols + c
			x0 := float64(c) * (width + hSpacing)
			y0 := float64(rows-1-r) * (height + vSpacing)
			fig.Layout.XAxes = append(fig.Layout.XAxes, models.Axis{
				Anchor: models.AxisRef("y", i),
				Domain: []float64{x0, clamp(x0 + width)},
			})
			fig.Layout.YAxes = append(fig.Layout.YAxes, models.Axis{
				Anchor: models.AxisRef("x", i),
				Domain: []float64{y0, clamp(y0 + height)},
			})
		}
	}
	return fig, nil
}

// clamp trims float noise above 1 at the grid edge.
func clamp(v float64) float64 {
	if v > 1 {
		return 1
	}
	return v
}

// AddTrace appends t to the figure. Missing coordinate slices are replaced by
// empty ones so the trace serializes with [] arrays.
func AddTrace(fig *models.Figure, t models.Trace) {
	if t.X == nil {
		t.X = []float64{}
	}
	if t.Y == nil {
		t.Y = []float64{}
	}
	fig.Data = append(fig.Data, t)
}

// SetRanges fixes the data range of the first x and y axes. A nil range is left unchanged.
func SetRanges(fig *models.Figure, xRange, yRange []float64) {
	if xRange != nil && len(fig.Layout.XAxes) > 0 {
		fig.Layout.XAxes[0].Range = append([]float64(nil), xRange...)
	}
	if yRange != nil && len(fig.Layout.YAxes) > 0 {
		fig.Layout.YAxes[0].Range = append([]float64(nil), yRange...)
	}
}

// SetUpdateMenus replaces the figure's update menus.
func SetUpdateMenus(fig *models.Figure, menus ...models.UpdateMenu) {
	fig.Layout.UpdateMenus = menus
}

// AddAnnotation appends a to the layout annotations.
func AddAnnotation(fig *models.Figure, a models.Annotation) {
	fig.Layout.Annotations = append(fig.Layout.Annotations, a)
}

// Bool returns a pointer to b, for optional layout flags.
func Bool(b bool) *bool {
	return &b
}
