package output

import (
	"fmt"
	"io"
	"math"

	"github.com/ukaji3/tradeplot-go/pkg/tradeplot/models"
	"github.com/ukaji3/tradeplot-go/pkg/tradeplot/trade"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// FlowMapOptions configures RenderFlowMap.
type FlowMapOptions struct {
	Width  int
	Height int
	// MinArrowWidth and MaxArrowWidth bound the stroke width of flow arrows in pixels.
	MinArrowWidth float64
	MaxArrowWidth float64
	// CurveStrength bends each arrow by this fraction of its length.
	CurveStrength float64
	// ArrowHeadLength is the head length in figure units.
	ArrowHeadLength float64
	// Steps is the number of segments sampled per arrow.
	Steps int
}

// DefaultFlowMapOptions returns default flow map options.
func DefaultFlowMapOptions() FlowMapOptions {
	return FlowMapOptions{
		Width:           800,
		Height:          800,
		MinArrowWidth:   1,
		MaxArrowWidth:   10,
		CurveStrength:   0.2,
		ArrowHeadLength: 0.025,
		Steps:           24,
	}
}

// withDefaults replaces each non-positive size or count with its default.
// A zero CurveStrength is kept and draws straight arrows.
func (o FlowMapOptions) withDefaults() FlowMapOptions {
	def := DefaultFlowMapOptions()
	if o.Width <= 0 {
		o.Width = def.Width
	}
	if o.Height <= 0 {
		o.Height = def.Height
	}
	if o.MinArrowWidth <= 0 {
		o.MinArrowWidth = def.MinArrowWidth
	}
	if o.MaxArrowWidth <= 0 {
		o.MaxArrowWidth = def.MaxArrowWidth
	}
	if o.MaxArrowWidth < o.MinArrowWidth {
		o.MaxArrowWidth = o.MinArrowWidth
	}
	if o.ArrowHeadLength <= 0 {
		o.ArrowHeadLength = def.ArrowHeadLength
	}
	if o.Steps <= 0 {
		o.Steps = def.Steps
	}
	return o
}

var flowColor = drawing.Color{R: 0, G: 0, B: 255, A: 128}

// RenderFlowMap draws countries and their trade flows as a PNG.
// Flow arrows are curved and their width follows the flow relative to the largest one.
func RenderFlowMap(w io.Writer, report *models.EquilibriumReport, opts FlowMapOptions) error {
	if len(report.Countries) == 0 {
		return ErrNoCountries
	}
	opts = opts.withDefaults()

	var series []chart.Series
	maxFlow := trade.MaxFlow(report.Flows)
	for i, row := range report.Flows {
		for j, flow := range row {
			if i == j || math.IsNaN(flow) || math.IsInf(flow, 0) {
				continue
			}
			series = append(series, arrowSeries(report.Countries[i], report.Countries[j], flow, maxFlow, opts)...)
		}
	}

	xs := make([]float64, 0, len(report.Countries))
	ys := make([]float64, 0, len(report.Countries))
	labels := make([]chart.Value2, 0, len(report.Countries))
	for i, c := range report.Countries {
		xs = append(xs, c.X)
		ys = append(ys, c.Y)
		labels = append(labels, chart.Value2{
			XValue: c.X,
			YValue: c.Y,
			Label:  fmt.Sprintf("%d  P: %.1f  L: %.1f", i+1, c.Productivity, c.Population),
		})
	}
	series = append(series,
		chart.ContinuousSeries{
			Name:    "Countries",
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeWidth: chart.Disabled,
				DotWidth:    5,
				DotColor:    drawing.ColorBlack,
			},
		},
		chart.AnnotationSeries{Annotations: labels},
	)

	graph := chart.Chart{
		Title:  "Interactive Trade Model",
		Width:  opts.Width,
		Height: opts.Height,
		XAxis:  chart.XAxis{Range: &chart.ContinuousRange{Min: 0, Max: 1}},
		YAxis:  chart.YAxis{Range: &chart.ContinuousRange{Min: 0, Max: 1}},
		Series: series,
	}
	return graph.Render(chart.PNG, w)
}

// arrowSeries returns the curve and head strokes of one flow arrow.
func arrowSeries(from, to models.Country, flow, maxFlow float64, opts FlowMapOptions) []chart.Series {
	width := trade.FlowWidth(flow, maxFlow, opts.MinArrowWidth, opts.MaxArrowWidth)
	style := chart.Style{StrokeWidth: width, StrokeColor: flowColor}

	arrow := trade.CurvedArrow(from, to, opts.CurveStrength, opts.Steps)
	curve := chart.ContinuousSeries{Style: style}
	for _, p := range arrow.Path {
		curve.XValues = append(curve.XValues, p.X)
		curve.YValues = append(curve.YValues, p.Y)
	}

	tip := trade.Point{X: to.X, Y: to.Y}
	left, right := trade.HeadPoints(tip, arrow.HeadAngle, opts.ArrowHeadLength, opts.ArrowHeadLength*width/opts.MaxArrowWidth)
	head := chart.ContinuousSeries{
		Style:   style,
		XValues: []float64{left.X, tip.X, right.X},
		YValues: []float64{left.Y, tip.Y, right.Y},
	}
	return []chart.Series{curve, head}
}
