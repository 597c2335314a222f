package tradeplot

import (
	"strings"

	"github.com/ukaji3/tradeplot-go/pkg/tradeplot/output"
)

// SeriesSummary describes one trace of a parsed document.
type SeriesSummary struct {
	Name   string `json:"name"`
	Points int    `json:"points"`
}

// Summary describes the interactive parts of a parsed document.
type Summary struct {
	DivID          string          `json:"div_id"`
	Title          string          `json:"title,omitempty"`
	Series         []SeriesSummary `json:"series"`
	XRange         []float64       `json:"x_range,omitempty"`
	YRange         []float64       `json:"y_range,omitempty"`
	ShowLegend     *bool           `json:"showlegend,omitempty"`
	ClickMode      string          `json:"clickmode,omitempty"`
	Buttons        []string        `json:"buttons"`
	ScriptEmbedded bool            `json:"script_embedded"`
	RuntimeInline  bool            `json:"runtime_inline"`
	RuntimeSrc     string          `json:"runtime_src,omitempty"`
}

// Summarize reports what a browser would get from doc.
func Summarize(doc *output.Document) Summary {
	fig := doc.Figure
	s := Summary{
		DivID:         doc.DivID,
		Series:        []SeriesSummary{},
		Buttons:       []string{},
		ShowLegend:    fig.Layout.ShowLegend,
		ClickMode:     fig.Layout.ClickMode,
		RuntimeInline: doc.RuntimeInline,
		RuntimeSrc:    doc.RuntimeSrc,
	}
	if fig.Layout.Title != nil {
		s.Title = fig.Layout.Title.Text
	}
	for _, t := range fig.Data {
		s.Series = append(s.Series, SeriesSummary{Name: t.Name, Points: t.Len()})
	}
	if len(fig.Layout.XAxes) > 0 {
		s.XRange = fig.Layout.XAxes[0].Range
	}
	if len(fig.Layout.YAxes) > 0 {
		s.YRange = fig.Layout.YAxes[0].Range
	}
	for _, m := range fig.Layout.UpdateMenus {
		s.Buttons = append(s.Buttons, m.Labels()...)
	}
	for _, a := range fig.Layout.Annotations {
		if strings.Contains(a.Text, InteractionScript) {
			s.ScriptEmbedded = true
		}
	}
	return s
}
