package tradeplot

import (
	"log/slog"

	"github.com/ukaji3/tradeplot-go/pkg/tradeplot/figure"
	"github.com/ukaji3/tradeplot-go/pkg/tradeplot/models"
)

const (
	// Title is the figure title.
	Title = "Interactive Trade Model"
	// SeriesName is the name of the single marker trace.
	SeriesName = "Countries"
	// MarkerSize is the marker diameter in pixels.
	MarkerSize = 10
	// ClickModeAdd is the click mode under which a click adds a point.
	ClickModeAdd = "event"
	// ClickModeRemove is the click mode under which a click removes a point. It is the initial mode.
	ClickModeRemove = "event+select"
	// HoverMode picks the nearest point on hover.
	HoverMode = "closest"
)

// AddPointLabel and RemovePointLabel are the control labels.
const (
	AddPointLabel    = "Add Point"
	RemovePointLabel = "Remove Point"
)

// BuildFigure assembles the interactive trade model figure: one region, one
// empty marker trace, fixed unit axes, two click mode controls and the
// interaction script annotation.
func BuildFigure() (*models.Figure, error) {
	fig, err := figure.MakeSubplots(1, 1)
	if err != nil {
		return nil, err
	}

	figure.AddTrace(fig, models.Trace{
		Type:   "scatter",
		X:      []float64{},
		Y:      []float64{},
		Mode:   "markers",
		Marker: &models.Marker{Size: MarkerSize},
		Name:   SeriesName,
	})

	fig.Layout.Title = &models.Title{Text: Title}
	figure.SetRanges(fig, []float64{0, 1}, []float64{0, 1})
	fig.Layout.ShowLegend = figure.Bool(false)
	fig.Layout.HoverMode = HoverMode
	fig.Layout.ClickMode = ClickModeRemove

	figure.SetUpdateMenus(fig, clickModeMenu())

	figure.AddAnnotation(fig, models.Annotation{
		Text:      InteractionScript,
		ShowArrow: figure.Bool(false),
		X:         0,
		Y:         0,
		XRef:      "paper",
		YRef:      "paper",
		XAnchor:   "left",
		YAnchor:   "bottom",
	})

	slog.Debug("figure built",
		"traces", len(fig.Data),
		"updatemenus", len(fig.Layout.UpdateMenus),
		"annotations", len(fig.Layout.Annotations),
	)
	return fig, nil
}

// clickModeMenu returns the button group toggling the click mode. The buttons
// only relayout; points are added and removed by the interaction script.
func clickModeMenu() models.UpdateMenu {
	return models.UpdateMenu{
		Type: "buttons",
		Buttons: []models.Button{
			{Label: AddPointLabel, Method: "relayout", Args: []any{"clickmode", ClickModeAdd}},
			{Label: RemovePointLabel, Method: "relayout", Args: []any{"clickmode", ClickModeRemove}},
		},
		Direction:  "right",
		Pad:        &models.Pad{R: 10, T: 10},
		ShowActive: figure.Bool(true),
		X:          0.1,
		XAnchor:    "left",
		Y:          1.1,
		YAnchor:    "top",
	}
}
