package tradeplot

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestBuildFigureSeries(t *testing.T) {
	fig, err := BuildFigure()
	if err != nil {
		t.Fatalf("BuildFigure failed: %v", err)
	}

	if len(fig.Data) != 1 {
		t.Fatalf("Expected exactly 1 series, got %d", len(fig.Data))
	}
	tr := fig.Data[0]
	if tr.Name != SeriesName || tr.Type != "scatter" || tr.Mode != "markers" {
		t.Errorf("Unexpected trace %+v", tr)
	}
	if tr.X == nil || tr.Y == nil || len(tr.X) != 0 || len(tr.Y) != 0 {
		t.Errorf("Expected empty non-nil coordinates, got %v %v", tr.X, tr.Y)
	}
	if tr.Marker == nil || tr.Marker.Size != 10 {
		t.Errorf("Expected marker size 10, got %+v", tr.Marker)
	}
}

func TestBuildFigureLayout(t *testing.T) {
	fig, err := BuildFigure()
	if err != nil {
		t.Fatalf("BuildFigure failed: %v", err)
	}
	l := fig.Layout

	if l.Title == nil || l.Title.Text != "Interactive Trade Model" {
		t.Errorf("Unexpected title %+v", l.Title)
	}
	for name, axes := range map[string][]float64{"x": l.XAxes[0].Range, "y": l.YAxes[0].Range} {
		if len(axes) != 2 || axes[0] != 0 || axes[1] != 1 {
			t.Errorf("Expected %s range [0,1], got %v", name, axes)
		}
	}
	if l.ShowLegend == nil || *l.ShowLegend {
		t.Errorf("Expected legend hidden")
	}
	if l.HoverMode != "closest" || l.ClickMode != "event+select" {
		t.Errorf("Unexpected modes hover=%q click=%q", l.HoverMode, l.ClickMode)
	}
}

func TestBuildFigureControls(t *testing.T) {
	fig, err := BuildFigure()
	if err != nil {
		t.Fatalf("BuildFigure failed: %v", err)
	}

	if len(fig.Layout.UpdateMenus) != 1 {
		t.Fatalf("Expected 1 update menu, got %d", len(fig.Layout.UpdateMenus))
	}
	menu := fig.Layout.UpdateMenus[0]
	if menu.Type != "buttons" || menu.Direction != "right" {
		t.Errorf("Unexpected menu %+v", menu)
	}

	tests := []struct {
		label string
		mode  string
	}{
		{"Add Point", "event"},
		{"Remove Point", "event+select"},
	}
	if len(menu.Buttons) != len(tests) {
		t.Fatalf("Expected %d buttons, got %d", len(tests), len(menu.Buttons))
	}
	for i, tt := range tests {
		b := menu.Buttons[i]
		if b.Label != tt.label || b.Method != "relayout" {
			t.Errorf("button %d = %+v, expected %q relayout", i, b, tt.label)
		}
		if len(b.Args) != 2 || b.Args[0] != "clickmode" || b.Args[1] != tt.mode {
			t.Errorf("button %d args = %v, expected [clickmode %s]", i, b.Args, tt.mode)
		}
	}
}

func TestBuildFigureAnnotation(t *testing.T) {
	fig, err := BuildFigure()
	if err != nil {
		t.Fatalf("BuildFigure failed: %v", err)
	}

	if len(fig.Layout.Annotations) != 1 {
		t.Fatalf("Expected 1 annotation, got %d", len(fig.Layout.Annotations))
	}
	a := fig.Layout.Annotations[0]
	if a.Text != InteractionScript {
		t.Errorf("Annotation text differs from the interaction script")
	}
	if a.X != 0 || a.Y != 0 || a.XRef != "paper" || a.YRef != "paper" {
		t.Errorf("Unexpected position %+v", a)
	}
	if a.ShowArrow == nil || *a.ShowArrow {
		t.Errorf("Expected showarrow false")
	}
}

func TestInteractionScriptShape(t *testing.T) {
	if !strings.HasPrefix(InteractionScript, "\n    <script>\n") {
		t.Errorf("Unexpected script start %q", InteractionScript[:20])
	}
	if !strings.HasSuffix(InteractionScript, "    </script>\n    ") {
		t.Errorf("Unexpected script end")
	}
	for _, part := range []string{
		"Plotly.extendTraces(plot, {x: [[x]], y: [[y]]}, [0]);",
		"pts.data.x.indexOf(pts.x)",
		"Plotly.deleteTraces(plot, 0);",
		"name: 'Countries'",
	} {
		if !strings.Contains(InteractionScript, part) {
			t.Errorf("Expected script to contain %q", part)
		}
	}
}

func TestFigureJSONKeys(t *testing.T) {
	fig, err := BuildFigure()
	if err != nil {
		t.Fatalf("BuildFigure failed: %v", err)
	}
	data, err := json.Marshal(fig.Data)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !strings.Contains(string(data), `"x":[],"y":[]`) {
		t.Errorf("Expected empty coordinate arrays, got %s", data)
	}
}
