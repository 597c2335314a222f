package figure

import (
	"errors"
	"math"
	"testing"

	"github.com/ukaji3/tradeplot-go/pkg/tradeplot/models"
)

func TestMakeSubplotsSingleRegion(t *testing.T) {
	fig, err := MakeSubplots(1, 1)
	if err != nil {
		t.Fatalf("MakeSubplots failed: %v", err)
	}

	if len(fig.Layout.XAxes) != 1 || len(fig.Layout.YAxes) != 1 {
		t.Fatalf("Expected one axis pair, got %d/%d", len(fig.Layout.XAxes), len(fig.Layout.YAxes))
	}
	x, y := fig.Layout.XAxes[0], fig.Layout.YAxes[0]
	if x.Anchor != "y" || y.Anchor != "x" {
		t.Errorf("Expected anchors y/x, got %q/%q", x.Anchor, y.Anchor)
	}
	if x.Domain[0] != 0 || x.Domain[1] != 1 || y.Domain[0] != 0 || y.Domain[1] != 1 {
		t.Errorf("Expected full domains, got %v %v", x.Domain, y.Domain)
	}
	if !fig.Config.Responsive {
		t.Errorf("Expected responsive config")
	}
	if fig.Data == nil || len(fig.Data) != 0 {
		t.Errorf("Expected empty non-nil data, got %v", fig.Data)
	}
}

func TestMakeSubplotsGrid(t *testing.T) {
	fig, err := MakeSubplots(2, 2)
	if err != nil {
		t.Fatalf("MakeSubplots failed: %v", err)
	}
	if len(fig.Layout.XAxes) != 4 {
		t.Fatalf("Expected 4 regions, got %d", len(fig.Layout.XAxes))
	}

	const eps = 1e-9
	// Top-left region is first: left column, top row.
	if math.Abs(fig.Layout.XAxes[0].Domain[0]) > eps || math.Abs(fig.Layout.XAxes[0].Domain[1]-0.45) > eps {
		t.Errorf("Unexpected x domain for region 1: %v", fig.Layout.XAxes[0].Domain)
	}
	if math.Abs(fig.Layout.YAxes[0].Domain[0]-0.575) > eps || fig.Layout.YAxes[0].Domain[1] != 1 {
		t.Errorf("Unexpected y domain for region 1: %v", fig.Layout.YAxes[0].Domain)
	}
	if math.Abs(fig.Layout.XAxes[1].Domain[0]-0.55) > eps {
		t.Errorf("Unexpected x domain for region 2: %v", fig.Layout.XAxes[1].Domain)
	}
	if fig.Layout.XAxes[3].Anchor != "y4" || fig.Layout.YAxes[3].Anchor != "x4" {
		t.Errorf("Unexpected anchors for region 4: %q/%q", fig.Layout.XAxes[3].Anchor, fig.Layout.YAxes[3].Anchor)
	}
}

func TestMakeSubplotsInvalid(t *testing.T) {
	for _, dims := range [][2]int{{0, 1}, {1, 0}, {-1, 3}} {
		if _, err := MakeSubplots(dims[0], dims[1]); !errors.Is(err, ErrInvalidGrid) {
			t.Errorf("MakeSubplots(%d, %d) error = %v, expected ErrInvalidGrid", dims[0], dims[1], err)
		}
	}
}

func TestAddTraceNormalizesEmptySlices(t *testing.T) {
	fig, _ := MakeSubplots(1, 1)
	AddTrace(fig, models.Trace{Type: "scatter", Name: "s"})

	if fig.Data[0].X == nil || fig.Data[0].Y == nil {
		t.Errorf("Expected non-nil coordinate slices")
	}
	if fig.Data[0].XAxis != "" {
		t.Errorf("Expected no axis reference, got %q", fig.Data[0].XAxis)
	}
}

func TestSetRanges(t *testing.T) {
	fig, _ := MakeSubplots(1, 1)
	r := []float64{0, 1}
	SetRanges(fig, r, nil)
	r[1] = 5

	if fig.Layout.XAxes[0].Range[1] != 1 {
		t.Errorf("Expected range to be copied, got %v", fig.Layout.XAxes[0].Range)
	}
	if fig.Layout.YAxes[0].Range != nil {
		t.Errorf("Expected y range unset, got %v", fig.Layout.YAxes[0].Range)
	}
}
