package output

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ukaji3/tradeplot-go/pkg/tradeplot/models"
)

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

func TestRenderFlowMap(t *testing.T) {
	report := sampleReport(t)

	var buf bytes.Buffer
	if err := RenderFlowMap(&buf, &report, DefaultFlowMapOptions()); err != nil {
		t.Fatalf("RenderFlowMap failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), pngSignature) {
		t.Errorf("Expected PNG output")
	}
}

func TestRenderFlowMapSingleCountry(t *testing.T) {
	report := models.EquilibriumReport{
		Countries: []models.Country{{X: 0.5, Y: 0.5, Productivity: 1, Population: 1}},
		Flows:     [][]float64{{1}},
		Wages:     []float64{1},
	}

	var buf bytes.Buffer
	if err := RenderFlowMap(&buf, &report, FlowMapOptions{}); err != nil {
		t.Fatalf("RenderFlowMap failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), pngSignature) {
		t.Errorf("Expected PNG output")
	}
}

func TestRenderFlowMapNoCountries(t *testing.T) {
	err := RenderFlowMap(&bytes.Buffer{}, &models.EquilibriumReport{}, DefaultFlowMapOptions())
	if !errors.Is(err, ErrNoCountries) {
		t.Errorf("Expected ErrNoCountries, got %v", err)
	}
}

func TestFlowMapOptionsDefaults(t *testing.T) {
	def := DefaultFlowMapOptions()

	got := FlowMapOptions{Width: 400, CurveStrength: 0.5, Steps: 6}.withDefaults()
	expected := FlowMapOptions{
		Width:           400,
		Height:          def.Height,
		MinArrowWidth:   def.MinArrowWidth,
		MaxArrowWidth:   def.MaxArrowWidth,
		CurveStrength:   0.5,
		ArrowHeadLength: def.ArrowHeadLength,
		Steps:           6,
	}
	if got != expected {
		t.Errorf("withDefaults() = %+v, expected %+v", got, expected)
	}

	if got := (FlowMapOptions{}).withDefaults(); got.CurveStrength != 0 || got.Width != def.Width {
		t.Errorf("Expected a zero curve strength to be kept, got %+v", got)
	}
	if got := (FlowMapOptions{MinArrowWidth: 4, MaxArrowWidth: 2}).withDefaults(); got.MaxArrowWidth != 4 {
		t.Errorf("Expected max width raised to min width, got %+v", got)
	}
}
