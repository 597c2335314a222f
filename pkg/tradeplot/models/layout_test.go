package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestLayoutAxisKeys(t *testing.T) {
	l := Layout{
		Title: &Title{Text: "t"},
		XAxes: []Axis{{Anchor: "y", Domain: []float64{0, 0.4}}, {Anchor: "y2", Domain: []float64{0.6, 1}}},
		YAxes: []Axis{{Anchor: "x", Domain: []float64{0, 1}, Range: []float64{0, 1}}, {Anchor: "x2"}},
	}

	data, err := json.Marshal(l)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	for _, key := range []string{"title", "xaxis", "xaxis2", "yaxis", "yaxis2"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("Expected key %q in %s", key, data)
		}
	}
	if _, ok := raw["XAxes"]; ok {
		t.Errorf("XAxes leaked into JSON: %s", data)
	}

	var back Layout
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal into Layout failed: %v", err)
	}
	if len(back.XAxes) != 2 || back.XAxes[1].Anchor != "y2" {
		t.Errorf("Expected second x axis anchored to y2, got %+v", back.XAxes)
	}
	if len(back.YAxes) != 2 || back.YAxes[0].Range[1] != 1 {
		t.Errorf("Expected yaxis range to survive, got %+v", back.YAxes)
	}
}

func TestLayoutKeepsFalseLegend(t *testing.T) {
	off := false
	data, err := json.Marshal(Layout{ShowLegend: &off})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !strings.Contains(string(data), `"showlegend":false`) {
		t.Errorf("Expected showlegend false, got %s", data)
	}
}

func TestEncodeKeepsMarkup(t *testing.T) {
	data, err := Encode(Annotation{Text: "<script>a && b</script>"}, false)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if !strings.Contains(string(data), "<script>a && b</script>") {
		t.Errorf("Expected unescaped markup, got %s", data)
	}
}

func TestAxisNaming(t *testing.T) {
	tests := []struct {
		letter string
		i      int
		key    string
		ref    string
	}{
		{"x", 0, "xaxis", "x"},
		{"y", 0, "yaxis", "y"},
		{"x", 1, "xaxis2", "x2"},
		{"y", 3, "yaxis4", "y4"},
	}

	for _, tt := range tests {
		if got := AxisKey(tt.letter, tt.i); got != tt.key {
			t.Errorf("AxisKey(%q, %d) = %q, expected %q", tt.letter, tt.i, got, tt.key)
		}
		if got := AxisRef(tt.letter, tt.i); got != tt.ref {
			t.Errorf("AxisRef(%q, %d) = %q, expected %q", tt.letter, tt.i, got, tt.ref)
		}
	}
}
