package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strconv"
)

var axisKeyRe = regexp.MustCompile(`^([xy])axis([0-9]*)$`)

// Title represents a layout or axis title.
type Title struct {
	// Text is the title text.
	Text string `json:"text"`
}

// Axis represents a cartesian axis.
type Axis struct {
	// Anchor is the id of the axis this one is anchored to (x, y2, ...).
	Anchor string `json:"anchor,omitempty"`
	// Domain is the [start, end] paper fraction the axis spans.
	Domain []float64 `json:"domain,omitempty"`
	// Range is the fixed [min, max] data range, when set.
	Range []float64 `json:"range,omitempty"`
}

// Layout represents the non-data display configuration of a figure.
// Axes are held positionally and serialized under plotly's xaxis, xaxis2, ... keys.
type Layout struct {
	// Title is the figure title.
	Title *Title `json:"title,omitempty"`
	// ShowLegend toggles the legend.
	ShowLegend *bool `json:"showlegend,omitempty"`
	// HoverMode is the hover behavior (closest, x, y, ...).
	HoverMode string `json:"hovermode,omitempty"`
	// ClickMode is the interaction mode flag (event, event+select, ...).
	ClickMode string `json:"clickmode,omitempty"`
	// UpdateMenus holds button groups and dropdowns.
	UpdateMenus []UpdateMenu `json:"updatemenus,omitempty"`
	// Annotations holds positioned text elements.
	Annotations []Annotation `json:"annotations,omitempty"`
	// XAxes holds x axes; XAxes[0] is serialized as xaxis.
	XAxes []Axis `json:"-"`
	// YAxes holds y axes; YAxes[0] is serialized as yaxis.
	YAxes []Axis `json:"-"`
}

// layoutFields has Layout's fields without its methods.
type layoutFields Layout

// AxisKey returns the layout key of the axis at index i for letter x or y.
func AxisKey(letter string, i int) string {
	if i == 0 {
		return letter + "axis"
	}
	return letter + "axis" + strconv.Itoa(i+1)
}

// AxisRef returns the trace reference of the axis at index i (x, x2, ...).
func AxisRef(letter string, i int) string {
	if i == 0 {
		return letter
	}
	return letter + strconv.Itoa(i+1)
}

// MarshalJSON implements json.Marshaler.
func (l Layout) MarshalJSON() ([]byte, error) {
	base, err := Encode(layoutFields(l), false)
	if err != nil {
		return nil, err
	}
	fields := make(map[string]json.RawMessage)
	if err := json.Unmarshal(base, &fields); err != nil {
		return nil, err
	}
	for letter, axes := range map[string][]Axis{"x": l.XAxes, "y": l.YAxes} {
		for i, ax := range axes {
			raw, err := Encode(ax, false)
			if err != nil {
				return nil, err
			}
			fields[AxisKey(letter, i)] = raw
		}
	}
	return Encode(fields, false)
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *Layout) UnmarshalJSON(data []byte) error {
	var base layoutFields
	if err := json.Unmarshal(data, &base); err != nil {
		return err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	type indexed struct {
		n  int
		ax Axis
	}
	found := map[string][]indexed{}
	for key, raw := range fields {
		m := axisKeyRe.FindStringSubmatch(key)
		if m == nil {
			continue
		}
		n := 1
		if m[2] != "" {
			v, err := strconv.Atoi(m[2])
			if err != nil || v < 1 {
				return fmt.Errorf("layout: bad axis key %q", key)
			}
			n = v
		}
		var ax Axis
		if err := json.Unmarshal(raw, &ax); err != nil {
			return fmt.Errorf("layout: %s: %w", key, err)
		}
		found[m[1]] = append(found[m[1]], indexed{n: n, ax: ax})
	}

	*l = Layout(base)
	for letter, list := range found {
		sort.Slice(list, func(i, j int) bool { return list[i].n < list[j].n })
		axes := make([]Axis, 0, len(list))
		for _, it := range list {
			axes = append(axes, it.ax)
		}
		if letter == "x" {
			l.XAxes = axes
		} else {
			l.YAxes = axes
		}
	}
	return nil
}

// Encode marshals v without HTML escaping, so text payloads keep their
// characters unchanged. With indent set the output is two-space indented.
func Encode(v any, indent bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
