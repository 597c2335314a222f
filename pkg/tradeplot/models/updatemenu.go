package models

// Button represents one control inside an update menu.
type Button struct {
	// Label is the visible button text.
	Label string `json:"label"`
	// Method is the plotly API method invoked on click (e.g., relayout).
	Method string `json:"method"`
	// Args are the arguments passed to Method.
	Args []any `json:"args"`
}

// Pad represents padding in pixels.
type Pad struct {
	R float64 `json:"r,omitempty"`
	T float64 `json:"t,omitempty"`
	B float64 `json:"b,omitempty"`
	L float64 `json:"l,omitempty"`
}

// UpdateMenu represents a group of buttons or a dropdown.
type UpdateMenu struct {
	// Type is buttons or dropdown.
	Type string `json:"type,omitempty"`
	// Buttons lists the controls in display order.
	Buttons []Button `json:"buttons"`
	// Direction is the layout direction of the buttons.
	Direction string `json:"direction,omitempty"`
	// Pad is the padding around the menu.
	Pad *Pad `json:"pad,omitempty"`
	// ShowActive highlights the active button.
	ShowActive *bool `json:"showactive,omitempty"`
	// X is the horizontal position in paper coordinates.
	X float64 `json:"x"`
	// XAnchor is the horizontal anchor.
	XAnchor string `json:"xanchor,omitempty"`
	// Y is the vertical position in paper coordinates.
	Y float64 `json:"y"`
	// YAnchor is the vertical anchor.
	YAnchor string `json:"yanchor,omitempty"`
}

// Labels returns the button labels in order.
func (m UpdateMenu) Labels() []string {
	labels := make([]string, 0, len(m.Buttons))
	for _, b := range m.Buttons {
		labels = append(labels, b.Label)
	}
	return labels
}
