package models

// Annotation represents a positioned text element attached to the layout.
// Text is emitted as-is; plotly decides how to render it.
type Annotation struct {
	// Text is the annotation content.
	Text string `json:"text"`
	// ShowArrow toggles the pointer arrow.
	ShowArrow *bool `json:"showarrow,omitempty"`
	// X is the horizontal position in XRef coordinates.
	X float64 `json:"x"`
	// Y is the vertical position in YRef coordinates.
	Y float64 `json:"y"`
	// XRef is the x coordinate system (paper or an axis id).
	XRef string `json:"xref,omitempty"`
	// YRef is the y coordinate system (paper or an axis id).
	YRef string `json:"yref,omitempty"`
	// XAnchor is the horizontal anchor (left, center, right).
	XAnchor string `json:"xanchor,omitempty"`
	// YAnchor is the vertical anchor (top, middle, bottom).
	YAnchor string `json:"yanchor,omitempty"`
}
