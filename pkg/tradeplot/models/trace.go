package models

// Marker represents point marker styling.
type Marker struct {
	// Size is the marker diameter in pixels.
	Size int `json:"size,omitempty"`
}

// Trace represents one named series of points sharing display styling.
type Trace struct {
	// Type is the plotly trace type (e.g., scatter).
	Type string `json:"type"`
	// X holds the x coordinates. Serialized as [] when empty.
	X []float64 `json:"x"`
	// Y holds the y coordinates. Serialized as [] when empty.
	Y []float64 `json:"y"`
	// Mode is the drawing mode (e.g., markers, lines+markers).
	Mode string `json:"mode,omitempty"`
	// Marker is the marker styling.
	Marker *Marker `json:"marker,omitempty"`
	// Name is the series display name.
	Name string `json:"name,omitempty"`
	// XAxis references the x axis the trace is drawn on (x, x2, ...).
	XAxis string `json:"xaxis,omitempty"`
	// YAxis references the y axis the trace is drawn on (y, y2, ...).
	YAxis string `json:"yaxis,omitempty"`
}

// Len returns the number of points in the trace.
func (t Trace) Len() int {
	if len(t.X) < len(t.Y) {
		return len(t.X)
	}
	return len(t.Y)
}
