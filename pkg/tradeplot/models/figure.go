// Package models defines the plotly figure description and the trade scenario types.
package models

// Figure is the serialized description a browser needs to rebuild the chart.
type Figure struct {
	// Data holds the traces in drawing order.
	Data []Trace `json:"data"`
	// Layout holds all non-data display configuration.
	Layout Layout `json:"layout"`
	// Config holds plotly.js runtime options.
	Config Config `json:"config"`
}

// Config represents the plotly.js config argument.
type Config struct {
	// Responsive makes the plot follow its container size.
	Responsive bool `json:"responsive"`
}
