package models

// Country represents one point of the trade model.
type Country struct {
	// X is the horizontal position in figure units.
	X float64 `json:"x" yaml:"x"`
	// Y is the vertical position in figure units.
	Y float64 `json:"y" yaml:"y"`
	// Productivity is the technology level T.
	Productivity float64 `json:"productivity" yaml:"productivity"`
	// Population is the labor supply L.
	Population float64 `json:"population" yaml:"population"`
}

// TariffOverride sets the trade cost from one country to another.
type TariffOverride struct {
	// From is the exporter index (0-based).
	From int `json:"from" yaml:"from"`
	// To is the importer index (0-based).
	To int `json:"to" yaml:"to"`
	// Value is the iceberg trade cost, at least 1.
	Value float64 `json:"value" yaml:"value"`
}

// Scenario represents a set of countries and tariff edits to solve.
type Scenario struct {
	// MaxCountries caps the number of countries (0 means the default).
	MaxCountries int `json:"max_countries,omitempty" yaml:"max_countries,omitempty"`
	// Countries lists the countries in index order.
	Countries []Country `json:"countries" yaml:"countries"`
	// Tariffs lists tariff edits applied after the countries are placed.
	Tariffs []TariffOverride `json:"tariffs,omitempty" yaml:"tariffs,omitempty"`
}
