package models

// EquilibriumReport represents a solved trade equilibrium.
type EquilibriumReport struct {
	// Countries are the inputs in index order.
	Countries []Country `json:"countries"`
	// Distances is the pairwise distance matrix.
	Distances [][]float64 `json:"distances"`
	// Tariffs is the trade cost matrix used by the solver.
	Tariffs [][]float64 `json:"tariffs"`
	// Wages holds the equilibrium wage per country.
	Wages []float64 `json:"wages"`
	// Flows holds trade flows; Flows[i][j] is exports from i to j.
	Flows [][]float64 `json:"flows"`
	// ExcessDemand holds the last labor excess demand per country.
	ExcessDemand []float64 `json:"excess_demand"`
	// Iterations is the number of solver iterations run.
	Iterations int `json:"iterations"`
	// Converged reports whether excess demand fell within tolerance.
	Converged bool `json:"converged"`
}
