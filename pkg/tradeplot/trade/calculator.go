// Package trade implements the country trade model behind the interactive figure:
// distance and tariff matrices and an equilibrium solver for trade flows.
package trade

import (
	"errors"
	"fmt"
	"math"

	"github.com/ukaji3/tradeplot-go/pkg/tradeplot/models"
)

// ErrInvalidTariff indicates a tariff edit on the diagonal or below 1.
var ErrInvalidTariff = errors.New("invalid tariff")

// ErrInvalidParams indicates solver parameters that are not positive and finite.
var ErrInvalidParams = errors.New("invalid solver parameters")

// ErrIndexOutOfRange indicates a country index outside the model.
var ErrIndexOutOfRange = errors.New("country index out of range")

const (
	// InternalDistance is the distance of a country to itself.
	InternalDistance = 0.1
	// DistanceScale divides the euclidean distance between two countries.
	DistanceScale = 10.0
	// DefaultTariff is the trade cost between two different countries.
	DefaultTariff = 1.5
)

// SolverParams holds parameters of the equilibrium iteration.
type SolverParams struct {
	// Theta is the trade elasticity.
	Theta float64
	// Tolerance bounds the largest absolute excess demand at convergence.
	Tolerance float64
	// Psi is the wage adjustment step.
	Psi float64
	// MaxIterations caps the iteration count.
	MaxIterations int
}

// DefaultSolverParams returns default solver parameters.
func DefaultSolverParams() SolverParams {
	return SolverParams{
		Theta:         4,
		Tolerance:     0.0001,
		Psi:           0.1,
		MaxIterations: 500,
	}
}

// Result holds the outcome of an equilibrium solve.
type Result struct {
	Wages        []float64
	Flows        [][]float64
	ExcessDemand []float64
	Iterations   int
	Converged    bool
}

// Calculator holds the distance and tariff matrices for a set of countries.
type Calculator struct {
	countries []models.Country
	distances [][]float64
	tariffs   [][]float64
	params    SolverParams
}

// NewCalculator creates a Calculator for the given countries.
func NewCalculator(countries []models.Country) *Calculator {
	c := &Calculator{params: DefaultSolverParams()}
	c.UpdateCountries(countries)
	return c
}

// UpdateCountries replaces the countries and rebuilds both matrices.
// Tariff edits made before the call are discarded.
func (c *Calculator) UpdateCountries(countries []models.Country) {
	c.countries = append([]models.Country(nil), countries...)
	c.calculateDistanceMatrix()
	c.initializeTariffMatrix()
}

// RefreshCountries replaces the countries and recomputes distances while
// keeping tariff edits. The country count must not change.
func (c *Calculator) RefreshCountries(countries []models.Country) {
	if len(countries) != len(c.countries) {
		c.UpdateCountries(countries)
		return
	}
	c.countries = append([]models.Country(nil), countries...)
	c.calculateDistanceMatrix()
}

// SetParams replaces the solver parameters.
func (c *Calculator) SetParams(p SolverParams) error {
	for name, v := range map[string]float64{"theta": p.Theta, "tolerance": p.Tolerance, "psi": p.Psi} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return fmt.Errorf("%w: %s %v", ErrInvalidParams, name, v)
		}
	}
	if p.MaxIterations < 1 {
		return fmt.Errorf("%w: max iterations %d", ErrInvalidParams, p.MaxIterations)
	}
	c.params = p
	return nil
}

// Params returns the solver parameters.
func (c *Calculator) Params() SolverParams {
	return c.params
}

// Distance returns the scaled euclidean distance between two countries.
func Distance(a, b models.Country) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx+dy*dy) / DistanceScale
}

func (c *Calculator) calculateDistanceMatrix() {
	n := len(c.countries)
	c.distances = make([][]float64, n)
	for i := range c.countries {
		c.distances[i] = make([]float64, n)
		for j := range c.countries {
			if i == j {
				c.distances[i][j] = InternalDistance
				continue
			}
			c.distances[i][j] = Distance(c.countries[i], c.countries[j])
		}
	}
}

func (c *Calculator) initializeTariffMatrix() {
	n := len(c.countries)
	c.tariffs = make([][]float64, n)
	for i := 0; i < n; i++ {
		c.tariffs[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			if i == j {
				c.tariffs[i][j] = 1
			} else {
				c.tariffs[i][j] = DefaultTariff
			}
		}
	}
}

// DistanceMatrix returns a copy of the distance matrix.
func (c *Calculator) DistanceMatrix() [][]float64 {
	return copyMatrix(c.distances)
}

// TariffMatrix returns a copy of the tariff matrix.
func (c *Calculator) TariffMatrix() [][]float64 {
	return copyMatrix(c.tariffs)
}

// UpdateTariff sets the trade cost from country i to country j.
// The diagonal is fixed at 1 and values below 1 are rejected.
func (c *Calculator) UpdateTariff(i, j int, value float64) error {
	n := len(c.countries)
	if i < 0 || j < 0 || i >= n || j >= n {
		return fmt.Errorf("%w: (%d, %d) with %d countries", ErrIndexOutOfRange, i, j, n)
	}
	if i == j {
		return fmt.Errorf("%w: diagonal entry (%d, %d) is fixed", ErrInvalidTariff, i, j)
	}
	if math.IsNaN(value) || value < 1 {
		return fmt.Errorf("%w: %v is below 1", ErrInvalidTariff, value)
	}
	c.tariffs[i][j] = value
	return nil
}

// Equilibrium iterates wages until labor excess demand vanishes, using the
// tariff matrix as trade costs. The returned wages are the last adjusted ones;
// flows and excess demand come from the wages before that adjustment.
func (c *Calculator) Equilibrium() Result {
	n := len(c.countries)
	labor := make([]float64, n)
	tech := make([]float64, n)
	w := make([]float64, n)
	z := make([]float64, n)
	for i, country := range c.countries {
		labor[i] = country.Population
		tech[i] = country.Productivity
		w[i] = 1
		z[i] = 1
	}

	res := Result{Wages: w, ExcessDemand: z, Flows: zeroMatrix(n)}
	p := c.params
	for maxAbs(z) > p.Tolerance && res.Iterations < p.MaxIterations {
		res.Iterations++
		x := c.tradeFlows(w, labor, tech)

		z = make([]float64, n)
		for i := range x {
			exports := 0.0
			for _, v := range x[i] {
				exports += v
			}
			z[i] = (exports - w[i]*labor[i]) / w[i]
		}

		next := make([]float64, n)
		for i := range w {
			next[i] = w[i] * (1 + p.Psi*(z[i]/labor[i]))
		}
		w = next
		res.Flows = x
	}

	res.Wages = w
	res.ExcessDemand = z
	res.Converged = maxAbs(z) <= p.Tolerance
	return res
}

// tradeFlows returns X where X[i][j] is the value country j buys from country i.
func (c *Calculator) tradeFlows(w, labor, tech []float64) [][]float64 {
	n := len(w)
	num := zeroMatrix(n)
	phi := make([]float64, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			num[i][j] = tech[i] * math.Pow(w[i]*c.tariffs[i][j], -c.params.Theta)
			phi[j] += num[i][j]
		}
	}

	x := zeroMatrix(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			x[i][j] = num[i][j] / phi[j] * w[j] * labor[j]
		}
	}
	return x
}

func maxAbs(v []float64) float64 {
	m := 0.0
	for _, x := range v {
		if a := math.Abs(x); a > m || math.IsNaN(x) {
			m = a
		}
	}
	return m
}

func zeroMatrix(n int) [][]float64 {
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
	}
	return m
}

func copyMatrix(m [][]float64) [][]float64 {
	out := make([][]float64, len(m))
	for i, row := range m {
		out[i] = append([]float64(nil), row...)
	}
	return out
}
