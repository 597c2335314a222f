package trade

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/ukaji3/tradeplot-go/pkg/tradeplot/models"
)

// ErrModelFull indicates the model already holds its maximum number of countries.
var ErrModelFull = errors.New("model is full")

// ErrUnknownAttribute indicates an attribute name other than productivity or population.
var ErrUnknownAttribute = errors.New("unknown country attribute")

// ErrInvalidAttribute indicates a productivity or population that is not a
// positive finite number.
var ErrInvalidAttribute = errors.New("invalid country attribute")

const (
	// DefaultMaxCountries is the country cap used when none is given.
	DefaultMaxCountries = 5
	// RandomPadding keeps randomly placed countries away from the edges.
	RandomPadding = 0.0625
	// PickThreshold is the distance within which a position selects a country.
	PickThreshold = 0.0125
)

// Model manages a bounded list of countries and keeps a Calculator in step with it.
type Model struct {
	maxCountries int
	countries    []models.Country
	calc         *Calculator
}

// NewModel creates an empty model. A non-positive max uses DefaultMaxCountries.
func NewModel(maxCountries int) *Model {
	if maxCountries <= 0 {
		maxCountries = DefaultMaxCountries
	}
	return &Model{
		maxCountries: maxCountries,
		calc:         NewCalculator(nil),
	}
}

// FromScenario builds a model holding the scenario's countries and tariff edits.
func FromScenario(s models.Scenario) (*Model, error) {
	m := NewModel(s.MaxCountries)
	for i, c := range s.Countries {
		if _, err := m.AddCountry(c.X, c.Y); err != nil {
			return nil, fmt.Errorf("country %d: %w", i, err)
		}
		if err := m.UpdateCountryAttribute(i, "productivity", c.Productivity); err != nil {
			return nil, fmt.Errorf("country %d: %w", i, err)
		}
		if err := m.UpdateCountryAttribute(i, "population", c.Population); err != nil {
			return nil, fmt.Errorf("country %d: %w", i, err)
		}
	}
	for _, t := range s.Tariffs {
		if err := m.UpdateTariff(t.From, t.To, t.Value); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// MaxCountries returns the country cap.
func (m *Model) MaxCountries() int { return m.maxCountries }

// Countries returns a copy of the countries in index order.
func (m *Model) Countries() []models.Country {
	return append([]models.Country(nil), m.countries...)
}

// Len returns the number of countries.
func (m *Model) Len() int { return len(m.countries) }

// Calculator returns the calculator tracking the current countries.
func (m *Model) Calculator() *Calculator { return m.calc }

// AddCountry appends a country with unit productivity and population.
func (m *Model) AddCountry(x, y float64) (models.Country, error) {
	if len(m.countries) >= m.maxCountries {
		return models.Country{}, fmt.Errorf("%w: %d/%d", ErrModelFull, len(m.countries), m.maxCountries)
	}
	c := models.Country{X: x, Y: y, Productivity: 1, Population: 1}
	m.countries = append(m.countries, c)
	m.calc.UpdateCountries(m.countries)
	return c, nil
}

// AddRandomCountry places a country uniformly inside the unit square, keeping
// padding away from the edges.
func (m *Model) AddRandomCountry(rng *rand.Rand, padding float64) (models.Country, error) {
	span := 1 - 2*padding
	if span < 0 {
		span = 0
	}
	x := rng.Float64()*span + padding
	y := rng.Float64()*span + padding
	return m.AddCountry(x, y)
}

// RemoveCountry drops the most recently added country. It is a no-op on an empty model.
func (m *Model) RemoveCountry() {
	if len(m.countries) == 0 {
		return
	}
	m.countries = m.countries[:len(m.countries)-1]
	m.calc.UpdateCountries(m.countries)
}

// FindClosest returns the index of the first country strictly within threshold
// of (x, y), or -1.
func (m *Model) FindClosest(x, y, threshold float64) int {
	for i, c := range m.countries {
		dx := c.X - x
		dy := c.Y - y
		if math.Sqrt(dx*dx+dy*dy) < threshold {
			return i
		}
	}
	return -1
}

// MoveCountry sets the position of country i.
func (m *Model) MoveCountry(i int, x, y float64) error {
	if i < 0 || i >= len(m.countries) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	m.countries[i].X = x
	m.countries[i].Y = y
	m.calc.RefreshCountries(m.countries)
	return nil
}

// UpdateCountryAttribute sets productivity or population of country i.
// Both must be positive and finite.
func (m *Model) UpdateCountryAttribute(i int, attr string, value float64) error {
	if i < 0 || i >= len(m.countries) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 {
		return fmt.Errorf("%w: %s %v must be positive", ErrInvalidAttribute, attr, value)
	}
	switch attr {
	case "productivity":
		m.countries[i].Productivity = value
	case "population":
		m.countries[i].Population = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAttribute, attr)
	}
	m.calc.RefreshCountries(m.countries)
	return nil
}

// UpdateTariff sets the trade cost from country i to country j.
func (m *Model) UpdateTariff(i, j int, value float64) error {
	return m.calc.UpdateTariff(i, j, value)
}

// Solve runs the equilibrium solver and returns a report of inputs and results.
func (m *Model) Solve() models.EquilibriumReport {
	res := m.calc.Equilibrium()
	return models.EquilibriumReport{
		Countries:    m.Countries(),
		Distances:    m.calc.DistanceMatrix(),
		Tariffs:      m.calc.TariffMatrix(),
		Wages:        res.Wages,
		Flows:        res.Flows,
		ExcessDemand: res.ExcessDemand,
		Iterations:   res.Iterations,
		Converged:    res.Converged,
	}
}
