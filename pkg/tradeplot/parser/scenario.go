// Package parser reads country scenarios from YAML files and xlsx workbooks.
package parser

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/tradeplot-go/pkg/tradeplot/models"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedScenario indicates a scenario file with an unknown extension.
var ErrUnsupportedScenario = errors.New("unsupported scenario format")

// ErrNoCountryTable indicates a workbook without a usable country table.
var ErrNoCountryTable = errors.New("no country table found")

// CountriesSheet is the sheet read from scenario workbooks.
const CountriesSheet = "Countries"

// LoadScenario reads a scenario from a .yaml, .yml or .xlsx file.
func LoadScenario(path string) (*models.Scenario, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		file, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		return ParseYAML(file)
	case ".xlsx", ".xlsm":
		f, err := excelize.OpenFile(path)
		if err != nil {
			return nil, fmt.Errorf("open workbook: %w", err)
		}
		defer f.Close()
		return ReadWorkbook(f)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedScenario, path)
	}
}

// scenarioDoc mirrors models.Scenario with optional attributes, so a key
// left out can be told apart from an explicit zero.
type scenarioDoc struct {
	MaxCountries int                     `yaml:"max_countries"`
	Countries    []countryDoc            `yaml:"countries"`
	Tariffs      []models.TariffOverride `yaml:"tariffs"`
}

type countryDoc struct {
	X            float64  `yaml:"x"`
	Y            float64  `yaml:"y"`
	Productivity *float64 `yaml:"productivity"`
	Population   *float64 `yaml:"population"`
}

// ParseYAML decodes a scenario document. Unknown keys are rejected, and a
// missing productivity or population defaults to 1.
func ParseYAML(r io.Reader) (*models.Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc scenarioDoc
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode scenario: %w", err)
	}

	s := &models.Scenario{MaxCountries: doc.MaxCountries, Tariffs: doc.Tariffs}
	for _, c := range doc.Countries {
		s.Countries = append(s.Countries, models.Country{
			X:            c.X,
			Y:            c.Y,
			Productivity: valueOr(c.Productivity, 1),
			Population:   valueOr(c.Population, 1),
		})
	}
	return s, nil
}

func valueOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}
