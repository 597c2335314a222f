// Package output serializes figures and trade reports to HTML, JSON, xlsx and PNG.
package output

import (
	"errors"
	"strings"

	"github.com/ukaji3/tradeplot-go/pkg/tradeplot/models"
)

// ErrNoRuntime indicates neither an inline bundle nor a runtime URL was given.
var ErrNoRuntime = errors.New("no plotly.js runtime given")

// ErrNoCountries indicates a render request without any country.
var ErrNoCountries = errors.New("no countries to render")

// ErrPlotNotFound indicates a document without a Plotly.newPlot call.
var ErrPlotNotFound = errors.New("no plotly figure found in document")

// ToJSON serializes a figure to JSON.
func ToJSON(fig *models.Figure, pretty bool) ([]byte, error) {
	return models.Encode(fig, pretty)
}

// ReportToJSON serializes an equilibrium report to JSON.
func ReportToJSON(report *models.EquilibriumReport, pretty bool) ([]byte, error) {
	return models.Encode(report, pretty)
}

// scriptSafeJSON serializes v for embedding inside a <script> element.
// Every "</" becomes "<\/", which JSON decodes back to "</".
func scriptSafeJSON(v any) (string, error) {
	data, err := models.Encode(v, false)
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(string(data), "</", `<\/`), nil
}
