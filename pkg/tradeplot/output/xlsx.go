package output

import (
	"fmt"
	"io"

	"github.com/ukaji3/tradeplot-go/pkg/tradeplot/models"
	"github.com/xuri/excelize/v2"
)

// Sheet names used by WriteWorkbook.
const (
	CountriesSheet = "Countries"
	DistancesSheet = "Distances"
	TariffsSheet   = "Tariffs"
	FlowsSheet     = "Flows"
)

// CountryHeader is the header row of the Countries sheet.
var CountryHeader = []string{"x", "y", "productivity", "population", "wage"}

// WriteWorkbook writes the report as an xlsx workbook with one sheet per
// matrix and a scatter chart of country positions.
func WriteWorkbook(w io.Writer, report *models.EquilibriumReport) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", CountriesSheet); err != nil {
		return err
	}
	if err := writeCountries(f, report); err != nil {
		return fmt.Errorf("write %s: %w", CountriesSheet, err)
	}

	matrices := []struct {
		sheet string
		m     [][]float64
	}{
		{DistancesSheet, report.Distances},
		{TariffsSheet, report.Tariffs},
		{FlowsSheet, report.Flows},
	}
	for _, mx := range matrices {
		if _, err := f.NewSheet(mx.sheet); err != nil {
			return err
		}
		if err := writeMatrix(f, mx.sheet, mx.m); err != nil {
			return fmt.Errorf("write %s: %w", mx.sheet, err)
		}
	}

	if len(report.Countries) > 0 {
		if err := addCountryChart(f, len(report.Countries)); err != nil {
			return fmt.Errorf("add chart: %w", err)
		}
	}

	_, err := f.WriteTo(w)
	return err
}

func writeCountries(f *excelize.File, report *models.EquilibriumReport) error {
	header := make([]interface{}, len(CountryHeader))
	for i, h := range CountryHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(CountriesSheet, "A1", &header); err != nil {
		return err
	}

	for i, c := range report.Countries {
		row := []interface{}{c.X, c.Y, c.Productivity, c.Population}
		if i < len(report.Wages) {
			row = append(row, report.Wages[i])
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(CountriesSheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func writeMatrix(f *excelize.File, sheet string, m [][]float64) error {
	header := []interface{}{""}
	for i := range m {
		header = append(header, countryLabel(i))
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, values := range m {
		row := []interface{}{countryLabel(i)}
		for _, v := range values {
			row = append(row, v)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func addCountryChart(f *excelize.File, n int) error {
	lo, hi := 0.0, 1.0
	return f.AddChart(CountriesSheet, "H2", &excelize.Chart{
		Type: excelize.Scatter,
		Series: []excelize.ChartSeries{{
			Name:       "Countries",
			Categories: fmt.Sprintf("%s!$A$2:$A$%d", CountriesSheet, n+1),
			Values:     fmt.Sprintf("%s!$B$2:$B$%d", CountriesSheet, n+1),
			Marker:     excelize.ChartMarker{Symbol: "circle", Size: 10},
			Line:       excelize.ChartLine{Type: excelize.ChartLineNone},
		}},
		Title:  []excelize.RichTextRun{{Text: "Interactive Trade Model"}},
		Legend: excelize.ChartLegend{Position: "none"},
		XAxis:  excelize.ChartAxis{Minimum: &lo, Maximum: &hi},
		YAxis:  excelize.ChartAxis{Minimum: &lo, Maximum: &hi},
	})
}

func countryLabel(i int) string {
	return fmt.Sprintf("Country %d", i+1)
}
