package parser

import "testing"

func TestDetectCountryTable(t *testing.T) {
	tests := []struct {
		name      string
		rows      [][]string
		wantRange string
		wantOK    bool
	}{
		{"empty", nil, "", false},
		{"single row", [][]string{{"x", "y"}}, "", false},
		{"top left", [][]string{{"x", "y"}, {"1", "2"}}, "A1:B2", true},
		{"offset", [][]string{{}, {"", "x", "y", "population"}, {"", "1", "2"}, {}, {"", "3", "4"}}, "B2:D5", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, ok := DetectCountryTable(tt.rows)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, expected %v", ok, tt.wantOK)
			}
			if ok && table.Range() != tt.wantRange {
				t.Errorf("Range() = %q, expected %q", table.Range(), tt.wantRange)
			}
		})
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"123", int64(123)},
		{"-456", int64(-456)},
		{"0.25", 0.25},
		{"1e-3", 0.001},
		{"hello", "hello"},
		{"", ""},
	}

	for _, tt := range tests {
		if result := parseValue(tt.input); result != tt.expected {
			t.Errorf("parseValue(%q) = %v (%T), expected %v (%T)", tt.input, result, result, tt.expected, tt.expected)
		}
	}
}
