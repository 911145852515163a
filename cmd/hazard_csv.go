package cmd

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/portfolio-sim/portfolio-sim/sim/risk"
)

// loadHazardCSV reads a fitted hazard curve exported by external survival
// regression: one value per row, first column, with an optional header row.
func loadHazardCSV(path string) (risk.FittedHazard, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	var curve risk.FittedHazard
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		v, err := strconv.ParseFloat(row[0], 64)
		if err != nil {
			if i == 0 {
				continue // header row
			}
			return nil, fmt.Errorf("%s row %d: %w", path, i+1, err)
		}
		curve = append(curve, v)
	}
	if len(curve) == 0 {
		return nil, fmt.Errorf("%s contains no hazard values", path)
	}
	return curve, nil
}
