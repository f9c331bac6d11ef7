// Package grid implements the CSV exercise: read a delimiter-separated numeric
// grid, replace zero cells by interpolating from their neighborhood, and write
// the result back out.
package grid

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"
)

// DefaultDelimiter matches the original exercise's file format.
const DefaultDelimiter = ';'

// Grid is a rectangular-ish numeric table; rows may differ in length.
type Grid [][]float64

// Read loads a grid from a delimiter-separated file.
func Read(path string, delimiter rune) (Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = delimiter
	r.FieldsPerRecord = -1 // rows may be ragged

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	g := make(Grid, 0, len(records))
	for i, record := range records {
		row := make([]float64, 0, len(record))
		for j, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("%s row %d col %d: %w", path, i, j, err)
			}
			row = append(row, v)
		}
		g = append(g, row)
	}
	return g, nil
}

// Write stores the grid to a delimiter-separated file, truncating any
// existing content.
func Write(g Grid, path string, delimiter rune) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = delimiter
	for _, row := range g {
		record := make([]string, len(row))
		for j, v := range row {
			record[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	w.Flush()
	return w.Error()
}

// Filter returns a copy of the grid with every zero cell replaced by the
// median of its surrounding window (up to 3x3, clamped at the edges). The
// window includes the zero cell itself; an even-sized window takes the mean
// of the middle pair. Non-zero cells pass through untouched.
func Filter(g Grid) Grid {
	out := make(Grid, len(g))
	for i, row := range g {
		out[i] = append([]float64(nil), row...)
	}

	var window []float64
	for i := range g {
		for j, v := range g[i] {
			if v != 0 {
				continue
			}
			window = window[:0]
			for m := max(i-1, 0); m <= min(i+1, len(g)-1); m++ {
				for n := max(j-1, 0); n <= min(j+1, len(g[m])-1); n++ {
					window = append(window, g[m][n])
				}
			}
			out[i][j] = median(window)
		}
	}
	return out
}

func median(w []float64) float64 {
	sorted := append([]float64(nil), w...)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 != 0 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}
