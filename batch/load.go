// Package batch evaluates a metric over many input pairs read from CSV files.
package batch

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// Pair is one left/right input of a batch.
type Pair[T any] struct {
	Left, Right T
}

// LoadVectorPairs reads float64 rows from a CSV file. Every row holds the left
// vector followed by the right vector, so its column count must be even.
func LoadVectorPairs(path string) ([]Pair[[]float64], error) {
	log.Info().Msgf("Loading vector pairs from: %s", path)
	rows, err := readCSV[float64](path)
	if err != nil {
		return nil, err
	}
	pairs := make([]Pair[[]float64], len(rows))
	for i, row := range rows {
		if len(row) == 0 || len(row)%2 != 0 {
			return nil, fmt.Errorf("row %d in %s: %d columns cannot be split into two vectors", i, path, len(row))
		}
		half := len(row) / 2
		pairs[i] = Pair[[]float64]{Left: row[:half:half], Right: row[half:]}
	}
	log.Info().Msgf("Loaded %d vector pairs from %s", len(pairs), path)
	return pairs, nil
}

// LoadTextPairs reads two-column string rows from a CSV file.
func LoadTextPairs(path string) ([]Pair[string], error) {
	log.Info().Msgf("Loading text pairs from: %s", path)
	rows, err := readCSV[string](path)
	if err != nil {
		return nil, err
	}
	pairs := make([]Pair[string], len(rows))
	for i, row := range rows {
		if len(row) != 2 {
			return nil, fmt.Errorf("row %d in %s: expected 2 columns, got %d", i, path, len(row))
		}
		pairs[i] = Pair[string]{Left: row[0], Right: row[1]}
	}
	log.Info().Msgf("Loaded %d text pairs from %s", len(pairs), path)
	return pairs, nil
}

// readCSV is a generic CSV reader for float64 and string cells. Lines
// starting with '#' are skipped and rows may differ in column count.
func readCSV[T float64 | string](path string) ([][]T, error) {
	log.Debug().Msgf("Opening CSV file: %s", path)
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	var result [][]T

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read error in %s: %w", path, err)
		}
		row := make([]T, len(record))
		for i, val := range record {
			parsed, err := parseValue[T](val)
			if err != nil {
				return nil, fmt.Errorf("parse error at row %d col %d in %s: %w", len(result), i, path, err)
			}
			row[i] = parsed
		}
		result = append(result, row)
	}

	log.Debug().Msgf("Parsed %d rows from %s", len(result), path)
	return result, nil
}

// parseValue converts a CSV cell to T. Strings are kept verbatim.
func parseValue[T float64 | string](s string) (T, error) {
	var zero T
	switch any(zero).(type) {
	case float64:
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		return any(v).(T), err
	case string:
		return any(s).(T), nil
	default:
		return zero, fmt.Errorf("unsupported type %T", zero)
	}
}

// ParseVector parses a comma separated list of numbers such as "1,2.5,-3".
func ParseVector(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	v := make([]float64, len(fields))
	for i, f := range fields {
		x, err := parseValue[float64](f)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		v[i] = x
	}
	return v, nil
}
