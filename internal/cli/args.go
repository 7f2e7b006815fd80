package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// parseVector parses "1, 2.5,3" into a float slice. An empty string is an
// empty vector.
func parseVector(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return []float64{}, nil
	}
	parts := strings.Split(s, ",")
	vec := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i+1, err)
		}
		vec[i] = v
	}
	return vec, nil
}

// parseMatrix parses "1,0;0,1" into rows.
func parseMatrix(s string) ([][]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	rows := strings.Split(s, ";")
	m := make([][]float64, len(rows))
	for i, r := range rows {
		vec, err := parseVector(r)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		m[i] = vec
	}
	return m, nil
}

func parseInts(s string) ([]int, error) {
	vec, err := parseVector(s)
	if err != nil {
		return nil, err
	}
	out := make([]int, len(vec))
	for i, v := range vec {
		if v != float64(int(v)) {
			return nil, fmt.Errorf("value %d: %v is not an integer", i+1, v)
		}
		out[i] = int(v)
	}
	return out, nil
}

func formatVector(v []float64) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.FormatFloat(x, 'g', 6, 64)
	}
	return strings.Join(parts, ",")
}
