// Package seqio reads and writes the line-oriented sequence format used by
// the rnn command:
//
//	n d
//	x_11 x_12 ... x_1d
//	...
//	x_n1 x_n2 ... x_nd
//
// Outputs are written one value per line with six decimals.
package seqio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// header is the "n d" line that starts a sequence.
type header struct {
	Steps int
	Dim   int
}

// ReadSequence parses an "n d" header followed by n rows of floats.
// Blank lines are skipped. The row width comes from the first row, not from
// d; every later row must match it.
func ReadSequence(r io.Reader) ([][]float64, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	next := func() ([]string, bool) {
		for sc.Scan() {
			if fields := strings.Fields(sc.Text()); len(fields) > 0 {
				return fields, true
			}
		}
		return nil, false
	}

	fields, ok := next()
	if !ok {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("read header: %w", err)
		}
		return nil, fmt.Errorf("read header: %w", io.ErrUnexpectedEOF)
	}
	h, err := parseHeader(fields)
	if err != nil {
		return nil, err
	}

	rows := make([][]float64, 0, h.Steps)
	for i := 0; i < h.Steps; i++ {
		fields, ok := next()
		if !ok {
			if err := sc.Err(); err != nil {
				return nil, fmt.Errorf("read row %d: %w", i+1, err)
			}
			return nil, fmt.Errorf("expected %d rows, got %d: %w", h.Steps, i, io.ErrUnexpectedEOF)
		}
		if i > 0 && len(fields) != len(rows[0]) {
			return nil, fmt.Errorf("row %d: expected %d values like row 1, got %d", i+1, len(rows[0]), len(fields))
		}
		row := make([]float64, len(fields))
		for j, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", i+1, j+1, err)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseHeader(fields []string) (header, error) {
	if len(fields) != 2 {
		return header{}, fmt.Errorf("header: expected \"n d\", got %q", strings.Join(fields, " "))
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return header{}, fmt.Errorf("header n: %w", err)
	}
	d, err := strconv.Atoi(fields[1])
	if err != nil {
		return header{}, fmt.Errorf("header d: %w", err)
	}
	if n < 0 || d < 0 {
		return header{}, fmt.Errorf("header: negative size %d %d", n, d)
	}
	return header{Steps: n, Dim: d}, nil
}

// WriteOutputs writes one value per line formatted with six decimals.
func WriteOutputs(w io.Writer, outputs []float64) error {
	bw := bufio.NewWriter(w)
	for _, v := range outputs {
		if _, err := fmt.Fprintf(bw, "%.6f\n", v); err != nil {
			return err
		}
	}
	return bw.Flush()
}
