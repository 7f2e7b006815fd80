// Package dataset reads the CSV tables fed to the tfidf and embed commands.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rcliao/mlprimer/internal/model"
)

// ErrMissingColumn is returned when a required header is absent.
var ErrMissingColumn = errors.New("missing column")

// WordColumn is the header naming the word in an embedding table.
const WordColumn = "word"

func readHeader(cr *csv.Reader) ([]string, error) {
	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("read header: %w", io.ErrUnexpectedEOF)
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	return header, nil
}

func indexOf(header []string, column string) int {
	for i, h := range header {
		if h == column {
			return i
		}
	}
	return -1
}

// ReadColumn returns every value of the named column, in row order.
func ReadColumn(r io.Reader, column string) ([]string, error) {
	cr := csv.NewReader(r)
	header, err := readHeader(cr)
	if err != nil {
		return nil, err
	}
	idx := indexOf(header, column)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, column)
	}

	var values []string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(values)+1, err)
		}
		values = append(values, rec[idx])
	}
	return values, nil
}

// ReadEmbeddings reads a table with a "word" column and one numeric column
// per dimension (dim_0, dim_1, ...). Dimensions keep header order.
func ReadEmbeddings(r io.Reader) ([]model.Embedding, error) {
	cr := csv.NewReader(r)
	header, err := readHeader(cr)
	if err != nil {
		return nil, err
	}
	wordIdx := indexOf(header, WordColumn)
	if wordIdx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, WordColumn)
	}

	var out []model.Embedding
	for row := 1; ; row++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", row, err)
		}
		vec := make([]float64, 0, len(rec)-1)
		for i, field := range rec {
			if i == wordIdx {
				continue
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("row %d column %q: %w", row, header[i], err)
			}
			vec = append(vec, v)
		}
		out = append(out, model.Embedding{
			Word:   strings.TrimSpace(rec[wordIdx]),
			Vector: vec,
			Dims:   len(vec),
		})
	}
	return out, nil
}
