package cli

import (
	"reflect"
	"testing"
)

func TestParseVector(t *testing.T) {
	tests := []struct {
		in      string
		want    []float64
		wantErr bool
	}{
		{"1,2,3", []float64{1, 2, 3}, false},
		{" 0.5 , -1 ,2e3", []float64{0.5, -1, 2000}, false},
		{"", []float64{}, false},
		{"1,,2", nil, true},
		{"a,b", nil, true},
	}
	for _, tt := range tests {
		got, err := parseVector(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseVector(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseVector(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseMatrix(t *testing.T) {
	got, err := parseMatrix("1,0; 0,1 ;5,5")
	if err != nil {
		t.Fatal(err)
	}
	want := [][]float64{{1, 0}, {0, 1}, {5, 5}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if _, err := parseMatrix("1,0;x"); err == nil {
		t.Error("expected error for bad row")
	}
}

func TestParseInts(t *testing.T) {
	got, err := parseInts("3,-1,4")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, []int{3, -1, 4}) {
		t.Errorf("got %v", got)
	}
	if _, err := parseInts("1.5"); err == nil {
		t.Error("expected error for non-integer")
	}
}

func TestFormatVector(t *testing.T) {
	if got := formatVector([]float64{0, -1e9, 0.5}); got != "0,-1e+09,0.5" {
		t.Errorf("got %q", got)
	}
}
