package text

import (
	"math"
	"reflect"
	"strings"
	"testing"
)

func TestBigrams(t *testing.T) {
	tests := []struct {
		word string
		want []string
	}{
		{"PYTHON", []string{"PY", "YT", "TH", "HO", "ON"}},
		{"AB", []string{"AB"}},
		{"A", []string{}},
		{"hello", []string{"he", "el", "ll", "lo"}},
		{"A B", []string{"A ", " B"}},
	}
	for _, tt := range tests {
		got := Bigrams(tt.word)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Bigrams(%q) = %q, want %q", tt.word, got, tt.want)
		}
	}
}

func TestNGrams_Length(t *testing.T) {
	word := "ABCDE"
	for n := 1; n <= 7; n++ {
		got := NGrams(word, n)
		want := max(0, len(word)-n+1)
		if len(got) != want {
			t.Errorf("n=%d: expected %d grams, got %d", n, want, len(got))
		}
	}
}

// Taking the first character of each gram plus the tail of the last gram
// rebuilds the word.
func TestNGrams_Reconstruct(t *testing.T) {
	word := "PYTHON"
	for n := 1; n <= len(word); n++ {
		grams := NGrams(word, n)
		var b strings.Builder
		for _, g := range grams {
			b.WriteString(g[:1])
		}
		b.WriteString(grams[len(grams)-1][1:])
		if b.String() != word {
			t.Errorf("n=%d: reconstructed %q", n, b.String())
		}
	}
}

func TestNGrams_Unicode(t *testing.T) {
	got := NGrams("café", 2)
	want := []string{"ca", "af", "fé"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestNGrams_NonPositive(t *testing.T) {
	if got := NGrams("abc", 0); len(got) != 0 {
		t.Errorf("expected empty for n=0, got %q", got)
	}
}

func TestSharedNGrams(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"the", "the", 1},
		{"teh", "the", 0},
		{"python", "pythons", 10.0 / 11.0},
		{"a", "b", 0},
	}
	for _, tt := range tests {
		got := SharedNGrams(tt.a, tt.b, 2)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("SharedNGrams(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
