package text

// NGrams returns every contiguous run of n characters in word, in order.
// Returns an empty slice when n is larger than word or n < 1.
func NGrams(word string, n int) []string {
	runes := []rune(word)
	if n < 1 || n > len(runes) {
		return []string{}
	}
	grams := make([]string, 0, len(runes)-n+1)
	for i := 0; i+n <= len(runes); i++ {
		grams = append(grams, string(runes[i:i+n]))
	}
	return grams
}

// Bigrams returns the character bigrams of word.
func Bigrams(word string) []string {
	return NGrams(word, 2)
}

// SharedNGrams returns the Dice coefficient of the n-gram sets of a and b:
// 2·|A∩B| / (|A|+|B|). Two words with no n-grams score 0.
func SharedNGrams(a, b string, n int) float64 {
	setA := gramSet(a, n)
	setB := gramSet(b, n)
	if len(setA)+len(setB) == 0 {
		return 0
	}
	shared := 0
	for g := range setA {
		if setB[g] {
			shared++
		}
	}
	return 2 * float64(shared) / float64(len(setA)+len(setB))
}

func gramSet(word string, n int) map[string]bool {
	set := make(map[string]bool)
	for _, g := range NGrams(word, n) {
		set[g] = true
	}
	return set
}
