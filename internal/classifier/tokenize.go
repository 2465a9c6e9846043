package classifier

import "strings"

// tokenize lower-cases and splits on whitespace. Every comparison pass in
// this package shares this tokenization, so category detection, severity
// and pattern extraction all agree on what a "word" is.
func tokenize(text string) []string {
	return strings.Fields(strings.ToLower(text))
}

// multiset counts token occurrences.
func multiset(tokens []string) map[string]int {
	m := make(map[string]int, len(tokens))
	for _, t := range tokens {
		m[t]++
	}
	return m
}

// sameMultiset reports whether two token multisets are equal.
func sameMultiset(a, b map[string]int) bool {
	if len(a) != len(b) {
		return false
	}
	for t, n := range a {
		if b[t] != n {
			return false
		}
	}
	return true
}

// sameOrder reports whether two token sequences are positionally identical.
func sameOrder(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
