// Package textsim computes a term-frequency cosine similarity between the
// artifact text and the process ledger. The score is only a sanity signal
// for the mode decision, so the tokenizer is deliberately crude: lowercase,
// alphanumerics plus a fixed accented-letter set, tokens longer than two
// characters.
package textsim

import (
	"math"
	"strings"
)

func keepRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= '0' && r <= '9':
		return true
	}
	switch r {
	case 'á', 'é', 'í', 'ó', 'ú', 'ü', 'ñ':
		return true
	}
	return false
}

// Tokenize splits text into lowercase terms, dropping tokens of one or two
// characters.
func Tokenize(text string) []string {
	lowered := strings.ToLower(text)
	mapped := strings.Map(func(r rune) rune {
		if keepRune(r) {
			return r
		}
		return ' '
	}, lowered)

	fields := strings.Fields(mapped)
	tokens := fields[:0]
	for _, f := range fields {
		if len([]rune(f)) > 2 {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// Vectorize builds a term-frequency vector.
func Vectorize(tokens []string) map[string]int {
	freq := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		freq[tok]++
	}
	return freq
}

// Cosine returns the cosine similarity of two term-frequency vectors.
// Disjoint or empty vectors score 0.
func Cosine(a, b map[string]int) float64 {
	var dot, na, nb float64
	for term, va := range a {
		fa := float64(va)
		na += fa * fa
		if vb, ok := b[term]; ok {
			dot += fa * float64(vb)
		}
	}
	for _, vb := range b {
		fb := float64(vb)
		nb += fb * fb
	}
	if dot == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// Similarity is the one-shot helper the composer uses: artifact text vs
// ledger text.
func Similarity(artifactText, ledgerText string) float64 {
	return Cosine(Vectorize(Tokenize(artifactText)), Vectorize(Tokenize(ledgerText)))
}
