// Package textindex builds frozen TF-IDF + SVD vector spaces over the
// card catalog and projects serve-time queries through them.
package textindex

import (
	"regexp"
	"strings"
)

// wordPattern matches word tokens of two or more characters.
var wordPattern = regexp.MustCompile(`[a-z0-9][a-z0-9_]+`)

// Tokenizer splits text into lowercase word tokens and discards stop words.
type Tokenizer struct {
	stopWords map[string]struct{}
}

// NewTokenizer creates a tokenizer with the given stop word set. A nil set
// means no stop word filtering.
func NewTokenizer(stopWords map[string]struct{}) *Tokenizer {
	return &Tokenizer{stopWords: stopWords}
}

// Tokenize returns the filtered tokens of text, in order.
func (t *Tokenizer) Tokenize(text string) []string {
	raw := wordPattern.FindAllString(strings.ToLower(text), -1)
	if t.stopWords == nil {
		return raw
	}
	tokens := raw[:0]
	for _, tok := range raw {
		if _, stop := t.stopWords[tok]; !stop {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}
