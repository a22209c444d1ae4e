package textindex

import (
	"errors"
	"math"
	"sort"
)

// ErrEmptyCorpus indicates a fit over a corpus with no usable tokens.
var ErrEmptyCorpus = errors.New("textindex: corpus has no usable tokens")

// Vectorizer converts text into L2-normalized TF-IDF vectors. Fit freezes
// the vocabulary and IDF weights; Transform never refits.
type Vectorizer struct {
	tokenizer *Tokenizer
	vocab     map[string]int
	idf       []float64
}

// NewVectorizer creates an unfitted vectorizer.
func NewVectorizer(tokenizer *Tokenizer) *Vectorizer {
	return &Vectorizer{tokenizer: tokenizer}
}

// Fit learns the vocabulary and smoothed inverse document frequencies from
// the corpus: idf(t) = ln((1+n)/(1+df(t))) + 1.
func (v *Vectorizer) Fit(docs []string) error {
	docFreq := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]struct{})
		for _, tok := range v.tokenizer.Tokenize(doc) {
			if _, ok := seen[tok]; !ok {
				seen[tok] = struct{}{}
				docFreq[tok]++
			}
		}
	}
	if len(docFreq) == 0 {
		return ErrEmptyCorpus
	}

	// Sorted vocabulary keeps term indices stable across runs.
	terms := make([]string, 0, len(docFreq))
	for term := range docFreq {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	v.vocab = make(map[string]int, len(terms))
	v.idf = make([]float64, len(terms))
	n := float64(len(docs))
	for i, term := range terms {
		v.vocab[term] = i
		v.idf[i] = math.Log((1+n)/(1+float64(docFreq[term]))) + 1
	}
	return nil
}

// VocabSize returns the fitted vocabulary size.
func (v *Vectorizer) VocabSize() int {
	return len(v.vocab)
}

// Transform converts text to an L2-normalized TF-IDF vector over the
// fitted vocabulary. The zero vector comes back for text with no known
// terms; callers decide whether that is a skip or a zero score.
func (v *Vectorizer) Transform(text string) []float64 {
	vec := make([]float64, len(v.vocab))
	for _, tok := range v.tokenizer.Tokenize(text) {
		if i, ok := v.vocab[tok]; ok {
			vec[i]++
		}
	}
	var norm float64
	for i, tf := range vec {
		if tf > 0 {
			vec[i] = tf * v.idf[i]
			norm += vec[i] * vec[i]
		}
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}

// TransformAll converts every document, preserving order.
func (v *Vectorizer) TransformAll(docs []string) [][]float64 {
	out := make([][]float64, len(docs))
	for i, doc := range docs {
		out[i] = v.Transform(doc)
	}
	return out
}
