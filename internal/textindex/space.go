package textindex

import (
	"math"
)

// Space is a fitted text-to-vector transform plus the catalog-wide matrix
// of projected document vectors. It is built once at startup and never
// mutated, so concurrent projections need no locking.
type Space struct {
	vectorizer *Vectorizer
	projection *Projection
	rows       [][]float64
}

// SpaceConfig controls how a space is fitted.
type SpaceConfig struct {
	Components int
	StopWords  map[string]struct{}
}

// BuildSpace fits a TF-IDF vectorizer and truncated-SVD projection over
// the corpus and projects every document.
func BuildSpace(docs []string, cfg SpaceConfig) (*Space, error) {
	stop := cfg.StopWords
	if stop == nil {
		stop = DefaultStopWords()
	}

	vectorizer := NewVectorizer(NewTokenizer(stop))
	if err := vectorizer.Fit(docs); err != nil {
		return nil, err
	}

	docVectors := vectorizer.TransformAll(docs)
	projection, err := FitProjection(docVectors, cfg.Components)
	if err != nil {
		return nil, err
	}

	rows := make([][]float64, len(docVectors))
	for i, vec := range docVectors {
		rows[i] = projection.Apply(vec)
	}

	return &Space{
		vectorizer: vectorizer,
		projection: projection,
		rows:       rows,
	}, nil
}

// Project maps text through the frozen transform. ok is false when the
// text has no terms in the fitted vocabulary, in which case the latent
// vector is meaningless and the caller should skip or zero-score it.
func (s *Space) Project(text string) ([]float64, bool) {
	vec := s.vectorizer.Transform(text)
	nonZero := false
	for _, v := range vec {
		if v != 0 {
			nonZero = true
			break
		}
	}
	return s.projection.Apply(vec), nonZero
}

// Rows returns the projected catalog matrix, one row per document.
func (s *Space) Rows() [][]float64 {
	return s.rows
}

// Len returns the number of documents in the space.
func (s *Space) Len() int {
	return len(s.rows)
}

// Dims returns the latent dimensionality of the space.
func (s *Space) Dims() int {
	return s.projection.Dims()
}

// Similarities computes the cosine similarity between query and every
// document row, in catalog order.
func (s *Space) Similarities(query []float64) []float64 {
	sims := make([]float64, len(s.rows))
	for i, row := range s.rows {
		sims[i] = Cosine(query, row)
	}
	return sims
}

// Cosine returns the cosine similarity of two equal-length vectors, or 0
// when either has zero magnitude.
func Cosine(a, b []float64) float64 {
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
