package textindex

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fitVectorizer(t *testing.T, docs []string) *Vectorizer {
	t.Helper()
	v := NewVectorizer(NewTokenizer(nil))
	require.NoError(t, v.Fit(docs))
	return v
}

func TestFit_BuildsSortedVocabulary(t *testing.T) {
	v := fitVectorizer(t, []string{"banana apple", "cherry apple"})
	assert.Equal(t, 3, v.VocabSize())
	assert.Equal(t, 0, v.vocab["apple"])
	assert.Equal(t, 1, v.vocab["banana"])
	assert.Equal(t, 2, v.vocab["cherry"])
}

func TestFit_EmptyCorpus(t *testing.T) {
	v := NewVectorizer(NewTokenizer(nil))
	assert.ErrorIs(t, v.Fit([]string{"", "  "}), ErrEmptyCorpus)
}

func TestTransform_WeightsAndNorm(t *testing.T) {
	v := fitVectorizer(t, []string{"apple banana", "apple cherry"})

	vec := v.Transform("apple banana")
	require.Len(t, vec, 3)

	// idf(apple) = ln(3/3)+1 = 1, idf(banana) = ln(3/2)+1.
	idfBanana := math.Log(3.0/2.0) + 1
	norm := math.Sqrt(1 + idfBanana*idfBanana)
	assert.InDelta(t, 1/norm, vec[0], 1e-9)
	assert.InDelta(t, idfBanana/norm, vec[1], 1e-9)
	assert.Zero(t, vec[2])

	// Rare terms outweigh common ones.
	assert.Greater(t, vec[1], vec[0])
}

func TestTransform_IsL2Normalized(t *testing.T) {
	v := fitVectorizer(t, []string{"apple banana apple", "apple cherry", "banana cherry date"})

	vec := v.Transform("apple apple banana cherry")
	var norm float64
	for _, x := range vec {
		norm += x * x
	}
	assert.InDelta(t, 1.0, norm, 1e-9)
}

func TestTransform_UnknownTermsYieldZeroVector(t *testing.T) {
	v := fitVectorizer(t, []string{"apple banana", "apple cherry"})

	vec := v.Transform("durian mangosteen")
	for _, x := range vec {
		assert.Zero(t, x)
	}
}

func TestTransform_NeverRefits(t *testing.T) {
	v := fitVectorizer(t, []string{"apple banana", "apple cherry"})
	before := v.VocabSize()

	// Transforming text with new terms must not grow the vocabulary.
	_ = v.Transform("durian apple")
	assert.Equal(t, before, v.VocabSize())
}

func TestTransformAll_PreservesOrder(t *testing.T) {
	docs := []string{"apple banana", "apple cherry"}
	v := fitVectorizer(t, docs)

	all := v.TransformAll(docs)
	require.Len(t, all, 2)
	assert.Equal(t, v.Transform(docs[0]), all[0])
	assert.Equal(t, v.Transform(docs[1]), all[1])
}
