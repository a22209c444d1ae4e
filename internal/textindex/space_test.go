package textindex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var spaceDocs = []string{
	"airline miles travel rewards lounge access",
	"cash back groceries gas everyday spending",
	"hotel points travel rewards free nights",
	"balance transfer low interest intro period",
	"airline lounge access priority boarding travel",
}

func buildTestSpace(t *testing.T, components int) *Space {
	t.Helper()
	space, err := BuildSpace(spaceDocs, SpaceConfig{Components: components})
	require.NoError(t, err)
	return space
}

func TestBuildSpace_DimsCappedByCorpus(t *testing.T) {
	// Requested components exceed both doc count and vocab size.
	space := buildTestSpace(t, 130)
	assert.Equal(t, len(spaceDocs), space.Len())
	assert.LessOrEqual(t, space.Dims(), len(spaceDocs))
	assert.Greater(t, space.Dims(), 0)

	for _, row := range space.Rows() {
		assert.Len(t, row, space.Dims())
	}
}

func TestBuildSpace_EmptyCorpus(t *testing.T) {
	_, err := BuildSpace([]string{"", "   "}, SpaceConfig{Components: 10})
	assert.ErrorIs(t, err, ErrEmptyCorpus)
}

func TestBuildSpace_Deterministic(t *testing.T) {
	a := buildTestSpace(t, 4)
	b := buildTestSpace(t, 4)

	require.Equal(t, a.Dims(), b.Dims())
	for i := range spaceDocs {
		assert.Equal(t, a.Rows()[i], b.Rows()[i])
	}

	qa, _ := a.Project("airline travel")
	qb, _ := b.Project("airline travel")
	assert.Equal(t, qa, qb)
}

func TestProject_VocabularyCoverage(t *testing.T) {
	space := buildTestSpace(t, 4)

	_, ok := space.Project("airline miles")
	assert.True(t, ok)

	// No fitted terms: projection is meaningless and flagged as such.
	_, ok = space.Project("zebra quantum")
	assert.False(t, ok)

	_, ok = space.Project("")
	assert.False(t, ok)
}

func TestSimilarities_DocMatchesItselfBest(t *testing.T) {
	space := buildTestSpace(t, 4)

	for i, doc := range spaceDocs {
		query, ok := space.Project(doc)
		require.True(t, ok)

		sims := space.Similarities(query)
		require.Len(t, sims, len(spaceDocs))

		best := 0
		for j, sim := range sims {
			if sim > sims[best] {
				best = j
			}
		}
		assert.Equal(t, i, best, "doc %d should be its own best match", i)
		assert.InDelta(t, 1.0, sims[i], 1e-9)
	}
}

func TestSimilarities_RelatedDocsScoreHigher(t *testing.T) {
	space := buildTestSpace(t, 4)

	query, ok := space.Project("airline travel lounge")
	require.True(t, ok)

	sims := space.Similarities(query)
	// Both airline docs should beat the cash-back doc.
	assert.Greater(t, sims[0], sims[1])
	assert.Greater(t, sims[4], sims[1])
}

func TestCosine(t *testing.T) {
	assert.InDelta(t, 1.0, Cosine([]float64{1, 2}, []float64{2, 4}), 1e-9)
	assert.InDelta(t, 0.0, Cosine([]float64{1, 0}, []float64{0, 1}), 1e-9)
	assert.InDelta(t, -1.0, Cosine([]float64{1, 0}, []float64{-1, 0}), 1e-9)
	assert.Zero(t, Cosine([]float64{0, 0}, []float64{1, 1}))
}
