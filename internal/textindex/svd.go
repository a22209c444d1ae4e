package textindex

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Projection is a frozen truncated-SVD projection from the sparse TF-IDF
// term space into a dense latent space.
type Projection struct {
	components *mat.Dense // vocab x k
	dims       int
}

// FitProjection computes a thin SVD of the document-term matrix and keeps
// the top maxComponents right-singular vectors. The dense LAPACK-style
// factorization is deterministic, so repeated fits over the same corpus
// yield identical projections.
func FitProjection(docVectors [][]float64, maxComponents int) (*Projection, error) {
	nDocs := len(docVectors)
	if nDocs == 0 {
		return nil, ErrEmptyCorpus
	}
	vocab := len(docVectors[0])
	if vocab == 0 {
		return nil, ErrEmptyCorpus
	}

	k := maxComponents
	if k > nDocs {
		k = nDocs
	}
	if k > vocab {
		k = vocab
	}
	if k < 1 {
		return nil, fmt.Errorf("textindex: cannot reduce to %d components", maxComponents)
	}

	x := mat.NewDense(nDocs, vocab, nil)
	for i, row := range docVectors {
		x.SetRow(i, row)
	}

	var svd mat.SVD
	if ok := svd.Factorize(x, mat.SVDThin); !ok {
		return nil, fmt.Errorf("textindex: SVD factorization failed")
	}

	var v mat.Dense
	svd.VTo(&v) // vocab x min(nDocs, vocab)

	components := mat.NewDense(vocab, k, nil)
	for j := 0; j < k; j++ {
		for i := 0; i < vocab; i++ {
			components.Set(i, j, v.At(i, j))
		}
	}

	return &Projection{components: components, dims: k}, nil
}

// Dims returns the number of latent components.
func (p *Projection) Dims() int {
	return p.dims
}

// Apply projects a term-space vector into the latent space.
func (p *Projection) Apply(vec []float64) []float64 {
	in := mat.NewVecDense(len(vec), vec)
	out := mat.NewVecDense(p.dims, nil)
	out.MulVec(p.components.T(), in)
	return out.RawVector().Data
}
