package services

import (
	"math"

	"github.com/custodia-labs/ansera-cli/internal/core/domain"
)

// Index holds the inverse-document-frequency weights derived from one
// corpus snapshot. It is immutable once built and safe for concurrent
// read access; the engine rebuilds it only when the corpus version
// changes. Building twice from an unchanged corpus yields identical
// weights.
type Index struct {
	idf          map[string]float64
	sectionCount int
	version      string
}

// BuildIndex computes IDF weights over the corpus. Each section
// contributes its distinct heading+body tokens once to the document
// frequencies; N is the total number of sections visited.
func BuildIndex(corpus *domain.Corpus) *Index {
	df := make(map[string]int)
	sections := 0

	for i := range corpus.Documents {
		doc := &corpus.Documents[i]
		for j := range doc.Sections {
			sec := &doc.Sections[j]
			sections++

			seen := make(map[string]struct{})
			for _, tok := range Tokenize(sec.Heading + " " + sec.Body) {
				if _, ok := seen[tok]; ok {
					continue
				}
				seen[tok] = struct{}{}
				df[tok]++
			}
		}
	}

	idf := make(map[string]float64, len(df))
	n := float64(sections)
	for tok, f := range df {
		// BM25 smoothed IDF. Tokens in every section approach zero
		// or go negative; IDF clamps those to zero at lookup time.
		idf[tok] = math.Log(1 + (n-float64(f)+0.5)/(float64(f)+0.5))
	}

	return &Index{
		idf:          idf,
		sectionCount: sections,
		version:      corpus.Version,
	}
}

// IDF returns the weight for a token, clamped to zero to avoid score
// inversion. Tokens never seen anywhere in the corpus get the maximal
// weight (df = 0).
func (ix *Index) IDF(token string) float64 {
	if w, ok := ix.idf[token]; ok {
		if w < 0 {
			return 0
		}
		return w
	}

	n := float64(ix.sectionCount)
	return math.Log(1 + (n+0.5)/0.5)
}

// SectionCount returns the number of sections the index was built over.
func (ix *Index) SectionCount() int {
	return ix.sectionCount
}

// Version returns the corpus version the index was built from.
func (ix *Index) Version() string {
	return ix.version
}
