package domain

import "fmt"

// EngineSettings holds every tunable constant of the answer pipeline.
// The zero value is not usable; start from DefaultEngineSettings and
// overlay configuration on top.
//
// The boost magnitudes exist to keep the three scoring paths (BM25-lite
// sections, Dice-scored titles/headings, FAQs) on one comparable scale.
// They are calibration constants, not derived values: change one and
// the tiers of CandidateSelector shift with it.
type EngineSettings struct {
	// RelevanceFloor is the recall threshold. Candidates scoring below
	// it are dropped entirely.
	RelevanceFloor float64

	// StrongThreshold is the precision threshold. When any candidate
	// reaches it, only candidates at or above it form the working pool.
	StrongThreshold float64

	// HeadingBonus is added once per query token present in a section
	// heading.
	HeadingBonus float64

	// TitleExactScore is the fixed score for a query whose tokens are
	// all contained in a title or heading token set.
	TitleExactScore float64

	// HeadingBias is added to non-zero Dice scores of titles and
	// headings, nudging them against BM25 section scores.
	HeadingBias float64

	// FaqBonus is added to non-zero FAQ scores, preferring a direct
	// question match over prose.
	FaqBonus float64

	// BM25K1 is the BM25 term-frequency saturation constant.
	BM25K1 float64

	// BM25B is the BM25 length-normalisation constant.
	BM25B float64

	// BM25AvgLen is the reference average section length in tokens.
	// A fixed constant rather than a per-corpus average; a documented
	// approximation.
	BM25AvgLen float64

	// MaxSentencesPerSection caps how many leading sentences of a body
	// the extractor scans, bounding cost on long sections.
	MaxSentencesPerSection int

	// MaxExtractCandidates caps how many top-ranked candidates feed
	// sentence extraction.
	MaxExtractCandidates int

	// MMRLambda trades relevance (towards 1) against diversity
	// (towards 0) in sentence selection.
	MMRLambda float64

	// MMRLimit is the maximum number of sentences MMR may pick.
	MMRLimit int

	// MaxLeadSentences caps how many selected sentences the composer
	// joins into the lead text.
	MaxLeadSentences int

	// MaxSourceSections caps the number of distinct sections in the
	// source list.
	MaxSourceSections int

	// MaxSourceDocuments caps the number of distinct documents in the
	// source list.
	MaxSourceDocuments int
}

// DefaultEngineSettings returns the reference configuration.
func DefaultEngineSettings() EngineSettings {
	return EngineSettings{
		RelevanceFloor:         0.35,
		StrongThreshold:        2.0,
		HeadingBonus:           0.8,
		TitleExactScore:        8.0,
		HeadingBias:            0.25,
		FaqBonus:               0.75,
		BM25K1:                 1.2,
		BM25B:                  0.75,
		BM25AvgLen:             60,
		MaxSentencesPerSection: 12,
		MaxExtractCandidates:   6,
		MMRLambda:              0.72,
		MMRLimit:               4,
		MaxLeadSentences:       3,
		MaxSourceSections:      3,
		MaxSourceDocuments:     2,
	}
}

// Validate checks that the settings describe a workable pipeline.
func (s EngineSettings) Validate() error {
	if s.RelevanceFloor < 0 {
		return fmt.Errorf("%w: relevance floor must not be negative", ErrInvalidSettings)
	}
	if s.StrongThreshold < s.RelevanceFloor {
		return fmt.Errorf("%w: strong threshold below relevance floor", ErrInvalidSettings)
	}
	if s.BM25K1 <= 0 || s.BM25B < 0 || s.BM25B > 1 {
		return fmt.Errorf("%w: BM25 constants out of range", ErrInvalidSettings)
	}
	if s.BM25AvgLen <= 0 {
		return fmt.Errorf("%w: reference average length must be positive", ErrInvalidSettings)
	}
	if s.MMRLambda < 0 || s.MMRLambda > 1 {
		return fmt.Errorf("%w: MMR lambda must be within [0, 1]", ErrInvalidSettings)
	}
	if s.MMRLimit <= 0 {
		return fmt.Errorf("%w: MMR limit must be positive", ErrInvalidSettings)
	}
	if s.MaxSentencesPerSection <= 0 || s.MaxExtractCandidates <= 0 {
		return fmt.Errorf("%w: extraction caps must be positive", ErrInvalidSettings)
	}
	if s.MaxLeadSentences <= 0 {
		return fmt.Errorf("%w: lead sentence cap must be positive", ErrInvalidSettings)
	}
	if s.MaxSourceSections <= 0 || s.MaxSourceDocuments <= 0 {
		return fmt.Errorf("%w: source caps must be positive", ErrInvalidSettings)
	}
	return nil
}
