package services

import (
	"github.com/custodia-labs/ansera-cli/internal/core/domain"
)

// scorer rates every title, section and FAQ of a corpus against one
// query. The three scoring paths return values on one comparable
// scale: BM25-lite for section bodies, subset/Dice with a fixed bias
// for titles and headings, and a preferenced maximum for FAQs. The
// bias magnitudes live in EngineSettings and exist precisely so the
// paths can be merged into one ranked list.
type scorer struct {
	index    *Index
	settings domain.EngineSettings
}

func newScorer(index *Index, settings domain.EngineSettings) *scorer {
	return &scorer{index: index, settings: settings}
}

// scoreCorpus walks the corpus in order and returns one candidate per
// title, section and FAQ. Position records the walk order and is the
// stable tie-break downstream.
func (sc *scorer) scoreCorpus(corpus *domain.Corpus, queryTokens []string) []domain.ScoredCandidate {
	distinct := dedupe(queryTokens)
	qset := tokenSet(distinct)
	candidates := make([]domain.ScoredCandidate, 0, len(corpus.Documents)*4)
	pos := 0

	for i := range corpus.Documents {
		doc := &corpus.Documents[i]

		candidates = append(candidates, domain.ScoredCandidate{
			Kind:       domain.SourceKindTitle,
			DocumentID: doc.ID,
			Score:      sc.scoreHeading(qset, tokenSet(Tokenize(doc.Title))),
			Snippet:    doc.Title,
			Position:   pos,
		})
		pos++

		for j := range doc.Sections {
			sec := &doc.Sections[j]
			candidates = append(candidates, domain.ScoredCandidate{
				Kind:       domain.SourceKindSection,
				DocumentID: doc.ID,
				SectionID:  sec.ID,
				Score:      sc.scoreSection(distinct, sec),
				Snippet:    sec.Heading,
				Content:    sec.Body,
				Position:   pos,
			})
			pos++
		}

		for j := range doc.Faqs {
			faq := &doc.Faqs[j]
			candidates = append(candidates, domain.ScoredCandidate{
				Kind:       domain.SourceKindFaq,
				DocumentID: doc.ID,
				SectionID:  faq.SectionID,
				Score:      sc.scoreFaq(qset, faq),
				Snippet:    faq.Question,
				Content:    faq.Answer,
				Position:   pos,
			})
			pos++
		}
	}

	return candidates
}

// scoreSection is the BM25-lite path: weighted term frequency over the
// heading+body multiset with a fixed reference average length, plus a
// bonus per query token present in the heading token set. Iterates the
// distinct query tokens in stable order so the accumulated float is
// identical across runs.
func (sc *scorer) scoreSection(distinct []string, sec *domain.Section) float64 {
	tokens := Tokenize(sec.Heading + " " + sec.Body)

	tf := make(map[string]int, len(tokens))
	for _, t := range tokens {
		tf[t]++
	}

	length := float64(len(tokens))
	if length < 1 {
		length = 1
	}

	k1 := sc.settings.BM25K1
	b := sc.settings.BM25B
	norm := k1 * (1 - b + b*length/sc.settings.BM25AvgLen)

	headingSet := tokenSet(Tokenize(sec.Heading))

	score := 0.0
	for _, t := range distinct {
		if freq := float64(tf[t]); freq > 0 {
			score += sc.index.IDF(t) * freq * (k1 + 1) / (freq + norm)
		}
		if _, ok := headingSet[t]; ok {
			score += sc.settings.HeadingBonus
		}
	}

	return score
}

// scoreHeading is the title/heading-only path. A query fully contained
// in the heading token set is treated as a strong exact-ish match and
// gets the fixed TitleExactScore; otherwise the Dice coefficient plus
// a small heading bias, or zero when there is no overlap at all.
func (sc *scorer) scoreHeading(qset, headingSet map[string]struct{}) float64 {
	if len(qset) == 0 || len(headingSet) == 0 {
		return 0
	}

	if isSubset(qset, headingSet) {
		return sc.settings.TitleExactScore
	}

	dice := diceCoefficient(qset, headingSet)
	if dice == 0 {
		return 0
	}

	return dice + sc.settings.HeadingBias
}

// scoreFaq takes the better of the question scored as a heading and
// the best single-sentence Dice score against the answer body, then
// adds the FAQ preference bonus. Zero-overlap FAQs stay at zero.
func (sc *scorer) scoreFaq(qset map[string]struct{}, faq *domain.Faq) float64 {
	score := sc.scoreHeading(qset, tokenSet(Tokenize(faq.Question)))

	for _, sentence := range splitSentences(faq.Answer) {
		dice := diceCoefficient(qset, tokenSet(Tokenize(sentence)))
		if dice > score {
			score = dice
		}
	}

	if score == 0 {
		return 0
	}

	return score + sc.settings.FaqBonus
}
