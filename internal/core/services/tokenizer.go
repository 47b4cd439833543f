package services

import "strings"

// stopwords is the fixed set of tokens dropped during tokenisation:
// articles, conjunctions and the common interrogatives/pronouns that
// carry no ranking signal. The same set is applied to corpus text and
// to queries; diverging the two would make IDF weights incomparable
// with query terms.
var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "the": {},
	"and": {}, "or": {}, "but": {}, "if": {}, "then": {}, "so": {}, "than": {},
	"of": {}, "to": {}, "in": {}, "on": {}, "at": {}, "for": {}, "with": {},
	"from": {}, "by": {}, "as": {}, "into": {}, "about": {}, "over": {},
	"is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {}, "being": {},
	"do": {}, "does": {}, "did": {}, "can": {}, "could": {}, "should": {},
	"would": {}, "will": {}, "shall": {}, "may": {}, "might": {}, "must": {},
	"i": {}, "me": {}, "my": {}, "we": {}, "our": {}, "you": {}, "your": {},
	"he": {}, "him": {}, "his": {}, "she": {}, "her": {}, "it": {}, "its": {},
	"they": {}, "them": {}, "their": {}, "this": {}, "that": {}, "these": {}, "those": {},
	"what": {}, "which": {}, "who": {}, "whom": {}, "whose": {},
	"when": {}, "where": {}, "why": {}, "how": {},
	"not": {}, "no": {}, "there": {}, "here": {},
}

// Tokenize normalises text into index terms: lowercase, every
// character outside [a-z0-9] treated as a separator, empty strings and
// stopwords dropped, simple plurals folded onto their singular.
// Deterministic and pure; used identically for indexing and for
// queries.
func Tokenize(text string) []string {
	var b strings.Builder
	b.Grow(len(text))

	for _, r := range strings.ToLower(text) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}

	fields := strings.Fields(b.String())
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if _, stop := stopwords[f]; stop {
			continue
		}
		tokens = append(tokens, singular(f))
	}

	return tokens
}

// singular folds simple English plurals ("links" -> "link") so query
// and corpus terms meet. Anything cleverer than stripping a trailing
// "s" is out of scope for help-centre prose.
func singular(token string) string {
	if len(token) > 3 && strings.HasSuffix(token, "s") && !strings.HasSuffix(token, "ss") {
		return token[:len(token)-1]
	}
	return token
}

// dedupe returns the distinct tokens in first-occurrence order.
// Scoring iterates this slice rather than a set so float accumulation
// order, and therefore output, is identical across runs.
func dedupe(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// tokenSet converts a token sequence to a membership set.
func tokenSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}

// diceCoefficient is the set similarity 2|A∩B| / (|A|+|B|).
// Returns 0 when either set is empty.
func diceCoefficient(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	overlap := 0
	for t := range a {
		if _, ok := b[t]; ok {
			overlap++
		}
	}

	return 2 * float64(overlap) / float64(len(a)+len(b))
}

// jaccardSimilarity is the set similarity |A∩B| / |A∪B|.
// Returns 0 when both sets are empty.
func jaccardSimilarity(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}

	overlap := 0
	for t := range a {
		if _, ok := b[t]; ok {
			overlap++
		}
	}

	union := len(a) + len(b) - overlap
	if union == 0 {
		return 0
	}

	return float64(overlap) / float64(union)
}

// isSubset reports whether every member of a is present in b.
func isSubset(a, b map[string]struct{}) bool {
	if len(a) > len(b) {
		return false
	}
	for t := range a {
		if _, ok := b[t]; !ok {
			return false
		}
	}
	return true
}
