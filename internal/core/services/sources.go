package services

import (
	"github.com/custodia-labs/ansera-cli/internal/core/domain"
)

// aggregateSources walks references in rank order, deduplicating by
// section and capping at MaxSourceSections distinct sections and
// MaxSourceDocuments distinct documents. Once the document cap is hit,
// new documents are skipped but further sections from already-included
// documents are still allowed; the walk stops when the section cap is
// reached or the input is exhausted.
func aggregateSources(refs []domain.SourceRef, settings domain.EngineSettings) []domain.SourceRef {
	seenSection := make(map[string]bool)
	includedDocs := make(map[string]bool)
	out := make([]domain.SourceRef, 0, settings.MaxSourceSections)

	for _, ref := range refs {
		if len(out) >= settings.MaxSourceSections {
			break
		}

		key := ref.DocumentID + "\x00" + ref.SectionID
		if seenSection[key] {
			continue
		}

		if !includedDocs[ref.DocumentID] && len(includedDocs) >= settings.MaxSourceDocuments {
			continue
		}

		seenSection[key] = true
		includedDocs[ref.DocumentID] = true
		out = append(out, ref)
	}

	return out
}
