package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCorpus() *Corpus {
	return &Corpus{
		Version: "v1",
		Documents: []Document{
			{
				ID:    "payment-links",
				Title: "Payment Links",
				Sections: []Section{
					{ID: "create", Heading: "Create a payment link", Body: "Open the dashboard."},
					{ID: "limit-payments", Heading: "Limit the number of payments", Body: "Set it to 1."},
				},
				Faqs: []Faq{
					{Question: "Can I reuse a link?", Answer: "Yes, unless limited.", SectionID: "limit-payments"},
				},
			},
		},
	}
}

// TestCorpus_Validate_Valid tests that a well-formed corpus passes validation
func TestCorpus_Validate_Valid(t *testing.T) {
	assert.NoError(t, validCorpus().Validate())
}

// TestCorpus_Validate_Empty tests rejection of a corpus with no documents
func TestCorpus_Validate_Empty(t *testing.T) {
	c := &Corpus{}

	err := c.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCorpus)
}

// TestCorpus_Validate_MissingDocumentID tests rejection of a document without an id
func TestCorpus_Validate_MissingDocumentID(t *testing.T) {
	c := validCorpus()
	c.Documents[0].ID = ""

	err := c.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCorpus)
}

// TestCorpus_Validate_MissingTitle tests rejection of a document without a title
func TestCorpus_Validate_MissingTitle(t *testing.T) {
	c := validCorpus()
	c.Documents[0].Title = ""

	assert.ErrorIs(t, c.Validate(), ErrInvalidCorpus)
}

// TestCorpus_Validate_DuplicateDocumentID tests rejection of duplicate document ids
func TestCorpus_Validate_DuplicateDocumentID(t *testing.T) {
	c := validCorpus()
	c.Documents = append(c.Documents, Document{ID: "payment-links", Title: "Copy"})

	err := c.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate document id")
}

// TestCorpus_Validate_DuplicateSectionID tests rejection of duplicate section ids within a document
func TestCorpus_Validate_DuplicateSectionID(t *testing.T) {
	c := validCorpus()
	c.Documents[0].Sections = append(c.Documents[0].Sections, Section{ID: "create", Heading: "Again"})

	err := c.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate section id")
}

// TestCorpus_Validate_SectionMissingFields tests rejection of incomplete sections
func TestCorpus_Validate_SectionMissingFields(t *testing.T) {
	t.Run("missing id", func(t *testing.T) {
		c := validCorpus()
		c.Documents[0].Sections[0].ID = ""
		assert.ErrorIs(t, c.Validate(), ErrInvalidCorpus)
	})

	t.Run("missing heading", func(t *testing.T) {
		c := validCorpus()
		c.Documents[0].Sections[0].Heading = ""
		assert.ErrorIs(t, c.Validate(), ErrInvalidCorpus)
	})
}

// TestCorpus_Validate_FaqChecks tests FAQ validation rules
func TestCorpus_Validate_FaqChecks(t *testing.T) {
	t.Run("missing question", func(t *testing.T) {
		c := validCorpus()
		c.Documents[0].Faqs[0].Question = ""
		assert.ErrorIs(t, c.Validate(), ErrInvalidCorpus)
	})

	t.Run("missing answer", func(t *testing.T) {
		c := validCorpus()
		c.Documents[0].Faqs[0].Answer = ""
		assert.ErrorIs(t, c.Validate(), ErrInvalidCorpus)
	})

	t.Run("unknown section reference", func(t *testing.T) {
		c := validCorpus()
		c.Documents[0].Faqs[0].SectionID = "nope"
		assert.ErrorIs(t, c.Validate(), ErrInvalidCorpus)
	})

	t.Run("empty section reference is allowed", func(t *testing.T) {
		c := validCorpus()
		c.Documents[0].Faqs[0].SectionID = ""
		assert.NoError(t, c.Validate())
	})
}

// TestCorpus_SectionCount tests section counting across documents
func TestCorpus_SectionCount(t *testing.T) {
	c := validCorpus()
	c.Documents = append(c.Documents, Document{
		ID:       "refunds",
		Title:    "Refunds",
		Sections: []Section{{ID: "full", Heading: "Full refunds", Body: "..."}},
	})

	assert.Equal(t, 3, c.SectionCount())
}
