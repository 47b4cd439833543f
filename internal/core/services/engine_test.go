package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ansera-cli/internal/core/domain"
	"github.com/custodia-labs/ansera-cli/internal/core/ports/driven"
)

// staticSource is a CorpusSource fake returning a fixed corpus or error.
type staticSource struct {
	corpus *domain.Corpus
	err    error
}

var _ driven.CorpusSource = (*staticSource)(nil)

func (s *staticSource) Fetch(_ context.Context) (*domain.Corpus, error) {
	return s.corpus, s.err
}

func paymentCorpus() *domain.Corpus {
	return &domain.Corpus{
		Version: "v1",
		Documents: []domain.Document{
			{
				ID:    "payment-links",
				Title: "Payment Links",
				Sections: []domain.Section{
					{
						ID:      "limit-payments",
						Heading: "Limit the number of times a payment link can be paid",
						Body: "Enable Limit the number of payments in the dashboard and set it to 1. " +
							"This restricts the link to one completed session.",
					},
				},
			},
		},
	}
}

func loadedEngine(t *testing.T, corpus *domain.Corpus) *Engine {
	t.Helper()

	engine, err := NewEngine(domain.DefaultEngineSettings())
	require.NoError(t, err)
	require.NoError(t, engine.Load(context.Background(), &staticSource{corpus: corpus}))
	require.True(t, engine.Ready())

	return engine
}

// TestNewEngine_RejectsInvalidSettings tests settings validation at construction
func TestNewEngine_RejectsInvalidSettings(t *testing.T) {
	settings := domain.DefaultEngineSettings()
	settings.MMRLambda = 2.0

	engine, err := NewEngine(settings)

	assert.Nil(t, engine)
	assert.ErrorIs(t, err, domain.ErrInvalidSettings)
}

// TestEngine_NotReadyBeforeLoad tests the not-ready condition
func TestEngine_NotReadyBeforeLoad(t *testing.T) {
	engine, err := NewEngine(domain.DefaultEngineSettings())
	require.NoError(t, err)

	assert.False(t, engine.Ready())

	_, err = engine.Answer(context.Background(), "anything")
	assert.ErrorIs(t, err, domain.ErrNotReady)

	_, err = engine.Documents(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotReady)
}

// TestEngine_Load_RejectsMalformedCorpus tests fail-fast ingestion
func TestEngine_Load_RejectsMalformedCorpus(t *testing.T) {
	engine, err := NewEngine(domain.DefaultEngineSettings())
	require.NoError(t, err)

	bad := paymentCorpus()
	bad.Documents[0].ID = ""

	err = engine.Load(context.Background(), &staticSource{corpus: bad})

	assert.ErrorIs(t, err, domain.ErrInvalidCorpus)
	assert.False(t, engine.Ready())
}

// TestEngine_Load_KeepsPriorCorpusOnFailure tests that a bad reload leaves
// the previously indexed corpus active
func TestEngine_Load_KeepsPriorCorpusOnFailure(t *testing.T) {
	engine := loadedEngine(t, paymentCorpus())

	bad := &domain.Corpus{Version: "v2"}
	err := engine.Load(context.Background(), &staticSource{corpus: bad})

	require.ErrorIs(t, err, domain.ErrInvalidCorpus)
	assert.True(t, engine.Ready())

	answer, err := engine.Answer(context.Background(), "payment link")
	require.NoError(t, err)
	assert.False(t, answer.NoMatch)
}

// TestEngine_Load_UnchangedVersionKeepsIndex tests the version-gated rebuild
func TestEngine_Load_UnchangedVersionKeepsIndex(t *testing.T) {
	corpus := paymentCorpus()
	engine := loadedEngine(t, corpus)
	before := engine.index

	require.NoError(t, engine.Load(context.Background(), &staticSource{corpus: corpus}))

	assert.Same(t, before, engine.index)
}

// TestEngine_Load_NewVersionRebuilds tests that a changed corpus replaces the index
func TestEngine_Load_NewVersionRebuilds(t *testing.T) {
	engine := loadedEngine(t, paymentCorpus())
	before := engine.index

	next := paymentCorpus()
	next.Version = "v2"
	require.NoError(t, engine.Load(context.Background(), &staticSource{corpus: next}))

	assert.NotSame(t, before, engine.index)
}

// TestEngine_Load_GuardsConcurrentBuilds tests the single in-flight build flag
func TestEngine_Load_GuardsConcurrentBuilds(t *testing.T) {
	engine, err := NewEngine(domain.DefaultEngineSettings())
	require.NoError(t, err)

	engine.mu.Lock()
	engine.building = true
	engine.mu.Unlock()

	err = engine.Load(context.Background(), &staticSource{corpus: paymentCorpus()})

	assert.ErrorIs(t, err, domain.ErrBuildInProgress)
}

// TestEngine_Answer_PaymentLinkScenario tests the reference scenario: the
// heading overlap puts the section in the strong tier, the opening sentence
// leads, and exactly one source is returned
func TestEngine_Answer_PaymentLinkScenario(t *testing.T) {
	engine := loadedEngine(t, paymentCorpus())

	answer, err := engine.Answer(context.Background(), "make a payment link single use")

	require.NoError(t, err)
	require.False(t, answer.NoMatch)

	assert.Equal(t, "Enable Limit the number of payments in the dashboard and set it to 1.", answer.Lead)

	require.Len(t, answer.Sources, 1)
	assert.Equal(t, "payment-links", answer.Sources[0].DocumentID)
	assert.Equal(t, "limit-payments", answer.Sources[0].SectionID)
	assert.Equal(t, "Payment Links", answer.Sources[0].Title)
	assert.Equal(t, "Limit the number of times a payment link can be paid", answer.Sources[0].Heading)
}

// TestEngine_Answer_Deterministic tests identical output on repeated calls
func TestEngine_Answer_Deterministic(t *testing.T) {
	engine := loadedEngine(t, supportCorpus())

	first, err := engine.Answer(context.Background(), "refund a payment")
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := engine.Answer(context.Background(), "refund a payment")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

// TestEngine_Answer_NoMatch tests the designated fallback for alien queries
func TestEngine_Answer_NoMatch(t *testing.T) {
	engine := loadedEngine(t, paymentCorpus())

	answer, err := engine.Answer(context.Background(), "73829164508")

	require.NoError(t, err)
	assert.True(t, answer.NoMatch)
	assert.Empty(t, answer.Sources)
}

// TestEngine_Answer_EmptyQuery tests that a blank query is not an error
func TestEngine_Answer_EmptyQuery(t *testing.T) {
	engine := loadedEngine(t, paymentCorpus())

	answer, err := engine.Answer(context.Background(), "   ")

	require.NoError(t, err)
	assert.True(t, answer.NoMatch)
}

// TestEngine_Answer_SourceCaps tests the distinct section and document caps
func TestEngine_Answer_SourceCaps(t *testing.T) {
	engine := loadedEngine(t, supportCorpus())

	answer, err := engine.Answer(context.Background(), "refund a payment")
	require.NoError(t, err)
	require.False(t, answer.NoMatch)

	settings := engine.Settings()
	assert.LessOrEqual(t, len(answer.Sources), settings.MaxSourceSections)

	docs := map[string]bool{}
	sections := map[string]bool{}
	for _, src := range answer.Sources {
		docs[src.DocumentID] = true
		sections[src.DocumentID+"/"+src.SectionID] = true
	}
	assert.LessOrEqual(t, len(docs), settings.MaxSourceDocuments)
	assert.Equal(t, len(answer.Sources), len(sections), "sources must be distinct sections")
}

// TestEngine_Answer_FaqPreferred tests that a directly matching FAQ wins
func TestEngine_Answer_FaqPreferred(t *testing.T) {
	corpus := supportCorpus()
	engine := loadedEngine(t, corpus)

	answer, err := engine.Answer(context.Background(), "cancel my subscription")

	require.NoError(t, err)
	require.False(t, answer.NoMatch)
	assert.Contains(t, answer.Lead, "Cancel any time from the billing page.")
}

// TestEngine_Documents tests corpus browsing
func TestEngine_Documents(t *testing.T) {
	engine := loadedEngine(t, supportCorpus())

	docs, err := engine.Documents(context.Background())
	require.NoError(t, err)
	assert.Len(t, docs, 2)

	doc, err := engine.Document(context.Background(), "billing")
	require.NoError(t, err)
	assert.Equal(t, "Billing", doc.Title)

	_, err = engine.Document(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// supportCorpus is a two-document corpus with overlapping refund content
// across several sections, plus FAQs.
func supportCorpus() *domain.Corpus {
	return &domain.Corpus{
		Version: "support-v1",
		Documents: []domain.Document{
			{
				ID:    "billing",
				Title: "Billing",
				Sections: []domain.Section{
					{
						ID:      "refunds",
						Heading: "Refund a payment",
						Body: "Open the payment and choose refund. " +
							"Refunds return funds to the original card within five days.",
					},
					{
						ID:      "partial-refunds",
						Heading: "Partial refunds",
						Body: "Enter an amount lower than the payment total to refund part of it. " +
							"Partial refunds can be repeated until the full amount is returned.",
					},
					{
						ID:      "invoices",
						Heading: "Invoices",
						Body:    "Invoices are sent monthly. Refunded payments appear with a negative amount.",
					},
				},
				Faqs: []domain.Faq{
					{
						Question:  "How do I cancel my subscription?",
						Answer:    "Cancel any time from the billing page. No refund is issued for the current period.",
						SectionID: "invoices",
					},
				},
			},
			{
				ID:    "disputes",
				Title: "Disputes",
				Sections: []domain.Section{
					{
						ID:      "chargebacks",
						Heading: "Chargebacks and refunds",
						Body: "A chargeback reverses a payment without your consent. " +
							"Issuing a refund first usually prevents a chargeback.",
					},
				},
			},
		},
	}
}
