package cli

import (
	"context"

	"github.com/custodia-labs/ansera-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/ansera-cli/internal/adapters/driven/config/memory"
	"github.com/custodia-labs/ansera-cli/internal/core/domain"
	"github.com/custodia-labs/ansera-cli/internal/core/services"
)

// memorySource feeds a fixed corpus to the engine in tests.
type memorySource struct {
	corpus *domain.Corpus
}

func (s *memorySource) Fetch(_ context.Context) (*domain.Corpus, error) {
	return s.corpus, nil
}

func testCorpus() *domain.Corpus {
	return &domain.Corpus{
		Version: "test-v1",
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
				Faqs: []domain.Faq{
					{
						Question:  "Can a payment link expire?",
						Answer:    "Links stay active until you deactivate them.",
						SectionID: "limit-payments",
					},
				},
			},
			{
				ID:    "refunds",
				Title: "Refunds",
				Sections: []domain.Section{
					{
						ID:      "issue-refund",
						Heading: "Issue a refund",
						Body:    "Open the payment and choose refund. Funds return within five days.",
					},
				},
			},
		},
	}
}

// setupTestServices wires a real engine over an in-memory corpus and returns
// a cleanup that restores the previous services.
func setupTestServices() func() {
	oldAnswer := answerService
	oldCorpus := corpusService

	engine, err := services.NewEngine(file.EngineSettings(memory.NewConfigStore()))
	if err != nil {
		panic(err)
	}
	if err := engine.Load(context.Background(), &memorySource{corpus: testCorpus()}); err != nil {
		panic(err)
	}

	SetServices(engine, engine)

	return func() {
		answerService = oldAnswer
		corpusService = oldCorpus
	}
}
