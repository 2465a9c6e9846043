package service

import (
	"context"
	"time"

	"github.com/ninaorlova/lingua/internal/app"
	"github.com/ninaorlova/lingua/internal/classifier"
	"github.com/ninaorlova/lingua/internal/contract"
	"github.com/ninaorlova/lingua/internal/domain"
	"github.com/ninaorlova/lingua/internal/repository"
)

type classifierService struct {
	events repository.EventRepo
	obs    UseCaseObserver
}

func NewClassifierService(events repository.EventRepo, observers ...UseCaseObserver) ClassifierService {
	return &classifierService{
		events: events,
		obs:    useCaseObserverOrNoop(observers),
	}
}

var _ app.ClassifyUseCase = (ClassifierService)(nil)

// Classify is the pure online classification path.
func (s *classifierService) Classify(original, corrected, explanation string) classifier.Classification {
	return classifier.Classify(original, corrected, explanation)
}

// ClassifyBatch classifies a batch of raw mistakes in input order.
func (s *classifierService) ClassifyBatch(pairs []ClassifyPair) []classifier.Classification {
	out := make([]classifier.Classification, len(pairs))
	for i, p := range pairs {
		out[i] = classifier.Classify(p.Original, p.Corrected, p.Explanation)
	}
	return out
}

// Summarize aggregates the stored mistake history into pattern roll-ups.
func (s *classifierService) Summarize(ctx context.Context, req contract.MistakesRequest) (summary *classifier.Summary, err error) {
	startedAt := time.Now()
	defer func() { observe(ctx, s.obs, "classifier.summarize", req.UserID, startedAt, err, nil) }()

	if req.UserID == "" {
		return nil, &app.AnalyticsError{Code: app.AnalyticsErrInvalidUser, Message: "user id is required"}
	}

	page, err := s.events.Query(ctx, req.UserID, repository.EventQuery{
		Kinds:       []domain.EventKind{domain.EventMistakeRecorded},
		Since:       req.Since,
		OldestFirst: true,
	})
	if err != nil {
		return nil, &app.AnalyticsError{Code: app.AnalyticsErrStorage, Message: err.Error()}
	}

	result := classifier.Aggregate(mistakesFromEvents(page.Events))
	return &result, nil
}
