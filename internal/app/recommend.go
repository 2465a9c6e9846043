package app

import (
	"time"

	"github.com/ninaorlova/lingua/internal/domain"
)

type RecommendRequest struct {
	UserID string
	Now    *time.Time
	Limit  int
}

func NewRecommendRequest(userID string) RecommendRequest {
	return RecommendRequest{UserID: userID, Limit: 10}
}

// RecommendResponse is the merged recommendation list. Aborted marks a
// build that was cancelled between components and returned a partial
// result; Fallback marks the free-choice default priority pick.
type RecommendResponse struct {
	GeneratedAt     time.Time
	Recommendations []domain.Recommendation
	Priority        domain.Recommendation
	Fallback        bool
	Aborted         bool
	Warnings        []string
}

type RecommendErrorCode string

const (
	RecommendErrInvalidUser RecommendErrorCode = "INVALID_USER"
	RecommendErrStorage     RecommendErrorCode = "STORAGE_ERROR"
	RecommendErrInternal    RecommendErrorCode = "INTERNAL_ERROR"
)

type RecommendError struct {
	Code    RecommendErrorCode
	Message string
}

func (e *RecommendError) Error() string {
	return string(e.Code) + ": " + e.Message
}
