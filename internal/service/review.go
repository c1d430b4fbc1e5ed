package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/abegailflorig/Foodie-Finder-Team-A-Chi/internal/domain"
)

var (
	ErrInvalidRating   = errors.New("rating must be a half-step between 1.0 and 5.0")
	ErrDuplicateReview = errors.New("review already exists for this subject")
	ErrUnknownSubject  = errors.New("unknown subject type")
)

type ReviewService struct {
	repository ReviewRepository
	cache      ReviewMarkerCache
	publisher  EventPublisher
}

func NewReviewService(repository ReviewRepository, cache ReviewMarkerCache, publisher EventPublisher) *ReviewService {
	return &ReviewService{
		repository: repository,
		cache:      cache,
		publisher:  publisher,
	}
}

// Create validates and persists a review. One review per
// (author, subject) is enforced here: a fast cache marker check first,
// then the database as source of truth.
func (s *ReviewService) Create(ctx context.Context, review *domain.Review) error {
	if !review.SubjectType.Valid() {
		return ErrUnknownSubject
	}
	if !ValidRating(review.Rating) {
		return ErrInvalidRating
	}

	markerKey := s.cache.MarkerKey(review.AuthorID, review.SubjectType, review.SubjectID)
	if exists, _ := s.cache.Exists(ctx, markerKey); exists {
		return ErrDuplicateReview
	}

	exists, err := s.repository.Exists(ctx, review.AuthorID, review.SubjectType, review.SubjectID)
	if err != nil {
		return fmt.Errorf("check existing review: %w", err)
	}
	if exists {
		return ErrDuplicateReview
	}

	if err := s.repository.Insert(ctx, review); err != nil {
		return fmt.Errorf("insert review: %w", err)
	}

	_ = s.cache.SetMarker(ctx, markerKey)

	if s.publisher != nil {
		event := domain.EngagementEvent{
			Type:        domain.EventNewReview,
			SubjectType: review.SubjectType,
			SubjectID:   review.SubjectID,
			UserID:      review.AuthorID,
			Rating:      review.Rating,
			Timestamp:   time.Now(),
		}
		if err := s.publisher.Publish(ctx, event); err != nil {
			log.Printf("[review] failed to publish review event for %s %d: %v",
				review.SubjectType, review.SubjectID, err)
		}
	}

	return nil
}

func (s *ReviewService) ListForSubject(ctx context.Context, subjectType domain.SubjectType, subjectID int) ([]domain.Review, error) {
	if !subjectType.Valid() {
		return nil, ErrUnknownSubject
	}
	return s.repository.ListBySubject(ctx, subjectType, subjectID)
}

func (s *ReviewService) Summary(ctx context.Context, subjectType domain.SubjectType, subjectID int) (domain.RatingSummary, error) {
	reviews, err := s.ListForSubject(ctx, subjectType, subjectID)
	if err != nil {
		return domain.RatingSummary{}, err
	}
	return AggregateRatings(reviews), nil
}

var _ ReviewServiceInterface = (*ReviewService)(nil)
