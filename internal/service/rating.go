package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gigguide/gigguide-api/internal/domain"
)

var ErrInvalidRating = errors.New("rating must be between 1.0 and 5.0")

type RatingRepository interface {
	Upsert(ctx context.Context, rating domain.Rating) (domain.Rating, error)
	Aggregate(ctx context.Context, rateableID uint, rateableType domain.RateableType) (domain.RatingAggregate, error)
}

type RatingService struct {
	repo RatingRepository
}

func NewRatingService(repo RatingRepository) *RatingService {
	return &RatingService{repo: repo}
}

// Rate inserts or replaces the caller's rating for the target, then returns
// the stored row together with the recomputed aggregate.
func (s *RatingService) Rate(ctx context.Context, rating domain.Rating) (domain.Rating, domain.RatingAggregate, error) {
	if !rating.RateableType.Valid() {
		return domain.Rating{}, domain.RatingAggregate{}, ErrInvalidFavoriteType
	}
	if rating.Rating < 1.0 || rating.Rating > 5.0 {
		return domain.Rating{}, domain.RatingAggregate{}, ErrInvalidRating
	}

	stored, err := s.repo.Upsert(ctx, rating)
	if err != nil {
		return domain.Rating{}, domain.RatingAggregate{}, fmt.Errorf("s.repo.Upsert -> %w", err)
	}

	agg, err := s.repo.Aggregate(ctx, rating.RateableID, rating.RateableType)
	if err != nil {
		return domain.Rating{}, domain.RatingAggregate{}, fmt.Errorf("s.repo.Aggregate -> %w", err)
	}

	return stored, agg, nil
}

func (s *RatingService) Aggregate(ctx context.Context, rateableID uint, rateableType domain.RateableType) (domain.RatingAggregate, error) {
	if !rateableType.Valid() {
		return domain.RatingAggregate{}, ErrInvalidFavoriteType
	}

	agg, err := s.repo.Aggregate(ctx, rateableID, rateableType)
	if err != nil {
		return domain.RatingAggregate{}, fmt.Errorf("s.repo.Aggregate -> %w", err)
	}

	return agg, nil
}
