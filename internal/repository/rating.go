package repository

import (
	"context"
	"fmt"

	"github.com/gigguide/gigguide-api/internal/domain"
	"github.com/gigguide/gigguide-api/internal/repository/dao"
)

var ErrRatingNotFound = dao.ErrRatingNotFound

type RatingDAO interface {
	Upsert(ctx context.Context, rating dao.Rating) (dao.Rating, error)
	Find(ctx context.Context, userID uint, rateableType string, rateableID uint) (dao.Rating, error)
	Aggregate(ctx context.Context, rateableType string, rateableID uint) (float64, int64, error)
}

type RatingRepository struct {
	dao RatingDAO
}

func NewRatingRepository(dao RatingDAO) *RatingRepository {
	return &RatingRepository{
		dao: dao,
	}
}

func (r *RatingRepository) Upsert(ctx context.Context, rating domain.Rating) (domain.Rating, error) {
	saved, err := r.dao.Upsert(ctx, dao.Rating{
		UserID:       rating.UserID,
		RateableID:   rating.RateableID,
		RateableType: string(rating.RateableType),
		Rating:       rating.Rating,
		Review:       rating.Review,
	})
	if err != nil {
		return domain.Rating{}, fmt.Errorf("r.dao.Upsert -> %w", err)
	}

	return daoRatingToDomain(saved), nil
}

func (r *RatingRepository) Aggregate(ctx context.Context, rateableID uint, rateableType domain.RateableType) (domain.RatingAggregate, error) {
	average, count, err := r.dao.Aggregate(ctx, string(rateableType), rateableID)
	if err != nil {
		return domain.RatingAggregate{}, fmt.Errorf("r.dao.Aggregate -> %w", err)
	}

	return domain.RatingAggregate{Average: average, Count: count}, nil
}

func daoRatingToDomain(r dao.Rating) domain.Rating {
	return domain.Rating{
		ID:           r.ID,
		UserID:       r.UserID,
		RateableID:   r.RateableID,
		RateableType: domain.RateableType(r.RateableType),
		Rating:       r.Rating,
		Review:       r.Review,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}
