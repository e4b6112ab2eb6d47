package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrRatingNotFound = errors.New("rating not found")

type Rating struct {
	ID uint `gorm:"primaryKey"`

	UserID       uint    `gorm:"not null;uniqueIndex:idx_ratings_user_rateable"`
	RateableID   uint    `gorm:"not null;uniqueIndex:idx_ratings_user_rateable;index:idx_ratings_rateable"`
	RateableType string  `gorm:"not null;uniqueIndex:idx_ratings_user_rateable;index:idx_ratings_rateable"`
	Rating       float64 `gorm:"not null"`
	Review       string

	CreatedAt time.Time
	UpdatedAt time.Time
}

type RatingDAO struct {
	db *gorm.DB
}

func NewRatingDAO(db *gorm.DB) *RatingDAO {
	return &RatingDAO{
		db: db,
	}
}

// Upsert inserts the rating or, when the (user, rateable) pair already has
// one, updates score and review in place.
func (d *RatingDAO) Upsert(ctx context.Context, rating Rating) (Rating, error) {
	result := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"},
			{Name: "rateable_id"},
			{Name: "rateable_type"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"rating", "review", "updated_at"}),
	}).Create(&rating)
	if result.Error != nil {
		return Rating{}, result.Error
	}

	return d.Find(ctx, rating.UserID, rating.RateableType, rating.RateableID)
}

func (d *RatingDAO) Find(ctx context.Context, userID uint, rateableType string, rateableID uint) (Rating, error) {
	var rating Rating

	result := d.db.WithContext(ctx).
		First(&rating, "user_id = ? AND rateable_type = ? AND rateable_id = ?", userID, rateableType, rateableID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Rating{}, ErrRatingNotFound
		}

		return Rating{}, result.Error
	}

	return rating, nil
}

type ratingAggregateRow struct {
	Average float64
	Count   int64
}

func (d *RatingDAO) Aggregate(ctx context.Context, rateableType string, rateableID uint) (float64, int64, error) {
	var row ratingAggregateRow

	result := d.db.WithContext(ctx).Model(&Rating{}).
		Select("COALESCE(AVG(rating), 0) AS average, COUNT(*) AS count").
		Where("rateable_type = ? AND rateable_id = ?", rateableType, rateableID).
		Scan(&row)
	if result.Error != nil {
		return 0, 0, result.Error
	}

	return row.Average, row.Count, nil
}
