package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gigguide/gigguide-api/internal/domain"
)

type ratingKey struct {
	userID     uint
	rateableID uint
	typ        domain.RateableType
}

type fakeRatingRepo struct {
	ratings map[ratingKey]domain.Rating
	nextID  uint
}

func newFakeRatingRepo() *fakeRatingRepo {
	return &fakeRatingRepo{ratings: map[ratingKey]domain.Rating{}}
}

func (f *fakeRatingRepo) Upsert(ctx context.Context, rating domain.Rating) (domain.Rating, error) {
	key := ratingKey{rating.UserID, rating.RateableID, rating.RateableType}
	if existing, ok := f.ratings[key]; ok {
		rating.ID = existing.ID
	} else {
		f.nextID++
		rating.ID = f.nextID
	}
	f.ratings[key] = rating

	return rating, nil
}

func (f *fakeRatingRepo) Aggregate(ctx context.Context, rateableID uint, rateableType domain.RateableType) (domain.RatingAggregate, error) {
	var sum float64
	var count int64
	for key, r := range f.ratings {
		if key.rateableID == rateableID && key.typ == rateableType {
			sum += r.Rating
			count++
		}
	}

	agg := domain.RatingAggregate{Count: count}
	if count > 0 {
		agg.Average = sum / float64(count)
	}

	return agg, nil
}

func TestRatingService_RateAggregatesAcrossUsers(t *testing.T) {
	svc := NewRatingService(newFakeRatingRepo())
	ctx := context.Background()

	for i, value := range []float64{3, 5} {
		_, _, err := svc.Rate(ctx, domain.Rating{
			UserID:       uint(i + 1),
			RateableID:   7,
			RateableType: domain.FavoriteTypeVenue,
			Rating:       value,
		})
		require.NoError(t, err)
	}

	stored, agg, err := svc.Rate(ctx, domain.Rating{
		UserID:       3,
		RateableID:   7,
		RateableType: domain.FavoriteTypeVenue,
		Rating:       4,
		Review:       "solid night out",
	})
	require.NoError(t, err)

	assert.Equal(t, "solid night out", stored.Review)
	assert.InDelta(t, 4.0, agg.Average, 1e-9)
	assert.Equal(t, int64(3), agg.Count)
}

func TestRatingService_SameUserReplacesRating(t *testing.T) {
	svc := NewRatingService(newFakeRatingRepo())
	ctx := context.Background()

	first, _, err := svc.Rate(ctx, domain.Rating{UserID: 1, RateableID: 7, RateableType: domain.FavoriteTypeArtist, Rating: 2})
	require.NoError(t, err)

	second, agg, err := svc.Rate(ctx, domain.Rating{UserID: 1, RateableID: 7, RateableType: domain.FavoriteTypeArtist, Rating: 5})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, int64(1), agg.Count)
	assert.InDelta(t, 5.0, agg.Average, 1e-9)
}

func TestRatingService_RateValidation(t *testing.T) {
	svc := NewRatingService(newFakeRatingRepo())
	ctx := context.Background()

	tests := []struct {
		name    string
		rating  domain.Rating
		wantErr error
	}{
		{
			name:    "below range",
			rating:  domain.Rating{RateableID: 1, RateableType: domain.FavoriteTypeEvent, Rating: 0.9},
			wantErr: ErrInvalidRating,
		},
		{
			name:    "above range",
			rating:  domain.Rating{RateableID: 1, RateableType: domain.FavoriteTypeEvent, Rating: 5.1},
			wantErr: ErrInvalidRating,
		},
		{
			name:    "unknown target type",
			rating:  domain.Rating{RateableID: 1, RateableType: "playlist", Rating: 3},
			wantErr: ErrInvalidFavoriteType,
		},
		{
			name:   "lower bound accepted",
			rating: domain.Rating{UserID: 1, RateableID: 1, RateableType: domain.FavoriteTypeEvent, Rating: 1.0},
		},
		{
			name:   "upper bound accepted",
			rating: domain.Rating{UserID: 2, RateableID: 1, RateableType: domain.FavoriteTypeEvent, Rating: 5.0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Rate(ctx, tt.rating)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRatingService_AggregateRejectsUnknownType(t *testing.T) {
	svc := NewRatingService(newFakeRatingRepo())

	_, err := svc.Aggregate(context.Background(), 1, "playlist")
	assert.ErrorIs(t, err, ErrInvalidFavoriteType)
}

func TestRatingService_AggregateEmptyTarget(t *testing.T) {
	svc := NewRatingService(newFakeRatingRepo())

	agg, err := svc.Aggregate(context.Background(), 99, domain.FavoriteTypeVenue)
	require.NoError(t, err)
	assert.Equal(t, int64(0), agg.Count)
	assert.Zero(t, agg.Average)
}
