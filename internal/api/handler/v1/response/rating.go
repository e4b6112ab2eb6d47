package response

import "github.com/gigguide/gigguide-api/internal/domain"

type RatingResponse struct {
	Rating    domain.Rating          `json:"rating"`
	Aggregate domain.RatingAggregate `json:"aggregate"`
}

type FavoriteStatusResponse struct {
	IsFavorite bool `json:"is_favorite"`
}
