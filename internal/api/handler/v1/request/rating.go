package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/gigguide/gigguide-api/internal/domain"
)

var rateableTypes = []interface{}{
	string(domain.FavoriteTypeArtist),
	string(domain.FavoriteTypeEvent),
	string(domain.FavoriteTypeVenue),
	string(domain.FavoriteTypeOrganiser),
}

type RatingRequest struct {
	RateableID   uint    `json:"rateable_id"`
	RateableType string  `json:"rateable_type"`
	Rating       float64 `json:"rating"`
	Review       string  `json:"review,omitempty"`
}

func (req *RatingRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.RateableID, validation.Required),
		validation.Field(&req.RateableType, validation.Required, validation.In(rateableTypes...)),
		validation.Field(&req.Rating, validation.Required, validation.Min(1.0), validation.Max(5.0)),
		validation.Field(&req.Review, validation.Length(0, 2000)),
	)
}
