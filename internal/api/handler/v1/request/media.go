package request

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"
)

// HH:MM, 24-hour clock.
var timeOfDayRegex = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

type DeleteGalleryImageRequest struct {
	ImagePath string `json:"image_path"`
}

func (req *DeleteGalleryImageRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ImagePath, validation.Required),
	)
}
