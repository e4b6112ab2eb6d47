package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/gigguide/gigguide-api/internal/domain"
)

type VenueRequest struct {
	Name         string  `json:"name"`
	Location     string  `json:"location"`
	Address      string  `json:"address"`
	Capacity     int     `json:"capacity"`
	ContactEmail string  `json:"contact_email,omitempty"`
	PhoneNumber  string  `json:"phone_number,omitempty"`
	Website      string  `json:"website,omitempty"`
	Latitude     float64 `json:"latitude,omitempty"`
	Longitude    float64 `json:"longitude,omitempty"`
	OwnerID      uint    `json:"owner_id,omitempty"`
	OwnerType    string  `json:"owner_type,omitempty"`
}

func (req *VenueRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Location, validation.Required),
		validation.Field(&req.Capacity, validation.Min(0)),
		validation.Field(&req.ContactEmail, is.Email),
		validation.Field(&req.Website, is.URL),
		validation.Field(&req.Latitude, validation.Min(-90.0), validation.Max(90.0)),
		validation.Field(&req.Longitude, validation.Min(-180.0), validation.Max(180.0)),
		validation.Field(&req.OwnerType, validation.In(string(domain.OwnerTypeArtist), string(domain.OwnerTypeOrganiser))),
	)
}

func (req *VenueRequest) ToDomain() domain.Venue {
	return domain.Venue{
		Name:         req.Name,
		Location:     req.Location,
		Address:      req.Address,
		Capacity:     req.Capacity,
		ContactEmail: req.ContactEmail,
		PhoneNumber:  req.PhoneNumber,
		Website:      req.Website,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		OwnerID:      req.OwnerID,
		OwnerType:    domain.OwnerType(req.OwnerType),
	}
}
