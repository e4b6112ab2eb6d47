package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type UpdateArtistRequest struct {
	StageName    string `json:"stage_name,omitempty"`
	RealName     string `json:"real_name,omitempty"`
	Genre        string `json:"genre,omitempty"`
	Bio          string `json:"bio,omitempty"`
	ContactEmail string `json:"contact_email,omitempty"`
	PhoneNumber  string `json:"phone_number,omitempty"`
	Instagram    string `json:"instagram,omitempty"`
	Facebook     string `json:"facebook,omitempty"`
	Twitter      string `json:"twitter,omitempty"`
}

func (req *UpdateArtistRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.StageName, validation.Length(2, 100)),
		validation.Field(&req.Bio, validation.Length(0, 2000)),
		validation.Field(&req.ContactEmail, is.Email),
	)
}

type UpdateOrganiserRequest struct {
	Name         string `json:"name,omitempty"`
	ContactEmail string `json:"contact_email,omitempty"`
	PhoneNumber  string `json:"phone_number,omitempty"`
	Website      string `json:"website,omitempty"`
}

func (req *UpdateOrganiserRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Length(2, 100)),
		validation.Field(&req.ContactEmail, is.Email),
		validation.Field(&req.Website, is.URL),
	)
}
