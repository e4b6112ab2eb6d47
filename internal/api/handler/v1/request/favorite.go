package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type FavoriteRequest struct {
	Type   string `json:"type"`
	ItemID uint   `json:"item_id"`
}

func (req *FavoriteRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Type, validation.Required, validation.In(rateableTypes...)),
		validation.Field(&req.ItemID, validation.Required),
	)
}
