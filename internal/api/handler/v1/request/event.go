package request

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/gigguide/gigguide-api/internal/domain"
)

type EventRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Date        string  `json:"date"`
	Time        string  `json:"time,omitempty"`
	Price       float64 `json:"price,omitempty"`
	TicketURL   string  `json:"ticket_url,omitempty"`
	Status      string  `json:"status,omitempty"`
	Category    string  `json:"category,omitempty"`
	Capacity    int     `json:"capacity,omitempty"`
	OwnerID     uint    `json:"owner_id,omitempty"`
	OwnerType   string  `json:"owner_type,omitempty"`
	VenueID     *uint   `json:"venue_id,omitempty"`
}

func (req *EventRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Date, validation.Required, validation.Date("2006-01-02")),
		validation.Field(&req.Time, validation.Match(timeOfDayRegex)),
		validation.Field(&req.Price, validation.Min(0.0)),
		validation.Field(&req.TicketURL, is.URL),
		validation.Field(&req.Status, validation.In("scheduled", "cancelled", "postponed", "completed")),
		validation.Field(&req.Capacity, validation.Min(0)),
		validation.Field(&req.OwnerType, validation.In(string(domain.OwnerTypeArtist), string(domain.OwnerTypeOrganiser))),
	)
}

func (req *EventRequest) ToDomain() (domain.Event, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return domain.Event{}, err
	}

	return domain.Event{
		Name:        req.Name,
		Description: req.Description,
		Date:        date,
		Time:        req.Time,
		Price:       req.Price,
		TicketURL:   req.TicketURL,
		Status:      req.Status,
		Category:    req.Category,
		Capacity:    req.Capacity,
		OwnerID:     req.OwnerID,
		OwnerType:   domain.OwnerType(req.OwnerType),
		VenueID:     req.VenueID,
	}, nil
}
