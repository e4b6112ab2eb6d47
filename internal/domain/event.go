package domain

import "time"

const EventStatusScheduled = "scheduled"

type Event struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Time        string    `json:"time"`
	Price       float64   `json:"price"`
	TicketURL   string    `json:"ticket_url"`
	Status      string    `json:"status"`
	Category    string    `json:"category"`
	Capacity    int       `json:"capacity"`
	OwnerID     uint      `json:"owner_id"`
	OwnerType   OwnerType `json:"owner_type"`
	VenueID     *uint     `json:"venue_id"`
	Poster      string    `json:"poster"`
	Gallery     []string  `json:"gallery"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
