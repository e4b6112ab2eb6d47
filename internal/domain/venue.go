package domain

import "time"

type Venue struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Location     string    `json:"location"`
	Address      string    `json:"address"`
	Capacity     int       `json:"capacity"`
	ContactEmail string    `json:"contact_email"`
	PhoneNumber  string    `json:"phone_number"`
	Website      string    `json:"website"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	OwnerID      uint      `json:"owner_id"`
	OwnerType    OwnerType `json:"owner_type"`
	MainPicture  string    `json:"main_picture"`
	Gallery      []string  `json:"venue_gallery"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
