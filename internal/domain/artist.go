package domain

import "time"

type Artist struct {
	ID             uint      `json:"id"`
	UserID         uint      `json:"user_id"`
	StageName      string    `json:"stage_name"`
	RealName       string    `json:"real_name"`
	Genre          string    `json:"genre"`
	Bio            string    `json:"bio"`
	ContactEmail   string    `json:"contact_email"`
	PhoneNumber    string    `json:"phone_number"`
	Instagram      string    `json:"instagram"`
	Facebook       string    `json:"facebook"`
	Twitter        string    `json:"twitter"`
	ProfilePicture string    `json:"profile_picture"`
	Settings       *Settings `json:"settings,omitempty"`
	Gallery        []string  `json:"gallery"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type Organiser struct {
	ID           uint      `json:"id"`
	UserID       uint      `json:"user_id"`
	Name         string    `json:"name"`
	ContactEmail string    `json:"contact_email"`
	PhoneNumber  string    `json:"phone_number"`
	Website      string    `json:"website"`
	Logo         string    `json:"logo"`
	Settings     *Settings `json:"settings,omitempty"`
	Gallery      []string  `json:"gallery"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
