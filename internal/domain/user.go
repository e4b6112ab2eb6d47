package domain

import "time"

// Role values reference the acl_trusts catalog. Artist (3) and Organiser (4)
// are the two roles that own venues, events and an upload folder.
const (
	RoleSuperuser = 1
	RoleAdmin     = 2
	RoleArtist    = 3
	RoleOrganiser = 4
	RoleVenue     = 5
	RoleUser      = 6
)

type User struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Role      int       `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AclTrust struct {
	ID      uint   `json:"acl_id"`
	Name    string `json:"acl_name"`
	Display string `json:"acl_display"`
}
