package domain

import "time"

type FavoriteType string

const (
	FavoriteTypeArtist    FavoriteType = "artist"
	FavoriteTypeEvent     FavoriteType = "event"
	FavoriteTypeVenue     FavoriteType = "venue"
	FavoriteTypeOrganiser FavoriteType = "organiser"
)

// FavoriteTypes lists every favoritable entity kind.
var FavoriteTypes = []FavoriteType{
	FavoriteTypeArtist,
	FavoriteTypeEvent,
	FavoriteTypeVenue,
	FavoriteTypeOrganiser,
}

func (t FavoriteType) Valid() bool {
	switch t {
	case FavoriteTypeArtist, FavoriteTypeEvent, FavoriteTypeVenue, FavoriteTypeOrganiser:
		return true
	}

	return false
}

type Favorite struct {
	ID        uint         `json:"id"`
	UserID    uint         `json:"user_id"`
	Type      FavoriteType `json:"type"`
	ItemID    uint         `json:"item_id"`
	CreatedAt time.Time    `json:"created_at"`
}
