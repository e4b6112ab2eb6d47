package dao

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func InitTables(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&User{},
		&AclTrust{},
		&Artist{},
		&Organiser{},
		&Venue{},
		&Event{},
		&UserArtistFavorite{},
		&UserEventFavorite{},
		&UserVenueFavorite{},
		&UserOrganiserFavorite{},
		&Rating{},
	); err != nil {
		return err
	}

	return seedAclTrusts(db)
}

// seedAclTrusts installs the static role catalog. The artist (3) and
// organiser (4) ids are load-bearing: they prefix upload folder names.
func seedAclTrusts(db *gorm.DB) error {
	roles := []AclTrust{
		{ID: 1, Name: "superuser", Display: "Superuser"},
		{ID: 2, Name: "admin", Display: "Administrator"},
		{ID: 3, Name: "artist", Display: "Artist"},
		{ID: 4, Name: "organiser", Display: "Organiser"},
		{ID: 5, Name: "venue", Display: "Venue"},
		{ID: 6, Name: "user", Display: "User"},
	}

	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&roles).Error
}
