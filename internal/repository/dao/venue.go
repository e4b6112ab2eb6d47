package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrVenueNotFound = errors.New("venue not found")

// Venue ownership is polymorphic: (owner_id, owner_type) points at an artist
// or an organiser row without a foreign key, so lookups always filter by type.
type Venue struct {
	ID uint `gorm:"primaryKey"`

	Name         string `gorm:"not null"`
	Location     string
	Address      string
	Capacity     int
	ContactEmail string
	PhoneNumber  string
	Website      string
	Latitude     float64
	Longitude    float64

	OwnerID   uint   `gorm:"not null;index:idx_venues_owner"`
	OwnerType string `gorm:"not null;index:idx_venues_owner"`

	MainPicture  string
	VenueGallery PathList `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type VenueDAO struct {
	db *gorm.DB
}

func NewVenueDAO(db *gorm.DB) *VenueDAO {
	return &VenueDAO{
		db: db,
	}
}

func (d *VenueDAO) Insert(ctx context.Context, venue Venue) (Venue, error) {
	result := d.db.WithContext(ctx).Create(&venue)
	if result.Error != nil {
		return Venue{}, result.Error
	}

	return venue, nil
}

func (d *VenueDAO) FindAll(ctx context.Context) ([]Venue, error) {
	var venues []Venue

	result := d.db.WithContext(ctx).Find(&venues)
	if result.Error != nil {
		return nil, result.Error
	}

	return venues, nil
}

func (d *VenueDAO) FindByID(ctx context.Context, id uint) (Venue, error) {
	var venue Venue

	result := d.db.WithContext(ctx).First(&venue, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Venue{}, ErrVenueNotFound
		}

		return Venue{}, result.Error
	}

	return venue, nil
}

func (d *VenueDAO) FindByOwner(ctx context.Context, ownerID uint, ownerType string) ([]Venue, error) {
	var venues []Venue

	result := d.db.WithContext(ctx).
		Where("owner_id = ? AND owner_type = ?", ownerID, ownerType).
		Find(&venues)
	if result.Error != nil {
		return nil, result.Error
	}

	return venues, nil
}

func (d *VenueDAO) Update(ctx context.Context, venue Venue) (Venue, error) {
	result := d.db.WithContext(ctx).Model(&Venue{}).
		Where("id = ?", venue.ID).
		Updates(map[string]interface{}{
			"name":          venue.Name,
			"location":      venue.Location,
			"address":       venue.Address,
			"capacity":      venue.Capacity,
			"contact_email": venue.ContactEmail,
			"phone_number":  venue.PhoneNumber,
			"website":       venue.Website,
			"latitude":      venue.Latitude,
			"longitude":     venue.Longitude,
		})
	if result.Error != nil {
		return Venue{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Venue{}, ErrVenueNotFound
	}

	return d.FindByID(ctx, venue.ID)
}

func (d *VenueDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Venue{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrVenueNotFound
	}

	return nil
}

func (d *VenueDAO) UpdateMainPicture(ctx context.Context, venueID uint, path string) (string, error) {
	var previous string

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var venue Venue
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&venue, venueID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrVenueNotFound
			}

			return err
		}

		previous = venue.MainPicture

		return tx.Model(&venue).Update("main_picture", path).Error
	})
	if err != nil {
		return "", err
	}

	return previous, nil
}

func (d *VenueDAO) AppendGallery(ctx context.Context, venueID uint, paths []string) ([]string, error) {
	var gallery PathList

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var venue Venue
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&venue, venueID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrVenueNotFound
			}

			return err
		}

		gallery = append(venue.VenueGallery, paths...)

		return tx.Model(&venue).Update("venue_gallery", gallery).Error
	})
	if err != nil {
		return nil, err
	}

	return gallery, nil
}

func (d *VenueDAO) RemoveGalleryPath(ctx context.Context, venueID uint, path string) ([]string, error) {
	var gallery PathList

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var venue Venue
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&venue, venueID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrVenueNotFound
			}

			return err
		}

		gallery = removePath(venue.VenueGallery, path)
		if len(gallery) == len(venue.VenueGallery) {
			return ErrMediaNotFound
		}

		return tx.Model(&venue).Update("venue_gallery", gallery).Error
	})
	if err != nil {
		return nil, err
	}

	return gallery, nil
}
