package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrArtistNotFound    = errors.New("artist not found")
	ErrOrganiserNotFound = errors.New("organiser not found")
	ErrMediaNotFound     = errors.New("media path not found")
)

type Artist struct {
	ID     uint `gorm:"primaryKey"`
	UserID uint `gorm:"not null;uniqueIndex"`

	StageName      string `gorm:"not null"`
	RealName       string
	Genre          string
	Bio            string
	ContactEmail   string
	PhoneNumber    string
	Instagram      string
	Facebook       string
	Twitter        string
	ProfilePicture string

	Settings NullableSettings `gorm:"type:text"`
	Gallery  PathList         `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Organiser struct {
	ID     uint `gorm:"primaryKey"`
	UserID uint `gorm:"not null;uniqueIndex"`

	Name         string `gorm:"not null"`
	ContactEmail string
	PhoneNumber  string
	Website      string
	Logo         string

	Settings NullableSettings `gorm:"type:text"`
	Gallery  PathList         `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type OwnerDAO struct {
	db *gorm.DB
}

func NewOwnerDAO(db *gorm.DB) *OwnerDAO {
	return &OwnerDAO{
		db: db,
	}
}

func (d *OwnerDAO) FindArtists(ctx context.Context) ([]Artist, error) {
	var artists []Artist

	result := d.db.WithContext(ctx).Find(&artists)
	if result.Error != nil {
		return nil, result.Error
	}

	return artists, nil
}

func (d *OwnerDAO) FindArtistByID(ctx context.Context, id uint) (Artist, error) {
	var artist Artist

	result := d.db.WithContext(ctx).First(&artist, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Artist{}, ErrArtistNotFound
		}

		return Artist{}, result.Error
	}

	return artist, nil
}

func (d *OwnerDAO) FindArtistByUserID(ctx context.Context, userID uint) (Artist, error) {
	var artist Artist

	result := d.db.WithContext(ctx).First(&artist, "user_id = ?", userID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Artist{}, ErrArtistNotFound
		}

		return Artist{}, result.Error
	}

	return artist, nil
}

func (d *OwnerDAO) UpdateArtist(ctx context.Context, artist Artist) (Artist, error) {
	result := d.db.WithContext(ctx).Model(&Artist{}).
		Where("id = ?", artist.ID).
		Updates(map[string]interface{}{
			"stage_name":    artist.StageName,
			"real_name":     artist.RealName,
			"genre":         artist.Genre,
			"bio":           artist.Bio,
			"contact_email": artist.ContactEmail,
			"phone_number":  artist.PhoneNumber,
			"instagram":     artist.Instagram,
			"facebook":      artist.Facebook,
			"twitter":       artist.Twitter,
		})
	if result.Error != nil {
		return Artist{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Artist{}, ErrArtistNotFound
	}

	return d.FindArtistByID(ctx, artist.ID)
}

func (d *OwnerDAO) UpdateArtistSettings(ctx context.Context, artistID uint, settings SettingsBlob) error {
	result := d.db.WithContext(ctx).Model(&Artist{}).
		Where("id = ?", artistID).
		Update("settings", NullableSettings{Blob: &settings})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrArtistNotFound
	}

	return nil
}

func (d *OwnerDAO) UpdateArtistProfilePicture(ctx context.Context, artistID uint, path string) (string, error) {
	var previous string

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var artist Artist
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&artist, artistID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrArtistNotFound
			}

			return err
		}

		previous = artist.ProfilePicture

		return tx.Model(&artist).Update("profile_picture", path).Error
	})
	if err != nil {
		return "", err
	}

	return previous, nil
}

// AppendArtistGallery read-modify-writes the gallery column under a row lock,
// so two concurrent uploads for the same artist cannot lose each other's paths.
func (d *OwnerDAO) AppendArtistGallery(ctx context.Context, artistID uint, paths []string) ([]string, error) {
	var gallery PathList

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var artist Artist
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&artist, artistID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrArtistNotFound
			}

			return err
		}

		gallery = append(artist.Gallery, paths...)

		return tx.Model(&artist).Update("gallery", gallery).Error
	})
	if err != nil {
		return nil, err
	}

	return gallery, nil
}

func (d *OwnerDAO) RemoveArtistGalleryPath(ctx context.Context, artistID uint, path string) ([]string, error) {
	var gallery PathList

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var artist Artist
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&artist, artistID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrArtistNotFound
			}

			return err
		}

		gallery = removePath(artist.Gallery, path)
		if len(gallery) == len(artist.Gallery) {
			return ErrMediaNotFound
		}

		return tx.Model(&artist).Update("gallery", gallery).Error
	})
	if err != nil {
		return nil, err
	}

	return gallery, nil
}

func (d *OwnerDAO) FindOrganisers(ctx context.Context) ([]Organiser, error) {
	var organisers []Organiser

	result := d.db.WithContext(ctx).Find(&organisers)
	if result.Error != nil {
		return nil, result.Error
	}

	return organisers, nil
}

func (d *OwnerDAO) FindOrganiserByID(ctx context.Context, id uint) (Organiser, error) {
	var organiser Organiser

	result := d.db.WithContext(ctx).First(&organiser, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Organiser{}, ErrOrganiserNotFound
		}

		return Organiser{}, result.Error
	}

	return organiser, nil
}

func (d *OwnerDAO) FindOrganiserByUserID(ctx context.Context, userID uint) (Organiser, error) {
	var organiser Organiser

	result := d.db.WithContext(ctx).First(&organiser, "user_id = ?", userID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Organiser{}, ErrOrganiserNotFound
		}

		return Organiser{}, result.Error
	}

	return organiser, nil
}

func (d *OwnerDAO) UpdateOrganiser(ctx context.Context, organiser Organiser) (Organiser, error) {
	result := d.db.WithContext(ctx).Model(&Organiser{}).
		Where("id = ?", organiser.ID).
		Updates(map[string]interface{}{
			"name":          organiser.Name,
			"contact_email": organiser.ContactEmail,
			"phone_number":  organiser.PhoneNumber,
			"website":       organiser.Website,
		})
	if result.Error != nil {
		return Organiser{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Organiser{}, ErrOrganiserNotFound
	}

	return d.FindOrganiserByID(ctx, organiser.ID)
}

func (d *OwnerDAO) UpdateOrganiserSettings(ctx context.Context, organiserID uint, settings SettingsBlob) error {
	result := d.db.WithContext(ctx).Model(&Organiser{}).
		Where("id = ?", organiserID).
		Update("settings", NullableSettings{Blob: &settings})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOrganiserNotFound
	}

	return nil
}

func (d *OwnerDAO) UpdateOrganiserLogo(ctx context.Context, organiserID uint, path string) (string, error) {
	var previous string

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var organiser Organiser
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&organiser, organiserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrganiserNotFound
			}

			return err
		}

		previous = organiser.Logo

		return tx.Model(&organiser).Update("logo", path).Error
	})
	if err != nil {
		return "", err
	}

	return previous, nil
}

func removePath(paths PathList, target string) PathList {
	filtered := make(PathList, 0, len(paths))
	for _, p := range paths {
		if p != target {
			filtered = append(filtered, p)
		}
	}

	return filtered
}
