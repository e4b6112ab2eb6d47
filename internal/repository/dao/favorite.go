package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrFavoriteExists   = errors.New("already in favorites")
	ErrFavoriteNotFound = errors.New("favorite not found")
)

// One join table per target type; uniqueness of the (user, target) pair is
// enforced by the composite index, not at the application layer.
type UserArtistFavorite struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"not null;uniqueIndex:idx_user_artist_fav"`
	ArtistID  uint `gorm:"not null;uniqueIndex:idx_user_artist_fav"`
	CreatedAt time.Time
}

type UserEventFavorite struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"not null;uniqueIndex:idx_user_event_fav"`
	EventID   uint `gorm:"not null;uniqueIndex:idx_user_event_fav"`
	CreatedAt time.Time
}

type UserVenueFavorite struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"not null;uniqueIndex:idx_user_venue_fav"`
	VenueID   uint `gorm:"not null;uniqueIndex:idx_user_venue_fav"`
	CreatedAt time.Time
}

type UserOrganiserFavorite struct {
	ID          uint `gorm:"primaryKey"`
	UserID      uint `gorm:"not null;uniqueIndex:idx_user_organiser_fav"`
	OrganiserID uint `gorm:"not null;uniqueIndex:idx_user_organiser_fav"`
	CreatedAt   time.Time
}

// FavoriteRow is the type-independent projection the DAO hands back.
type FavoriteRow struct {
	ID        uint
	UserID    uint
	ItemID    uint
	CreatedAt time.Time
}

type FavoriteDAO struct {
	db *gorm.DB
}

func NewFavoriteDAO(db *gorm.DB) *FavoriteDAO {
	return &FavoriteDAO{
		db: db,
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

func (d *FavoriteDAO) Insert(ctx context.Context, favoriteType string, userID, itemID uint) (FavoriteRow, error) {
	var (
		id        uint
		createdAt time.Time
		err       error
	)

	switch favoriteType {
	case "artist":
		row := UserArtistFavorite{UserID: userID, ArtistID: itemID}
		err = d.db.WithContext(ctx).Create(&row).Error
		id, createdAt = row.ID, row.CreatedAt
	case "event":
		row := UserEventFavorite{UserID: userID, EventID: itemID}
		err = d.db.WithContext(ctx).Create(&row).Error
		id, createdAt = row.ID, row.CreatedAt
	case "venue":
		row := UserVenueFavorite{UserID: userID, VenueID: itemID}
		err = d.db.WithContext(ctx).Create(&row).Error
		id, createdAt = row.ID, row.CreatedAt
	case "organiser":
		row := UserOrganiserFavorite{UserID: userID, OrganiserID: itemID}
		err = d.db.WithContext(ctx).Create(&row).Error
		id, createdAt = row.ID, row.CreatedAt
	}

	if err != nil {
		if isUniqueViolation(err) {
			return FavoriteRow{}, ErrFavoriteExists
		}

		return FavoriteRow{}, err
	}

	return FavoriteRow{ID: id, UserID: userID, ItemID: itemID, CreatedAt: createdAt}, nil
}

func (d *FavoriteDAO) Delete(ctx context.Context, favoriteType string, userID, itemID uint) error {
	var result *gorm.DB

	switch favoriteType {
	case "artist":
		result = d.db.WithContext(ctx).
			Where("user_id = ? AND artist_id = ?", userID, itemID).
			Delete(&UserArtistFavorite{})
	case "event":
		result = d.db.WithContext(ctx).
			Where("user_id = ? AND event_id = ?", userID, itemID).
			Delete(&UserEventFavorite{})
	case "venue":
		result = d.db.WithContext(ctx).
			Where("user_id = ? AND venue_id = ?", userID, itemID).
			Delete(&UserVenueFavorite{})
	case "organiser":
		result = d.db.WithContext(ctx).
			Where("user_id = ? AND organiser_id = ?", userID, itemID).
			Delete(&UserOrganiserFavorite{})
	default:
		return ErrFavoriteNotFound
	}

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFavoriteNotFound
	}

	return nil
}

func (d *FavoriteDAO) Exists(ctx context.Context, favoriteType string, userID, itemID uint) (bool, error) {
	var count int64
	var result *gorm.DB

	switch favoriteType {
	case "artist":
		result = d.db.WithContext(ctx).Model(&UserArtistFavorite{}).
			Where("user_id = ? AND artist_id = ?", userID, itemID).
			Count(&count)
	case "event":
		result = d.db.WithContext(ctx).Model(&UserEventFavorite{}).
			Where("user_id = ? AND event_id = ?", userID, itemID).
			Count(&count)
	case "venue":
		result = d.db.WithContext(ctx).Model(&UserVenueFavorite{}).
			Where("user_id = ? AND venue_id = ?", userID, itemID).
			Count(&count)
	case "organiser":
		result = d.db.WithContext(ctx).Model(&UserOrganiserFavorite{}).
			Where("user_id = ? AND organiser_id = ?", userID, itemID).
			Count(&count)
	default:
		return false, nil
	}

	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

func (d *FavoriteDAO) FindByUser(ctx context.Context, favoriteType string, userID uint) ([]FavoriteRow, error) {
	rows := make([]FavoriteRow, 0)

	switch favoriteType {
	case "artist":
		var favs []UserArtistFavorite
		if err := d.db.WithContext(ctx).Where("user_id = ?", userID).Find(&favs).Error; err != nil {
			return nil, err
		}
		for _, f := range favs {
			rows = append(rows, FavoriteRow{ID: f.ID, UserID: f.UserID, ItemID: f.ArtistID, CreatedAt: f.CreatedAt})
		}
	case "event":
		var favs []UserEventFavorite
		if err := d.db.WithContext(ctx).Where("user_id = ?", userID).Find(&favs).Error; err != nil {
			return nil, err
		}
		for _, f := range favs {
			rows = append(rows, FavoriteRow{ID: f.ID, UserID: f.UserID, ItemID: f.EventID, CreatedAt: f.CreatedAt})
		}
	case "venue":
		var favs []UserVenueFavorite
		if err := d.db.WithContext(ctx).Where("user_id = ?", userID).Find(&favs).Error; err != nil {
			return nil, err
		}
		for _, f := range favs {
			rows = append(rows, FavoriteRow{ID: f.ID, UserID: f.UserID, ItemID: f.VenueID, CreatedAt: f.CreatedAt})
		}
	case "organiser":
		var favs []UserOrganiserFavorite
		if err := d.db.WithContext(ctx).Where("user_id = ?", userID).Find(&favs).Error; err != nil {
			return nil, err
		}
		for _, f := range favs {
			rows = append(rows, FavoriteRow{ID: f.ID, UserID: f.UserID, ItemID: f.OrganiserID, CreatedAt: f.CreatedAt})
		}
	}

	return rows, nil
}
