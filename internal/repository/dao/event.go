package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrEventNotFound = errors.New("event not found")

type Event struct {
	ID uint `gorm:"primaryKey"`

	Name        string `gorm:"not null"`
	Description string
	Date        time.Time `gorm:"not null"`
	Time        string    `gorm:"not null"`
	Price       float64
	TicketURL   string
	Status      string `gorm:"default:scheduled"`
	Category    string
	Capacity    int

	OwnerID   uint   `gorm:"not null;index:idx_events_owner"`
	OwnerType string `gorm:"not null;index:idx_events_owner"`
	VenueID   *uint  `gorm:"index"`

	Poster  string
	Gallery PathList `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type EventDAO struct {
	db *gorm.DB
}

func NewEventDAO(db *gorm.DB) *EventDAO {
	return &EventDAO{
		db: db,
	}
}

func (d *EventDAO) Insert(ctx context.Context, event Event) (Event, error) {
	result := d.db.WithContext(ctx).Create(&event)
	if result.Error != nil {
		return Event{}, result.Error
	}

	return event, nil
}

func (d *EventDAO) FindAll(ctx context.Context) ([]Event, error) {
	var events []Event

	result := d.db.WithContext(ctx).Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

func (d *EventDAO) FindByID(ctx context.Context, id uint) (Event, error) {
	var event Event

	result := d.db.WithContext(ctx).First(&event, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Event{}, ErrEventNotFound
		}

		return Event{}, result.Error
	}

	return event, nil
}

func (d *EventDAO) FindByOwner(ctx context.Context, ownerID uint, ownerType string) ([]Event, error) {
	var events []Event

	result := d.db.WithContext(ctx).
		Where("owner_id = ? AND owner_type = ?", ownerID, ownerType).
		Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

func (d *EventDAO) Update(ctx context.Context, event Event) (Event, error) {
	result := d.db.WithContext(ctx).Model(&Event{}).
		Where("id = ?", event.ID).
		Updates(map[string]interface{}{
			"name":        event.Name,
			"description": event.Description,
			"date":        event.Date,
			"time":        event.Time,
			"price":       event.Price,
			"ticket_url":  event.TicketURL,
			"status":      event.Status,
			"category":    event.Category,
			"capacity":    event.Capacity,
			"venue_id":    event.VenueID,
		})
	if result.Error != nil {
		return Event{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Event{}, ErrEventNotFound
	}

	return d.FindByID(ctx, event.ID)
}

func (d *EventDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Event{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEventNotFound
	}

	return nil
}

func (d *EventDAO) UpdatePoster(ctx context.Context, eventID uint, path string) (string, error) {
	var previous string

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var event Event
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&event, eventID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEventNotFound
			}

			return err
		}

		previous = event.Poster

		return tx.Model(&event).Update("poster", path).Error
	})
	if err != nil {
		return "", err
	}

	return previous, nil
}

func (d *EventDAO) AppendGallery(ctx context.Context, eventID uint, paths []string) ([]string, error) {
	var gallery PathList

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var event Event
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&event, eventID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEventNotFound
			}

			return err
		}

		gallery = append(event.Gallery, paths...)

		return tx.Model(&event).Update("gallery", gallery).Error
	})
	if err != nil {
		return nil, err
	}

	return gallery, nil
}

func (d *EventDAO) RemoveGalleryPath(ctx context.Context, eventID uint, path string) ([]string, error) {
	var gallery PathList

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var event Event
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&event, eventID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEventNotFound
			}

			return err
		}

		gallery = removePath(event.Gallery, path)
		if len(gallery) == len(event.Gallery) {
			return ErrMediaNotFound
		}

		return tx.Model(&event).Update("gallery", gallery).Error
	})
	if err != nil {
		return nil, err
	}

	return gallery, nil
}
