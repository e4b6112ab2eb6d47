package repository

import (
	"context"
	"fmt"

	"github.com/gigguide/gigguide-api/internal/domain"
	"github.com/gigguide/gigguide-api/internal/repository/dao"
)

var ErrEventNotFound = dao.ErrEventNotFound

type EventDAO interface {
	Insert(ctx context.Context, event dao.Event) (dao.Event, error)
	FindAll(ctx context.Context) ([]dao.Event, error)
	FindByID(ctx context.Context, id uint) (dao.Event, error)
	FindByOwner(ctx context.Context, ownerID uint, ownerType string) ([]dao.Event, error)
	Update(ctx context.Context, event dao.Event) (dao.Event, error)
	Delete(ctx context.Context, id uint) error
	UpdatePoster(ctx context.Context, eventID uint, path string) (string, error)
	AppendGallery(ctx context.Context, eventID uint, paths []string) ([]string, error)
	RemoveGalleryPath(ctx context.Context, eventID uint, path string) ([]string, error)
}

type EventRepository struct {
	dao EventDAO
}

func NewEventRepository(dao EventDAO) *EventRepository {
	return &EventRepository{
		dao: dao,
	}
}

func (r *EventRepository) Create(ctx context.Context, event domain.Event) (domain.Event, error) {
	created, err := r.dao.Insert(ctx, domainEventToDao(event))
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return daoEventToDomain(created), nil
}

func (r *EventRepository) FindAll(ctx context.Context) ([]domain.Event, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return daoEventsToDomain(found), nil
}

func (r *EventRepository) FindByID(ctx context.Context, id uint) (domain.Event, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return daoEventToDomain(found), nil
}

func (r *EventRepository) FindByOwner(ctx context.Context, ownerID uint, ownerType domain.OwnerType) ([]domain.Event, error) {
	found, err := r.dao.FindByOwner(ctx, ownerID, string(ownerType))
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByOwner -> %w", err)
	}

	return daoEventsToDomain(found), nil
}

func (r *EventRepository) Update(ctx context.Context, event domain.Event) (domain.Event, error) {
	updated, err := r.dao.Update(ctx, domainEventToDao(event))
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return daoEventToDomain(updated), nil
}

func (r *EventRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *EventRepository) UpdatePoster(ctx context.Context, eventID uint, path string) (string, error) {
	previous, err := r.dao.UpdatePoster(ctx, eventID, path)
	if err != nil {
		return "", fmt.Errorf("r.dao.UpdatePoster -> %w", err)
	}

	return previous, nil
}

func (r *EventRepository) AppendGallery(ctx context.Context, eventID uint, paths []string) ([]string, error) {
	gallery, err := r.dao.AppendGallery(ctx, eventID, paths)
	if err != nil {
		return nil, fmt.Errorf("r.dao.AppendGallery -> %w", err)
	}

	return gallery, nil
}

func (r *EventRepository) RemoveGalleryPath(ctx context.Context, eventID uint, path string) ([]string, error) {
	gallery, err := r.dao.RemoveGalleryPath(ctx, eventID, path)
	if err != nil {
		return nil, fmt.Errorf("r.dao.RemoveGalleryPath -> %w", err)
	}

	return gallery, nil
}

func daoEventsToDomain(events []dao.Event) []domain.Event {
	result := make([]domain.Event, len(events))
	for i, e := range events {
		result[i] = daoEventToDomain(e)
	}

	return result
}

func daoEventToDomain(e dao.Event) domain.Event {
	return domain.Event{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		Date:        e.Date,
		Time:        e.Time,
		Price:       e.Price,
		TicketURL:   e.TicketURL,
		Status:      e.Status,
		Category:    e.Category,
		Capacity:    e.Capacity,
		OwnerID:     e.OwnerID,
		OwnerType:   domain.OwnerType(e.OwnerType),
		VenueID:     e.VenueID,
		Poster:      e.Poster,
		Gallery:     e.Gallery,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func domainEventToDao(e domain.Event) dao.Event {
	return dao.Event{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		Date:        e.Date,
		Time:        e.Time,
		Price:       e.Price,
		TicketURL:   e.TicketURL,
		Status:      e.Status,
		Category:    e.Category,
		Capacity:    e.Capacity,
		OwnerID:     e.OwnerID,
		OwnerType:   string(e.OwnerType),
		VenueID:     e.VenueID,
		Poster:      e.Poster,
		Gallery:     e.Gallery,
	}
}
