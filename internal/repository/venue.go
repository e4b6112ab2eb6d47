package repository

import (
	"context"
	"fmt"

	"github.com/gigguide/gigguide-api/internal/domain"
	"github.com/gigguide/gigguide-api/internal/repository/dao"
)

var ErrVenueNotFound = dao.ErrVenueNotFound

type VenueDAO interface {
	Insert(ctx context.Context, venue dao.Venue) (dao.Venue, error)
	FindAll(ctx context.Context) ([]dao.Venue, error)
	FindByID(ctx context.Context, id uint) (dao.Venue, error)
	FindByOwner(ctx context.Context, ownerID uint, ownerType string) ([]dao.Venue, error)
	Update(ctx context.Context, venue dao.Venue) (dao.Venue, error)
	Delete(ctx context.Context, id uint) error
	UpdateMainPicture(ctx context.Context, venueID uint, path string) (string, error)
	AppendGallery(ctx context.Context, venueID uint, paths []string) ([]string, error)
	RemoveGalleryPath(ctx context.Context, venueID uint, path string) ([]string, error)
}

type VenueRepository struct {
	dao VenueDAO
}

func NewVenueRepository(dao VenueDAO) *VenueRepository {
	return &VenueRepository{
		dao: dao,
	}
}

func (r *VenueRepository) Create(ctx context.Context, venue domain.Venue) (domain.Venue, error) {
	created, err := r.dao.Insert(ctx, domainVenueToDao(venue))
	if err != nil {
		return domain.Venue{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return daoVenueToDomain(created), nil
}

func (r *VenueRepository) FindAll(ctx context.Context) ([]domain.Venue, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return daoVenuesToDomain(found), nil
}

func (r *VenueRepository) FindByID(ctx context.Context, id uint) (domain.Venue, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Venue{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return daoVenueToDomain(found), nil
}

func (r *VenueRepository) FindByOwner(ctx context.Context, ownerID uint, ownerType domain.OwnerType) ([]domain.Venue, error) {
	found, err := r.dao.FindByOwner(ctx, ownerID, string(ownerType))
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByOwner -> %w", err)
	}

	return daoVenuesToDomain(found), nil
}

func (r *VenueRepository) Update(ctx context.Context, venue domain.Venue) (domain.Venue, error) {
	updated, err := r.dao.Update(ctx, domainVenueToDao(venue))
	if err != nil {
		return domain.Venue{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return daoVenueToDomain(updated), nil
}

func (r *VenueRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *VenueRepository) UpdateMainPicture(ctx context.Context, venueID uint, path string) (string, error) {
	previous, err := r.dao.UpdateMainPicture(ctx, venueID, path)
	if err != nil {
		return "", fmt.Errorf("r.dao.UpdateMainPicture -> %w", err)
	}

	return previous, nil
}

func (r *VenueRepository) AppendGallery(ctx context.Context, venueID uint, paths []string) ([]string, error) {
	gallery, err := r.dao.AppendGallery(ctx, venueID, paths)
	if err != nil {
		return nil, fmt.Errorf("r.dao.AppendGallery -> %w", err)
	}

	return gallery, nil
}

func (r *VenueRepository) RemoveGalleryPath(ctx context.Context, venueID uint, path string) ([]string, error) {
	gallery, err := r.dao.RemoveGalleryPath(ctx, venueID, path)
	if err != nil {
		return nil, fmt.Errorf("r.dao.RemoveGalleryPath -> %w", err)
	}

	return gallery, nil
}

func daoVenuesToDomain(venues []dao.Venue) []domain.Venue {
	result := make([]domain.Venue, len(venues))
	for i, v := range venues {
		result[i] = daoVenueToDomain(v)
	}

	return result
}

func daoVenueToDomain(v dao.Venue) domain.Venue {
	return domain.Venue{
		ID:           v.ID,
		Name:         v.Name,
		Location:     v.Location,
		Address:      v.Address,
		Capacity:     v.Capacity,
		ContactEmail: v.ContactEmail,
		PhoneNumber:  v.PhoneNumber,
		Website:      v.Website,
		Latitude:     v.Latitude,
		Longitude:    v.Longitude,
		OwnerID:      v.OwnerID,
		OwnerType:    domain.OwnerType(v.OwnerType),
		MainPicture:  v.MainPicture,
		Gallery:      v.VenueGallery,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

func domainVenueToDao(v domain.Venue) dao.Venue {
	return dao.Venue{
		ID:           v.ID,
		Name:         v.Name,
		Location:     v.Location,
		Address:      v.Address,
		Capacity:     v.Capacity,
		ContactEmail: v.ContactEmail,
		PhoneNumber:  v.PhoneNumber,
		Website:      v.Website,
		Latitude:     v.Latitude,
		Longitude:    v.Longitude,
		OwnerID:      v.OwnerID,
		OwnerType:    string(v.OwnerType),
		MainPicture:  v.MainPicture,
		VenueGallery: v.Gallery,
	}
}
