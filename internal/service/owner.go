package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gigguide/gigguide-api/internal/domain"
	"github.com/gigguide/gigguide-api/internal/repository"
)

var (
	ErrOwnerNotFound = errors.New("owner not found")
	ErrInvalidOwner  = errors.New("owner does not exist with the stated type")
)

type OwnerRepository interface {
	FindArtistByID(ctx context.Context, id uint) (domain.Artist, error)
	FindArtistByUserID(ctx context.Context, userID uint) (domain.Artist, error)
	UpdateArtistSettings(ctx context.Context, artistID uint, settings domain.Settings) error
	FindOrganiserByID(ctx context.Context, id uint) (domain.Organiser, error)
	FindOrganiserByUserID(ctx context.Context, userID uint) (domain.Organiser, error)
	UpdateOrganiserSettings(ctx context.Context, organiserID uint, settings domain.Settings) error
}

type ProvisioningStore interface {
	EnsureSettings(owner domain.Owner) (domain.Settings, bool)
	EnsureFolder(settings domain.Settings, ownerType domain.OwnerType) (string, error)
}

type OwnerService struct {
	repo  OwnerRepository
	store ProvisioningStore
}

func NewOwnerService(repo OwnerRepository, store ProvisioningStore) *OwnerService {
	return &OwnerService{
		repo:  repo,
		store: store,
	}
}

// Resolve maps a user id onto the artist or organiser profile acting as the
// owner of venues and events. Artists win when a user somehow has both rows.
func (s *OwnerService) Resolve(ctx context.Context, userID uint) (domain.Owner, error) {
	artist, err := s.repo.FindArtistByUserID(ctx, userID)
	if err == nil {
		return domain.Owner{ID: artist.ID, Type: domain.OwnerTypeArtist, Artist: &artist}, nil
	}
	if !errors.Is(err, repository.ErrArtistNotFound) {
		return domain.Owner{}, fmt.Errorf("s.repo.FindArtistByUserID -> %w", err)
	}

	organiser, err := s.repo.FindOrganiserByUserID(ctx, userID)
	if err == nil {
		return domain.Owner{ID: organiser.ID, Type: domain.OwnerTypeOrganiser, Organiser: &organiser}, nil
	}
	if !errors.Is(err, repository.ErrOrganiserNotFound) {
		return domain.Owner{}, fmt.Errorf("s.repo.FindOrganiserByUserID -> %w", err)
	}

	return domain.Owner{}, ErrOwnerNotFound
}

// Validate confirms that an explicitly supplied (owner_id, owner_type) pair
// references an existing profile of the stated type.
func (s *OwnerService) Validate(ctx context.Context, ownerID uint, ownerType domain.OwnerType) (domain.Owner, error) {
	switch ownerType {
	case domain.OwnerTypeArtist:
		artist, err := s.repo.FindArtistByID(ctx, ownerID)
		if err != nil {
			if errors.Is(err, repository.ErrArtistNotFound) {
				return domain.Owner{}, ErrInvalidOwner
			}

			return domain.Owner{}, fmt.Errorf("s.repo.FindArtistByID -> %w", err)
		}

		return domain.Owner{ID: artist.ID, Type: domain.OwnerTypeArtist, Artist: &artist}, nil

	case domain.OwnerTypeOrganiser:
		organiser, err := s.repo.FindOrganiserByID(ctx, ownerID)
		if err != nil {
			if errors.Is(err, repository.ErrOrganiserNotFound) {
				return domain.Owner{}, ErrInvalidOwner
			}

			return domain.Owner{}, fmt.Errorf("s.repo.FindOrganiserByID -> %w", err)
		}

		return domain.Owner{ID: organiser.ID, Type: domain.OwnerTypeOrganiser, Organiser: &organiser}, nil

	default:
		return domain.Owner{}, ErrInvalidOwner
	}
}

// EnsureProvisioned loads or mints the owner's folder settings, persists them
// when newly minted, and makes sure the directory tree exists. Settings reuse
// is verbatim: once a folder name is assigned it never changes.
func (s *OwnerService) EnsureProvisioned(ctx context.Context, owner domain.Owner) (domain.Settings, error) {
	settings, generated := s.store.EnsureSettings(owner)

	if generated {
		var err error
		switch owner.Type {
		case domain.OwnerTypeArtist:
			err = s.repo.UpdateArtistSettings(ctx, owner.ID, settings)
		case domain.OwnerTypeOrganiser:
			err = s.repo.UpdateOrganiserSettings(ctx, owner.ID, settings)
		}
		if err != nil {
			return domain.Settings{}, fmt.Errorf("persist settings -> %w", err)
		}
	}

	if _, err := s.store.EnsureFolder(settings, owner.Type); err != nil {
		return domain.Settings{}, fmt.Errorf("s.store.EnsureFolder -> %w", err)
	}

	return settings, nil
}
