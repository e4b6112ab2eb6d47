package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"

	"github.com/gigguide/gigguide-api/internal/domain"
	"github.com/gigguide/gigguide-api/internal/repository"
)

var ErrOrganiserNotFound = repository.ErrOrganiserNotFound

type OrganiserRepository interface {
	FindOrganisers(ctx context.Context) ([]domain.Organiser, error)
	FindOrganiserByID(ctx context.Context, id uint) (domain.Organiser, error)
	FindOrganiserByUserID(ctx context.Context, userID uint) (domain.Organiser, error)
	UpdateOrganiser(ctx context.Context, organiser domain.Organiser) (domain.Organiser, error)
	UpdateOrganiserLogo(ctx context.Context, organiserID uint, path string) (string, error)
}

type OrganiserService struct {
	repo     OrganiserRepository
	ownerSvc *OwnerService
	store    MediaStore
}

func NewOrganiserService(repo OrganiserRepository, ownerSvc *OwnerService, store MediaStore) *OrganiserService {
	return &OrganiserService{
		repo:     repo,
		ownerSvc: ownerSvc,
		store:    store,
	}
}

func (s *OrganiserService) ListOrganisers(ctx context.Context) ([]domain.Organiser, error) {
	organisers, err := s.repo.FindOrganisers(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindOrganisers -> %w", err)
	}

	return organisers, nil
}

func (s *OrganiserService) GetOrganiser(ctx context.Context, id uint) (domain.Organiser, error) {
	organiser, err := s.repo.FindOrganiserByID(ctx, id)
	if err != nil {
		return domain.Organiser{}, fmt.Errorf("s.repo.FindOrganiserByID -> %w", err)
	}

	return organiser, nil
}

func (s *OrganiserService) GetOrganiserByUserID(ctx context.Context, userID uint) (domain.Organiser, error) {
	organiser, err := s.repo.FindOrganiserByUserID(ctx, userID)
	if err != nil {
		return domain.Organiser{}, fmt.Errorf("s.repo.FindOrganiserByUserID -> %w", err)
	}

	return organiser, nil
}

func (s *OrganiserService) UpdateOrganiser(ctx context.Context, organiser domain.Organiser) (domain.Organiser, error) {
	updated, err := s.repo.UpdateOrganiser(ctx, organiser)
	if err != nil {
		return domain.Organiser{}, fmt.Errorf("s.repo.UpdateOrganiser -> %w", err)
	}

	return updated, nil
}

func (s *OrganiserService) UploadLogo(ctx context.Context, organiserID uint, fh *multipart.FileHeader) (string, error) {
	organiser, err := s.repo.FindOrganiserByID(ctx, organiserID)
	if err != nil {
		return "", fmt.Errorf("s.repo.FindOrganiserByID -> %w", err)
	}

	owner := domain.Owner{ID: organiser.ID, Type: domain.OwnerTypeOrganiser, Organiser: &organiser}
	settings, err := s.ownerSvc.EnsureProvisioned(ctx, owner)
	if err != nil {
		return "", fmt.Errorf("s.ownerSvc.EnsureProvisioned -> %w", err)
	}

	profileDir := filepath.Join(s.store.OwnerDir(settings), "profile")
	filename, err := s.store.SaveFile(profileDir, domain.MediaKindProfile, fh)
	if err != nil {
		return "", err
	}

	publicPath := s.store.PublicPath(settings, "profile", filename)
	previous, err := s.repo.UpdateOrganiserLogo(ctx, organiserID, publicPath)
	if err != nil {
		s.store.RemoveFileBestEffort(publicPath)

		return "", fmt.Errorf("s.repo.UpdateOrganiserLogo -> %w", err)
	}

	if previous != "" && previous != publicPath {
		s.store.RemoveFileBestEffort(previous)
	}

	return publicPath, nil
}
