package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"go.uber.org/zap"

	"github.com/gigguide/gigguide-api/internal/domain"
	"github.com/gigguide/gigguide-api/internal/repository"
	"github.com/gigguide/gigguide-api/internal/storage"
)

var (
	ErrVenueNotFound = repository.ErrVenueNotFound
	ErrNotOwner      = errors.New("entity belongs to another owner")
)

type VenueRepository interface {
	Create(ctx context.Context, venue domain.Venue) (domain.Venue, error)
	FindAll(ctx context.Context) ([]domain.Venue, error)
	FindByID(ctx context.Context, id uint) (domain.Venue, error)
	FindByOwner(ctx context.Context, ownerID uint, ownerType domain.OwnerType) ([]domain.Venue, error)
	Update(ctx context.Context, venue domain.Venue) (domain.Venue, error)
	Delete(ctx context.Context, id uint) error
	UpdateMainPicture(ctx context.Context, venueID uint, path string) (string, error)
	AppendGallery(ctx context.Context, venueID uint, paths []string) ([]string, error)
	RemoveGalleryPath(ctx context.Context, venueID uint, path string) ([]string, error)
}

type VenueService struct {
	repo     VenueRepository
	ownerSvc *OwnerService
	store    MediaStore
}

func NewVenueService(repo VenueRepository, ownerSvc *OwnerService, store MediaStore) *VenueService {
	return &VenueService{
		repo:     repo,
		ownerSvc: ownerSvc,
		store:    store,
	}
}

// CreateVenue derives the owner from the authenticated user unless the
// request names one explicitly, in which case the explicit pair wins and is
// validated against the stated type.
func (s *VenueService) CreateVenue(ctx context.Context, venue domain.Venue, actorUserID uint) (domain.Venue, error) {
	owner, err := s.resolveRequestOwner(ctx, venue.OwnerID, venue.OwnerType, actorUserID)
	if err != nil {
		return domain.Venue{}, err
	}

	venue.OwnerID = owner.ID
	venue.OwnerType = owner.Type
	if venue.Gallery == nil {
		venue.Gallery = []string{}
	}

	created, err := s.repo.Create(ctx, venue)
	if err != nil {
		return domain.Venue{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *VenueService) ListVenues(ctx context.Context) ([]domain.Venue, error) {
	venues, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return venues, nil
}

func (s *VenueService) GetVenue(ctx context.Context, id uint) (domain.Venue, error) {
	venue, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Venue{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return venue, nil
}

func (s *VenueService) ListVenuesByOwner(ctx context.Context, ownerID uint, ownerType domain.OwnerType) ([]domain.Venue, error) {
	if !ownerType.Valid() {
		return nil, ErrInvalidOwner
	}

	venues, err := s.repo.FindByOwner(ctx, ownerID, ownerType)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByOwner -> %w", err)
	}

	return venues, nil
}

func (s *VenueService) UpdateVenue(ctx context.Context, venue domain.Venue, actorUserID uint) (domain.Venue, error) {
	existing, err := s.repo.FindByID(ctx, venue.ID)
	if err != nil {
		return domain.Venue{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if err = s.authorize(ctx, existing.OwnerID, existing.OwnerType, actorUserID); err != nil {
		return domain.Venue{}, err
	}

	updated, err := s.repo.Update(ctx, venue)
	if err != nil {
		return domain.Venue{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *VenueService) DeleteVenue(ctx context.Context, id, actorUserID uint) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if err = s.authorize(ctx, existing.OwnerID, existing.OwnerType, actorUserID); err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

// UploadMainPicture overwrites the single-value main picture, deleting the
// previous file best-effort after the DB points at the new one.
func (s *VenueService) UploadMainPicture(ctx context.Context, venueID uint, fh *multipart.FileHeader) (string, error) {
	venue, settings, err := s.provisionedVenue(ctx, venueID)
	if err != nil {
		return "", err
	}

	dir, err := s.store.EntityDir(settings, "venues", venue.ID, venue.Name)
	if err != nil {
		return "", fmt.Errorf("s.store.EntityDir -> %w", err)
	}

	filename, err := s.store.SaveFile(dir, domain.MediaKindVenueMain, fh)
	if err != nil {
		return "", err
	}

	publicPath := s.store.PublicPath(settings, "venues", storage.EntityFolder(venue.ID, venue.Name), filename)
	previous, err := s.repo.UpdateMainPicture(ctx, venueID, publicPath)
	if err != nil {
		s.store.RemoveFileBestEffort(publicPath)

		return "", fmt.Errorf("s.repo.UpdateMainPicture -> %w", err)
	}

	if previous != "" && previous != publicPath {
		s.store.RemoveFileBestEffort(previous)
	}

	return publicPath, nil
}

func (s *VenueService) UploadGallery(ctx context.Context, venueID uint, files []*multipart.FileHeader) (domain.UploadResult, error) {
	venue, settings, err := s.provisionedVenue(ctx, venueID)
	if err != nil {
		return domain.UploadResult{}, err
	}

	dir, err := s.store.EntityDir(settings, "venues", venue.ID, venue.Name)
	if err != nil {
		return domain.UploadResult{}, fmt.Errorf("s.store.EntityDir -> %w", err)
	}

	result := domain.UploadResult{
		Accepted: []domain.UploadedFile{},
		Rejected: []domain.RejectedFile{},
	}
	var newPaths []string

	for _, fh := range files {
		filename, saveErr := s.store.SaveFile(dir, domain.MediaKindVenueGallery, fh)
		if saveErr != nil {
			result.Rejected = append(result.Rejected, domain.RejectedFile{
				OriginalName: fh.Filename,
				Reason:       saveErr.Error(),
			})

			continue
		}

		publicPath := s.store.PublicPath(settings, "venues", storage.EntityFolder(venue.ID, venue.Name), filename)
		newPaths = append(newPaths, publicPath)
		result.Accepted = append(result.Accepted, domain.UploadedFile{
			OriginalName: fh.Filename,
			Path:         publicPath,
			Size:         fh.Size,
			MimeType:     fh.Header.Get("Content-Type"),
		})
	}

	if len(newPaths) == 0 {
		result.Gallery = venue.Gallery

		return result, nil
	}

	gallery, err := s.repo.AppendGallery(ctx, venueID, newPaths)
	if err != nil {
		for _, p := range newPaths {
			s.store.RemoveFileBestEffort(p)
		}

		return domain.UploadResult{}, fmt.Errorf("s.repo.AppendGallery -> %w", err)
	}
	result.Gallery = gallery

	return result, nil
}

func (s *VenueService) DeleteGalleryImage(ctx context.Context, venueID uint, imagePath string) ([]string, error) {
	gallery, err := s.repo.RemoveGalleryPath(ctx, venueID, imagePath)
	if err != nil {
		return nil, fmt.Errorf("s.repo.RemoveGalleryPath -> %w", err)
	}

	if err = s.store.RemoveFile(imagePath); err != nil {
		zap.L().Warn("venue gallery file removal failed", zap.String("path", imagePath), zap.Error(err))
	}

	return gallery, nil
}

func (s *VenueService) provisionedVenue(ctx context.Context, venueID uint) (domain.Venue, domain.Settings, error) {
	venue, err := s.repo.FindByID(ctx, venueID)
	if err != nil {
		return domain.Venue{}, domain.Settings{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	owner, err := s.ownerSvc.Validate(ctx, venue.OwnerID, venue.OwnerType)
	if err != nil {
		return domain.Venue{}, domain.Settings{}, err
	}

	settings, err := s.ownerSvc.EnsureProvisioned(ctx, owner)
	if err != nil {
		return domain.Venue{}, domain.Settings{}, err
	}

	return venue, settings, nil
}

func (s *VenueService) resolveRequestOwner(ctx context.Context, ownerID uint, ownerType domain.OwnerType, actorUserID uint) (domain.Owner, error) {
	if ownerID != 0 || ownerType != "" {
		return s.ownerSvc.Validate(ctx, ownerID, ownerType)
	}

	return s.ownerSvc.Resolve(ctx, actorUserID)
}

func (s *VenueService) authorize(ctx context.Context, ownerID uint, ownerType domain.OwnerType, actorUserID uint) error {
	actor, err := s.ownerSvc.Resolve(ctx, actorUserID)
	if err != nil {
		return err
	}

	if actor.ID != ownerID || actor.Type != ownerType {
		return ErrNotOwner
	}

	return nil
}
