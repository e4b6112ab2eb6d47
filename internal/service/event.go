package service

import (
	"context"
	"fmt"
	"mime/multipart"

	"go.uber.org/zap"

	"github.com/gigguide/gigguide-api/internal/domain"
	"github.com/gigguide/gigguide-api/internal/repository"
	"github.com/gigguide/gigguide-api/internal/storage"
)

var ErrEventNotFound = repository.ErrEventNotFound

type EventRepository interface {
	Create(ctx context.Context, event domain.Event) (domain.Event, error)
	FindAll(ctx context.Context) ([]domain.Event, error)
	FindByID(ctx context.Context, id uint) (domain.Event, error)
	FindByOwner(ctx context.Context, ownerID uint, ownerType domain.OwnerType) ([]domain.Event, error)
	Update(ctx context.Context, event domain.Event) (domain.Event, error)
	Delete(ctx context.Context, id uint) error
	UpdatePoster(ctx context.Context, eventID uint, path string) (string, error)
	AppendGallery(ctx context.Context, eventID uint, paths []string) ([]string, error)
	RemoveGalleryPath(ctx context.Context, eventID uint, path string) ([]string, error)
}

type EventService struct {
	repo     EventRepository
	ownerSvc *OwnerService
	store    MediaStore
}

func NewEventService(repo EventRepository, ownerSvc *OwnerService, store MediaStore) *EventService {
	return &EventService{
		repo:     repo,
		ownerSvc: ownerSvc,
		store:    store,
	}
}

func (s *EventService) CreateEvent(ctx context.Context, event domain.Event, actorUserID uint) (domain.Event, error) {
	owner, err := s.resolveRequestOwner(ctx, event.OwnerID, event.OwnerType, actorUserID)
	if err != nil {
		return domain.Event{}, err
	}

	event.OwnerID = owner.ID
	event.OwnerType = owner.Type
	if event.Status == "" {
		event.Status = domain.EventStatusScheduled
	}
	if event.Gallery == nil {
		event.Gallery = []string{}
	}

	created, err := s.repo.Create(ctx, event)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *EventService) ListEvents(ctx context.Context) ([]domain.Event, error) {
	events, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return events, nil
}

func (s *EventService) GetEvent(ctx context.Context, id uint) (domain.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return event, nil
}

func (s *EventService) ListEventsByOwner(ctx context.Context, ownerID uint, ownerType domain.OwnerType) ([]domain.Event, error) {
	if !ownerType.Valid() {
		return nil, ErrInvalidOwner
	}

	events, err := s.repo.FindByOwner(ctx, ownerID, ownerType)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByOwner -> %w", err)
	}

	return events, nil
}

func (s *EventService) UpdateEvent(ctx context.Context, event domain.Event, actorUserID uint) (domain.Event, error) {
	existing, err := s.repo.FindByID(ctx, event.ID)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if err = s.authorize(ctx, existing.OwnerID, existing.OwnerType, actorUserID); err != nil {
		return domain.Event{}, err
	}

	updated, err := s.repo.Update(ctx, event)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *EventService) DeleteEvent(ctx context.Context, id, actorUserID uint) error {
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

func (s *EventService) UploadPoster(ctx context.Context, eventID uint, fh *multipart.FileHeader) (string, error) {
	event, settings, err := s.provisionedEvent(ctx, eventID)
	if err != nil {
		return "", err
	}

	dir, err := s.store.EntityDir(settings, "events", event.ID, event.Name)
	if err != nil {
		return "", fmt.Errorf("s.store.EntityDir -> %w", err)
	}

	filename, err := s.store.SaveFile(dir, domain.MediaKindEventPoster, fh)
	if err != nil {
		return "", err
	}

	publicPath := s.store.PublicPath(settings, "events", storage.EntityFolder(event.ID, event.Name), filename)
	previous, err := s.repo.UpdatePoster(ctx, eventID, publicPath)
	if err != nil {
		s.store.RemoveFileBestEffort(publicPath)

		return "", fmt.Errorf("s.repo.UpdatePoster -> %w", err)
	}

	if previous != "" && previous != publicPath {
		s.store.RemoveFileBestEffort(previous)
	}

	return publicPath, nil
}

func (s *EventService) UploadGallery(ctx context.Context, eventID uint, files []*multipart.FileHeader) (domain.UploadResult, error) {
	event, settings, err := s.provisionedEvent(ctx, eventID)
	if err != nil {
		return domain.UploadResult{}, err
	}

	dir, err := s.store.EntityDir(settings, "events", event.ID, event.Name)
	if err != nil {
		return domain.UploadResult{}, fmt.Errorf("s.store.EntityDir -> %w", err)
	}

	result := domain.UploadResult{
		Accepted: []domain.UploadedFile{},
		Rejected: []domain.RejectedFile{},
	}
	var newPaths []string

	for _, fh := range files {
		filename, saveErr := s.store.SaveFile(dir, domain.MediaKindEventGallery, fh)
		if saveErr != nil {
			result.Rejected = append(result.Rejected, domain.RejectedFile{
				OriginalName: fh.Filename,
				Reason:       saveErr.Error(),
			})

			continue
		}

		publicPath := s.store.PublicPath(settings, "events", storage.EntityFolder(event.ID, event.Name), filename)
		newPaths = append(newPaths, publicPath)
		result.Accepted = append(result.Accepted, domain.UploadedFile{
			OriginalName: fh.Filename,
			Path:         publicPath,
			Size:         fh.Size,
			MimeType:     fh.Header.Get("Content-Type"),
		})
	}

	if len(newPaths) == 0 {
		result.Gallery = event.Gallery

		return result, nil
	}

	gallery, err := s.repo.AppendGallery(ctx, eventID, newPaths)
	if err != nil {
		for _, p := range newPaths {
			s.store.RemoveFileBestEffort(p)
		}

		return domain.UploadResult{}, fmt.Errorf("s.repo.AppendGallery -> %w", err)
	}
	result.Gallery = gallery

	return result, nil
}

func (s *EventService) DeleteGalleryImage(ctx context.Context, eventID uint, imagePath string) ([]string, error) {
	gallery, err := s.repo.RemoveGalleryPath(ctx, eventID, imagePath)
	if err != nil {
		return nil, fmt.Errorf("s.repo.RemoveGalleryPath -> %w", err)
	}

	if err = s.store.RemoveFile(imagePath); err != nil {
		zap.L().Warn("event gallery file removal failed", zap.String("path", imagePath), zap.Error(err))
	}

	return gallery, nil
}

func (s *EventService) provisionedEvent(ctx context.Context, eventID uint) (domain.Event, domain.Settings, error) {
	event, err := s.repo.FindByID(ctx, eventID)
	if err != nil {
		return domain.Event{}, domain.Settings{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	owner, err := s.ownerSvc.Validate(ctx, event.OwnerID, event.OwnerType)
	if err != nil {
		return domain.Event{}, domain.Settings{}, err
	}

	settings, err := s.ownerSvc.EnsureProvisioned(ctx, owner)
	if err != nil {
		return domain.Event{}, domain.Settings{}, err
	}

	return event, settings, nil
}

func (s *EventService) resolveRequestOwner(ctx context.Context, ownerID uint, ownerType domain.OwnerType, actorUserID uint) (domain.Owner, error) {
	if ownerID != 0 || ownerType != "" {
		return s.ownerSvc.Validate(ctx, ownerID, ownerType)
	}

	return s.ownerSvc.Resolve(ctx, actorUserID)
}

func (s *EventService) authorize(ctx context.Context, ownerID uint, ownerType domain.OwnerType, actorUserID uint) error {
	actor, err := s.ownerSvc.Resolve(ctx, actorUserID)
	if err != nil {
		return err
	}

	if actor.ID != ownerID || actor.Type != ownerType {
		return ErrNotOwner
	}

	return nil
}
