package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/gigguide/gigguide-api/internal/domain"
	"github.com/gigguide/gigguide-api/internal/repository"
)

var (
	ErrArtistNotFound = repository.ErrArtistNotFound
	ErrMediaNotFound  = repository.ErrMediaNotFound
)

// MediaStore is the disk side of media handling; the services pair it with
// the repositories so DB and filesystem stay in step.
type MediaStore interface {
	EnsureSettings(owner domain.Owner) (domain.Settings, bool)
	EnsureFolder(settings domain.Settings, ownerType domain.OwnerType) (string, error)
	OwnerDir(settings domain.Settings) string
	EntityDir(settings domain.Settings, subfolder string, entityID uint, entityName string) (string, error)
	PublicPath(settings domain.Settings, elems ...string) string
	SaveFile(dir string, kind domain.MediaKind, fh *multipart.FileHeader) (string, error)
	RemoveFile(publicPath string) error
	RemoveFileBestEffort(publicPath string)
}

type ArtistRepository interface {
	FindArtists(ctx context.Context) ([]domain.Artist, error)
	FindArtistByID(ctx context.Context, id uint) (domain.Artist, error)
	FindArtistByUserID(ctx context.Context, userID uint) (domain.Artist, error)
	UpdateArtist(ctx context.Context, artist domain.Artist) (domain.Artist, error)
	UpdateArtistProfilePicture(ctx context.Context, artistID uint, path string) (string, error)
	AppendArtistGallery(ctx context.Context, artistID uint, paths []string) ([]string, error)
	RemoveArtistGalleryPath(ctx context.Context, artistID uint, path string) ([]string, error)
}

type ArtistService struct {
	repo     ArtistRepository
	ownerSvc *OwnerService
	store    MediaStore
}

func NewArtistService(repo ArtistRepository, ownerSvc *OwnerService, store MediaStore) *ArtistService {
	return &ArtistService{
		repo:     repo,
		ownerSvc: ownerSvc,
		store:    store,
	}
}

func (s *ArtistService) ListArtists(ctx context.Context) ([]domain.Artist, error) {
	artists, err := s.repo.FindArtists(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindArtists -> %w", err)
	}

	return artists, nil
}

func (s *ArtistService) GetArtist(ctx context.Context, id uint) (domain.Artist, error) {
	artist, err := s.repo.FindArtistByID(ctx, id)
	if err != nil {
		return domain.Artist{}, fmt.Errorf("s.repo.FindArtistByID -> %w", err)
	}

	return artist, nil
}

func (s *ArtistService) GetArtistByUserID(ctx context.Context, userID uint) (domain.Artist, error) {
	artist, err := s.repo.FindArtistByUserID(ctx, userID)
	if err != nil {
		return domain.Artist{}, fmt.Errorf("s.repo.FindArtistByUserID -> %w", err)
	}

	return artist, nil
}

func (s *ArtistService) UpdateArtist(ctx context.Context, artist domain.Artist) (domain.Artist, error) {
	updated, err := s.repo.UpdateArtist(ctx, artist)
	if err != nil {
		return domain.Artist{}, fmt.Errorf("s.repo.UpdateArtist -> %w", err)
	}

	return updated, nil
}

// UploadGallery validates and stores each file independently: bad files land
// in the rejected list and never abort the batch. Accepted paths are appended
// to the gallery column under a row lock.
func (s *ArtistService) UploadGallery(ctx context.Context, artistID uint, files []*multipart.FileHeader) (domain.UploadResult, error) {
	artist, err := s.repo.FindArtistByID(ctx, artistID)
	if err != nil {
		return domain.UploadResult{}, fmt.Errorf("s.repo.FindArtistByID -> %w", err)
	}

	owner := domain.Owner{ID: artist.ID, Type: domain.OwnerTypeArtist, Artist: &artist}
	settings, err := s.ownerSvc.EnsureProvisioned(ctx, owner)
	if err != nil {
		return domain.UploadResult{}, fmt.Errorf("s.ownerSvc.EnsureProvisioned -> %w", err)
	}

	galleryDir := filepath.Join(s.store.OwnerDir(settings), "gallery")

	result := domain.UploadResult{
		Accepted: []domain.UploadedFile{},
		Rejected: []domain.RejectedFile{},
	}
	var newPaths []string

	for _, fh := range files {
		filename, saveErr := s.store.SaveFile(galleryDir, domain.MediaKindGallery, fh)
		if saveErr != nil {
			result.Rejected = append(result.Rejected, domain.RejectedFile{
				OriginalName: fh.Filename,
				Reason:       saveErr.Error(),
			})

			continue
		}

		publicPath := s.store.PublicPath(settings, "gallery", filename)
		newPaths = append(newPaths, publicPath)
		result.Accepted = append(result.Accepted, domain.UploadedFile{
			OriginalName: fh.Filename,
			Path:         publicPath,
			Size:         fh.Size,
			MimeType:     fh.Header.Get("Content-Type"),
		})
	}

	if len(newPaths) == 0 {
		result.Gallery = artist.Gallery

		return result, nil
	}

	gallery, err := s.repo.AppendArtistGallery(ctx, artistID, newPaths)
	if err != nil {
		// Files are on disk but the DB never learned about them; clean up so
		// the two stay consistent.
		for _, p := range newPaths {
			s.store.RemoveFileBestEffort(p)
		}

		return domain.UploadResult{}, fmt.Errorf("s.repo.AppendArtistGallery -> %w", err)
	}
	result.Gallery = gallery

	return result, nil
}

// DeleteGalleryImage removes the path from the gallery column, then unlinks
// the file; a file already absent on disk still counts as a success.
func (s *ArtistService) DeleteGalleryImage(ctx context.Context, artistID uint, imagePath string) ([]string, error) {
	gallery, err := s.repo.RemoveArtistGalleryPath(ctx, artistID, imagePath)
	if err != nil {
		return nil, fmt.Errorf("s.repo.RemoveArtistGalleryPath -> %w", err)
	}

	if err = s.store.RemoveFile(imagePath); err != nil {
		zap.L().Warn("gallery file removal failed", zap.String("path", imagePath), zap.Error(err))
	}

	return gallery, nil
}

func (s *ArtistService) UploadProfilePicture(ctx context.Context, artistID uint, fh *multipart.FileHeader) (string, error) {
	artist, err := s.repo.FindArtistByID(ctx, artistID)
	if err != nil {
		return "", fmt.Errorf("s.repo.FindArtistByID -> %w", err)
	}

	owner := domain.Owner{ID: artist.ID, Type: domain.OwnerTypeArtist, Artist: &artist}
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
	previous, err := s.repo.UpdateArtistProfilePicture(ctx, artistID, publicPath)
	if err != nil {
		s.store.RemoveFileBestEffort(publicPath)

		return "", fmt.Errorf("s.repo.UpdateArtistProfilePicture -> %w", err)
	}

	if previous != "" && previous != publicPath {
		s.store.RemoveFileBestEffort(previous)
	}

	return publicPath, nil
}
