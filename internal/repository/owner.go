package repository

import (
	"context"
	"fmt"

	"github.com/gigguide/gigguide-api/internal/domain"
	"github.com/gigguide/gigguide-api/internal/repository/dao"
)

var (
	ErrArtistNotFound    = dao.ErrArtistNotFound
	ErrOrganiserNotFound = dao.ErrOrganiserNotFound
	ErrMediaNotFound     = dao.ErrMediaNotFound
)

type OwnerDAO interface {
	FindArtists(ctx context.Context) ([]dao.Artist, error)
	FindArtistByID(ctx context.Context, id uint) (dao.Artist, error)
	FindArtistByUserID(ctx context.Context, userID uint) (dao.Artist, error)
	UpdateArtist(ctx context.Context, artist dao.Artist) (dao.Artist, error)
	UpdateArtistSettings(ctx context.Context, artistID uint, settings dao.SettingsBlob) error
	UpdateArtistProfilePicture(ctx context.Context, artistID uint, path string) (string, error)
	AppendArtistGallery(ctx context.Context, artistID uint, paths []string) ([]string, error)
	RemoveArtistGalleryPath(ctx context.Context, artistID uint, path string) ([]string, error)
	FindOrganisers(ctx context.Context) ([]dao.Organiser, error)
	FindOrganiserByID(ctx context.Context, id uint) (dao.Organiser, error)
	FindOrganiserByUserID(ctx context.Context, userID uint) (dao.Organiser, error)
	UpdateOrganiser(ctx context.Context, organiser dao.Organiser) (dao.Organiser, error)
	UpdateOrganiserSettings(ctx context.Context, organiserID uint, settings dao.SettingsBlob) error
	UpdateOrganiserLogo(ctx context.Context, organiserID uint, path string) (string, error)
}

type OwnerRepository struct {
	dao OwnerDAO
}

func NewOwnerRepository(dao OwnerDAO) *OwnerRepository {
	return &OwnerRepository{
		dao: dao,
	}
}

func (r *OwnerRepository) FindArtists(ctx context.Context) ([]domain.Artist, error) {
	found, err := r.dao.FindArtists(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindArtists -> %w", err)
	}

	artists := make([]domain.Artist, len(found))
	for i, a := range found {
		artists[i] = daoArtistToDomain(a)
	}

	return artists, nil
}

func (r *OwnerRepository) FindArtistByID(ctx context.Context, id uint) (domain.Artist, error) {
	found, err := r.dao.FindArtistByID(ctx, id)
	if err != nil {
		return domain.Artist{}, fmt.Errorf("r.dao.FindArtistByID -> %w", err)
	}

	return daoArtistToDomain(found), nil
}

func (r *OwnerRepository) FindArtistByUserID(ctx context.Context, userID uint) (domain.Artist, error) {
	found, err := r.dao.FindArtistByUserID(ctx, userID)
	if err != nil {
		return domain.Artist{}, fmt.Errorf("r.dao.FindArtistByUserID -> %w", err)
	}

	return daoArtistToDomain(found), nil
}

func (r *OwnerRepository) UpdateArtist(ctx context.Context, artist domain.Artist) (domain.Artist, error) {
	updated, err := r.dao.UpdateArtist(ctx, domainArtistToDao(artist))
	if err != nil {
		return domain.Artist{}, fmt.Errorf("r.dao.UpdateArtist -> %w", err)
	}

	return daoArtistToDomain(updated), nil
}

func (r *OwnerRepository) UpdateArtistSettings(ctx context.Context, artistID uint, settings domain.Settings) error {
	if err := r.dao.UpdateArtistSettings(ctx, artistID, domainSettingsToDao(settings)); err != nil {
		return fmt.Errorf("r.dao.UpdateArtistSettings -> %w", err)
	}

	return nil
}

func (r *OwnerRepository) UpdateArtistProfilePicture(ctx context.Context, artistID uint, path string) (string, error) {
	previous, err := r.dao.UpdateArtistProfilePicture(ctx, artistID, path)
	if err != nil {
		return "", fmt.Errorf("r.dao.UpdateArtistProfilePicture -> %w", err)
	}

	return previous, nil
}

func (r *OwnerRepository) AppendArtistGallery(ctx context.Context, artistID uint, paths []string) ([]string, error) {
	gallery, err := r.dao.AppendArtistGallery(ctx, artistID, paths)
	if err != nil {
		return nil, fmt.Errorf("r.dao.AppendArtistGallery -> %w", err)
	}

	return gallery, nil
}

func (r *OwnerRepository) RemoveArtistGalleryPath(ctx context.Context, artistID uint, path string) ([]string, error) {
	gallery, err := r.dao.RemoveArtistGalleryPath(ctx, artistID, path)
	if err != nil {
		return nil, fmt.Errorf("r.dao.RemoveArtistGalleryPath -> %w", err)
	}

	return gallery, nil
}

func (r *OwnerRepository) FindOrganisers(ctx context.Context) ([]domain.Organiser, error) {
	found, err := r.dao.FindOrganisers(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindOrganisers -> %w", err)
	}

	organisers := make([]domain.Organiser, len(found))
	for i, o := range found {
		organisers[i] = daoOrganiserToDomain(o)
	}

	return organisers, nil
}

func (r *OwnerRepository) FindOrganiserByID(ctx context.Context, id uint) (domain.Organiser, error) {
	found, err := r.dao.FindOrganiserByID(ctx, id)
	if err != nil {
		return domain.Organiser{}, fmt.Errorf("r.dao.FindOrganiserByID -> %w", err)
	}

	return daoOrganiserToDomain(found), nil
}

func (r *OwnerRepository) FindOrganiserByUserID(ctx context.Context, userID uint) (domain.Organiser, error) {
	found, err := r.dao.FindOrganiserByUserID(ctx, userID)
	if err != nil {
		return domain.Organiser{}, fmt.Errorf("r.dao.FindOrganiserByUserID -> %w", err)
	}

	return daoOrganiserToDomain(found), nil
}

func (r *OwnerRepository) UpdateOrganiser(ctx context.Context, organiser domain.Organiser) (domain.Organiser, error) {
	updated, err := r.dao.UpdateOrganiser(ctx, domainOrganiserToDao(organiser))
	if err != nil {
		return domain.Organiser{}, fmt.Errorf("r.dao.UpdateOrganiser -> %w", err)
	}

	return daoOrganiserToDomain(updated), nil
}

func (r *OwnerRepository) UpdateOrganiserSettings(ctx context.Context, organiserID uint, settings domain.Settings) error {
	if err := r.dao.UpdateOrganiserSettings(ctx, organiserID, domainSettingsToDao(settings)); err != nil {
		return fmt.Errorf("r.dao.UpdateOrganiserSettings -> %w", err)
	}

	return nil
}

func (r *OwnerRepository) UpdateOrganiserLogo(ctx context.Context, organiserID uint, path string) (string, error) {
	previous, err := r.dao.UpdateOrganiserLogo(ctx, organiserID, path)
	if err != nil {
		return "", fmt.Errorf("r.dao.UpdateOrganiserLogo -> %w", err)
	}

	return previous, nil
}

func daoArtistToDomain(a dao.Artist) domain.Artist {
	return domain.Artist{
		ID:             a.ID,
		UserID:         a.UserID,
		StageName:      a.StageName,
		RealName:       a.RealName,
		Genre:          a.Genre,
		Bio:            a.Bio,
		ContactEmail:   a.ContactEmail,
		PhoneNumber:    a.PhoneNumber,
		Instagram:      a.Instagram,
		Facebook:       a.Facebook,
		Twitter:        a.Twitter,
		ProfilePicture: a.ProfilePicture,
		Settings:       daoSettingsToDomain(a.Settings),
		Gallery:        a.Gallery,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

func domainArtistToDao(a domain.Artist) dao.Artist {
	return dao.Artist{
		ID:             a.ID,
		UserID:         a.UserID,
		StageName:      a.StageName,
		RealName:       a.RealName,
		Genre:          a.Genre,
		Bio:            a.Bio,
		ContactEmail:   a.ContactEmail,
		PhoneNumber:    a.PhoneNumber,
		Instagram:      a.Instagram,
		Facebook:       a.Facebook,
		Twitter:        a.Twitter,
		ProfilePicture: a.ProfilePicture,
		Settings:       domainSettingsToNullable(a.Settings),
		Gallery:        a.Gallery,
	}
}

func daoOrganiserToDomain(o dao.Organiser) domain.Organiser {
	return domain.Organiser{
		ID:           o.ID,
		UserID:       o.UserID,
		Name:         o.Name,
		ContactEmail: o.ContactEmail,
		PhoneNumber:  o.PhoneNumber,
		Website:      o.Website,
		Logo:         o.Logo,
		Settings:     daoSettingsToDomain(o.Settings),
		Gallery:      o.Gallery,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}

func domainOrganiserToDao(o domain.Organiser) dao.Organiser {
	return dao.Organiser{
		ID:           o.ID,
		UserID:       o.UserID,
		Name:         o.Name,
		ContactEmail: o.ContactEmail,
		PhoneNumber:  o.PhoneNumber,
		Website:      o.Website,
		Logo:         o.Logo,
		Settings:     domainSettingsToNullable(o.Settings),
		Gallery:      o.Gallery,
	}
}

func daoSettingsToDomain(s dao.NullableSettings) *domain.Settings {
	if s.Blob == nil {
		return nil
	}

	return &domain.Settings{
		SettingName: s.Blob.SettingName,
		Path:        s.Blob.Path,
		FolderName:  s.Blob.FolderName,
	}
}

func domainSettingsToDao(s domain.Settings) dao.SettingsBlob {
	return dao.SettingsBlob{
		SettingName: s.SettingName,
		Path:        s.Path,
		FolderName:  s.FolderName,
	}
}

func domainSettingsToNullable(s *domain.Settings) dao.NullableSettings {
	if s == nil {
		return dao.NullableSettings{}
	}
	blob := domainSettingsToDao(*s)

	return dao.NullableSettings{Blob: &blob}
}
