package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gigguide/gigguide-api/internal/domain"
	"github.com/gigguide/gigguide-api/internal/repository"
)

var (
	ErrFavoriteExists      = repository.ErrFavoriteExists
	ErrFavoriteNotFound    = repository.ErrFavoriteNotFound
	ErrInvalidFavoriteType = errors.New("unknown favorite type")
)

type FavoriteRepository interface {
	Create(ctx context.Context, userID uint, favType domain.FavoriteType, itemID uint) (domain.Favorite, error)
	Delete(ctx context.Context, userID uint, favType domain.FavoriteType, itemID uint) error
	Exists(ctx context.Context, userID uint, favType domain.FavoriteType, itemID uint) (bool, error)
	FindByUser(ctx context.Context, userID uint, favType domain.FavoriteType) ([]domain.Favorite, error)
}

type FavoriteService struct {
	repo FavoriteRepository
}

func NewFavoriteService(repo FavoriteRepository) *FavoriteService {
	return &FavoriteService{repo: repo}
}

func (s *FavoriteService) Add(ctx context.Context, userID uint, favType domain.FavoriteType, itemID uint) (domain.Favorite, error) {
	if !favType.Valid() {
		return domain.Favorite{}, ErrInvalidFavoriteType
	}

	fav, err := s.repo.Create(ctx, userID, favType, itemID)
	if err != nil {
		return domain.Favorite{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return fav, nil
}

func (s *FavoriteService) Remove(ctx context.Context, userID uint, favType domain.FavoriteType, itemID uint) error {
	if !favType.Valid() {
		return ErrInvalidFavoriteType
	}

	if err := s.repo.Delete(ctx, userID, favType, itemID); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

func (s *FavoriteService) Check(ctx context.Context, userID uint, favType domain.FavoriteType, itemID uint) (bool, error) {
	if !favType.Valid() {
		return false, ErrInvalidFavoriteType
	}

	exists, err := s.repo.Exists(ctx, userID, favType, itemID)
	if err != nil {
		return false, fmt.Errorf("s.repo.Exists -> %w", err)
	}

	return exists, nil
}

func (s *FavoriteService) List(ctx context.Context, userID uint, favType domain.FavoriteType) ([]domain.Favorite, error) {
	if !favType.Valid() {
		return nil, ErrInvalidFavoriteType
	}

	favs, err := s.repo.FindByUser(ctx, userID, favType)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByUser -> %w", err)
	}

	return favs, nil
}

// ListAll groups every favorite the user has, keyed by type.
func (s *FavoriteService) ListAll(ctx context.Context, userID uint) (map[domain.FavoriteType][]domain.Favorite, error) {
	all := make(map[domain.FavoriteType][]domain.Favorite, len(domain.FavoriteTypes))
	for _, favType := range domain.FavoriteTypes {
		favs, err := s.repo.FindByUser(ctx, userID, favType)
		if err != nil {
			return nil, fmt.Errorf("s.repo.FindByUser -> %w", err)
		}
		all[favType] = favs
	}

	return all, nil
}
