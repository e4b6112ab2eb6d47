package repository

import (
	"context"
	"fmt"

	"github.com/gigguide/gigguide-api/internal/domain"
	"github.com/gigguide/gigguide-api/internal/repository/dao"
)

var (
	ErrFavoriteExists   = dao.ErrFavoriteExists
	ErrFavoriteNotFound = dao.ErrFavoriteNotFound
)

type FavoriteDAO interface {
	Insert(ctx context.Context, favoriteType string, userID, itemID uint) (dao.FavoriteRow, error)
	Delete(ctx context.Context, favoriteType string, userID, itemID uint) error
	Exists(ctx context.Context, favoriteType string, userID, itemID uint) (bool, error)
	FindByUser(ctx context.Context, favoriteType string, userID uint) ([]dao.FavoriteRow, error)
}

type FavoriteRepository struct {
	dao FavoriteDAO
}

func NewFavoriteRepository(dao FavoriteDAO) *FavoriteRepository {
	return &FavoriteRepository{
		dao: dao,
	}
}

func (r *FavoriteRepository) Create(ctx context.Context, userID uint, favoriteType domain.FavoriteType, itemID uint) (domain.Favorite, error) {
	created, err := r.dao.Insert(ctx, string(favoriteType), userID, itemID)
	if err != nil {
		return domain.Favorite{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return daoFavoriteToDomain(created, favoriteType), nil
}

func (r *FavoriteRepository) Delete(ctx context.Context, userID uint, favoriteType domain.FavoriteType, itemID uint) error {
	if err := r.dao.Delete(ctx, string(favoriteType), userID, itemID); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *FavoriteRepository) Exists(ctx context.Context, userID uint, favoriteType domain.FavoriteType, itemID uint) (bool, error) {
	exists, err := r.dao.Exists(ctx, string(favoriteType), userID, itemID)
	if err != nil {
		return false, fmt.Errorf("r.dao.Exists -> %w", err)
	}

	return exists, nil
}

func (r *FavoriteRepository) FindByUser(ctx context.Context, userID uint, favoriteType domain.FavoriteType) ([]domain.Favorite, error) {
	found, err := r.dao.FindByUser(ctx, string(favoriteType), userID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByUser -> %w", err)
	}

	favorites := make([]domain.Favorite, len(found))
	for i, row := range found {
		favorites[i] = daoFavoriteToDomain(row, favoriteType)
	}

	return favorites, nil
}

func daoFavoriteToDomain(row dao.FavoriteRow, favoriteType domain.FavoriteType) domain.Favorite {
	return domain.Favorite{
		ID:        row.ID,
		UserID:    row.UserID,
		Type:      favoriteType,
		ItemID:    row.ItemID,
		CreatedAt: row.CreatedAt,
	}
}
