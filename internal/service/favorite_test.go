package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gigguide/gigguide-api/internal/domain"
	"github.com/gigguide/gigguide-api/internal/repository"
)

type favKey struct {
	userID uint
	typ    domain.FavoriteType
	itemID uint
}

type fakeFavoriteRepo struct {
	favs   map[favKey]domain.Favorite
	nextID uint
}

func newFakeFavoriteRepo() *fakeFavoriteRepo {
	return &fakeFavoriteRepo{favs: map[favKey]domain.Favorite{}}
}

func (f *fakeFavoriteRepo) Create(ctx context.Context, userID uint, favType domain.FavoriteType, itemID uint) (domain.Favorite, error) {
	key := favKey{userID, favType, itemID}
	if _, ok := f.favs[key]; ok {
		return domain.Favorite{}, repository.ErrFavoriteExists
	}

	f.nextID++
	fav := domain.Favorite{ID: f.nextID, UserID: userID, Type: favType, ItemID: itemID}
	f.favs[key] = fav

	return fav, nil
}

func (f *fakeFavoriteRepo) Delete(ctx context.Context, userID uint, favType domain.FavoriteType, itemID uint) error {
	key := favKey{userID, favType, itemID}
	if _, ok := f.favs[key]; !ok {
		return repository.ErrFavoriteNotFound
	}
	delete(f.favs, key)

	return nil
}

func (f *fakeFavoriteRepo) Exists(ctx context.Context, userID uint, favType domain.FavoriteType, itemID uint) (bool, error) {
	_, ok := f.favs[favKey{userID, favType, itemID}]

	return ok, nil
}

func (f *fakeFavoriteRepo) FindByUser(ctx context.Context, userID uint, favType domain.FavoriteType) ([]domain.Favorite, error) {
	out := []domain.Favorite{}
	for key, fav := range f.favs {
		if key.userID == userID && key.typ == favType {
			out = append(out, fav)
		}
	}

	return out, nil
}

func TestFavoriteService_AddRemoveCheck(t *testing.T) {
	svc := NewFavoriteService(newFakeFavoriteRepo())
	ctx := context.Background()

	fav, err := svc.Add(ctx, 1, domain.FavoriteTypeEvent, 42)
	require.NoError(t, err)
	assert.Equal(t, domain.FavoriteTypeEvent, fav.Type)
	assert.Equal(t, uint(42), fav.ItemID)

	exists, err := svc.Check(ctx, 1, domain.FavoriteTypeEvent, 42)
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = svc.Add(ctx, 1, domain.FavoriteTypeEvent, 42)
	assert.ErrorIs(t, err, ErrFavoriteExists)

	require.NoError(t, svc.Remove(ctx, 1, domain.FavoriteTypeEvent, 42))

	exists, err = svc.Check(ctx, 1, domain.FavoriteTypeEvent, 42)
	require.NoError(t, err)
	assert.False(t, exists)

	err = svc.Remove(ctx, 1, domain.FavoriteTypeEvent, 42)
	assert.ErrorIs(t, err, ErrFavoriteNotFound)
}

func TestFavoriteService_RejectsUnknownType(t *testing.T) {
	svc := NewFavoriteService(newFakeFavoriteRepo())
	ctx := context.Background()

	_, err := svc.Add(ctx, 1, "playlist", 1)
	assert.ErrorIs(t, err, ErrInvalidFavoriteType)

	assert.ErrorIs(t, svc.Remove(ctx, 1, "playlist", 1), ErrInvalidFavoriteType)

	_, err = svc.Check(ctx, 1, "", 1)
	assert.ErrorIs(t, err, ErrInvalidFavoriteType)

	_, err = svc.List(ctx, 1, "playlist")
	assert.ErrorIs(t, err, ErrInvalidFavoriteType)
}

func TestFavoriteService_ListAllGroupsByType(t *testing.T) {
	repo := newFakeFavoriteRepo()
	svc := NewFavoriteService(repo)
	ctx := context.Background()

	_, err := svc.Add(ctx, 1, domain.FavoriteTypeArtist, 3)
	require.NoError(t, err)
	_, err = svc.Add(ctx, 1, domain.FavoriteTypeVenue, 7)
	require.NoError(t, err)
	_, err = svc.Add(ctx, 2, domain.FavoriteTypeVenue, 7)
	require.NoError(t, err)

	all, err := svc.ListAll(ctx, 1)
	require.NoError(t, err)

	require.Len(t, all, len(domain.FavoriteTypes))
	assert.Len(t, all[domain.FavoriteTypeArtist], 1)
	assert.Len(t, all[domain.FavoriteTypeVenue], 1)
	assert.Empty(t, all[domain.FavoriteTypeEvent])
	assert.Empty(t, all[domain.FavoriteTypeOrganiser])
	assert.Equal(t, uint(3), all[domain.FavoriteTypeArtist][0].ItemID)
}
