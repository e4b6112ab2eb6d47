package service

import (
	"context"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gigguide/gigguide-api/internal/domain"
	"github.com/gigguide/gigguide-api/internal/repository"
)

type fakeVenueRepo struct {
	venues map[uint]domain.Venue
	nextID uint
}

func newFakeVenueRepo() *fakeVenueRepo {
	return &fakeVenueRepo{venues: map[uint]domain.Venue{}}
}

func (f *fakeVenueRepo) Create(ctx context.Context, venue domain.Venue) (domain.Venue, error) {
	f.nextID++
	venue.ID = f.nextID
	f.venues[venue.ID] = venue

	return venue, nil
}

func (f *fakeVenueRepo) FindAll(ctx context.Context) ([]domain.Venue, error) {
	out := make([]domain.Venue, 0, len(f.venues))
	for _, v := range f.venues {
		out = append(out, v)
	}

	return out, nil
}

func (f *fakeVenueRepo) FindByID(ctx context.Context, id uint) (domain.Venue, error) {
	v, ok := f.venues[id]
	if !ok {
		return domain.Venue{}, repository.ErrVenueNotFound
	}

	return v, nil
}

func (f *fakeVenueRepo) FindByOwner(ctx context.Context, ownerID uint, ownerType domain.OwnerType) ([]domain.Venue, error) {
	out := []domain.Venue{}
	for _, v := range f.venues {
		if v.OwnerID == ownerID && v.OwnerType == ownerType {
			out = append(out, v)
		}
	}

	return out, nil
}

func (f *fakeVenueRepo) Update(ctx context.Context, venue domain.Venue) (domain.Venue, error) {
	if _, ok := f.venues[venue.ID]; !ok {
		return domain.Venue{}, repository.ErrVenueNotFound
	}
	f.venues[venue.ID] = venue

	return venue, nil
}

func (f *fakeVenueRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := f.venues[id]; !ok {
		return repository.ErrVenueNotFound
	}
	delete(f.venues, id)

	return nil
}

func (f *fakeVenueRepo) UpdateMainPicture(ctx context.Context, venueID uint, path string) (string, error) {
	v, ok := f.venues[venueID]
	if !ok {
		return "", repository.ErrVenueNotFound
	}
	previous := v.MainPicture
	v.MainPicture = path
	f.venues[venueID] = v

	return previous, nil
}

func (f *fakeVenueRepo) AppendGallery(ctx context.Context, venueID uint, paths []string) ([]string, error) {
	v, ok := f.venues[venueID]
	if !ok {
		return nil, repository.ErrVenueNotFound
	}
	v.Gallery = append(v.Gallery, paths...)
	f.venues[venueID] = v

	return v.Gallery, nil
}

func (f *fakeVenueRepo) RemoveGalleryPath(ctx context.Context, venueID uint, path string) ([]string, error) {
	v, ok := f.venues[venueID]
	if !ok {
		return nil, repository.ErrVenueNotFound
	}

	kept := v.Gallery[:0:0]
	for _, p := range v.Gallery {
		if p != path {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(v.Gallery) {
		return nil, repository.ErrMediaNotFound
	}
	v.Gallery = kept
	f.venues[venueID] = v

	return v.Gallery, nil
}

func newVenueFixture() (*fakeVenueRepo, *fakeOwnerRepo, *fakeMediaStore, *VenueService) {
	venueRepo := newFakeVenueRepo()
	ownerRepo := newFakeOwnerRepo()
	store := newFakeMediaStore()
	svc := NewVenueService(venueRepo, NewOwnerService(ownerRepo, store), store)

	ownerRepo.artists[1] = domain.Artist{ID: 1, UserID: 10, StageName: "Nova"}
	ownerRepo.organisers[2] = domain.Organiser{ID: 2, UserID: 20, Name: "GigCo"}

	return venueRepo, ownerRepo, store, svc
}

func TestVenueService_CreateVenue_OwnerFromActor(t *testing.T) {
	_, _, _, svc := newVenueFixture()

	created, err := svc.CreateVenue(context.Background(), domain.Venue{Name: "The Basement"}, 10)
	require.NoError(t, err)

	assert.Equal(t, uint(1), created.OwnerID)
	assert.Equal(t, domain.OwnerTypeArtist, created.OwnerType)
	assert.NotNil(t, created.Gallery)
}

func TestVenueService_CreateVenue_ExplicitOwnerWins(t *testing.T) {
	_, _, _, svc := newVenueFixture()

	created, err := svc.CreateVenue(context.Background(), domain.Venue{
		Name:      "The Basement",
		OwnerID:   2,
		OwnerType: domain.OwnerTypeOrganiser,
	}, 10)
	require.NoError(t, err)

	assert.Equal(t, uint(2), created.OwnerID)
	assert.Equal(t, domain.OwnerTypeOrganiser, created.OwnerType)
}

func TestVenueService_CreateVenue_ExplicitOwnerValidated(t *testing.T) {
	_, _, _, svc := newVenueFixture()

	_, err := svc.CreateVenue(context.Background(), domain.Venue{
		Name:      "The Basement",
		OwnerID:   2,
		OwnerType: domain.OwnerTypeArtist,
	}, 10)
	assert.ErrorIs(t, err, ErrInvalidOwner)
}

func TestVenueService_CreateVenue_ActorWithoutProfile(t *testing.T) {
	_, _, _, svc := newVenueFixture()

	_, err := svc.CreateVenue(context.Background(), domain.Venue{Name: "The Basement"}, 99)
	assert.ErrorIs(t, err, ErrOwnerNotFound)
}

func TestVenueService_UpdateVenue_OwnershipEnforced(t *testing.T) {
	venueRepo, _, _, svc := newVenueFixture()
	venueRepo.venues[5] = domain.Venue{ID: 5, Name: "The Basement", OwnerID: 1, OwnerType: domain.OwnerTypeArtist}
	venueRepo.nextID = 5

	updated, err := svc.UpdateVenue(context.Background(), domain.Venue{ID: 5, Name: "The Cellar", OwnerID: 1, OwnerType: domain.OwnerTypeArtist}, 10)
	require.NoError(t, err)
	assert.Equal(t, "The Cellar", updated.Name)

	_, err = svc.UpdateVenue(context.Background(), domain.Venue{ID: 5, Name: "Hijacked"}, 20)
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestVenueService_DeleteVenue_OwnershipEnforced(t *testing.T) {
	venueRepo, _, _, svc := newVenueFixture()
	venueRepo.venues[5] = domain.Venue{ID: 5, Name: "The Basement", OwnerID: 2, OwnerType: domain.OwnerTypeOrganiser}

	err := svc.DeleteVenue(context.Background(), 5, 10)
	assert.ErrorIs(t, err, ErrNotOwner)

	require.NoError(t, svc.DeleteVenue(context.Background(), 5, 20))
	assert.Empty(t, venueRepo.venues)
}

func TestVenueService_DeleteVenue_NotFound(t *testing.T) {
	_, _, _, svc := newVenueFixture()

	err := svc.DeleteVenue(context.Background(), 99, 10)
	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestVenueService_UploadMainPicture(t *testing.T) {
	venueRepo, _, store, svc := newVenueFixture()
	venueRepo.venues[5] = domain.Venue{
		ID: 5, Name: "The Basement",
		OwnerID: 1, OwnerType: domain.OwnerTypeArtist,
		MainPicture: "/artists/fake_nova/venues/5_the-basement/venue_main_old.png",
	}

	path, err := svc.UploadMainPicture(context.Background(), 5, fh("front.png"))
	require.NoError(t, err)

	assert.Equal(t, "/artists/fake_nova/venues/5_the-basement/venue_main_front.png", path)
	assert.Equal(t, path, venueRepo.venues[5].MainPicture)
	assert.Equal(t, []string{"/artists/fake_nova/venues/5_the-basement/venue_main_old.png"}, store.removed)
}

func TestVenueService_UploadGallery_MixedBatch(t *testing.T) {
	venueRepo, _, store, svc := newVenueFixture()
	venueRepo.venues[5] = domain.Venue{ID: 5, Name: "The Basement", OwnerID: 2, OwnerType: domain.OwnerTypeOrganiser}
	store.saveErrs["bad.txt"] = assert.AnError

	result, err := svc.UploadGallery(context.Background(), 5, []*multipart.FileHeader{fh("stage.png"), fh("bad.txt")})
	require.NoError(t, err)

	assert.Len(t, result.Accepted, 1)
	assert.Len(t, result.Rejected, 1)
	assert.Equal(t, []string{"/organiser/fake_gigco/venues/5_the-basement/venue_gallery_stage.png"}, result.Gallery)
}

func TestVenueService_DeleteGalleryImage(t *testing.T) {
	venueRepo, _, store, svc := newVenueFixture()
	venueRepo.venues[5] = domain.Venue{
		ID: 5, Name: "The Basement", OwnerID: 1, OwnerType: domain.OwnerTypeArtist,
		Gallery: []string{"/a.png", "/b.png"},
	}

	gallery, err := svc.DeleteGalleryImage(context.Background(), 5, "/a.png")
	require.NoError(t, err)
	assert.Equal(t, []string{"/b.png"}, gallery)
	assert.Equal(t, []string{"/a.png"}, store.removed)
}

func TestVenueService_ListVenuesByOwner(t *testing.T) {
	venueRepo, _, _, svc := newVenueFixture()
	venueRepo.venues[1] = domain.Venue{ID: 1, OwnerID: 1, OwnerType: domain.OwnerTypeArtist}
	venueRepo.venues[2] = domain.Venue{ID: 2, OwnerID: 2, OwnerType: domain.OwnerTypeOrganiser}

	venues, err := svc.ListVenuesByOwner(context.Background(), 1, domain.OwnerTypeArtist)
	require.NoError(t, err)
	assert.Len(t, venues, 1)

	_, err = svc.ListVenuesByOwner(context.Background(), 1, "band")
	assert.ErrorIs(t, err, ErrInvalidOwner)
}
