package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gigguide/gigguide-api/internal/domain"
	"github.com/gigguide/gigguide-api/internal/repository"
)

type fakeEventRepo struct {
	events map[uint]domain.Event
	nextID uint
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: map[uint]domain.Event{}}
}

func (f *fakeEventRepo) Create(ctx context.Context, event domain.Event) (domain.Event, error) {
	f.nextID++
	event.ID = f.nextID
	f.events[event.ID] = event

	return event, nil
}

func (f *fakeEventRepo) FindAll(ctx context.Context) ([]domain.Event, error) {
	out := make([]domain.Event, 0, len(f.events))
	for _, e := range f.events {
		out = append(out, e)
	}

	return out, nil
}

func (f *fakeEventRepo) FindByID(ctx context.Context, id uint) (domain.Event, error) {
	e, ok := f.events[id]
	if !ok {
		return domain.Event{}, repository.ErrEventNotFound
	}

	return e, nil
}

func (f *fakeEventRepo) FindByOwner(ctx context.Context, ownerID uint, ownerType domain.OwnerType) ([]domain.Event, error) {
	out := []domain.Event{}
	for _, e := range f.events {
		if e.OwnerID == ownerID && e.OwnerType == ownerType {
			out = append(out, e)
		}
	}

	return out, nil
}

func (f *fakeEventRepo) Update(ctx context.Context, event domain.Event) (domain.Event, error) {
	if _, ok := f.events[event.ID]; !ok {
		return domain.Event{}, repository.ErrEventNotFound
	}
	f.events[event.ID] = event

	return event, nil
}

func (f *fakeEventRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := f.events[id]; !ok {
		return repository.ErrEventNotFound
	}
	delete(f.events, id)

	return nil
}

func (f *fakeEventRepo) UpdatePoster(ctx context.Context, eventID uint, path string) (string, error) {
	e, ok := f.events[eventID]
	if !ok {
		return "", repository.ErrEventNotFound
	}
	previous := e.Poster
	e.Poster = path
	f.events[eventID] = e

	return previous, nil
}

func (f *fakeEventRepo) AppendGallery(ctx context.Context, eventID uint, paths []string) ([]string, error) {
	e, ok := f.events[eventID]
	if !ok {
		return nil, repository.ErrEventNotFound
	}
	e.Gallery = append(e.Gallery, paths...)
	f.events[eventID] = e

	return e.Gallery, nil
}

func (f *fakeEventRepo) RemoveGalleryPath(ctx context.Context, eventID uint, path string) ([]string, error) {
	e, ok := f.events[eventID]
	if !ok {
		return nil, repository.ErrEventNotFound
	}

	kept := e.Gallery[:0:0]
	for _, p := range e.Gallery {
		if p != path {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(e.Gallery) {
		return nil, repository.ErrMediaNotFound
	}
	e.Gallery = kept
	f.events[eventID] = e

	return e.Gallery, nil
}

func newEventFixture() (*fakeEventRepo, *fakeOwnerRepo, *fakeMediaStore, *EventService) {
	eventRepo := newFakeEventRepo()
	ownerRepo := newFakeOwnerRepo()
	store := newFakeMediaStore()
	svc := NewEventService(eventRepo, NewOwnerService(ownerRepo, store), store)

	ownerRepo.artists[1] = domain.Artist{ID: 1, UserID: 10, StageName: "Nova"}
	ownerRepo.organisers[2] = domain.Organiser{ID: 2, UserID: 20, Name: "GigCo"}

	return eventRepo, ownerRepo, store, svc
}

func TestEventService_CreateEvent_DefaultsStatus(t *testing.T) {
	_, _, _, svc := newEventFixture()

	created, err := svc.CreateEvent(context.Background(), domain.Event{Name: "Open Mic"}, 10)
	require.NoError(t, err)

	assert.Equal(t, domain.EventStatusScheduled, created.Status)
	assert.Equal(t, uint(1), created.OwnerID)
	assert.Equal(t, domain.OwnerTypeArtist, created.OwnerType)
}

func TestEventService_CreateEvent_KeepsExplicitStatus(t *testing.T) {
	_, _, _, svc := newEventFixture()

	created, err := svc.CreateEvent(context.Background(), domain.Event{Name: "Open Mic", Status: "cancelled"}, 10)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", created.Status)
}

func TestEventService_UpdateEvent_OwnershipEnforced(t *testing.T) {
	eventRepo, _, _, svc := newEventFixture()
	eventRepo.events[3] = domain.Event{ID: 3, Name: "Open Mic", OwnerID: 2, OwnerType: domain.OwnerTypeOrganiser}

	_, err := svc.UpdateEvent(context.Background(), domain.Event{ID: 3, Name: "Hijacked"}, 10)
	assert.ErrorIs(t, err, ErrNotOwner)

	updated, err := svc.UpdateEvent(context.Background(), domain.Event{ID: 3, Name: "Open Mic Night", OwnerID: 2, OwnerType: domain.OwnerTypeOrganiser}, 20)
	require.NoError(t, err)
	assert.Equal(t, "Open Mic Night", updated.Name)
}

func TestEventService_UploadPoster_ReplacesPrevious(t *testing.T) {
	eventRepo, _, store, svc := newEventFixture()
	eventRepo.events[3] = domain.Event{
		ID: 3, Name: "Open Mic",
		OwnerID: 2, OwnerType: domain.OwnerTypeOrganiser,
		Poster: "/organiser/fake_gigco/events/3_open-mic/event_poster_old.png",
	}

	path, err := svc.UploadPoster(context.Background(), 3, fh("flyer.png"))
	require.NoError(t, err)

	assert.Equal(t, "/organiser/fake_gigco/events/3_open-mic/event_poster_flyer.png", path)
	assert.Equal(t, path, eventRepo.events[3].Poster)
	assert.Equal(t, []string{"/organiser/fake_gigco/events/3_open-mic/event_poster_old.png"}, store.removed)
}

func TestEventService_DeleteEvent_NotFound(t *testing.T) {
	_, _, _, svc := newEventFixture()

	err := svc.DeleteEvent(context.Background(), 99, 10)
	assert.ErrorIs(t, err, ErrEventNotFound)
}
