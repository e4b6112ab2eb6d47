package service

import (
	"context"
	"mime/multipart"
	"path"
	"strings"
	"sync"

	"github.com/gigguide/gigguide-api/internal/domain"
	"github.com/gigguide/gigguide-api/internal/repository"
)

// fakeMediaStore satisfies MediaStore, ProvisioningStore and RegistrationStore
// without touching the filesystem.
type fakeMediaStore struct {
	mu sync.Mutex

	saveErrs        map[string]error
	ensureFolderErr error

	saved         []string
	removed       []string
	foldersMade   int
	mintedFolders int
}

func newFakeMediaStore() *fakeMediaStore {
	return &fakeMediaStore{saveErrs: map[string]error{}}
}

func (f *fakeMediaStore) EnsureSettings(owner domain.Owner) (domain.Settings, bool) {
	if s := owner.Settings(); s != nil && s.FolderName != "" {
		return *s, false
	}

	f.mu.Lock()
	f.mintedFolders++
	f.mu.Unlock()

	return f.NewSettings(owner.Type, owner.Username()), true
}

func (f *fakeMediaStore) NewSettings(ownerType domain.OwnerType, name string) domain.Settings {
	base := "artists/"
	if ownerType == domain.OwnerTypeOrganiser {
		base = "organiser/"
	}

	return domain.Settings{
		SettingName: name,
		Path:        base,
		FolderName:  "fake_" + strings.ToLower(name),
	}
}

func (f *fakeMediaStore) EnsureFolder(settings domain.Settings, ownerType domain.OwnerType) (string, error) {
	if f.ensureFolderErr != nil {
		return "", f.ensureFolderErr
	}

	f.mu.Lock()
	f.foldersMade++
	f.mu.Unlock()

	return "/data/" + settings.FolderName, nil
}

func (f *fakeMediaStore) OwnerDir(settings domain.Settings) string {
	return "/data/" + settings.FolderName
}

func (f *fakeMediaStore) EntityDir(settings domain.Settings, subfolder string, entityID uint, entityName string) (string, error) {
	return path.Join(f.OwnerDir(settings), subfolder), nil
}

func (f *fakeMediaStore) PublicPath(settings domain.Settings, elems ...string) string {
	parts := append([]string{strings.TrimSuffix(settings.Path, "/"), settings.FolderName}, elems...)

	return "/" + strings.Join(parts, "/")
}

func (f *fakeMediaStore) SaveFile(dir string, kind domain.MediaKind, fh *multipart.FileHeader) (string, error) {
	if err := f.saveErrs[fh.Filename]; err != nil {
		return "", err
	}

	name := string(kind) + "_" + fh.Filename

	f.mu.Lock()
	f.saved = append(f.saved, name)
	f.mu.Unlock()

	return name, nil
}

func (f *fakeMediaStore) RemoveFile(publicPath string) error {
	f.mu.Lock()
	f.removed = append(f.removed, publicPath)
	f.mu.Unlock()

	return nil
}

func (f *fakeMediaStore) RemoveFileBestEffort(publicPath string) {
	_ = f.RemoveFile(publicPath)
}

// fakeOwnerRepo keys artists and organisers by both profile ID and user ID.
type fakeOwnerRepo struct {
	mu         sync.Mutex
	artists    map[uint]domain.Artist
	organisers map[uint]domain.Organiser
}

func newFakeOwnerRepo() *fakeOwnerRepo {
	return &fakeOwnerRepo{
		artists:    map[uint]domain.Artist{},
		organisers: map[uint]domain.Organiser{},
	}
}

func (f *fakeOwnerRepo) FindArtistByID(ctx context.Context, id uint) (domain.Artist, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	a, ok := f.artists[id]
	if !ok {
		return domain.Artist{}, repository.ErrArtistNotFound
	}

	return a, nil
}

func (f *fakeOwnerRepo) FindArtistByUserID(ctx context.Context, userID uint) (domain.Artist, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, a := range f.artists {
		if a.UserID == userID {
			return a, nil
		}
	}

	return domain.Artist{}, repository.ErrArtistNotFound
}

func (f *fakeOwnerRepo) UpdateArtistSettings(ctx context.Context, artistID uint, settings domain.Settings) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	a, ok := f.artists[artistID]
	if !ok {
		return repository.ErrArtistNotFound
	}
	a.Settings = &settings
	f.artists[artistID] = a

	return nil
}

func (f *fakeOwnerRepo) FindOrganiserByID(ctx context.Context, id uint) (domain.Organiser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	o, ok := f.organisers[id]
	if !ok {
		return domain.Organiser{}, repository.ErrOrganiserNotFound
	}

	return o, nil
}

func (f *fakeOwnerRepo) FindOrganiserByUserID(ctx context.Context, userID uint) (domain.Organiser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, o := range f.organisers {
		if o.UserID == userID {
			return o, nil
		}
	}

	return domain.Organiser{}, repository.ErrOrganiserNotFound
}

func (f *fakeOwnerRepo) UpdateOrganiserSettings(ctx context.Context, organiserID uint, settings domain.Settings) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	o, ok := f.organisers[organiserID]
	if !ok {
		return repository.ErrOrganiserNotFound
	}
	o.Settings = &settings
	f.organisers[organiserID] = o

	return nil
}
