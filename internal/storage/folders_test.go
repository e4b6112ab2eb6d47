package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gigguide/gigguide-api/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := New(t.TempDir())
	require.NoError(t, err)
	s.randInt = func(n int) int { return 234 }

	return s
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercases", "Nova", "nova"},
		{"spaces become hyphens", "The Midnight Collective", "the-midnight-collective"},
		{"special characters collapse", "DJ K!LLER & Friends", "dj-k-ller-friends"},
		{"trims edges", "  Echo  ", "echo"},
		{"digits survive", "Crew 54", "crew-54"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.input))
		})
	}
}

func TestNewSettings(t *testing.T) {
	s := newTestStore(t)

	artist := s.NewSettings(domain.OwnerTypeArtist, "Nova Star")
	assert.Equal(t, "Nova Star", artist.SettingName)
	assert.Equal(t, "artists/", artist.Path)
	assert.Equal(t, "3_nova-star_1234", artist.FolderName)

	organiser := s.NewSettings(domain.OwnerTypeOrganiser, "Gig Co")
	assert.Equal(t, "organiser/", organiser.Path)
	assert.Equal(t, "4_gig-co_1234", organiser.FolderName)
}

func TestEnsureSettings_ReusesPersistedBlob(t *testing.T) {
	s := newTestStore(t)

	persisted := &domain.Settings{
		SettingName: "Nova",
		Path:        "artists/",
		FolderName:  "3_nova_9876",
	}
	owner := domain.Owner{
		ID:     1,
		Type:   domain.OwnerTypeArtist,
		Artist: &domain.Artist{ID: 1, StageName: "Nova", Settings: persisted},
	}

	settings, generated := s.EnsureSettings(owner)
	assert.False(t, generated)
	assert.Equal(t, *persisted, settings)
}

func TestEnsureSettings_MintsWhenMissing(t *testing.T) {
	s := newTestStore(t)

	owner := domain.Owner{
		ID:     2,
		Type:   domain.OwnerTypeOrganiser,
		Organiser: &domain.Organiser{
			ID:   2,
			Name: "Gig Co",
		},
	}

	settings, generated := s.EnsureSettings(owner)
	assert.True(t, generated)
	assert.Equal(t, "4_gig-co_1234", settings.FolderName)
}

func TestEnsureFolder(t *testing.T) {
	s := newTestStore(t)
	settings := s.NewSettings(domain.OwnerTypeArtist, "Nova")

	dir, err := s.EnsureFolder(settings, domain.OwnerTypeArtist)
	require.NoError(t, err)

	for _, sub := range []string{"events", "venues", "profile", "gallery"} {
		info, statErr := os.Stat(filepath.Join(dir, sub))
		require.NoError(t, statErr)
		assert.True(t, info.IsDir())
	}

	// Re-running is a no-op, not an error.
	again, err := s.EnsureFolder(settings, domain.OwnerTypeArtist)
	require.NoError(t, err)
	assert.Equal(t, dir, again)
}

func TestEnsureFolder_OrganiserHasNoGallerySubfolder(t *testing.T) {
	s := newTestStore(t)
	settings := s.NewSettings(domain.OwnerTypeOrganiser, "Gig Co")

	dir, err := s.EnsureFolder(settings, domain.OwnerTypeOrganiser)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "profile"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "gallery"))
	assert.True(t, os.IsNotExist(err))
}

func TestEntityDir(t *testing.T) {
	s := newTestStore(t)
	settings := s.NewSettings(domain.OwnerTypeArtist, "Nova")
	_, err := s.EnsureFolder(settings, domain.OwnerTypeArtist)
	require.NoError(t, err)

	dir, err := s.EntityDir(settings, "venues", 7, "The Basement")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(s.OwnerDir(settings), "venues", "7_the-basement"), dir)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestPublicPathDiskPathRoundTrip(t *testing.T) {
	s := newTestStore(t)
	settings := s.NewSettings(domain.OwnerTypeArtist, "Nova")

	public := s.PublicPath(settings, "gallery", "gallery_1_pic.jpg")
	assert.Equal(t, "/artists/3_nova_1234/gallery/gallery_1_pic.jpg", public)

	disk := s.DiskPath(public)
	assert.Equal(t, filepath.Join(s.BasePath(), "artists", "3_nova_1234", "gallery", "gallery_1_pic.jpg"), disk)
}
