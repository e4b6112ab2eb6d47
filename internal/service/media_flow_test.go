package service

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gigguide/gigguide-api/internal/domain"
	"github.com/gigguide/gigguide-api/internal/storage"
)

var artistFolderPattern = regexp.MustCompile(`^3_nova_\d{4}$`)

func pngFileHeader(t *testing.T, filename string) *multipart.FileHeader {
	t.Helper()

	content := append([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}, make([]byte, 64)...)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	return req.MultipartForm.File["file"][0]
}

// Registration provisions the disk tree, uploads land in it and deletion
// restores the prior state, with the database rows and the filesystem moving
// together at every step.
func TestArtistMediaFlow_OnDisk(t *testing.T) {
	base := t.TempDir()
	store, err := storage.New(base)
	require.NoError(t, err)

	userRepo := newFakeUserRepo()
	authSvc := NewAuthService(userRepo, store)

	_, err = authSvc.Register(context.Background(), Registration{
		Username: "nova",
		Email:    "nova@example.com",
		Password: "sup3rsecret",
		Role:     domain.RoleArtist,
	})
	require.NoError(t, err)

	require.Len(t, userRepo.artists, 1)
	registered := userRepo.artists[0]
	require.NotNil(t, registered.Settings)
	assert.Regexp(t, artistFolderPattern, registered.Settings.FolderName)

	ownerDir := filepath.Join(base, "artists", registered.Settings.FolderName)
	for _, sub := range []string{"events", "venues", "profile", "gallery"} {
		info, statErr := os.Stat(filepath.Join(ownerDir, sub))
		require.NoError(t, statErr, sub)
		assert.True(t, info.IsDir())
	}

	artistRepo := newFakeArtistRepo()
	artistRepo.artists[registered.ID] = registered
	ownerRepo := newFakeOwnerRepo()
	ownerRepo.artists[registered.ID] = registered
	svc := NewArtistService(artistRepo, NewOwnerService(ownerRepo, store), store)

	result, err := svc.UploadGallery(context.Background(), registered.ID, []*multipart.FileHeader{
		pngFileHeader(t, "live shot.png"),
	})
	require.NoError(t, err)
	require.Len(t, result.Accepted, 1)
	require.Empty(t, result.Rejected)

	uploaded := result.Accepted[0].Path
	assert.Equal(t, []string{uploaded}, result.Gallery)
	assert.FileExists(t, store.DiskPath(uploaded))

	gallery, err := svc.DeleteGalleryImage(context.Background(), registered.ID, uploaded)
	require.NoError(t, err)
	assert.Empty(t, gallery)
	assert.NoFileExists(t, store.DiskPath(uploaded))

	entries, err := os.ReadDir(filepath.Join(ownerDir, "gallery"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}
