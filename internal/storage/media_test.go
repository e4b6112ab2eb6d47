package storage

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gigguide/gigguide-api/internal/domain"
)

var (
	pngBytes  = append([]byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}, make([]byte, 64)...)
	jpegBytes = append([]byte{0xFF, 0xD8, 0xFF, 0xE0}, make([]byte, 64)...)
	gifBytes  = append([]byte("GIF89a"), make([]byte, 64)...)
)

func makeFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))

	return req.MultipartForm.File["file"][0]
}

func TestValidateImage(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		content  []byte
		wantType string
		wantErr  bool
	}{
		{"png", "pic.png", pngBytes, "image/png", false},
		{"jpeg", "pic.jpg", jpegBytes, "image/jpeg", false},
		{"gif", "pic.gif", gifBytes, "image/gif", false},
		{"plain text rejected", "notes.txt", []byte("just some text"), "", true},
		{"pdf rejected", "doc.pdf", append([]byte("%PDF-1.4"), make([]byte, 32)...), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fh := makeFileHeader(t, tt.filename, tt.content)

			contentType, err := ValidateImage(fh)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrFileRejected)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantType, contentType)
		})
	}
}

func TestValidateImage_RejectsOversizedFile(t *testing.T) {
	fh := makeFileHeader(t, "huge.png", pngBytes)
	fh.Size = MaxFileSize + 1

	_, err := ValidateImage(fh)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFileRejected)
}

func TestSaveFile(t *testing.T) {
	s := newTestStore(t)
	dir := t.TempDir()

	fh := makeFileHeader(t, "my live shot.png", pngBytes)
	filename, err := s.SaveFile(dir, domain.MediaKindGallery, fh)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(filename, "gallery_"))
	assert.True(t, strings.HasSuffix(filename, "_my-live-shot.png"))

	stored, err := os.ReadFile(filepath.Join(dir, filename))
	require.NoError(t, err)
	assert.Equal(t, pngBytes, stored)
}

func TestSaveFile_RejectedFileNotWritten(t *testing.T) {
	s := newTestStore(t)
	dir := t.TempDir()

	fh := makeFileHeader(t, "notes.txt", []byte("not an image"))
	_, err := s.SaveFile(dir, domain.MediaKindGallery, fh)
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRemoveFile(t *testing.T) {
	s := newTestStore(t)
	settings := s.NewSettings(domain.OwnerTypeArtist, "Nova")
	_, err := s.EnsureFolder(settings, domain.OwnerTypeArtist)
	require.NoError(t, err)

	public := s.PublicPath(settings, "gallery", "gallery_1_pic.png")
	require.NoError(t, os.WriteFile(s.DiskPath(public), pngBytes, 0o640))

	require.NoError(t, s.RemoveFile(public))
	_, err = os.Stat(s.DiskPath(public))
	assert.True(t, os.IsNotExist(err))

	// Removing an already-absent file is not an error.
	assert.NoError(t, s.RemoveFile(public))
	assert.NoError(t, s.RemoveFile(""))
}
