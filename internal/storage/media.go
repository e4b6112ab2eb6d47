package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/gigguide/gigguide-api/internal/domain"
)

const MaxFileSize = 5 << 20 // 5 MiB

var ErrFileRejected = errors.New("file rejected")

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// ValidateImage sniffs the real content type from the first 512 bytes rather
// than trusting the client-declared header.
func ValidateImage(fh *multipart.FileHeader) (string, error) {
	if fh.Size > MaxFileSize {
		return "", fmt.Errorf("%w: %s is larger than 5MB", ErrFileRejected, fh.Filename)
	}

	file, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("fh.Open -> %w", err)
	}
	defer file.Close()

	buffer := make([]byte, 512)
	n, err := file.Read(buffer)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("file.Read -> %w", err)
	}

	contentType := http.DetectContentType(buffer[:n])
	if !allowedImageTypes[contentType] {
		return "", fmt.Errorf("%w: %s has unsupported type %s (allowed: JPEG, PNG, GIF, WebP)", ErrFileRejected, fh.Filename, contentType)
	}

	return contentType, nil
}

// SaveFile validates and writes one uploaded file into dir, returning the
// stored filename. Names embed the kind and a millisecond timestamp to avoid
// collisions between uploads.
func (s *Store) SaveFile(dir string, kind domain.MediaKind, fh *multipart.FileHeader) (string, error) {
	if _, err := ValidateImage(fh); err != nil {
		return "", err
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("fh.Open -> %w", err)
	}
	defer src.Close()

	filename := fmt.Sprintf("%s_%d_%s", kind, time.Now().UnixMilli(), sanitizeFilename(fh.Filename))
	path := filepath.Join(dir, filename)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("os.Create -> %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, src); err != nil {
		// Do not leave a truncated file behind.
		os.Remove(path)

		return "", fmt.Errorf("io.Copy -> %w", err)
	}

	return filename, nil
}

// RemoveFile unlinks a recorded public path from disk. A file that is already
// absent counts as success; the database row is the source of truth.
func (s *Store) RemoveFile(publicPath string) error {
	if publicPath == "" {
		return nil
	}

	if err := os.Remove(s.DiskPath(publicPath)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("os.Remove -> %w", err)
	}

	return nil
}

// RemoveFileBestEffort logs and swallows removal failures, for cleanup paths
// where the primary operation already succeeded or already failed.
func (s *Store) RemoveFileBestEffort(publicPath string) {
	if err := s.RemoveFile(publicPath); err != nil {
		zap.L().Warn("failed to remove media file", zap.String("path", publicPath), zap.Error(err))
	}
}

func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, " ", "-")

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		}
	}

	if b.Len() == 0 {
		return fmt.Sprintf("upload_%d", time.Now().UnixNano())
	}

	return b.String()
}
