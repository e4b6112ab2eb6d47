package storage

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/gigguide/gigguide-api/internal/domain"
)

// Base folders under the storage root, one per owner role. The organiser
// folder is singular for compatibility with existing public URL prefixes.
const (
	artistBaseDir    = "artists"
	organiserBaseDir = "organiser"
)

var (
	artistSubfolders    = []string{"events", "venues", "profile", "gallery"}
	organiserSubfolders = []string{"events", "venues", "profile"}
)

// Store owns the on-disk media tree. The database remains authoritative;
// the filesystem mirrors it.
type Store struct {
	basePath string
	randInt  func(n int) int
}

func New(basePath string) (*Store, error) {
	for _, dir := range []string{artistBaseDir, organiserBaseDir} {
		if err := os.MkdirAll(filepath.Join(basePath, dir), 0o750); err != nil {
			return nil, fmt.Errorf("os.MkdirAll -> %w", err)
		}
	}

	return &Store{
		basePath: basePath,
		randInt:  rand.Intn,
	}, nil
}

func (s *Store) BasePath() string {
	return s.basePath
}

// EnsureSettings returns the owner's persisted settings verbatim when present;
// the folder name is assigned exactly once. Only an owner without a parseable
// blob gets a freshly minted "{roleCode}_{slug}_{rand4}" folder.
func (s *Store) EnsureSettings(owner domain.Owner) (domain.Settings, bool) {
	if existing := owner.Settings(); existing != nil && existing.FolderName != "" {
		return *existing, false
	}

	return s.NewSettings(owner.Type, owner.Username()), true
}

// NewSettings mints settings for an owner that has never been provisioned,
// e.g. during registration before the profile row exists.
func (s *Store) NewSettings(ownerType domain.OwnerType, name string) domain.Settings {
	base := artistBaseDir
	if ownerType == domain.OwnerTypeOrganiser {
		base = organiserBaseDir
	}

	folderName := fmt.Sprintf("%d_%s_%d", ownerType.RoleCode(), Slugify(name), 1000+s.randInt(9000))

	return domain.Settings{
		SettingName: name,
		Path:        base + "/",
		FolderName:  folderName,
	}
}

// EnsureFolder creates the owner directory and its fixed subfolder set.
// Idempotent: re-running never errors and never touches existing files.
func (s *Store) EnsureFolder(settings domain.Settings, ownerType domain.OwnerType) (string, error) {
	dir := s.OwnerDir(settings)

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("os.MkdirAll -> %w", err)
	}

	subfolders := organiserSubfolders
	if ownerType == domain.OwnerTypeArtist {
		subfolders = artistSubfolders
	}

	for _, sub := range subfolders {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0o750); err != nil {
			return "", fmt.Errorf("os.MkdirAll -> %w", err)
		}
	}

	zap.L().Debug("ensured owner folder", zap.String("dir", dir))

	return dir, nil
}

// OwnerDir resolves the owner's base directory on disk.
func (s *Store) OwnerDir(settings domain.Settings) string {
	return filepath.Join(s.basePath, filepath.FromSlash(strings.TrimSuffix(settings.Path, "/")), settings.FolderName)
}

// EntityDir returns (and creates) the nested per-entity folder used for venue
// and event media: {owner}/{venues|events}/{entityID}_{slug(name)}.
func (s *Store) EntityDir(settings domain.Settings, subfolder string, entityID uint, entityName string) (string, error) {
	dir := filepath.Join(s.OwnerDir(settings), subfolder, EntityFolder(entityID, entityName))
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("os.MkdirAll -> %w", err)
	}

	return dir, nil
}

// EntityFolder names the nested per-entity folder for venue and event media.
func EntityFolder(entityID uint, entityName string) string {
	return fmt.Sprintf("%d_%s", entityID, Slugify(entityName))
}

// PublicPath converts a stored file location into the public URL path recorded
// in the database, e.g. "/artists/3_nova_1234/gallery/x.jpg".
func (s *Store) PublicPath(settings domain.Settings, elems ...string) string {
	parts := append([]string{strings.TrimSuffix(settings.Path, "/"), settings.FolderName}, elems...)

	return "/" + strings.Join(parts, "/")
}

// DiskPath maps a recorded public path back onto the filesystem.
func (s *Store) DiskPath(publicPath string) string {
	return filepath.Join(s.basePath, filepath.FromSlash(strings.TrimPrefix(publicPath, "/")))
}

// Slugify lowercases a display name into a filesystem and URL safe token.
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := true

	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}
