package dao

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"testing"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// testDB stays nil when Docker is unreachable; every test checks it and
// skips instead of failing.
var testDB *gorm.DB

func TestMain(m *testing.M) {
	pool, err := dockertest.NewPool("")
	if err == nil {
		err = pool.Client.Ping()
	}
	if err != nil {
		log.Printf("docker unavailable, skipping dao tests: %v", err)
		os.Exit(m.Run())
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=gigguide",
			"POSTGRES_PASSWORD=gigguide",
			"POSTGRES_DB=gigguide_test",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		log.Fatalf("could not start postgres container: %v", err)
	}
	_ = resource.Expire(180)

	dsn := fmt.Sprintf(
		"host=localhost port=%s user=gigguide password=gigguide dbname=gigguide_test sslmode=disable",
		resource.GetPort("5432/tcp"),
	)

	if err = pool.Retry(func() error {
		db, openErr := gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
		if openErr != nil {
			return openErr
		}
		sqlDB, dbErr := db.DB()
		if dbErr != nil {
			return dbErr
		}
		if pingErr := sqlDB.Ping(); pingErr != nil {
			return pingErr
		}
		testDB = db

		return nil
	}); err != nil {
		log.Fatalf("could not connect to postgres container: %v", err)
	}

	if err = InitTables(testDB); err != nil {
		log.Fatalf("could not migrate tables: %v", err)
	}

	code := m.Run()

	if err = pool.Purge(resource); err != nil {
		log.Printf("could not purge postgres container: %v", err)
	}
	os.Exit(code)
}

func requireDB(t *testing.T) *gorm.DB {
	t.Helper()
	if testDB == nil {
		t.Skip("docker unavailable")
	}

	return testDB
}

func TestInitTables_SeedsRoleCatalog(t *testing.T) {
	db := requireDB(t)

	roles, err := NewUserDAO(db).FindRoles(context.Background())
	require.NoError(t, err)
	require.Len(t, roles, 6)

	assert.Equal(t, "artist", roles[2].Name)
	assert.Equal(t, uint(3), roles[2].ID)
	assert.Equal(t, "organiser", roles[3].Name)
	assert.Equal(t, uint(4), roles[3].ID)

	// Reruns must not duplicate the catalog.
	require.NoError(t, seedAclTrusts(db))
	roles, err = NewUserDAO(db).FindRoles(context.Background())
	require.NoError(t, err)
	assert.Len(t, roles, 6)
}

func TestUserDAO_DuplicateEmailMapped(t *testing.T) {
	db := requireDB(t)
	d := NewUserDAO(db)
	ctx := context.Background()

	_, err := d.Insert(ctx, User{Username: "dup_a", Email: "dup@example.com", Password: "x", Role: 6})
	require.NoError(t, err)

	_, err = d.Insert(ctx, User{Username: "dup_b", Email: "dup@example.com", Password: "x", Role: 6})
	assert.ErrorIs(t, err, ErrUserEmailExists)

	_, err = d.Insert(ctx, User{Username: "dup_a", Email: "other@example.com", Password: "x", Role: 6})
	assert.ErrorIs(t, err, ErrUserUsernameExists)
}

func TestUserDAO_InsertArtist_ProvisionFailureRollsBack(t *testing.T) {
	db := requireDB(t)
	d := NewUserDAO(db)
	ctx := context.Background()

	provisionErr := errors.New("mkdir failed")
	_, _, err := d.InsertArtist(ctx,
		User{Username: "rollback_artist", Email: "rollback@example.com", Password: "x", Role: 3},
		Artist{StageName: "Rollback"},
		func() error { return provisionErr },
	)
	require.ErrorIs(t, err, provisionErr)

	_, err = d.FindByEmail(ctx, "rollback@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)

	var count int64
	require.NoError(t, db.Model(&Artist{}).Where("stage_name = ?", "Rollback").Count(&count).Error)
	assert.Zero(t, count)
}

func TestUserDAO_InsertArtist_CommitsUserAndProfile(t *testing.T) {
	db := requireDB(t)
	d := NewUserDAO(db)
	ctx := context.Background()

	user, artist, err := d.InsertArtist(ctx,
		User{Username: "commit_artist", Email: "commit@example.com", Password: "x", Role: 3},
		Artist{StageName: "Commit"},
		func() error { return nil },
	)
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, user.ID, artist.UserID)
}

func TestFavoriteDAO_UniquePairEnforced(t *testing.T) {
	db := requireDB(t)
	d := NewFavoriteDAO(db)
	ctx := context.Background()

	row, err := d.Insert(ctx, "event", 500, 1)
	require.NoError(t, err)
	assert.NotZero(t, row.ID)

	_, err = d.Insert(ctx, "event", 500, 1)
	assert.ErrorIs(t, err, ErrFavoriteExists)

	// Same pair under a different target type is a distinct row.
	_, err = d.Insert(ctx, "venue", 500, 1)
	require.NoError(t, err)

	require.NoError(t, d.Delete(ctx, "event", 500, 1))
	assert.ErrorIs(t, d.Delete(ctx, "event", 500, 1), ErrFavoriteNotFound)

	exists, err := d.Exists(ctx, "venue", 500, 1)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestRatingDAO_UpsertAndAggregate(t *testing.T) {
	db := requireDB(t)
	d := NewRatingDAO(db)
	ctx := context.Background()

	for user, value := range map[uint]float64{601: 3, 602: 5, 603: 4} {
		_, err := d.Upsert(ctx, Rating{UserID: user, RateableID: 60, RateableType: "artist", Rating: value})
		require.NoError(t, err)
	}

	avg, count, err := d.Aggregate(ctx, "artist", 60)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.InDelta(t, 4.0, avg, 1e-9)

	// Re-rating replaces, never duplicates.
	_, err = d.Upsert(ctx, Rating{UserID: 601, RateableID: 60, RateableType: "artist", Rating: 5, Review: "changed my mind"})
	require.NoError(t, err)

	avg, count, err = d.Aggregate(ctx, "artist", 60)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.InDelta(t, 14.0/3, avg, 1e-9)

	stored, err := d.Find(ctx, 601, "artist", 60)
	require.NoError(t, err)
	assert.Equal(t, "changed my mind", stored.Review)
}

func TestVenueDAO_GalleryRoundTrip(t *testing.T) {
	db := requireDB(t)
	d := NewVenueDAO(db)
	ctx := context.Background()

	venue, err := d.Insert(ctx, Venue{Name: "Roundtrip Hall", OwnerID: 1, OwnerType: "artist"})
	require.NoError(t, err)

	gallery, err := d.AppendGallery(ctx, venue.ID, []string{"/a.png", "/b.png"})
	require.NoError(t, err)
	assert.Equal(t, []string{"/a.png", "/b.png"}, gallery)

	gallery, err = d.AppendGallery(ctx, venue.ID, []string{"/c.png"})
	require.NoError(t, err)
	assert.Equal(t, []string{"/a.png", "/b.png", "/c.png"}, gallery)

	gallery, err = d.RemoveGalleryPath(ctx, venue.ID, "/b.png")
	require.NoError(t, err)
	assert.Equal(t, []string{"/a.png", "/c.png"}, gallery)

	reloaded, err := d.FindByID(ctx, venue.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"/a.png", "/c.png"}, []string(reloaded.VenueGallery))
}

func TestOwnerDAO_SettingsPersistOnce(t *testing.T) {
	db := requireDB(t)
	userDAO := NewUserDAO(db)
	ownerDAO := NewOwnerDAO(db)
	ctx := context.Background()

	_, artist, err := userDAO.InsertArtist(ctx,
		User{Username: "settings_artist", Email: "settings@example.com", Password: "x", Role: 3},
		Artist{StageName: "Settings"},
		func() error { return nil },
	)
	require.NoError(t, err)

	loaded, err := ownerDAO.FindArtistByID(ctx, artist.ID)
	require.NoError(t, err)
	assert.Nil(t, loaded.Settings.Blob)

	blob := SettingsBlob{SettingName: "Settings", Path: "artists/", FolderName: "3_settings_1234"}
	require.NoError(t, ownerDAO.UpdateArtistSettings(ctx, artist.ID, blob))

	loaded, err = ownerDAO.FindArtistByID(ctx, artist.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded.Settings.Blob)
	assert.Equal(t, blob, *loaded.Settings.Blob)
}
