package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gigguide/gigguide-api/internal/domain"
	"github.com/gigguide/gigguide-api/internal/pkg/rolecache"
	"github.com/gigguide/gigguide-api/internal/repository"
)

type fakeAclRepo struct {
	roles     []domain.AclTrust
	findCalls int
}

func (f *fakeAclRepo) FindRoles(ctx context.Context) ([]domain.AclTrust, error) {
	f.findCalls++

	return f.roles, nil
}

func (f *fakeAclRepo) FindRoleByID(ctx context.Context, id int) (domain.AclTrust, error) {
	for _, role := range f.roles {
		if role.ID == uint(id) {
			return role, nil
		}
	}

	return domain.AclTrust{}, repository.ErrRoleNotFound
}

func newAclFixture(t *testing.T) (*fakeAclRepo, *AclService) {
	t.Helper()

	repo := &fakeAclRepo{roles: []domain.AclTrust{
		{ID: 3, Name: "artist", Display: "Artist"},
		{ID: 4, Name: "organiser", Display: "Organiser"},
	}}
	cache := rolecache.New(5 * time.Minute)
	svc := NewAclService(repo, cache)
	t.Cleanup(svc.Stop)

	return repo, svc
}

func TestAclService_RolesCached(t *testing.T) {
	repo, svc := newAclFixture(t)
	ctx := context.Background()

	roles, err := svc.Roles(ctx)
	require.NoError(t, err)
	assert.Len(t, roles, 2)

	_, err = svc.Roles(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.findCalls)
}

func TestAclService_RoleByID(t *testing.T) {
	repo, svc := newAclFixture(t)
	ctx := context.Background()

	// Cache miss goes through the repository.
	role, err := svc.RoleByID(ctx, domain.RoleArtist)
	require.NoError(t, err)
	assert.Equal(t, "artist", role.Name)

	// Warm the cache and resolve from it.
	_, err = svc.Roles(ctx)
	require.NoError(t, err)
	calls := repo.findCalls

	role, err = svc.RoleByID(ctx, domain.RoleOrganiser)
	require.NoError(t, err)
	assert.Equal(t, "organiser", role.Name)
	assert.Equal(t, calls, repo.findCalls)

	_, err = svc.RoleByID(ctx, 99)
	assert.ErrorIs(t, err, ErrRoleNotFound)
}
