package service

import (
	"context"
	"fmt"

	"github.com/gigguide/gigguide-api/internal/domain"
	"github.com/gigguide/gigguide-api/internal/pkg/rolecache"
	"github.com/gigguide/gigguide-api/internal/repository"
)

var ErrRoleNotFound = repository.ErrRoleNotFound

const rolesCacheKey = "acl_roles"

type AclRepository interface {
	FindRoles(ctx context.Context) ([]domain.AclTrust, error)
	FindRoleByID(ctx context.Context, id int) (domain.AclTrust, error)
}

// AclService serves the role catalog through a TTL cache so the lookup
// tables are not hit on every request.
type AclService struct {
	repo  AclRepository
	cache *rolecache.Cache
}

func NewAclService(repo AclRepository, cache *rolecache.Cache) *AclService {
	return &AclService{
		repo:  repo,
		cache: cache,
	}
}

func (s *AclService) Roles(ctx context.Context) ([]domain.AclTrust, error) {
	if roles, ok := s.cachedRoles(); ok {
		return roles, nil
	}

	roles, err := s.repo.FindRoles(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindRoles -> %w", err)
	}
	s.cache.Set(rolesCacheKey, roles)

	return roles, nil
}

func (s *AclService) RoleByID(ctx context.Context, id int) (domain.AclTrust, error) {
	if roles, ok := s.cachedRoles(); ok {
		for _, role := range roles {
			if role.ID == uint(id) {
				return role, nil
			}
		}

		return domain.AclTrust{}, ErrRoleNotFound
	}

	role, err := s.repo.FindRoleByID(ctx, id)
	if err != nil {
		return domain.AclTrust{}, fmt.Errorf("s.repo.FindRoleByID -> %w", err)
	}

	return role, nil
}

func (s *AclService) cachedRoles() ([]domain.AclTrust, bool) {
	v, ok := s.cache.Get(rolesCacheKey)
	if !ok {
		return nil, false
	}
	roles, ok := v.([]domain.AclTrust)

	return roles, ok
}

// Stop releases the cache's sweep goroutine.
func (s *AclService) Stop() {
	s.cache.Stop()
}
