package repository

import (
	"context"
	"fmt"

	"github.com/gigguide/gigguide-api/internal/domain"
	"github.com/gigguide/gigguide-api/internal/repository/dao"
)

var (
	ErrUserEmailExists    = dao.ErrUserEmailExists
	ErrUserUsernameExists = dao.ErrUserUsernameExists
	ErrUserNotFound       = dao.ErrUserNotFound
	ErrRoleNotFound       = dao.ErrRoleNotFound
)

type UserDAO interface {
	Insert(ctx context.Context, user dao.User) (dao.User, error)
	InsertArtist(ctx context.Context, user dao.User, artist dao.Artist, provision func() error) (dao.User, dao.Artist, error)
	InsertOrganiser(ctx context.Context, user dao.User, organiser dao.Organiser, provision func() error) (dao.User, dao.Organiser, error)
	FindByID(ctx context.Context, id uint) (dao.User, error)
	FindByEmail(ctx context.Context, email string) (dao.User, error)
	FindRoles(ctx context.Context) ([]dao.AclTrust, error)
	FindRoleByID(ctx context.Context, id uint) (dao.AclTrust, error)
}

type UserRepository struct {
	dao UserDAO
}

func NewUserRepository(dao UserDAO) *UserRepository {
	return &UserRepository{
		dao: dao,
	}
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	created, err := r.dao.Insert(ctx, domainUserToDao(user))
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return daoUserToDomain(created), nil
}

// CreateArtist persists the user and artist profile atomically; provision runs
// inside the same transaction so a folder failure rolls both rows back.
func (r *UserRepository) CreateArtist(ctx context.Context, user domain.User, artist domain.Artist, provision func() error) (domain.User, domain.Artist, error) {
	createdUser, createdArtist, err := r.dao.InsertArtist(ctx, domainUserToDao(user), domainArtistToDao(artist), provision)
	if err != nil {
		return domain.User{}, domain.Artist{}, fmt.Errorf("r.dao.InsertArtist -> %w", err)
	}

	return daoUserToDomain(createdUser), daoArtistToDomain(createdArtist), nil
}

func (r *UserRepository) CreateOrganiser(ctx context.Context, user domain.User, organiser domain.Organiser, provision func() error) (domain.User, domain.Organiser, error) {
	createdUser, createdOrganiser, err := r.dao.InsertOrganiser(ctx, domainUserToDao(user), domainOrganiserToDao(organiser), provision)
	if err != nil {
		return domain.User{}, domain.Organiser{}, fmt.Errorf("r.dao.InsertOrganiser -> %w", err)
	}

	return daoUserToDomain(createdUser), daoOrganiserToDomain(createdOrganiser), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (domain.User, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return daoUserToDomain(found), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	found, err := r.dao.FindByEmail(ctx, email)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByEmail -> %w", err)
	}

	return daoUserToDomain(found), nil
}

func (r *UserRepository) FindRoles(ctx context.Context) ([]domain.AclTrust, error) {
	found, err := r.dao.FindRoles(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindRoles -> %w", err)
	}

	roles := make([]domain.AclTrust, len(found))
	for i, role := range found {
		roles[i] = domain.AclTrust{ID: role.ID, Name: role.Name, Display: role.Display}
	}

	return roles, nil
}

// FindRoleByID takes the role as an int because that is how the user row
// stores it; the catalog itself keys roles as uint.
func (r *UserRepository) FindRoleByID(ctx context.Context, id int) (domain.AclTrust, error) {
	found, err := r.dao.FindRoleByID(ctx, uint(id))
	if err != nil {
		return domain.AclTrust{}, fmt.Errorf("r.dao.FindRoleByID -> %w", err)
	}

	return domain.AclTrust{ID: found.ID, Name: found.Name, Display: found.Display}, nil
}

func domainUserToDao(u domain.User) dao.User {
	return dao.User{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Password: u.Password,
		Role:     u.Role,
	}
}

func daoUserToDomain(u dao.User) domain.User {
	return domain.User{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Password:  u.Password,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
