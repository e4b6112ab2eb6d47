package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/gigguide/gigguide-api/internal/domain"
	"github.com/gigguide/gigguide-api/internal/repository"
)

var (
	ErrUserEmailExists    = repository.ErrUserEmailExists
	ErrUserUsernameExists = repository.ErrUserUsernameExists
	ErrUserNotFound       = repository.ErrUserNotFound
	ErrWrongPassword      = errors.New("wrong password")
)

type AuthUserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	CreateArtist(ctx context.Context, user domain.User, artist domain.Artist, provision func() error) (domain.User, domain.Artist, error)
	CreateOrganiser(ctx context.Context, user domain.User, organiser domain.Organiser, provision func() error) (domain.User, domain.Organiser, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
}

type RegistrationStore interface {
	NewSettings(ownerType domain.OwnerType, name string) domain.Settings
	EnsureFolder(settings domain.Settings, ownerType domain.OwnerType) (string, error)
}

// Registration carries the optional profile fields an artist or organiser
// supplies alongside the core account fields.
type Registration struct {
	Username     string
	Email        string
	Password     string
	Role         int
	Name         string
	ContactEmail string
	PhoneNumber  string
}

type AuthService struct {
	repo  AuthUserRepository
	store RegistrationStore
}

func NewAuthService(repo AuthUserRepository, store RegistrationStore) *AuthService {
	return &AuthService{
		repo:  repo,
		store: store,
	}
}

// Register creates the account and, for artists and organisers, the role
// profile plus its upload folder. Profile row and folder are created in the
// same transaction: if the folder cannot be created, registration fails whole.
func (s *AuthService) Register(ctx context.Context, reg Registration) (domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, fmt.Errorf("bcrypt.GenerateFromPassword -> %w", err)
	}

	user := domain.User{
		Username: reg.Username,
		Email:    reg.Email,
		Password: string(hash),
		Role:     reg.Role,
	}

	switch reg.Role {
	case domain.RoleArtist:
		settings := s.store.NewSettings(domain.OwnerTypeArtist, reg.Username)
		artist := domain.Artist{
			StageName:    reg.Username,
			RealName:     reg.Name,
			ContactEmail: coalesce(reg.ContactEmail, reg.Email),
			PhoneNumber:  reg.PhoneNumber,
			Settings:     &settings,
			Gallery:      []string{},
		}

		created, _, err := s.repo.CreateArtist(ctx, user, artist, func() error {
			_, folderErr := s.store.EnsureFolder(settings, domain.OwnerTypeArtist)

			return folderErr
		})
		if err != nil {
			return domain.User{}, fmt.Errorf("s.repo.CreateArtist -> %w", err)
		}

		return created, nil

	case domain.RoleOrganiser:
		settings := s.store.NewSettings(domain.OwnerTypeOrganiser, coalesce(reg.Name, reg.Username))
		organiser := domain.Organiser{
			Name:         coalesce(reg.Name, reg.Username),
			ContactEmail: coalesce(reg.ContactEmail, reg.Email),
			PhoneNumber:  reg.PhoneNumber,
			Settings:     &settings,
			Gallery:      []string{},
		}

		created, _, err := s.repo.CreateOrganiser(ctx, user, organiser, func() error {
			_, folderErr := s.store.EnsureFolder(settings, domain.OwnerTypeOrganiser)

			return folderErr
		})
		if err != nil {
			return domain.User{}, fmt.Errorf("s.repo.CreateOrganiser -> %w", err)
		}

		return created, nil

	default:
		created, err := s.repo.Create(ctx, user)
		if err != nil {
			return domain.User{}, fmt.Errorf("s.repo.Create -> %w", err)
		}

		return created, nil
	}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (domain.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domain.User{}, ErrUserNotFound
		}

		return domain.User{}, fmt.Errorf("s.repo.FindByEmail -> %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return domain.User{}, ErrWrongPassword
	}

	return user, nil
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
