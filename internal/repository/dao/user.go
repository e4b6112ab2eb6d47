package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrUserEmailExists    = errors.New("email already in use")
	ErrUserUsernameExists = errors.New("username already in use")
	ErrUserNotFound       = errors.New("user not found")
	ErrRoleNotFound       = errors.New("role not found")
)

type User struct {
	ID uint `gorm:"primaryKey"`

	Username string `gorm:"unique;not null"`
	Email    string `gorm:"unique;not null"`
	Password string `gorm:"not null"`

	Role int `gorm:"not null"` // acl_trusts id

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type AclTrust struct {
	ID      uint   `gorm:"primaryKey;column:acl_id"`
	Name    string `gorm:"column:acl_name;unique;not null"`
	Display string `gorm:"column:acl_display;not null"`
}

func (AclTrust) TableName() string {
	return "acl_trusts"
}

type UserDAO struct {
	db *gorm.DB
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{
		db: db,
	}
}

func mapUserInsertError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		if strings.Contains(pgErr.Message, `"uni_users_email"`) {
			return ErrUserEmailExists
		}
		if strings.Contains(pgErr.Message, `"uni_users_username"`) {
			return ErrUserUsernameExists
		}
	}

	return err
}

func (d *UserDAO) Insert(ctx context.Context, user User) (User, error) {
	result := d.db.WithContext(ctx).Create(&user)
	if result.Error != nil {
		return User{}, mapUserInsertError(result.Error)
	}

	return user, nil
}

// InsertArtist creates the user and artist rows and runs provision inside the
// same transaction; a provisioning failure (folder creation) rolls everything
// back so the rows never reference a folder that does not exist.
func (d *UserDAO) InsertArtist(ctx context.Context, user User, artist Artist, provision func() error) (User, Artist, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return mapUserInsertError(err)
		}

		artist.UserID = user.ID
		if err := tx.Create(&artist).Error; err != nil {
			return err
		}

		return provision()
	})
	if err != nil {
		return User{}, Artist{}, err
	}

	return user, artist, nil
}

func (d *UserDAO) InsertOrganiser(ctx context.Context, user User, organiser Organiser, provision func() error) (User, Organiser, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return mapUserInsertError(err)
		}

		organiser.UserID = user.ID
		if err := tx.Create(&organiser).Error; err != nil {
			return err
		}

		return provision()
	})
	if err != nil {
		return User{}, Organiser{}, err
	}

	return user, organiser, nil
}

func (d *UserDAO) FindByID(ctx context.Context, id uint) (User, error) {
	var user User

	result := d.db.WithContext(ctx).First(&user, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return User{}, ErrUserNotFound
		}

		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) FindByEmail(ctx context.Context, email string) (User, error) {
	var user User

	result := d.db.WithContext(ctx).First(&user, "email = ?", email)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return User{}, ErrUserNotFound
		}

		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) FindRoles(ctx context.Context) ([]AclTrust, error) {
	var roles []AclTrust

	result := d.db.WithContext(ctx).Order("acl_id").Find(&roles)
	if result.Error != nil {
		return nil, result.Error
	}

	return roles, nil
}

func (d *UserDAO) FindRoleByID(ctx context.Context, id uint) (AclTrust, error) {
	var role AclTrust

	result := d.db.WithContext(ctx).First(&role, "acl_id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return AclTrust{}, ErrRoleNotFound
		}

		return AclTrust{}, result.Error
	}

	return role, nil
}
