package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Skotchmaster/items_api/internal/models"
)

// CreateUser relies on the unique index on username, so concurrent registrations
// of the same name yield exactly one row.
func (r *GormRepo) CreateUser(ctx context.Context, username, passwordHash string) (uint, error) {
	u := models.User{Username: username, PasswordHash: passwordHash}
	if err := r.DB.WithContext(ctx).Create(&u).Error; err != nil {
		if isUniqueViolation(err) {
			return 0, ErrUserAlreadyExist
		}
		return 0, err
	}
	return u.ID, nil
}

func (r *GormRepo) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}
