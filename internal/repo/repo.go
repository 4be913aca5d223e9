package repo

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")
var ErrUserAlreadyExist = errors.New("user already exist")

type GormRepo struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *GormRepo {
	return &GormRepo{DB: db}
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || strings.Contains(msg, "SQLSTATE 23505")
}
