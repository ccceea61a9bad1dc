package repository

import (
	"context"
	"errors"

	"roomchat/internal/domain/user"
	roomchat_errors "roomchat/pkg/errors"

	"gorm.io/gorm"
)

type SQLUserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &SQLUserRepository{db: db}
}

func (r *SQLUserRepository) Create(ctx context.Context, u *user.User) error {
	res := r.db.WithContext(ctx).Create(u)
	if res.Error != nil {
		if isUniqueViolation(res.Error) {
			return roomchat_errors.ErrDuplicateUser
		}
		return res.Error
	}
	return nil
}

func (r *SQLUserRepository) GetUserByID(ctx context.Context, id uint64) (user.User, error) {
	var u user.User
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&u).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.User{}, roomchat_errors.ErrNotFound
		}
		return user.User{}, err
	}

	return u, nil
}

func (r *SQLUserRepository) GetUserByUsername(ctx context.Context, username string) (user.User, error) {
	var u user.User
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&u).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.User{}, roomchat_errors.ErrNotFound
		}
		return user.User{}, err
	}

	return u, nil
}

func (r *SQLUserRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&user.User{}).Count(&total).Error
	return total, err
}
