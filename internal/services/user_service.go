package services

import (
	"context"

	"roomchat/internal/repository"
)

type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) GetByID(ctx context.Context, id uint64) (UserInfo, error) {
	u, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return UserInfo{}, err
	}
	return toUserInfo(u), nil
}
