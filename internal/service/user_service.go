package service

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/user/notecart/backend/internal/dto"
	"github.com/user/notecart/backend/internal/repository"
	apperrors "github.com/user/notecart/backend/pkg/errors"
)

type UserService struct {
	userRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// GetByID returns a user's profile.
func (s *UserService) GetByID(id uuid.UUID) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}
	result := userToDTO(user)
	return &result, nil
}

// Update updates a user's profile.
func (s *UserService) Update(id uuid.UUID, req dto.UpdateUserRequest) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	if req.DisplayName != nil {
		user.DisplayName = *req.DisplayName
	}
	if req.AvatarURL != nil {
		user.AvatarURL = *req.AvatarURL
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "Failed to update user", http.StatusInternalServerError)
	}

	result := userToDTO(user)
	return &result, nil
}
