package service

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/user/notecart/backend/internal/dto"
	"github.com/user/notecart/backend/internal/repository"
	apperrors "github.com/user/notecart/backend/pkg/errors"
)

type ShareService struct {
	lists repository.ListStore
	users repository.UserDirectory
}

func NewShareService(lists repository.ListStore, users repository.UserDirectory) *ShareService {
	return &ShareService{
		lists: lists,
		users: users,
	}
}

// Share grants the user behind email access to the list. Only the owner may
// share; the target must be a registered user and not the owner themselves.
// Sharing with a user already in the set is an idempotent no-op.
func (s *ShareService) Share(listID string, ownerID uuid.UUID, email string) (*dto.ListDTO, error) {
	list, err := s.lists.FindByID(listID)
	if err != nil || !list.IsOwner(ownerID) {
		return nil, apperrors.ErrListNotFound
	}

	target, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}
	if target.ID == ownerID {
		return nil, apperrors.ErrCannotShareWithSelf
	}

	if list.IsSharedWith(target.ID) {
		result := dto.ListToDTO(list)
		return &result, nil
	}

	list.SharedWith = append(list.SharedWith, target.ID.String())
	if err := s.lists.Save(list); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "Failed to share list", http.StatusInternalServerError)
	}

	result := dto.ListToDTO(list)
	return &result, nil
}

// Unshare revokes targetUserID's access. Owner only; revoking a user not in
// the set is an idempotent no-op.
func (s *ShareService) Unshare(listID string, ownerID uuid.UUID, targetUserID string) (*dto.ListDTO, error) {
	list, err := s.lists.FindByID(listID)
	if err != nil || !list.IsOwner(ownerID) {
		return nil, apperrors.ErrListNotFound
	}

	if !list.SharedWith.Contains(targetUserID) {
		result := dto.ListToDTO(list)
		return &result, nil
	}

	remaining := make([]string, 0, len(list.SharedWith))
	for _, uid := range list.SharedWith {
		if uid != targetUserID {
			remaining = append(remaining, uid)
		}
	}
	list.SharedWith = remaining

	if err := s.lists.Save(list); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "Failed to unshare list", http.StatusInternalServerError)
	}

	result := dto.ListToDTO(list)
	return &result, nil
}

// SharedUserProfiles resolves the display profile of every user the list is
// shared with. Resolution is best-effort per id: an unresolvable id yields
// null email and display name instead of aborting the batch.
func (s *ShareService) SharedUserProfiles(listID string, ownerID uuid.UUID) ([]dto.SharedUserDTO, error) {
	list, err := s.lists.FindByID(listID)
	if err != nil || !list.IsOwner(ownerID) {
		return nil, apperrors.ErrListNotFound
	}

	profiles := make([]dto.SharedUserDTO, 0, len(list.SharedWith))
	for _, raw := range list.SharedWith {
		profile := dto.SharedUserDTO{UID: raw}
		if id, err := uuid.Parse(raw); err == nil {
			if user, err := s.users.FindByID(id); err == nil {
				email := user.Email
				name := user.DisplayName
				if name == "" {
					name = user.Email
				}
				profile.Email = &email
				profile.DisplayName = &name
			}
		}
		profiles = append(profiles, profile)
	}
	return profiles, nil
}
