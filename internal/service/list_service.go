package service

import (
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/user/notecart/backend/internal/dto"
	"github.com/user/notecart/backend/internal/models"
	"github.com/user/notecart/backend/internal/repository"
	apperrors "github.com/user/notecart/backend/pkg/errors"
)

type ListService struct {
	lists repository.ListStore
	users repository.UserDirectory
}

func NewListService(lists repository.ListStore, users repository.UserDirectory) *ListService {
	return &ListService{
		lists: lists,
		users: users,
	}
}

// List returns the caller's own lists, newest first. A broken backing store
// degrades to an empty result instead of failing the read.
func (s *ListService) List(userID uuid.UUID) ([]dto.ListDTO, error) {
	lists, err := s.lists.ListByOwner(userID)
	if err != nil {
		log.Printf("list store unavailable, returning empty list set: %v", err)
		return []dto.ListDTO{}, nil
	}
	return dto.ListsToDTO(lists), nil
}

// SharedWithUser returns the lists shared with the caller, each annotated
// with the owner's email and display name. Owner resolution is best-effort:
// a failed lookup leaves the owner fields null rather than failing the call.
func (s *ListService) SharedWithUser(userID uuid.UUID) ([]dto.SharedListDTO, error) {
	lists, err := s.lists.ListSharedWith(userID)
	if err != nil {
		log.Printf("list store unavailable, returning empty shared set: %v", err)
		return []dto.SharedListDTO{}, nil
	}

	result := make([]dto.SharedListDTO, len(lists))
	for i := range lists {
		annotated := dto.SharedListDTO{ListDTO: dto.ListToDTO(&lists[i])}
		if owner, err := s.users.FindByID(lists[i].UserID); err == nil {
			email := owner.Email
			name := owner.DisplayName
			if name == "" {
				name = owner.Email
			}
			annotated.OwnerEmail = &email
			annotated.OwnerName = &name
		}
		result[i] = annotated
	}
	return result, nil
}

// Get returns one list if the caller is its owner or a shared user. A missing
// list and a denied caller produce the same error.
func (s *ListService) Get(listID string, userID uuid.UUID) (*dto.ListDTO, error) {
	list, err := s.findAccessible(listID, userID)
	if err != nil {
		return nil, err
	}
	result := dto.ListToDTO(list)
	return &result, nil
}

// GetPublic returns the unauthenticated share-link projection. No access
// check; the projection carries no ownership or sharing fields.
func (s *ListService) GetPublic(listID string) (*dto.PublicListDTO, error) {
	list, err := s.lists.FindByID(listID)
	if err != nil {
		return nil, apperrors.ErrListNotFound
	}
	result := dto.ListToPublicDTO(list)
	return &result, nil
}

func (s *ListService) Create(userID uuid.UUID, req dto.CreateListRequest) (*dto.ListDTO, error) {
	id := models.NewTimeID()
	if req.ID != nil && *req.ID != "" {
		id = *req.ID
	}

	list := &models.List{
		ID:         id,
		UserID:     userID,
		Name:       req.Name,
		Type:       models.ListType(req.Type),
		SharedWith: models.StringArray{},
		Items:      dto.ItemsFromDTO(req.Items),
	}

	if err := s.lists.Create(list); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "Failed to create list", http.StatusInternalServerError)
	}

	result := dto.ListToDTO(list)
	return &result, nil
}

// Update applies a partial update. Nil fields stay untouched; an empty items
// slice is a valid update that clears the list. The items collection is
// always written whole, so concurrent writers are last-write-wins.
func (s *ListService) Update(listID string, userID uuid.UUID, req dto.UpdateListRequest) (*dto.ListDTO, error) {
	list, err := s.findAccessible(listID, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		list.Name = *req.Name
	}
	if req.Type != nil {
		list.Type = models.ListType(*req.Type)
	}
	if req.Items != nil {
		list.Items = dto.ItemsFromDTO(*req.Items)
	}

	if err := s.lists.Save(list); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "Failed to update list", http.StatusInternalServerError)
	}

	result := dto.ListToDTO(list)
	return &result, nil
}

// Delete removes a list and everything embedded in it. Owner only; shared
// users get the same not-found answer as strangers.
func (s *ListService) Delete(listID string, userID uuid.UUID) (*dto.ListDTO, error) {
	list, err := s.lists.FindByID(listID)
	if err != nil || !list.IsOwner(userID) {
		return nil, apperrors.ErrListNotFound
	}

	snapshot := dto.ListToDTO(list)
	if err := s.lists.Delete(listID); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "Failed to delete list", http.StatusInternalServerError)
	}
	return &snapshot, nil
}

// AddItem appends one item and persists the whole collection.
func (s *ListService) AddItem(listID string, userID uuid.UUID, req dto.AddItemRequest) (*dto.ListDTO, error) {
	item := models.Item{
		ID:       req.ID,
		Name:     req.Name,
		Quantity: 1,
		Details:  req.Details,
		PhotoURL: req.PhotoURL,
		Priority: models.PriorityLow,
	}
	if item.ID == "" {
		item.ID = models.NewTimeID()
	}
	if req.Quantity != nil && *req.Quantity >= 0 {
		item.Quantity = *req.Quantity
	}
	if req.Priority != "" {
		item.Priority = models.ItemPriority(req.Priority)
	}

	return s.saveItems(listID, userID, func(items models.ItemList) models.ItemList {
		return models.AppendItem(items, item)
	})
}

// UpdateItem merges a partial edit (checked flag, details, photo, priority)
// into one item.
func (s *ListService) UpdateItem(listID string, userID uuid.UUID, itemID string, req dto.UpdateItemRequest) (*dto.ListDTO, error) {
	patch := models.ItemPatch{
		Details:  req.Details,
		PhotoURL: req.PhotoURL,
	}
	if req.Priority != nil {
		p := models.ItemPriority(*req.Priority)
		patch.Priority = &p
	}

	return s.saveItems(listID, userID, func(items models.ItemList) models.ItemList {
		if req.Checked != nil {
			items = models.SetChecked(items, itemID, *req.Checked)
		}
		return models.SetDetails(items, itemID, patch)
	})
}

// AdjustItemQuantity adds delta to one item's quantity, clamped at floor.
func (s *ListService) AdjustItemQuantity(listID string, userID uuid.UUID, itemID string, delta, floor int) (*dto.ListDTO, error) {
	return s.saveItems(listID, userID, func(items models.ItemList) models.ItemList {
		return models.AdjustQuantity(items, itemID, delta, floor)
	})
}

// RemoveItem drops one item from the collection.
func (s *ListService) RemoveItem(listID string, userID uuid.UUID, itemID string) (*dto.ListDTO, error) {
	return s.saveItems(listID, userID, func(items models.ItemList) models.ItemList {
		return models.RemoveItem(items, itemID)
	})
}

// saveItems runs an edit against the list's items and persists the result as
// one atomic replacement of the collection.
func (s *ListService) saveItems(listID string, userID uuid.UUID, edit func(models.ItemList) models.ItemList) (*dto.ListDTO, error) {
	list, err := s.findAccessible(listID, userID)
	if err != nil {
		return nil, err
	}

	list.Items = edit(list.Items)
	if err := s.lists.Save(list); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "Failed to update list", http.StatusInternalServerError)
	}

	result := dto.ListToDTO(list)
	return &result, nil
}

func (s *ListService) findAccessible(listID string, userID uuid.UUID) (*models.List, error) {
	list, err := s.lists.FindByID(listID)
	if err != nil || !list.CanAccess(userID) {
		return nil, apperrors.ErrListNotFound
	}
	return list, nil
}
