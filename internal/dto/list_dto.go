package dto

import (
	"time"

	"github.com/user/notecart/backend/internal/models"
)

// ItemDTO represents one embedded list item in requests and responses.
type ItemDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name" binding:"required"`
	Quantity *int   `json:"quantity,omitempty"`
	Details  string `json:"details,omitempty"`
	PhotoURL string `json:"photo_url,omitempty"`
	Priority string `json:"priority,omitempty"`
	Checked  bool   `json:"checked"`
}

// CreateListRequest is the request body for creating a list. The id is
// optional; the server derives one from the current timestamp when absent.
type CreateListRequest struct {
	ID    *string   `json:"id,omitempty"`
	Name  string    `json:"name" binding:"required,max=200"`
	Type  string    `json:"type" binding:"required,max=50"`
	Items []ItemDTO `json:"items,omitempty"`
}

// UpdateListRequest is the request body for a partial list update. A nil
// field is left untouched; fields can only be replaced, never cleared. An
// empty (non-nil) items slice is valid and clears the list.
type UpdateListRequest struct {
	Name  *string    `json:"name,omitempty" binding:"omitempty,max=200"`
	Type  *string    `json:"type,omitempty" binding:"omitempty,max=50"`
	Items *[]ItemDTO `json:"items,omitempty"`
}

// AddItemRequest is the request body for appending one item.
type AddItemRequest struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name" binding:"required"`
	Quantity *int   `json:"quantity,omitempty"`
	Details  string `json:"details,omitempty"`
	PhotoURL string `json:"photo_url,omitempty"`
	Priority string `json:"priority,omitempty"`
}

// UpdateItemRequest is the request body for a partial edit of one item.
type UpdateItemRequest struct {
	Checked  *bool   `json:"checked,omitempty"`
	Details  *string `json:"details,omitempty"`
	PhotoURL *string `json:"photo_url,omitempty"`
	Priority *string `json:"priority,omitempty"`
}

// AdjustQuantityRequest nudges an item's quantity. Floor is the lowest value
// the quantity may reach: 0 by default, 1 where the client treats a listed
// item as implying at least one unit.
type AdjustQuantityRequest struct {
	Delta int  `json:"delta" binding:"required"`
	Floor *int `json:"floor,omitempty" binding:"omitempty,min=0,max=1"`
}

// ListDTO represents a list in responses to its owner and shared users.
type ListDTO struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	SharedWith []string  `json:"shared_with"`
	Items      []ItemDTO `json:"items"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// SharedListDTO is a ListDTO annotated with the owner's display profile.
// Owner fields are null when the owner lookup failed.
type SharedListDTO struct {
	ListDTO
	OwnerEmail *string `json:"owner_email"`
	OwnerName  *string `json:"owner_name"`
}

// PublicListDTO is the unauthenticated share-link projection. It must never
// carry user_id or shared_with.
type PublicListDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Items     []ItemDTO `json:"items"`
	CreatedAt time.Time `json:"created_at"`
}

// DeleteListResponse wraps the deleted snapshot.
type DeleteListResponse struct {
	Message string  `json:"message"`
	List    ListDTO `json:"list"`
}

// ItemToDTO converts an Item model to ItemDTO
func ItemToDTO(it models.Item) ItemDTO {
	q := it.Quantity
	return ItemDTO{
		ID:       it.ID,
		Name:     it.Name,
		Quantity: &q,
		Details:  it.Details,
		PhotoURL: it.PhotoURL,
		Priority: string(it.Priority),
		Checked:  it.Checked,
	}
}

// ItemsToDTO converts an items collection to DTOs, preserving order
func ItemsToDTO(items models.ItemList) []ItemDTO {
	dtos := make([]ItemDTO, len(items))
	for i, it := range items {
		dtos[i] = ItemToDTO(it)
	}
	return dtos
}

// ItemFromDTO converts an ItemDTO to the Item model, applying the defaults
// (quantity 1, priority low).
func ItemFromDTO(d ItemDTO) models.Item {
	quantity := 1
	if d.Quantity != nil && *d.Quantity >= 0 {
		quantity = *d.Quantity
	}
	priority := models.PriorityLow
	if d.Priority != "" {
		priority = models.ItemPriority(d.Priority)
	}
	return models.Item{
		ID:       d.ID,
		Name:     d.Name,
		Quantity: quantity,
		Details:  d.Details,
		PhotoURL: d.PhotoURL,
		Priority: priority,
		Checked:  d.Checked,
	}
}

// ItemsFromDTO converts item DTOs to the model collection, preserving order
func ItemsFromDTO(dtos []ItemDTO) models.ItemList {
	items := make(models.ItemList, len(dtos))
	for i, d := range dtos {
		items[i] = ItemFromDTO(d)
	}
	return items
}

// ListToDTO converts a List model to ListDTO
func ListToDTO(l *models.List) ListDTO {
	shared := l.SharedWith
	if shared == nil {
		shared = models.StringArray{}
	}
	return ListDTO{
		ID:         l.ID,
		UserID:     l.UserID.String(),
		Name:       l.Name,
		Type:       string(l.Type),
		SharedWith: shared,
		Items:      ItemsToDTO(l.Items),
		CreatedAt:  l.CreatedAt,
		UpdatedAt:  l.UpdatedAt,
	}
}

// ListsToDTO converts a slice of List models to DTOs
func ListsToDTO(lists []models.List) []ListDTO {
	dtos := make([]ListDTO, len(lists))
	for i := range lists {
		dtos[i] = ListToDTO(&lists[i])
	}
	return dtos
}

// ListToPublicDTO converts a List model to its restricted share-link
// projection, omitting ownership and sharing fields.
func ListToPublicDTO(l *models.List) PublicListDTO {
	return PublicListDTO{
		ID:        l.ID,
		Name:      l.Name,
		Type:      string(l.Type),
		Items:     ItemsToDTO(l.Items),
		CreatedAt: l.CreatedAt,
	}
}
