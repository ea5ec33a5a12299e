package repository

import (
	"github.com/google/uuid"
	"github.com/user/notecart/backend/internal/models"
	"gorm.io/gorm"
)

// ListRepository is the Postgres-backed ListStore.
type ListRepository struct {
	db *gorm.DB
}

func NewListRepository(db *gorm.DB) *ListRepository {
	return &ListRepository{db: db}
}

func (r *ListRepository) Create(list *models.List) error {
	return r.db.Create(list).Error
}

func (r *ListRepository) FindByID(id string) (*models.List, error) {
	var list models.List
	err := r.db.Where("id = ?", id).First(&list).Error
	if err != nil {
		return nil, err
	}
	return &list, nil
}

func (r *ListRepository) ListByOwner(userID uuid.UUID) ([]models.List, error) {
	var lists []models.List
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&lists).Error
	return lists, err
}

// ListSharedWith relies on the text[] membership operator; cmd/migrate
// creates a GIN index on shared_with for it.
func (r *ListRepository) ListSharedWith(userID uuid.UUID) ([]models.List, error) {
	var lists []models.List
	err := r.db.
		Where("? = ANY(shared_with)", userID.String()).
		Order("created_at DESC").
		Find(&lists).Error
	return lists, err
}

func (r *ListRepository) Save(list *models.List) error {
	return r.db.Save(list).Error
}

func (r *ListRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.List{}).Error
}
