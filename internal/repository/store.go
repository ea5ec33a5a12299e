package repository

import (
	"github.com/google/uuid"
	"github.com/user/notecart/backend/internal/models"
)

// ListStore is the persistence contract for lists. Two implementations exist:
// ListRepository (Postgres) and FileListStore (JSON file, used when no
// database is configured). The backend is chosen once at startup.
type ListStore interface {
	Create(list *models.List) error
	FindByID(id string) (*models.List, error)
	// ListByOwner returns the lists owned by userID, newest first.
	ListByOwner(userID uuid.UUID) ([]models.List, error)
	// ListSharedWith returns the lists whose sharing set contains userID.
	ListSharedWith(userID uuid.UUID) ([]models.List, error)
	Save(list *models.List) error
	Delete(id string) error
}

// UserDirectory resolves user identities for share operations. Backed by the
// users table in production and by MemoryUserDirectory in degraded mode and
// tests.
type UserDirectory interface {
	FindByID(id uuid.UUID) (*models.User, error)
	// FindByEmail resolves a trimmed, case-insensitive email address.
	FindByEmail(email string) (*models.User, error)
}
