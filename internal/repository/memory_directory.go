package repository

import (
	"sync"

	"github.com/google/uuid"
	"github.com/user/notecart/backend/internal/models"
	"gorm.io/gorm"
)

// MemoryUserDirectory is an in-memory UserDirectory. It backs the file-store
// deployment mode (where no identity database exists, so every email resolves
// to not-found) and the service tests.
type MemoryUserDirectory struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]models.User
	byEmail map[string]uuid.UUID
}

func NewMemoryUserDirectory() *MemoryUserDirectory {
	return &MemoryUserDirectory{
		byID:    make(map[uuid.UUID]models.User),
		byEmail: make(map[string]uuid.UUID),
	}
}

// Add registers a user, keyed by id and normalized email.
func (d *MemoryUserDirectory) Add(user models.User) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.byID[user.ID] = user
	d.byEmail[normalizeEmail(user.Email)] = user.ID
}

func (d *MemoryUserDirectory) FindByID(id uuid.UUID) (*models.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	user, ok := d.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &user, nil
}

func (d *MemoryUserDirectory) FindByEmail(email string) (*models.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	id, ok := d.byEmail[normalizeEmail(email)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	user := d.byID[id]
	return &user, nil
}
