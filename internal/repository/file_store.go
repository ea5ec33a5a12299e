package repository

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/user/notecart/backend/internal/models"
	"gorm.io/gorm"
)

// FileListStore is a JSON-file-backed ListStore used when no database is
// configured. The whole collection is loaded once at construction and written
// back after every mutation; a mutex serializes access.
type FileListStore struct {
	path  string
	mu    sync.RWMutex
	lists map[string]models.List
}

// NewFileListStore loads (or creates) the backing file under dataDir.
func NewFileListStore(dataDir string) (*FileListStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}

	s := &FileListStore{
		path:  filepath.Join(dataDir, "lists.json"),
		lists: make(map[string]models.List),
	}

	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return s, s.persist()
	}
	if err != nil {
		return nil, err
	}
	if len(raw) > 0 {
		var all []models.List
		if err := json.Unmarshal(raw, &all); err != nil {
			return nil, err
		}
		for _, l := range all {
			s.lists[l.ID] = l
		}
	}
	return s, nil
}

func (s *FileListStore) Create(list *models.List) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	// gorm fills these for the Postgres store; here it is on us.
	now := time.Now().UTC()
	if list.CreatedAt.IsZero() {
		list.CreatedAt = now
	}
	list.UpdatedAt = now
	s.lists[list.ID] = *list
	return s.persist()
}

func (s *FileListStore) FindByID(id string) (*models.List, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list, ok := s.lists[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &list, nil
}

func (s *FileListStore) ListByOwner(userID uuid.UUID) ([]models.List, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var lists []models.List
	for _, l := range s.lists {
		if l.UserID == userID {
			lists = append(lists, l)
		}
	}
	sortNewestFirst(lists)
	return lists, nil
}

func (s *FileListStore) ListSharedWith(userID uuid.UUID) ([]models.List, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var lists []models.List
	for _, l := range s.lists {
		if l.SharedWith.Contains(userID.String()) {
			lists = append(lists, l)
		}
	}
	sortNewestFirst(lists)
	return lists, nil
}

func (s *FileListStore) Save(list *models.List) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.lists[list.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	list.UpdatedAt = time.Now().UTC()
	s.lists[list.ID] = *list
	return s.persist()
}

func (s *FileListStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.lists, id)
	return s.persist()
}

// persist writes the collection back to disk. Callers hold the lock.
func (s *FileListStore) persist() error {
	all := make([]models.List, 0, len(s.lists))
	for _, l := range s.lists {
		all = append(all, l)
	}
	sortNewestFirst(all)
	raw, err := json.Marshal(all)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o644)
}

func sortNewestFirst(lists []models.List) {
	sort.SliceStable(lists, func(i, j int) bool {
		return lists[i].CreatedAt.After(lists[j].CreatedAt)
	})
}
