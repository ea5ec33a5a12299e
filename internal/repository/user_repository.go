package repository

import (
	"strings"

	"github.com/google/uuid"
	"github.com/user/notecart/backend/internal/models"
	"gorm.io/gorm"
)

// UserRepository is the Postgres-backed UserDirectory, plus the mutations the
// auth flow needs.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepository) FindByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("LOWER(email) = ?", normalizeEmail(email)).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByGoogleID(googleID string) (*models.User, error) {
	var user models.User
	err := r.db.Where("google_id = ?", googleID).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// FindOrCreate looks a user up by Google id, refreshing their profile fields,
// and creates the account on first sign-in. The second return value reports
// whether the user is new.
func (r *UserRepository) FindOrCreate(googleID, email, displayName, avatarURL string) (*models.User, bool, error) {
	var user models.User
	err := r.db.Where("google_id = ?", googleID).First(&user).Error
	if err == nil {
		user.Email = normalizeEmail(email)
		user.DisplayName = displayName
		user.AvatarURL = avatarURL
		if err := r.db.Save(&user).Error; err != nil {
			return nil, false, err
		}
		return &user, false, nil
	}

	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	user = models.User{
		GoogleID:    googleID,
		Email:       normalizeEmail(email),
		DisplayName: displayName,
		AvatarURL:   avatarURL,
	}
	if err := r.db.Create(&user).Error; err != nil {
		return nil, false, err
	}

	return &user, true, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
