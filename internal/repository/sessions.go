package repository

import (
	"time"

	"renobudget/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Sessions struct {
	db *gorm.DB
}

func NewSessions(db *gorm.DB) *Sessions {
	return &Sessions{db: db}
}

// Create inserts a fresh session row for the user.
func (r *Sessions) Create(userID uint, ttl time.Duration) (*models.Session, error) {
	sess := models.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		ExpiresAt: time.Now().Add(ttl),
	}
	if err := r.db.Create(&sess).Error; err != nil {
		return nil, err
	}
	return &sess, nil
}

func (r *Sessions) FindByID(id string) (*models.Session, error) {
	var sess models.Session
	if err := r.db.First(&sess, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &sess, nil
}

func (r *Sessions) Delete(id string) error {
	return r.db.Delete(&models.Session{}, "id = ?", id).Error
}

// DeleteForUser revokes every session of a user (signup over an existing
// login, password change).
func (r *Sessions) DeleteForUser(userID uint) error {
	return r.db.Delete(&models.Session{}, "user_id = ?", userID).Error
}

// PurgeExpired removes rows whose expiry has passed. Called opportunistically
// on login; no background job exists.
func (r *Sessions) PurgeExpired() error {
	return r.db.Delete(&models.Session{}, "expires_at < ?", time.Now()).Error
}
