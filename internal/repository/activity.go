package repository

import (
	"log"

	"renobudget/internal/models"

	"gorm.io/gorm"
)

type Activity struct {
	db *gorm.DB
}

func NewActivity(db *gorm.DB) *Activity {
	return &Activity{db: db}
}

// Record writes one activity row. Best effort: a failed insert is logged
// and never fails the surrounding request.
func (r *Activity) Record(userID, projectID uint, entity string, entityID uint, action, details string) {
	entry := models.ActivityLog{
		UserID:    userID,
		ProjectID: projectID,
		Entity:    entity,
		EntityID:  entityID,
		Action:    action,
		Details:   details,
	}
	if err := r.db.Create(&entry).Error; err != nil {
		log.Printf("failed to record activity (%s %s): %v", action, entity, err)
	}
}

func (r *Activity) ListByProject(projectID uint) ([]models.ActivityLog, error) {
	var entries []models.ActivityLog
	err := r.db.Where("project_id = ?", projectID).Order("created_at desc, id desc").Find(&entries).Error
	return entries, err
}
