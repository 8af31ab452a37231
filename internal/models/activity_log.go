package models

import "time"

// ActivityLog records who did what inside a project.
type ActivityLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	UserID    uint    `json:"user_id"`
	ProjectID uint    `gorm:"not null;index" json:"project_id"`
	Project   Project `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	Entity   string `gorm:"size:50;not null" json:"entity"` // "project", "room", "budget_item", ...
	EntityID uint   `json:"entity_id"`
	Action   string `gorm:"size:50;not null" json:"action"` // "create", "update", "delete", ...
	Details  string `gorm:"type:text" json:"details"`
}
