package models

import "time"

type ProjectStatus string

const (
	ProjectPlanning   ProjectStatus = "planning"
	ProjectInProgress ProjectStatus = "in_progress"
	ProjectCompleted  ProjectStatus = "completed"
	ProjectOnHold     ProjectStatus = "on_hold"
)

func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectPlanning, ProjectInProgress, ProjectCompleted, ProjectOnHold:
		return true
	}
	return false
}

// Project is the root of everything else: rooms, vendors, budget items and
// the timeline all hang off a project and go away with it.
type Project struct {
	Base
	OwnerID uint `gorm:"not null;index" json:"owner_id"`
	Owner   User `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`

	Name          string        `gorm:"size:255;not null" json:"name"`
	Description   string        `gorm:"type:text" json:"description"`
	TotalBudget   float64       `json:"total_budget"`
	StartDate     *time.Time    `json:"start_date"`
	TargetEndDate *time.Time    `json:"target_end_date"`
	Status        ProjectStatus `gorm:"type:varchar(20);not null;default:planning" json:"status"`
}
