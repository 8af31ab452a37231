package models

import "time"

type TimelineStatus string

const (
	TimelinePlanned    TimelineStatus = "planned"
	TimelineInProgress TimelineStatus = "in_progress"
	TimelineCompleted  TimelineStatus = "completed"
	TimelineDelayed    TimelineStatus = "delayed"
)

func (s TimelineStatus) Valid() bool {
	switch s {
	case TimelinePlanned, TimelineInProgress, TimelineCompleted, TimelineDelayed:
		return true
	}
	return false
}

// TimelineEntry is a scheduled day or day range of renovation work.
// StartDay/EndDay are integer offsets from the project start.
type TimelineEntry struct {
	Base
	ProjectID uint    `gorm:"not null;index" json:"project_id"`
	Project   Project `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	StartDay    int            `json:"start_day"`
	EndDay      int            `json:"end_day"`
	StartDate   *time.Time     `json:"start_date"`
	EndDate     *time.Time     `json:"end_date"`
	Title       string         `gorm:"size:255;not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	Status      TimelineStatus `gorm:"type:varchar(20);not null;default:planned" json:"status"`
	ActionPlan  string         `gorm:"type:text" json:"action_plan"`
	NotesCount  int            `gorm:"default:0" json:"notes_count"`
}

// TimelineNote is an append-only progress update on an entry.
type TimelineNote struct {
	Base
	TimelineEntryID uint          `gorm:"not null;index" json:"timeline_entry_id"`
	TimelineEntry   TimelineEntry `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	Content string `gorm:"type:text;not null" json:"content"`
	Author  string `gorm:"size:255" json:"author"`
}

// TimelineBudgetItem links a budget item into a timeline entry.
// AllocatedAmount is copied from the item's estimate at link time.
type TimelineBudgetItem struct {
	Base
	TimelineEntryID uint          `gorm:"not null;index" json:"timeline_entry_id"`
	TimelineEntry   TimelineEntry `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	BudgetItemID uint       `gorm:"not null;index" json:"budget_item_id"`
	BudgetItem   BudgetItem `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	AllocatedAmount float64 `json:"allocated_amount"`
	ActualAmount    float64 `json:"actual_amount"`
	Notes           string  `gorm:"type:text" json:"notes"`
}
