package repository

import (
	"time"

	"renobudget/internal/models"

	"gorm.io/gorm"
)

type Timeline struct {
	db *gorm.DB
}

func NewTimeline(db *gorm.DB) *Timeline {
	return &Timeline{db: db}
}

type TimelineEntryUpdate struct {
	StartDay    *int
	EndDay      *int
	StartDate   *time.Time
	EndDate     *time.Time
	Title       *string
	Description *string
	Status      *models.TimelineStatus
}

func (u TimelineEntryUpdate) columns() map[string]interface{} {
	cols := map[string]interface{}{}
	if u.StartDay != nil {
		cols["start_day"] = *u.StartDay
	}
	if u.EndDay != nil {
		cols["end_day"] = *u.EndDay
	}
	if u.StartDate != nil {
		cols["start_date"] = *u.StartDate
	}
	if u.EndDate != nil {
		cols["end_date"] = *u.EndDate
	}
	if u.Title != nil {
		cols["title"] = *u.Title
	}
	if u.Description != nil {
		cols["description"] = *u.Description
	}
	if u.Status != nil {
		cols["status"] = *u.Status
	}
	return cols
}

// LinkInput is one requested item link for ReplaceLinks. A nil
// AllocatedAmount means "copy the item's current estimate".
type LinkInput struct {
	BudgetItemID    uint
	AllocatedAmount *float64
	ActualAmount    float64
	Notes           string
}

func (r *Timeline) ListByProject(projectID uint) ([]models.TimelineEntry, error) {
	var entries []models.TimelineEntry
	err := r.db.Where("project_id = ?", projectID).
		Order("start_day, id").
		Find(&entries).Error
	return entries, err
}

func (r *Timeline) FindByID(projectID, id uint) (*models.TimelineEntry, error) {
	var entry models.TimelineEntry
	if err := r.db.Where("id = ? AND project_id = ?", id, projectID).First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *Timeline) Create(entry *models.TimelineEntry) error {
	if entry.Status == "" {
		entry.Status = models.TimelinePlanned
	}
	return r.db.Create(entry).Error
}

func (r *Timeline) Update(projectID, id uint, upd TimelineEntryUpdate) (*models.TimelineEntry, error) {
	cols := upd.columns()
	if len(cols) > 0 {
		res := r.db.Model(&models.TimelineEntry{}).
			Where("id = ? AND project_id = ?", id, projectID).
			Updates(cols)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	return r.FindByID(projectID, id)
}

func (r *Timeline) Delete(projectID, id uint) error {
	res := r.db.Where("project_id = ?", projectID).Delete(&models.TimelineEntry{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *Timeline) UpdateActionPlan(projectID, id uint, plan string) (*models.TimelineEntry, error) {
	res := r.db.Model(&models.TimelineEntry{}).
		Where("id = ? AND project_id = ?", id, projectID).
		Update("action_plan", plan)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByID(projectID, id)
}

func (r *Timeline) ListNotes(entryID uint) ([]models.TimelineNote, error) {
	var notes []models.TimelineNote
	err := r.db.Where("timeline_entry_id = ?", entryID).Order("created_at, id").Find(&notes).Error
	return notes, err
}

// AddNote appends a note and bumps the entry's denormalized counter.
func (r *Timeline) AddNote(note *models.TimelineNote) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(note).Error; err != nil {
			return err
		}
		return tx.Model(&models.TimelineEntry{}).
			Where("id = ?", note.TimelineEntryID).
			UpdateColumn("notes_count", gorm.Expr("notes_count + 1")).Error
	})
}

func (r *Timeline) ListLinks(entryID uint) ([]models.TimelineBudgetItem, error) {
	var links []models.TimelineBudgetItem
	err := r.db.Where("timeline_entry_id = ?", entryID).Order("id").Find(&links).Error
	return links, err
}

// ReplaceLinks swaps the entry's full link set: delete then insert, in one
// transaction. Last writer wins; there is no merge of concurrent edits.
func (r *Timeline) ReplaceLinks(projectID, entryID uint, inputs []LinkInput) ([]models.TimelineBudgetItem, error) {
	links := []models.TimelineBudgetItem{}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.TimelineBudgetItem{}, "timeline_entry_id = ?", entryID).Error; err != nil {
			return err
		}
		for _, in := range inputs {
			var item models.BudgetItem
			if err := tx.Where("id = ? AND project_id = ?", in.BudgetItemID, projectID).First(&item).Error; err != nil {
				return err
			}
			allocated := item.EstimatedCost
			if in.AllocatedAmount != nil {
				allocated = *in.AllocatedAmount
			}
			link := models.TimelineBudgetItem{
				TimelineEntryID: entryID,
				BudgetItemID:    item.ID,
				AllocatedAmount: allocated,
				ActualAmount:    in.ActualAmount,
				Notes:           in.Notes,
			}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
			links = append(links, link)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return links, nil
}
