package repository

import (
	"renobudget/internal/models"

	"gorm.io/gorm"
)

type BudgetItems struct {
	db *gorm.DB
}

func NewBudgetItems(db *gorm.DB) *BudgetItems {
	return &BudgetItems{db: db}
}

type BudgetItemUpdate struct {
	RoomID        *uint
	CategoryID    *uint
	Name          *string
	Description   *string
	EstimatedCost *float64
	ActualCost    *float64
	Status        *string
	DisplayOrder  *int
}

func (u BudgetItemUpdate) columns() map[string]interface{} {
	cols := map[string]interface{}{}
	if u.RoomID != nil {
		// zero clears the room assignment
		if *u.RoomID == 0 {
			cols["room_id"] = nil
		} else {
			cols["room_id"] = *u.RoomID
		}
	}
	if u.CategoryID != nil {
		if *u.CategoryID == 0 {
			cols["category_id"] = nil
		} else {
			cols["category_id"] = *u.CategoryID
		}
	}
	if u.Name != nil {
		cols["name"] = *u.Name
	}
	if u.Description != nil {
		cols["description"] = *u.Description
	}
	if u.EstimatedCost != nil {
		cols["estimated_cost"] = *u.EstimatedCost
	}
	if u.ActualCost != nil {
		cols["actual_cost"] = *u.ActualCost
	}
	if u.Status != nil {
		cols["status"] = *u.Status
	}
	if u.DisplayOrder != nil {
		cols["display_order"] = *u.DisplayOrder
	}
	return cols
}

func (r *BudgetItems) ListByProject(projectID uint) ([]models.BudgetItem, error) {
	var items []models.BudgetItem
	err := r.db.Where("project_id = ?", projectID).
		Order("display_order, id").
		Find(&items).Error
	return items, err
}

func (r *BudgetItems) FindByID(projectID, id uint) (*models.BudgetItem, error) {
	var item models.BudgetItem
	if err := r.db.Where("id = ? AND project_id = ?", id, projectID).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *BudgetItems) Create(item *models.BudgetItem) error {
	return r.db.Create(item).Error
}

func (r *BudgetItems) Update(projectID, id uint, upd BudgetItemUpdate) (*models.BudgetItem, error) {
	cols := upd.columns()
	if len(cols) > 0 {
		res := r.db.Model(&models.BudgetItem{}).
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

// UpdateNotes touches only the two note columns.
func (r *BudgetItems) UpdateNotes(projectID, id uint, notes, longNotes *string) (*models.BudgetItem, error) {
	cols := map[string]interface{}{}
	if notes != nil {
		cols["notes"] = *notes
	}
	if longNotes != nil {
		cols["long_notes"] = *longNotes
	}
	if len(cols) > 0 {
		res := r.db.Model(&models.BudgetItem{}).
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

func (r *BudgetItems) Delete(projectID, id uint) error {
	res := r.db.Where("project_id = ?", projectID).Delete(&models.BudgetItem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *BudgetItems) Reorder(projectID uint, ids []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for pos, id := range ids {
			res := tx.Model(&models.BudgetItem{}).
				Where("id = ? AND project_id = ?", id, projectID).
				Update("display_order", pos)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}
		return nil
	})
}
