package repository

import (
	"renobudget/internal/models"

	"gorm.io/gorm"
)

type Rooms struct {
	db *gorm.DB
}

func NewRooms(db *gorm.DB) *Rooms {
	return &Rooms{db: db}
}

type RoomUpdate struct {
	Name            *string
	Area            *float64
	RenovationType  *string
	AllocatedBudget *float64
	EstimatedBudget *float64
	ActualCost      *float64
	Status          *string
	DisplayOrder    *int
}

func (u RoomUpdate) columns() map[string]interface{} {
	cols := map[string]interface{}{}
	if u.Name != nil {
		cols["name"] = *u.Name
	}
	if u.Area != nil {
		cols["area"] = *u.Area
	}
	if u.RenovationType != nil {
		cols["renovation_type"] = *u.RenovationType
	}
	if u.AllocatedBudget != nil {
		cols["allocated_budget"] = *u.AllocatedBudget
	}
	if u.EstimatedBudget != nil {
		cols["estimated_budget"] = *u.EstimatedBudget
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

func (r *Rooms) ListByProject(projectID uint) ([]models.Room, error) {
	var rooms []models.Room
	err := r.db.Where("project_id = ?", projectID).
		Order("display_order, id").
		Find(&rooms).Error
	return rooms, err
}

func (r *Rooms) FindByID(projectID, id uint) (*models.Room, error) {
	var room models.Room
	if err := r.db.Where("id = ? AND project_id = ?", id, projectID).First(&room).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *Rooms) Create(room *models.Room) error {
	return r.db.Create(room).Error
}

func (r *Rooms) Update(projectID, id uint, upd RoomUpdate) (*models.Room, error) {
	cols := upd.columns()
	if len(cols) > 0 {
		res := r.db.Model(&models.Room{}).
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

func (r *Rooms) Delete(projectID, id uint) error {
	res := r.db.Where("project_id = ?", projectID).Delete(&models.Room{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Reorder rewrites display_order as 0..N-1 following the submitted id list.
// One transaction: an id outside the project rolls the whole batch back.
func (r *Rooms) Reorder(projectID uint, ids []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for pos, id := range ids {
			res := tx.Model(&models.Room{}).
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
