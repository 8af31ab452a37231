package repository

import (
	"time"

	"renobudget/internal/models"

	"gorm.io/gorm"
)

type Projects struct {
	db *gorm.DB
}

func NewProjects(db *gorm.DB) *Projects {
	return &Projects{db: db}
}

// ProjectUpdate names the updatable columns. Nil fields are left untouched.
type ProjectUpdate struct {
	Name          *string
	Description   *string
	TotalBudget   *float64
	StartDate     *time.Time
	TargetEndDate *time.Time
	Status        *models.ProjectStatus
}

func (u ProjectUpdate) columns() map[string]interface{} {
	cols := map[string]interface{}{}
	if u.Name != nil {
		cols["name"] = *u.Name
	}
	if u.Description != nil {
		cols["description"] = *u.Description
	}
	if u.TotalBudget != nil {
		cols["total_budget"] = *u.TotalBudget
	}
	if u.StartDate != nil {
		cols["start_date"] = *u.StartDate
	}
	if u.TargetEndDate != nil {
		cols["target_end_date"] = *u.TargetEndDate
	}
	if u.Status != nil {
		cols["status"] = *u.Status
	}
	return cols
}

func (r *Projects) ListByOwner(ownerID uint) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Where("owner_id = ?", ownerID).Order("created_at desc").Find(&projects).Error
	return projects, err
}

// FindByID resolves a project under the caller's ownership. Unknown ids and
// other users' projects both come back as ErrRecordNotFound.
func (r *Projects) FindByID(ownerID, id uint) (*models.Project, error) {
	var project models.Project
	if err := r.db.Where("id = ? AND owner_id = ?", id, ownerID).First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *Projects) Create(project *models.Project) error {
	if project.Status == "" {
		project.Status = models.ProjectPlanning
	}
	return r.db.Create(project).Error
}

func (r *Projects) Update(ownerID, id uint, upd ProjectUpdate) (*models.Project, error) {
	cols := upd.columns()
	if len(cols) > 0 {
		res := r.db.Model(&models.Project{}).
			Where("id = ? AND owner_id = ?", id, ownerID).
			Updates(cols)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	return r.FindByID(ownerID, id)
}

// Delete removes the project; dependent rooms, budget items, details,
// actuals, vendors, timeline entries, notes and links go with it via
// ON DELETE CASCADE.
func (r *Projects) Delete(ownerID, id uint) error {
	res := r.db.Where("owner_id = ?", ownerID).Delete(&models.Project{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
