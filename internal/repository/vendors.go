package repository

import (
	"renobudget/internal/models"

	"gorm.io/gorm"
)

type Vendors struct {
	db *gorm.DB
}

func NewVendors(db *gorm.DB) *Vendors {
	return &Vendors{db: db}
}

type VendorUpdate struct {
	Name           *string
	Company        *string
	Phone          *string
	Email          *string
	Specialization *string
	Rating         *int
	Notes          *string
	DisplayOrder   *int
}

func (u VendorUpdate) columns() map[string]interface{} {
	cols := map[string]interface{}{}
	if u.Name != nil {
		cols["name"] = *u.Name
	}
	if u.Company != nil {
		cols["company"] = *u.Company
	}
	if u.Phone != nil {
		cols["phone"] = *u.Phone
	}
	if u.Email != nil {
		cols["email"] = *u.Email
	}
	if u.Specialization != nil {
		cols["specialization"] = *u.Specialization
	}
	if u.Rating != nil {
		cols["rating"] = *u.Rating
	}
	if u.Notes != nil {
		cols["notes"] = *u.Notes
	}
	if u.DisplayOrder != nil {
		cols["display_order"] = *u.DisplayOrder
	}
	return cols
}

func (r *Vendors) ListByProject(projectID uint) ([]models.Vendor, error) {
	var vendors []models.Vendor
	err := r.db.Where("project_id = ?", projectID).
		Order("display_order, id").
		Find(&vendors).Error
	return vendors, err
}

func (r *Vendors) FindByID(projectID, id uint) (*models.Vendor, error) {
	var vendor models.Vendor
	if err := r.db.Where("id = ? AND project_id = ?", id, projectID).First(&vendor).Error; err != nil {
		return nil, err
	}
	return &vendor, nil
}

func (r *Vendors) Create(vendor *models.Vendor) error {
	return r.db.Create(vendor).Error
}

func (r *Vendors) Update(projectID, id uint, upd VendorUpdate) (*models.Vendor, error) {
	cols := upd.columns()
	if len(cols) > 0 {
		res := r.db.Model(&models.Vendor{}).
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

func (r *Vendors) Delete(projectID, id uint) error {
	res := r.db.Where("project_id = ?", projectID).Delete(&models.Vendor{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *Vendors) Reorder(projectID uint, ids []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for pos, id := range ids {
			res := tx.Model(&models.Vendor{}).
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
