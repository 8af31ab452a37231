package repository

import (
	"time"

	"renobudget/internal/models"

	"gorm.io/gorm"
)

type BudgetDetails struct {
	db *gorm.DB
}

func NewBudgetDetails(db *gorm.DB) *BudgetDetails {
	return &BudgetDetails{db: db}
}

type BudgetDetailUpdate struct {
	DetailType *models.DetailType
	Name       *string
	Quantity   *float64
	UnitPrice  *float64
	Vendor     *string
	Status     *string
	Notes      *string
}

type BudgetActualUpdate struct {
	Name          *string
	Quantity      *float64
	UnitPrice     *float64
	Vendor        *string
	InvoiceNumber *string
	PurchaseDate  *time.Time
	PaymentMethod *string
	Notes         *string
}

func (r *BudgetDetails) ListByItem(itemID uint) ([]models.BudgetDetail, error) {
	var details []models.BudgetDetail
	err := r.db.Where("budget_item_id = ?", itemID).Order("id").Find(&details).Error
	return details, err
}

func (r *BudgetDetails) FindByID(itemID, id uint) (*models.BudgetDetail, error) {
	var detail models.BudgetDetail
	if err := r.db.Where("id = ? AND budget_item_id = ?", id, itemID).First(&detail).Error; err != nil {
		return nil, err
	}
	return &detail, nil
}

// Create inserts a detail line and refreshes the parent item's rollup.
// total_amount is never taken from the caller.
func (r *BudgetDetails) Create(detail *models.BudgetDetail) error {
	detail.TotalAmount = detail.Quantity * detail.UnitPrice
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(detail).Error; err != nil {
			return err
		}
		return refreshItemTotals(tx, detail.BudgetItemID)
	})
}

func (r *BudgetDetails) Update(itemID, id uint, upd BudgetDetailUpdate) (*models.BudgetDetail, error) {
	var detail models.BudgetDetail
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND budget_item_id = ?", id, itemID).First(&detail).Error; err != nil {
			return err
		}
		if upd.DetailType != nil {
			detail.DetailType = *upd.DetailType
		}
		if upd.Name != nil {
			detail.Name = *upd.Name
		}
		if upd.Quantity != nil {
			detail.Quantity = *upd.Quantity
		}
		if upd.UnitPrice != nil {
			detail.UnitPrice = *upd.UnitPrice
		}
		if upd.Vendor != nil {
			detail.Vendor = *upd.Vendor
		}
		if upd.Status != nil {
			detail.Status = *upd.Status
		}
		if upd.Notes != nil {
			detail.Notes = *upd.Notes
		}
		detail.TotalAmount = detail.Quantity * detail.UnitPrice
		if err := tx.Save(&detail).Error; err != nil {
			return err
		}
		return refreshItemTotals(tx, itemID)
	})
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

func (r *BudgetDetails) Delete(itemID, id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("budget_item_id = ?", itemID).Delete(&models.BudgetDetail{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return refreshItemTotals(tx, itemID)
	})
}

func (r *BudgetDetails) ListActuals(detailID uint) ([]models.BudgetActual, error) {
	var actuals []models.BudgetActual
	err := r.db.Where("budget_detail_id = ?", detailID).Order("id").Find(&actuals).Error
	return actuals, err
}

func (r *BudgetDetails) CreateActual(itemID uint, actual *models.BudgetActual) error {
	actual.TotalAmount = actual.Quantity * actual.UnitPrice
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(actual).Error; err != nil {
			return err
		}
		return refreshItemTotals(tx, itemID)
	})
}

func (r *BudgetDetails) UpdateActual(itemID, detailID, id uint, upd BudgetActualUpdate) (*models.BudgetActual, error) {
	var actual models.BudgetActual
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND budget_detail_id = ?", id, detailID).First(&actual).Error; err != nil {
			return err
		}
		if upd.Name != nil {
			actual.Name = *upd.Name
		}
		if upd.Quantity != nil {
			actual.Quantity = *upd.Quantity
		}
		if upd.UnitPrice != nil {
			actual.UnitPrice = *upd.UnitPrice
		}
		if upd.Vendor != nil {
			actual.Vendor = *upd.Vendor
		}
		if upd.InvoiceNumber != nil {
			actual.InvoiceNumber = *upd.InvoiceNumber
		}
		if upd.PurchaseDate != nil {
			actual.PurchaseDate = upd.PurchaseDate
		}
		if upd.PaymentMethod != nil {
			actual.PaymentMethod = *upd.PaymentMethod
		}
		if upd.Notes != nil {
			actual.Notes = *upd.Notes
		}
		actual.TotalAmount = actual.Quantity * actual.UnitPrice
		if err := tx.Save(&actual).Error; err != nil {
			return err
		}
		return refreshItemTotals(tx, itemID)
	})
	if err != nil {
		return nil, err
	}
	return &actual, nil
}

func (r *BudgetDetails) DeleteActual(itemID, detailID, id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("budget_detail_id = ?", detailID).Delete(&models.BudgetActual{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return refreshItemTotals(tx, itemID)
	})
}

// refreshItemTotals rewrites the parent item's per-type, estimated and
// actual columns from its children. It only runs on child mutations, so
// an empty result set means the last detail was deleted and every column
// goes to zero; items that never had details are never touched.
func refreshItemTotals(tx *gorm.DB, itemID uint) error {
	type typeSum struct {
		DetailType models.DetailType
		Total      float64
	}
	var sums []typeSum
	err := tx.Model(&models.BudgetDetail{}).
		Select("detail_type, COALESCE(SUM(total_amount), 0) AS total").
		Where("budget_item_id = ?", itemID).
		Group("detail_type").
		Scan(&sums).Error
	if err != nil {
		return err
	}

	cols := map[string]interface{}{
		"material_cost": 0.0,
		"labour_cost":   0.0,
		"service_cost":  0.0,
		"new_item_cost": 0.0,
		"other_cost":    0.0,
	}
	var estimated float64
	for _, s := range sums {
		estimated += s.Total
		switch s.DetailType {
		case models.DetailMaterial:
			cols["material_cost"] = s.Total
		case models.DetailLabour:
			cols["labour_cost"] = s.Total
		case models.DetailService:
			cols["service_cost"] = s.Total
		case models.DetailNewItem:
			cols["new_item_cost"] = s.Total
		case models.DetailOther:
			cols["other_cost"] = s.Total
		}
	}
	cols["estimated_cost"] = estimated

	var actual float64
	err = tx.Raw(`SELECT COALESCE(SUM(a.total_amount), 0)
		FROM budget_actuals a
		JOIN budget_details d ON d.id = a.budget_detail_id
		WHERE d.budget_item_id = ?`, itemID).Scan(&actual).Error
	if err != nil {
		return err
	}
	cols["actual_cost"] = actual

	return tx.Model(&models.BudgetItem{}).Where("id = ?", itemID).Updates(cols).Error
}
