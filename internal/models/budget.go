package models

import "time"

type DetailType string

const (
	DetailMaterial DetailType = "material"
	DetailLabour   DetailType = "labour"
	DetailService  DetailType = "service"
	DetailNewItem  DetailType = "new_item"
	DetailOther    DetailType = "other"
)

func (t DetailType) Valid() bool {
	switch t {
	case DetailMaterial, DetailLabour, DetailService, DetailNewItem, DetailOther:
		return true
	}
	return false
}

// BudgetItem is a top-level renovation task line ("master"). When detail
// lines exist underneath it the per-type and estimated/actual columns are
// recomputed from them; a bare item keeps whatever costs were supplied.
type BudgetItem struct {
	Base
	ProjectID uint    `gorm:"not null;index" json:"project_id"`
	Project   Project `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	RoomID *uint `json:"room_id"`
	Room   *Room `gorm:"constraint:OnDelete:SET NULL" json:"-"`

	CategoryID *uint     `json:"category_id"`
	Category   *Category `gorm:"constraint:OnDelete:SET NULL" json:"-"`

	Name        string `gorm:"size:255;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`

	MaterialCost float64 `json:"material_cost"`
	LabourCost   float64 `json:"labour_cost"`
	ServiceCost  float64 `json:"service_cost"`
	NewItemCost  float64 `json:"new_item_cost"`
	OtherCost    float64 `json:"other_cost"`

	EstimatedCost float64 `json:"estimated_cost"`
	ActualCost    float64 `json:"actual_cost"`

	Status       string `gorm:"size:50" json:"status"`
	Notes        string `gorm:"size:500" json:"notes"`
	LongNotes    string `gorm:"type:text" json:"long_notes"`
	DisplayOrder int    `gorm:"default:0" json:"display_order"`
}

// BudgetDetail is one planned line under a master item.
// total_amount is always quantity * unit_price, recomputed server-side.
type BudgetDetail struct {
	Base
	BudgetItemID uint       `gorm:"not null;index" json:"budget_item_id"`
	BudgetItem   BudgetItem `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	DetailType  DetailType `gorm:"type:varchar(20);not null" json:"detail_type"`
	Name        string     `gorm:"size:255;not null" json:"name"`
	Quantity    float64    `json:"quantity"`
	UnitPrice   float64    `json:"unit_price"`
	TotalAmount float64    `json:"total_amount"`
	Vendor      string     `gorm:"size:255" json:"vendor"`
	Status      string     `gorm:"size:50" json:"status"`
	Notes       string     `gorm:"type:text" json:"notes"`
}

// BudgetActual records one real purchase against a detail line. Several
// actuals can accumulate on the same detail (partial purchases).
type BudgetActual struct {
	Base
	BudgetDetailID uint         `gorm:"not null;index" json:"budget_detail_id"`
	BudgetDetail   BudgetDetail `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	Name          string     `gorm:"size:255" json:"name"`
	Quantity      float64    `json:"quantity"`
	UnitPrice     float64    `json:"unit_price"`
	TotalAmount   float64    `json:"total_amount"`
	Vendor        string     `gorm:"size:255" json:"vendor"`
	InvoiceNumber string     `gorm:"size:100" json:"invoice_number"`
	PurchaseDate  *time.Time `json:"purchase_date"`
	PaymentMethod string     `gorm:"size:50" json:"payment_method"`
	Notes         string     `gorm:"type:text" json:"notes"`
}
