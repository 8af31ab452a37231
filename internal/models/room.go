package models

type Room struct {
	Base
	ProjectID uint    `gorm:"not null;index" json:"project_id"`
	Project   Project `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	Name            string  `gorm:"size:255;not null" json:"name"`
	Area            float64 `json:"area"` // square meters
	RenovationType  string  `gorm:"size:100" json:"renovation_type"`
	AllocatedBudget float64 `json:"allocated_budget"`
	EstimatedBudget float64 `json:"estimated_budget"`
	ActualCost      float64 `json:"actual_cost"`
	Status          string  `gorm:"size:50" json:"status"`
	DisplayOrder    int     `gorm:"default:0" json:"display_order"`
}
