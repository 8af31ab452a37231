package models

type Vendor struct {
	Base
	ProjectID uint    `gorm:"not null;index" json:"project_id"`
	Project   Project `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	Name           string `gorm:"size:255;not null" json:"name"`
	Company        string `gorm:"size:255" json:"company"`
	Phone          string `gorm:"size:50" json:"phone"`
	Email          string `gorm:"size:255" json:"email"`
	Specialization string `gorm:"size:100" json:"specialization"`
	Rating         int    `json:"rating"` // 1-5, 0 = unrated
	Notes          string `gorm:"type:text" json:"notes"`
	DisplayOrder   int    `gorm:"default:0" json:"display_order"`
}
