package models

// Category is a shared lookup table, not project-scoped.
type Category struct {
	Base
	Name  string `gorm:"uniqueIndex;size:100;not null" json:"name"`
	Icon  string `gorm:"size:50" json:"icon"`
	Color string `gorm:"size:20" json:"color"`
}
