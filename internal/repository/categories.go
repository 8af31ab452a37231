package repository

import (
	"renobudget/internal/models"

	"gorm.io/gorm"
)

type Categories struct {
	db *gorm.DB
}

func NewCategories(db *gorm.DB) *Categories {
	return &Categories{db: db}
}

func (r *Categories) FindAll() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Order("name").Find(&categories).Error
	return categories, err
}
