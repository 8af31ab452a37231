package database

import (
	"log"
	"strings"

	"renobudget/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// Open opens (or creates) the database file, runs migrations and seeds the
// shared category catalog. The returned handle is passed into repositories
// explicitly; there is no package-level instance.
func Open(path string) (*gorm.DB, error) {
	dsn := path
	if strings.Contains(path, "?") {
		dsn += "&_pragma=foreign_keys(1)"
	} else {
		dsn += "?_pragma=foreign_keys(1)"
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Project{},
		&models.Room{},
		&models.Category{},
		&models.BudgetItem{},
		&models.BudgetDetail{},
		&models.BudgetActual{},
		&models.Vendor{},
		&models.TimelineEntry{},
		&models.TimelineNote{},
		&models.TimelineBudgetItem{},
		&models.ActivityLog{},
	); err != nil {
		return nil, err
	}

	seedCategories(db)

	return db, nil
}

var defaultCategories = []models.Category{
	{Name: "Demolition", Icon: "hammer", Color: "#9e9e9e"},
	{Name: "Flooring", Icon: "grid", Color: "#8d6e63"},
	{Name: "Plumbing", Icon: "droplet", Color: "#42a5f5"},
	{Name: "Electrical", Icon: "zap", Color: "#ffca28"},
	{Name: "Painting", Icon: "brush", Color: "#ab47bc"},
	{Name: "Carpentry", Icon: "ruler", Color: "#ff7043"},
	{Name: "Fixtures", Icon: "lamp", Color: "#26a69a"},
	{Name: "Appliances", Icon: "plug", Color: "#5c6bc0"},
}

// seed catalog once, on an empty table only
func seedCategories(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		log.Printf("failed to check categories: %v", err)
		return
	}
	if count > 0 {
		return
	}

	for _, cat := range defaultCategories {
		c := cat
		if err := db.Create(&c).Error; err != nil {
			log.Printf("failed to seed category %s: %v", c.Name, err)
		}
	}
	log.Printf("seeded %d default categories", len(defaultCategories))
}
