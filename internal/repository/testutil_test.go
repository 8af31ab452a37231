package repository

import (
	"path/filepath"
	"testing"

	"renobudget/internal/database"
	"renobudget/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()
	user := models.User{Email: email, PasswordHash: "x", Name: "Test User"}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createTestProject(t *testing.T, db *gorm.DB, ownerID uint, name string) models.Project {
	t.Helper()
	project := models.Project{OwnerID: ownerID, Name: name, Status: models.ProjectPlanning}
	require.NoError(t, db.Create(&project).Error)
	return project
}
