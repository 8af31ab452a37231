package repository

import (
	"testing"

	"renobudget/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestProjectsScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	repo := NewProjects(db)

	alice := createTestUser(t, db, "alice@example.com")
	bob := createTestUser(t, db, "bob@example.com")

	project := createTestProject(t, db, alice.ID, "Kitchen Redo")

	got, err := repo.FindByID(alice.ID, project.ID)
	require.NoError(t, err)
	assert.Equal(t, "Kitchen Redo", got.Name)

	// someone else's project looks like it does not exist
	_, err = repo.FindByID(bob.ID, project.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	err = repo.Delete(bob.ID, project.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestProjectPartialUpdate(t *testing.T) {
	db := newTestDB(t)
	repo := NewProjects(db)

	user := createTestUser(t, db, "alice@example.com")
	project := models.Project{
		OwnerID:     user.ID,
		Name:        "Bathroom",
		Description: "Full remodel",
		TotalBudget: 20000,
		Status:      models.ProjectPlanning,
	}
	require.NoError(t, repo.Create(&project))

	budget := 25000.0
	got, err := repo.Update(user.ID, project.ID, ProjectUpdate{TotalBudget: &budget})
	require.NoError(t, err)

	// only the named field changed
	assert.Equal(t, 25000.0, got.TotalBudget)
	assert.Equal(t, "Bathroom", got.Name)
	assert.Equal(t, "Full remodel", got.Description)
	assert.Equal(t, models.ProjectPlanning, got.Status)

	// empty update is a no-op, not an error
	same, err := repo.Update(user.ID, project.ID, ProjectUpdate{})
	require.NoError(t, err)
	assert.Equal(t, got.UpdatedAt, same.UpdatedAt)
}

func TestProjectDeleteCascades(t *testing.T) {
	db := newTestDB(t)
	repo := NewProjects(db)

	user := createTestUser(t, db, "alice@example.com")
	project := createTestProject(t, db, user.ID, "Kitchen Redo")

	room := models.Room{ProjectID: project.ID, Name: "Kitchen"}
	require.NoError(t, db.Create(&room).Error)

	vendor := models.Vendor{ProjectID: project.ID, Name: "Tile Co"}
	require.NoError(t, db.Create(&vendor).Error)

	item := models.BudgetItem{ProjectID: project.ID, RoomID: &room.ID, Name: "Cabinets"}
	require.NoError(t, db.Create(&item).Error)

	detail := models.BudgetDetail{BudgetItemID: item.ID, DetailType: models.DetailMaterial, Name: "Plywood", Quantity: 4, UnitPrice: 50, TotalAmount: 200}
	require.NoError(t, db.Create(&detail).Error)

	actual := models.BudgetActual{BudgetDetailID: detail.ID, Name: "Plywood batch 1", Quantity: 2, UnitPrice: 50, TotalAmount: 100}
	require.NoError(t, db.Create(&actual).Error)

	entry := models.TimelineEntry{ProjectID: project.ID, Title: "Demo day", Status: models.TimelinePlanned}
	require.NoError(t, db.Create(&entry).Error)

	note := models.TimelineNote{TimelineEntryID: entry.ID, Content: "Walls down"}
	require.NoError(t, db.Create(&note).Error)

	link := models.TimelineBudgetItem{TimelineEntryID: entry.ID, BudgetItemID: item.ID, AllocatedAmount: 100}
	require.NoError(t, db.Create(&link).Error)

	require.NoError(t, repo.Delete(user.ID, project.ID))

	for name, model := range map[string]interface{}{
		"rooms":                 &models.Room{},
		"vendors":               &models.Vendor{},
		"budget_items":          &models.BudgetItem{},
		"budget_details":        &models.BudgetDetail{},
		"budget_actuals":        &models.BudgetActual{},
		"timeline_entries":      &models.TimelineEntry{},
		"timeline_notes":        &models.TimelineNote{},
		"timeline_budget_items": &models.TimelineBudgetItem{},
	} {
		var count int64
		require.NoError(t, db.Model(model).Count(&count).Error)
		assert.Zero(t, count, "orphaned rows left in %s", name)
	}
}
