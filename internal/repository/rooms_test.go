package repository

import (
	"testing"

	"renobudget/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestRoomReorder(t *testing.T) {
	db := newTestDB(t)
	repo := NewRooms(db)

	user := createTestUser(t, db, "alice@example.com")
	project := createTestProject(t, db, user.ID, "House")

	var ids []uint
	for _, name := range []string{"Kitchen", "Bathroom", "Bedroom", "Hallway"} {
		room := models.Room{ProjectID: project.ID, Name: name}
		require.NoError(t, repo.Create(&room))
		ids = append(ids, room.ID)
	}

	// reverse the list
	submitted := []uint{ids[3], ids[2], ids[1], ids[0]}
	require.NoError(t, repo.Reorder(project.ID, submitted))

	rooms, err := repo.ListByProject(project.ID)
	require.NoError(t, err)
	require.Len(t, rooms, 4)
	for i, room := range rooms {
		assert.Equal(t, submitted[i], room.ID, "position %d", i)
		assert.Equal(t, i, room.DisplayOrder)
	}
}

func TestRoomReorderRejectsForeignIDs(t *testing.T) {
	db := newTestDB(t)
	repo := NewRooms(db)

	user := createTestUser(t, db, "alice@example.com")
	mine := createTestProject(t, db, user.ID, "Mine")
	other := createTestProject(t, db, user.ID, "Other")

	a := models.Room{ProjectID: mine.ID, Name: "A"}
	require.NoError(t, repo.Create(&a))
	b := models.Room{ProjectID: other.ID, Name: "B"}
	require.NoError(t, repo.Create(&b))

	err := repo.Reorder(mine.ID, []uint{b.ID, a.ID})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// the batch rolled back: nothing moved
	got, err := repo.FindByID(mine.ID, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.DisplayOrder)
}

func TestRoomSortFallsBackToID(t *testing.T) {
	db := newTestDB(t)
	repo := NewRooms(db)

	user := createTestUser(t, db, "alice@example.com")
	project := createTestProject(t, db, user.ID, "House")

	// identical display_order values sort by id; gaps are fine
	first := models.Room{ProjectID: project.ID, Name: "First", DisplayOrder: 5}
	second := models.Room{ProjectID: project.ID, Name: "Second", DisplayOrder: 5}
	third := models.Room{ProjectID: project.ID, Name: "Third", DisplayOrder: 2}
	for _, r := range []*models.Room{&first, &second, &third} {
		require.NoError(t, repo.Create(r))
	}

	rooms, err := repo.ListByProject(project.ID)
	require.NoError(t, err)
	require.Len(t, rooms, 3)
	assert.Equal(t, "Third", rooms[0].Name)
	assert.Equal(t, "First", rooms[1].Name)
	assert.Equal(t, "Second", rooms[2].Name)
}
