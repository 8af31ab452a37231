package repository

import (
	"testing"
	"time"

	"renobudget/internal/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestSessionLifecycle(t *testing.T) {
	db := newTestDB(t)
	sessions := NewSessions(db)

	user := createTestUser(t, db, "alice@example.com")

	sess, err := sessions.Create(user.ID, auth.SessionTTL)
	require.NoError(t, err)
	assert.NotEmpty(t, sess.ID)

	// expiry lands about 7 days out
	assert.WithinDuration(t, time.Now().Add(auth.SessionTTL), sess.ExpiresAt, time.Minute)

	got, err := sessions.FindByID(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.UserID)

	require.NoError(t, sessions.Delete(sess.ID))
	_, err = sessions.FindByID(sess.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteForUserRevokesAll(t *testing.T) {
	db := newTestDB(t)
	sessions := NewSessions(db)

	user := createTestUser(t, db, "alice@example.com")
	other := createTestUser(t, db, "bob@example.com")

	a, err := sessions.Create(user.ID, auth.SessionTTL)
	require.NoError(t, err)
	b, err := sessions.Create(user.ID, auth.SessionTTL)
	require.NoError(t, err)
	keep, err := sessions.Create(other.ID, auth.SessionTTL)
	require.NoError(t, err)

	require.NoError(t, sessions.DeleteForUser(user.ID))

	for _, id := range []string{a.ID, b.ID} {
		_, err := sessions.FindByID(id)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	}
	_, err = sessions.FindByID(keep.ID)
	assert.NoError(t, err)
}

func TestPurgeExpired(t *testing.T) {
	db := newTestDB(t)
	sessions := NewSessions(db)

	user := createTestUser(t, db, "alice@example.com")

	stale, err := sessions.Create(user.ID, -time.Hour)
	require.NoError(t, err)
	fresh, err := sessions.Create(user.ID, auth.SessionTTL)
	require.NoError(t, err)

	require.NoError(t, sessions.PurgeExpired())

	_, err = sessions.FindByID(stale.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	_, err = sessions.FindByID(fresh.ID)
	assert.NoError(t, err)
}
