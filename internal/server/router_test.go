package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"renobudget/internal/auth"
	"renobudget/internal/config"
	"renobudget/internal/database"
	"renobudget/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	cfg := &config.Config{JWTSecret: "test-secret", ServerPort: "8080"}
	return NewRouter(cfg, db), db
}

// apiClient plays the browser: it carries cookies between requests.
type apiClient struct {
	t       *testing.T
	router  *gin.Engine
	cookies map[string]*http.Cookie
}

func newClient(t *testing.T, router *gin.Engine) *apiClient {
	return &apiClient{t: t, router: router, cookies: map[string]*http.Cookie{}}
}

func (c *apiClient) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	c.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, ck := range c.cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)
	for _, ck := range w.Result().Cookies() {
		if ck.MaxAge < 0 || ck.Value == "" {
			delete(c.cookies, ck.Name)
		} else {
			c.cookies[ck.Name] = ck
		}
	}
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, into interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), into))
}

func apiPath(format string, args ...interface{}) string {
	return fmt.Sprintf(format, args...)
}

func (c *apiClient) signup(email string) {
	c.t.Helper()
	w := c.do(http.MethodPost, "/api/auth/signup", gin.H{
		"email": email, "password": "secret123", "name": "Tester",
	})
	require.Equal(c.t, http.StatusCreated, w.Code, w.Body.String())
}

func (c *apiClient) createProject(name string, budget float64) uint {
	c.t.Helper()
	w := c.do(http.MethodPost, "/api/projects", gin.H{"name": name, "total_budget": budget})
	require.Equal(c.t, http.StatusCreated, w.Code, w.Body.String())
	var project models.Project
	decode(c.t, w, &project)
	return project.ID
}

func TestAuthFlow(t *testing.T) {
	router, db := newTestServer(t)
	client := newClient(t, router)

	client.signup("alice@example.com")
	require.NotNil(t, client.cookies[auth.SessionCookie])

	// mirrored session row exists, expiring about 7 days out
	var sess models.Session
	require.NoError(t, db.First(&sess).Error)
	assert.WithinDuration(t, time.Now().Add(auth.SessionTTL), sess.ExpiresAt, time.Minute)

	w := client.do(http.MethodGet, "/api/auth/me", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var me models.User
	decode(t, w, &me)
	assert.Equal(t, "alice@example.com", me.Email)

	w = client.do(http.MethodPost, "/api/auth/logout", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// the row is gone and the cookie no longer works
	var count int64
	require.NoError(t, db.Model(&models.Session{}).Count(&count).Error)
	assert.Zero(t, count)

	w = client.do(http.MethodGet, "/api/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	router, _ := newTestServer(t)
	client := newClient(t, router)
	client.signup("alice@example.com")
	client.do(http.MethodPost, "/api/auth/logout", nil)

	w := client.do(http.MethodPost, "/api/auth/login", gin.H{
		"email": "alice@example.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = client.do(http.MethodPost, "/api/auth/login", gin.H{
		"email": "alice@example.com", "password": "secret123",
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeletedSessionRowInvalidatesValidToken(t *testing.T) {
	router, db := newTestServer(t)
	client := newClient(t, router)
	client.signup("alice@example.com")

	// server-side revocation: the token still verifies but the row is gone
	require.NoError(t, db.Delete(&models.Session{}, "1 = 1").Error)

	w := client.do(http.MethodGet, "/api/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	// cookie was cleared in the response
	assert.Nil(t, client.cookies[auth.SessionCookie])
}

func TestProjectCRUD(t *testing.T) {
	router, _ := newTestServer(t)
	client := newClient(t, router)
	client.signup("alice@example.com")

	// validation: empty name
	w := client.do(http.MethodPost, "/api/projects", gin.H{"name": "  "})
	require.Equal(t, http.StatusBadRequest, w.Code)
	var errBody map[string]string
	decode(t, w, &errBody)
	assert.NotEmpty(t, errBody["error"])

	id := client.createProject("Kitchen Redo", 50000)

	w = client.do(http.MethodGet, "/api/projects", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []models.Project
	decode(t, w, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "Kitchen Redo", list[0].Name)

	w = client.do(http.MethodPut, apiPath("/api/projects/%d", id), gin.H{"status": "in_progress"})
	require.Equal(t, http.StatusOK, w.Code)
	var updated models.Project
	decode(t, w, &updated)
	assert.Equal(t, models.ProjectInProgress, updated.Status)
	assert.Equal(t, 50000.0, updated.TotalBudget)

	// another user cannot see or touch it
	stranger := newClient(t, router)
	stranger.signup("bob@example.com")
	w = stranger.do(http.MethodGet, apiPath("/api/projects/%d", id), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = stranger.do(http.MethodDelete, apiPath("/api/projects/%d", id), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = client.do(http.MethodDelete, apiPath("/api/projects/%d", id), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = client.do(http.MethodGet, apiPath("/api/projects/%d", id), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRoomReorderEndpoint(t *testing.T) {
	router, _ := newTestServer(t)
	client := newClient(t, router)
	client.signup("alice@example.com")
	projectID := client.createProject("House", 0)

	var ids []uint
	for _, name := range []string{"Kitchen", "Bathroom", "Bedroom"} {
		w := client.do(http.MethodPost, apiPath("/api/projects/%d/rooms", projectID), gin.H{"name": name})
		require.Equal(t, http.StatusCreated, w.Code)
		var room models.Room
		decode(t, w, &room)
		ids = append(ids, room.ID)
	}

	submitted := []uint{ids[2], ids[0], ids[1]}
	w := client.do(http.MethodPut, apiPath("/api/projects/%d/rooms/reorder", projectID), gin.H{"ids": submitted})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = client.do(http.MethodGet, apiPath("/api/projects/%d/rooms", projectID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var rooms []models.Room
	decode(t, w, &rooms)
	require.Len(t, rooms, 3)
	for i, room := range rooms {
		assert.Equal(t, submitted[i], room.ID)
	}
}

func TestSummaryEndpoint(t *testing.T) {
	router, _ := newTestServer(t)
	client := newClient(t, router)
	client.signup("alice@example.com")
	projectID := client.createProject("Kitchen Redo", 50000)

	w := client.do(http.MethodPost, apiPath("/api/projects/%d/rooms", projectID), gin.H{"name": "Kitchen"})
	require.Equal(t, http.StatusCreated, w.Code)
	var room models.Room
	decode(t, w, &room)

	w = client.do(http.MethodPost, apiPath("/api/projects/%d/budget-items", projectID), gin.H{
		"name": "Cabinets", "room_id": room.ID, "estimated_cost": 12000,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = client.do(http.MethodGet, apiPath("/api/projects/%d/summary", projectID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var summary struct {
		ByRoom []struct {
			RoomName       string  `json:"room_name"`
			EstimatedTotal float64 `json:"estimated_total"`
			ItemCount      int     `json:"item_count"`
		} `json:"byRoom"`
	}
	decode(t, w, &summary)
	require.Len(t, summary.ByRoom, 1)
	assert.Equal(t, "Kitchen", summary.ByRoom[0].RoomName)
	assert.Equal(t, 12000.0, summary.ByRoom[0].EstimatedTotal)
	assert.Equal(t, 1, summary.ByRoom[0].ItemCount)
}

func TestDetailRecomputeOverHTTP(t *testing.T) {
	router, _ := newTestServer(t)
	client := newClient(t, router)
	client.signup("alice@example.com")
	projectID := client.createProject("Kitchen Redo", 50000)

	w := client.do(http.MethodPost, apiPath("/api/projects/%d/budget-items", projectID), gin.H{"name": "Tiling"})
	require.Equal(t, http.StatusCreated, w.Code)
	var item models.BudgetItem
	decode(t, w, &item)

	w = client.do(http.MethodPost, apiPath("/api/projects/%d/budget-items/%d/details", projectID, item.ID), gin.H{
		"detail_type": "material", "name": "Tiles", "quantity": 10, "unit_price": 25,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var detail models.BudgetDetail
	decode(t, w, &detail)
	assert.Equal(t, 250.0, detail.TotalAmount)

	// the parent rollup is visible on the next fetch
	w = client.do(http.MethodGet, apiPath("/api/projects/%d/budget-items/%d", projectID, item.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &item)
	assert.Equal(t, 250.0, item.EstimatedCost)
	assert.Equal(t, 250.0, item.MaterialCost)

	w = client.do(http.MethodPost, apiPath("/api/projects/%d/budget-items/%d/details", projectID, item.ID), gin.H{
		"detail_type": "bogus", "name": "X",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTimelineUpdateKeepsDayRangeValid(t *testing.T) {
	router, _ := newTestServer(t)
	client := newClient(t, router)
	client.signup("alice@example.com")
	projectID := client.createProject("Kitchen Redo", 0)

	w := client.do(http.MethodPost, apiPath("/api/projects/%d/timeline", projectID), gin.H{
		"title": "Demolition", "start_day": 3, "end_day": 5,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var entry models.TimelineEntry
	decode(t, w, &entry)

	// lowering only end_day below the stored start_day must be rejected
	w = client.do(http.MethodPut, apiPath("/api/projects/%d/timeline/%d", projectID, entry.ID), gin.H{
		"end_day": 1,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// moving both sides together is fine
	w = client.do(http.MethodPut, apiPath("/api/projects/%d/timeline/%d", projectID, entry.ID), gin.H{
		"start_day": 1, "end_day": 2,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	decode(t, w, &entry)
	assert.Equal(t, 1, entry.StartDay)
	assert.Equal(t, 2, entry.EndDay)
}

func TestCategoriesSeeded(t *testing.T) {
	router, _ := newTestServer(t)
	client := newClient(t, router)
	client.signup("alice@example.com")

	w := client.do(http.MethodGet, "/api/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var categories []models.Category
	decode(t, w, &categories)
	assert.NotEmpty(t, categories)
}

func TestUnauthenticatedRequestsRejected(t *testing.T) {
	router, _ := newTestServer(t)
	client := newClient(t, router)

	for _, path := range []string{"/api/auth/me", "/api/projects", "/api/categories"} {
		w := client.do(http.MethodGet, path, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}
