package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"renobudget/internal/middleware"
	"renobudget/internal/models"
	"renobudget/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func jsonError(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

// pathID parses a numeric path parameter; on failure it has already
// written the 400 response.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		jsonError(c, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return uint(id), true
}

// failed maps a repository error: missing rows become 404, anything else a
// generic 500 so database details never reach the client.
func failed(c *gin.Context, err error, what string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		jsonError(c, http.StatusNotFound, "Not found")
		return
	}
	jsonError(c, http.StatusInternalServerError, "Failed to "+what)
}

// resolveProject loads the :id project under the caller's ownership. Every
// subresource route goes through this, so foreign ids 404 uniformly.
func resolveProject(c *gin.Context, projects *repository.Projects) (*models.Project, bool) {
	user := middleware.CurrentUser(c)
	id, ok := pathID(c, "id")
	if !ok {
		return nil, false
	}
	project, err := projects.FindByID(user.ID, id)
	if err != nil {
		failed(c, err, "load project")
		return nil, false
	}
	return project, true
}
