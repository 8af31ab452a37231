package handlers

import (
	"net/http"
	"strings"
	"time"

	"renobudget/internal/middleware"
	"renobudget/internal/models"
	"renobudget/internal/repository"

	"github.com/gin-gonic/gin"
)

type Projects struct {
	projects *repository.Projects
	summary  *repository.Summary
	activity *repository.Activity
}

func NewProjects(projects *repository.Projects, summary *repository.Summary, activity *repository.Activity) *Projects {
	return &Projects{projects: projects, summary: summary, activity: activity}
}

type projectRequest struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	TotalBudget   float64 `json:"total_budget"`
	StartDate     *string `json:"start_date"`
	TargetEndDate *string `json:"target_end_date"`
	Status        string  `json:"status"`
}

func parseDate(s *string) (*time.Time, bool) {
	if s == nil || *s == "" {
		return nil, true
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, false
	}
	return &t, true
}

func (h *Projects) List(c *gin.Context) {
	user := middleware.CurrentUser(c)
	projects, err := h.projects.ListByOwner(user.ID)
	if err != nil {
		failed(c, err, "load projects")
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (h *Projects) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		jsonError(c, http.StatusBadRequest, "Project name is required")
		return
	}

	status := models.ProjectStatus(req.Status)
	if req.Status == "" {
		status = models.ProjectPlanning
	} else if !status.Valid() {
		jsonError(c, http.StatusBadRequest, "Invalid status")
		return
	}

	startDate, ok := parseDate(req.StartDate)
	if !ok {
		jsonError(c, http.StatusBadRequest, "Invalid start date")
		return
	}
	targetEnd, ok := parseDate(req.TargetEndDate)
	if !ok {
		jsonError(c, http.StatusBadRequest, "Invalid target end date")
		return
	}

	project := models.Project{
		OwnerID:       user.ID,
		Name:          req.Name,
		Description:   strings.TrimSpace(req.Description),
		TotalBudget:   req.TotalBudget,
		StartDate:     startDate,
		TargetEndDate: targetEnd,
		Status:        status,
	}
	if err := h.projects.Create(&project); err != nil {
		failed(c, err, "create project")
		return
	}

	h.activity.Record(user.ID, project.ID, "project", project.ID, "create", "Created project: "+project.Name)
	c.JSON(http.StatusCreated, project)
}

func (h *Projects) Get(c *gin.Context) {
	user := middleware.CurrentUser(c)
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	project, err := h.projects.FindByID(user.ID, id)
	if err != nil {
		failed(c, err, "load project")
		return
	}
	c.JSON(http.StatusOK, project)
}

type projectUpdateRequest struct {
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	TotalBudget   *float64 `json:"total_budget"`
	StartDate     *string  `json:"start_date"`
	TargetEndDate *string  `json:"target_end_date"`
	Status        *string  `json:"status"`
}

func (h *Projects) Update(c *gin.Context) {
	user := middleware.CurrentUser(c)
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req projectUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	upd := repository.ProjectUpdate{
		Description: req.Description,
		TotalBudget: req.TotalBudget,
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			jsonError(c, http.StatusBadRequest, "Project name is required")
			return
		}
		upd.Name = &name
	}
	if req.Status != nil {
		status := models.ProjectStatus(*req.Status)
		if !status.Valid() {
			jsonError(c, http.StatusBadRequest, "Invalid status")
			return
		}
		upd.Status = &status
	}
	if req.StartDate != nil {
		t, ok := parseDate(req.StartDate)
		if !ok {
			jsonError(c, http.StatusBadRequest, "Invalid start date")
			return
		}
		upd.StartDate = t
	}
	if req.TargetEndDate != nil {
		t, ok := parseDate(req.TargetEndDate)
		if !ok {
			jsonError(c, http.StatusBadRequest, "Invalid target end date")
			return
		}
		upd.TargetEndDate = t
	}

	project, err := h.projects.Update(user.ID, id, upd)
	if err != nil {
		failed(c, err, "update project")
		return
	}

	h.activity.Record(user.ID, project.ID, "project", project.ID, "update", "Updated project: "+project.Name)
	c.JSON(http.StatusOK, project)
}

func (h *Projects) Delete(c *gin.Context) {
	user := middleware.CurrentUser(c)
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.projects.Delete(user.ID, id); err != nil {
		failed(c, err, "delete project")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Projects) Summary(c *gin.Context) {
	user := middleware.CurrentUser(c)
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if _, err := h.projects.FindByID(user.ID, id); err != nil {
		failed(c, err, "load project")
		return
	}
	summary, err := h.summary.ProjectSummary(id)
	if err != nil {
		failed(c, err, "load summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *Projects) Activity(c *gin.Context) {
	user := middleware.CurrentUser(c)
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if _, err := h.projects.FindByID(user.ID, id); err != nil {
		failed(c, err, "load project")
		return
	}
	entries, err := h.activity.ListByProject(id)
	if err != nil {
		failed(c, err, "load activity")
		return
	}
	c.JSON(http.StatusOK, entries)
}
