package handlers

import (
	"net/http"
	"strings"

	"renobudget/internal/middleware"
	"renobudget/internal/models"
	"renobudget/internal/repository"

	"github.com/gin-gonic/gin"
)

type Timeline struct {
	projects *repository.Projects
	timeline *repository.Timeline
	activity *repository.Activity
}

func NewTimeline(projects *repository.Projects, timeline *repository.Timeline, activity *repository.Activity) *Timeline {
	return &Timeline{projects: projects, timeline: timeline, activity: activity}
}

func (h *Timeline) resolveEntry(c *gin.Context) (*models.TimelineEntry, bool) {
	project, ok := resolveProject(c, h.projects)
	if !ok {
		return nil, false
	}
	entryID, ok := pathID(c, "entryID")
	if !ok {
		return nil, false
	}
	entry, err := h.timeline.FindByID(project.ID, entryID)
	if err != nil {
		failed(c, err, "load timeline entry")
		return nil, false
	}
	return entry, true
}

type timelineEntryRequest struct {
	StartDay    int     `json:"start_day"`
	EndDay      int     `json:"end_day"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	ActionPlan  string  `json:"action_plan"`
}

func (h *Timeline) List(c *gin.Context) {
	project, ok := resolveProject(c, h.projects)
	if !ok {
		return
	}
	entries, err := h.timeline.ListByProject(project.ID)
	if err != nil {
		failed(c, err, "load timeline")
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *Timeline) Create(c *gin.Context) {
	project, ok := resolveProject(c, h.projects)
	if !ok {
		return
	}

	var req timelineEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		jsonError(c, http.StatusBadRequest, "Title is required")
		return
	}
	if req.EndDay < req.StartDay {
		jsonError(c, http.StatusBadRequest, "End day before start day")
		return
	}

	status := models.TimelineStatus(req.Status)
	if req.Status == "" {
		status = models.TimelinePlanned
	} else if !status.Valid() {
		jsonError(c, http.StatusBadRequest, "Invalid status")
		return
	}

	startDate, ok := parseDate(req.StartDate)
	if !ok {
		jsonError(c, http.StatusBadRequest, "Invalid start date")
		return
	}
	endDate, ok := parseDate(req.EndDate)
	if !ok {
		jsonError(c, http.StatusBadRequest, "Invalid end date")
		return
	}

	entry := models.TimelineEntry{
		ProjectID:   project.ID,
		StartDay:    req.StartDay,
		EndDay:      req.EndDay,
		StartDate:   startDate,
		EndDate:     endDate,
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		ActionPlan:  req.ActionPlan,
	}
	if err := h.timeline.Create(&entry); err != nil {
		failed(c, err, "create timeline entry")
		return
	}

	user := middleware.CurrentUser(c)
	h.activity.Record(user.ID, project.ID, "timeline_entry", entry.ID, "create", "Scheduled: "+entry.Title)
	c.JSON(http.StatusCreated, entry)
}

func (h *Timeline) Get(c *gin.Context) {
	entry, ok := h.resolveEntry(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, entry)
}

type timelineEntryUpdateRequest struct {
	StartDay    *int    `json:"start_day"`
	EndDay      *int    `json:"end_day"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

func (h *Timeline) Update(c *gin.Context) {
	current, ok := h.resolveEntry(c)
	if !ok {
		return
	}

	var req timelineEntryUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		jsonError(c, http.StatusBadRequest, "Title is required")
		return
	}

	// validate the effective range, not just the supplied fields
	startDay, endDay := current.StartDay, current.EndDay
	if req.StartDay != nil {
		startDay = *req.StartDay
	}
	if req.EndDay != nil {
		endDay = *req.EndDay
	}
	if endDay < startDay {
		jsonError(c, http.StatusBadRequest, "End day before start day")
		return
	}

	upd := repository.TimelineEntryUpdate{
		StartDay:    req.StartDay,
		EndDay:      req.EndDay,
		Title:       req.Title,
		Description: req.Description,
	}
	if req.Status != nil {
		status := models.TimelineStatus(*req.Status)
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
	if req.EndDate != nil {
		t, ok := parseDate(req.EndDate)
		if !ok {
			jsonError(c, http.StatusBadRequest, "Invalid end date")
			return
		}
		upd.EndDate = t
	}

	entry, err := h.timeline.Update(current.ProjectID, current.ID, upd)
	if err != nil {
		failed(c, err, "update timeline entry")
		return
	}

	user := middleware.CurrentUser(c)
	h.activity.Record(user.ID, current.ProjectID, "timeline_entry", entry.ID, "update", "Updated schedule: "+entry.Title)
	c.JSON(http.StatusOK, entry)
}

func (h *Timeline) Delete(c *gin.Context) {
	project, ok := resolveProject(c, h.projects)
	if !ok {
		return
	}
	entryID, ok := pathID(c, "entryID")
	if !ok {
		return
	}
	if err := h.timeline.Delete(project.ID, entryID); err != nil {
		failed(c, err, "delete timeline entry")
		return
	}

	user := middleware.CurrentUser(c)
	h.activity.Record(user.ID, project.ID, "timeline_entry", entryID, "delete", "Deleted timeline entry")
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

type actionPlanRequest struct {
	ActionPlan string `json:"action_plan"`
}

func (h *Timeline) UpdateActionPlan(c *gin.Context) {
	project, ok := resolveProject(c, h.projects)
	if !ok {
		return
	}
	entryID, ok := pathID(c, "entryID")
	if !ok {
		return
	}

	var req actionPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	entry, err := h.timeline.UpdateActionPlan(project.ID, entryID, req.ActionPlan)
	if err != nil {
		failed(c, err, "update action plan")
		return
	}
	c.JSON(http.StatusOK, entry)
}

type noteRequest struct {
	Content string `json:"content"`
	Author  string `json:"author"`
}

func (h *Timeline) ListNotes(c *gin.Context) {
	entry, ok := h.resolveEntry(c)
	if !ok {
		return
	}
	notes, err := h.timeline.ListNotes(entry.ID)
	if err != nil {
		failed(c, err, "load notes")
		return
	}
	c.JSON(http.StatusOK, notes)
}

func (h *Timeline) AddNote(c *gin.Context) {
	entry, ok := h.resolveEntry(c)
	if !ok {
		return
	}

	var req noteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		jsonError(c, http.StatusBadRequest, "Note content is required")
		return
	}

	user := middleware.CurrentUser(c)
	author := strings.TrimSpace(req.Author)
	if author == "" {
		author = user.Name
	}

	note := models.TimelineNote{
		TimelineEntryID: entry.ID,
		Content:         req.Content,
		Author:          author,
	}
	if err := h.timeline.AddNote(&note); err != nil {
		failed(c, err, "add note")
		return
	}
	c.JSON(http.StatusCreated, note)
}

type linkRequest struct {
	Links []struct {
		BudgetItemID    uint     `json:"budget_item_id"`
		AllocatedAmount *float64 `json:"allocated_amount"`
		ActualAmount    float64  `json:"actual_amount"`
		Notes           string   `json:"notes"`
	} `json:"links"`
}

func (h *Timeline) ListLinks(c *gin.Context) {
	entry, ok := h.resolveEntry(c)
	if !ok {
		return
	}
	links, err := h.timeline.ListLinks(entry.ID)
	if err != nil {
		failed(c, err, "load budget links")
		return
	}
	c.JSON(http.StatusOK, links)
}

// ReplaceLinks swaps the entry's complete set of budget-item links with the
// submitted one. An empty list clears all links.
func (h *Timeline) ReplaceLinks(c *gin.Context) {
	project, ok := resolveProject(c, h.projects)
	if !ok {
		return
	}
	entryID, ok := pathID(c, "entryID")
	if !ok {
		return
	}
	entry, err := h.timeline.FindByID(project.ID, entryID)
	if err != nil {
		failed(c, err, "load timeline entry")
		return
	}

	var req linkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	inputs := make([]repository.LinkInput, 0, len(req.Links))
	for _, l := range req.Links {
		if l.BudgetItemID == 0 {
			jsonError(c, http.StatusBadRequest, "Budget item id is required")
			return
		}
		inputs = append(inputs, repository.LinkInput{
			BudgetItemID:    l.BudgetItemID,
			AllocatedAmount: l.AllocatedAmount,
			ActualAmount:    l.ActualAmount,
			Notes:           l.Notes,
		})
	}

	links, err := h.timeline.ReplaceLinks(project.ID, entry.ID, inputs)
	if err != nil {
		failed(c, err, "link budget items")
		return
	}
	c.JSON(http.StatusOK, links)
}
