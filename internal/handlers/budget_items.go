package handlers

import (
	"net/http"
	"strings"

	"renobudget/internal/middleware"
	"renobudget/internal/models"
	"renobudget/internal/repository"

	"github.com/gin-gonic/gin"
)

type BudgetItems struct {
	projects *repository.Projects
	items    *repository.BudgetItems
	rooms    *repository.Rooms
	activity *repository.Activity
}

func NewBudgetItems(projects *repository.Projects, items *repository.BudgetItems, rooms *repository.Rooms, activity *repository.Activity) *BudgetItems {
	return &BudgetItems{projects: projects, items: items, rooms: rooms, activity: activity}
}

type budgetItemRequest struct {
	RoomID        *uint   `json:"room_id"`
	CategoryID    *uint   `json:"category_id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	EstimatedCost float64 `json:"estimated_cost"`
	ActualCost    float64 `json:"actual_cost"`
	Status        string  `json:"status"`
	Notes         string  `json:"notes"`
	LongNotes     string  `json:"long_notes"`
}

func (h *BudgetItems) List(c *gin.Context) {
	project, ok := resolveProject(c, h.projects)
	if !ok {
		return
	}
	items, err := h.items.ListByProject(project.ID)
	if err != nil {
		failed(c, err, "load budget items")
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *BudgetItems) Create(c *gin.Context) {
	project, ok := resolveProject(c, h.projects)
	if !ok {
		return
	}

	var req budgetItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		jsonError(c, http.StatusBadRequest, "Item name is required")
		return
	}

	// a room assignment must point inside the same project
	if req.RoomID != nil && *req.RoomID != 0 {
		if _, err := h.rooms.FindByID(project.ID, *req.RoomID); err != nil {
			jsonError(c, http.StatusBadRequest, "Room not found in project")
			return
		}
	}

	item := models.BudgetItem{
		ProjectID:     project.ID,
		RoomID:        req.RoomID,
		CategoryID:    req.CategoryID,
		Name:          req.Name,
		Description:   req.Description,
		EstimatedCost: req.EstimatedCost,
		ActualCost:    req.ActualCost,
		Status:        req.Status,
		Notes:         req.Notes,
		LongNotes:     req.LongNotes,
	}
	if err := h.items.Create(&item); err != nil {
		failed(c, err, "create budget item")
		return
	}

	user := middleware.CurrentUser(c)
	h.activity.Record(user.ID, project.ID, "budget_item", item.ID, "create", "Created budget item: "+item.Name)
	c.JSON(http.StatusCreated, item)
}

func (h *BudgetItems) Get(c *gin.Context) {
	project, ok := resolveProject(c, h.projects)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemID")
	if !ok {
		return
	}
	item, err := h.items.FindByID(project.ID, itemID)
	if err != nil {
		failed(c, err, "load budget item")
		return
	}
	c.JSON(http.StatusOK, item)
}

type budgetItemUpdateRequest struct {
	RoomID        *uint    `json:"room_id"`
	CategoryID    *uint    `json:"category_id"`
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	EstimatedCost *float64 `json:"estimated_cost"`
	ActualCost    *float64 `json:"actual_cost"`
	Status        *string  `json:"status"`
	DisplayOrder  *int     `json:"display_order"`
}

func (h *BudgetItems) Update(c *gin.Context) {
	project, ok := resolveProject(c, h.projects)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemID")
	if !ok {
		return
	}

	var req budgetItemUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		jsonError(c, http.StatusBadRequest, "Item name is required")
		return
	}
	if req.RoomID != nil && *req.RoomID != 0 {
		if _, err := h.rooms.FindByID(project.ID, *req.RoomID); err != nil {
			jsonError(c, http.StatusBadRequest, "Room not found in project")
			return
		}
	}

	item, err := h.items.Update(project.ID, itemID, repository.BudgetItemUpdate{
		RoomID:        req.RoomID,
		CategoryID:    req.CategoryID,
		Name:          req.Name,
		Description:   req.Description,
		EstimatedCost: req.EstimatedCost,
		ActualCost:    req.ActualCost,
		Status:        req.Status,
		DisplayOrder:  req.DisplayOrder,
	})
	if err != nil {
		failed(c, err, "update budget item")
		return
	}

	user := middleware.CurrentUser(c)
	h.activity.Record(user.ID, project.ID, "budget_item", item.ID, "update", "Updated budget item: "+item.Name)
	c.JSON(http.StatusOK, item)
}

type itemNotesRequest struct {
	Notes     *string `json:"notes"`
	LongNotes *string `json:"long_notes"`
}

func (h *BudgetItems) UpdateNotes(c *gin.Context) {
	project, ok := resolveProject(c, h.projects)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemID")
	if !ok {
		return
	}

	var req itemNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := h.items.UpdateNotes(project.ID, itemID, req.Notes, req.LongNotes)
	if err != nil {
		failed(c, err, "update notes")
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *BudgetItems) Delete(c *gin.Context) {
	project, ok := resolveProject(c, h.projects)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemID")
	if !ok {
		return
	}
	if err := h.items.Delete(project.ID, itemID); err != nil {
		failed(c, err, "delete budget item")
		return
	}

	user := middleware.CurrentUser(c)
	h.activity.Record(user.ID, project.ID, "budget_item", itemID, "delete", "Deleted budget item")
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *BudgetItems) Reorder(c *gin.Context) {
	project, ok := resolveProject(c, h.projects)
	if !ok {
		return
	}

	var req reorderRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.IDs) == 0 {
		jsonError(c, http.StatusBadRequest, "Ordered id list is required")
		return
	}
	if err := h.items.Reorder(project.ID, req.IDs); err != nil {
		failed(c, err, "reorder budget items")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
