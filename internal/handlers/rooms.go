package handlers

import (
	"net/http"
	"strings"

	"renobudget/internal/middleware"
	"renobudget/internal/models"
	"renobudget/internal/repository"

	"github.com/gin-gonic/gin"
)

type Rooms struct {
	projects *repository.Projects
	rooms    *repository.Rooms
	activity *repository.Activity
}

func NewRooms(projects *repository.Projects, rooms *repository.Rooms, activity *repository.Activity) *Rooms {
	return &Rooms{projects: projects, rooms: rooms, activity: activity}
}

type roomRequest struct {
	Name            string  `json:"name"`
	Area            float64 `json:"area"`
	RenovationType  string  `json:"renovation_type"`
	AllocatedBudget float64 `json:"allocated_budget"`
	EstimatedBudget float64 `json:"estimated_budget"`
	ActualCost      float64 `json:"actual_cost"`
	Status          string  `json:"status"`
}

func (h *Rooms) List(c *gin.Context) {
	project, ok := resolveProject(c, h.projects)
	if !ok {
		return
	}
	rooms, err := h.rooms.ListByProject(project.ID)
	if err != nil {
		failed(c, err, "load rooms")
		return
	}
	c.JSON(http.StatusOK, rooms)
}

func (h *Rooms) Create(c *gin.Context) {
	project, ok := resolveProject(c, h.projects)
	if !ok {
		return
	}

	var req roomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		jsonError(c, http.StatusBadRequest, "Room name is required")
		return
	}

	room := models.Room{
		ProjectID:       project.ID,
		Name:            req.Name,
		Area:            req.Area,
		RenovationType:  req.RenovationType,
		AllocatedBudget: req.AllocatedBudget,
		EstimatedBudget: req.EstimatedBudget,
		ActualCost:      req.ActualCost,
		Status:          req.Status,
	}
	if err := h.rooms.Create(&room); err != nil {
		failed(c, err, "create room")
		return
	}

	user := middleware.CurrentUser(c)
	h.activity.Record(user.ID, project.ID, "room", room.ID, "create", "Created room: "+room.Name)
	c.JSON(http.StatusCreated, room)
}

func (h *Rooms) Get(c *gin.Context) {
	project, ok := resolveProject(c, h.projects)
	if !ok {
		return
	}
	roomID, ok := pathID(c, "roomID")
	if !ok {
		return
	}
	room, err := h.rooms.FindByID(project.ID, roomID)
	if err != nil {
		failed(c, err, "load room")
		return
	}
	c.JSON(http.StatusOK, room)
}

type roomUpdateRequest struct {
	Name            *string  `json:"name"`
	Area            *float64 `json:"area"`
	RenovationType  *string  `json:"renovation_type"`
	AllocatedBudget *float64 `json:"allocated_budget"`
	EstimatedBudget *float64 `json:"estimated_budget"`
	ActualCost      *float64 `json:"actual_cost"`
	Status          *string  `json:"status"`
	DisplayOrder    *int     `json:"display_order"`
}

func (h *Rooms) Update(c *gin.Context) {
	project, ok := resolveProject(c, h.projects)
	if !ok {
		return
	}
	roomID, ok := pathID(c, "roomID")
	if !ok {
		return
	}

	var req roomUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		jsonError(c, http.StatusBadRequest, "Room name is required")
		return
	}

	room, err := h.rooms.Update(project.ID, roomID, repository.RoomUpdate{
		Name:            req.Name,
		Area:            req.Area,
		RenovationType:  req.RenovationType,
		AllocatedBudget: req.AllocatedBudget,
		EstimatedBudget: req.EstimatedBudget,
		ActualCost:      req.ActualCost,
		Status:          req.Status,
		DisplayOrder:    req.DisplayOrder,
	})
	if err != nil {
		failed(c, err, "update room")
		return
	}

	user := middleware.CurrentUser(c)
	h.activity.Record(user.ID, project.ID, "room", room.ID, "update", "Updated room: "+room.Name)
	c.JSON(http.StatusOK, room)
}

func (h *Rooms) Delete(c *gin.Context) {
	project, ok := resolveProject(c, h.projects)
	if !ok {
		return
	}
	roomID, ok := pathID(c, "roomID")
	if !ok {
		return
	}
	if err := h.rooms.Delete(project.ID, roomID); err != nil {
		failed(c, err, "delete room")
		return
	}

	user := middleware.CurrentUser(c)
	h.activity.Record(user.ID, project.ID, "room", roomID, "delete", "Deleted room")
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

type reorderRequest struct {
	IDs []uint `json:"ids"`
}

func (h *Rooms) Reorder(c *gin.Context) {
	project, ok := resolveProject(c, h.projects)
	if !ok {
		return
	}

	var req reorderRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.IDs) == 0 {
		jsonError(c, http.StatusBadRequest, "Ordered id list is required")
		return
	}
	if err := h.rooms.Reorder(project.ID, req.IDs); err != nil {
		failed(c, err, "reorder rooms")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
