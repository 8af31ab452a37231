package handlers

import (
	"net/http"
	"strings"

	"renobudget/internal/middleware"
	"renobudget/internal/models"
	"renobudget/internal/repository"

	"github.com/gin-gonic/gin"
)

type Vendors struct {
	projects *repository.Projects
	vendors  *repository.Vendors
	activity *repository.Activity
}

func NewVendors(projects *repository.Projects, vendors *repository.Vendors, activity *repository.Activity) *Vendors {
	return &Vendors{projects: projects, vendors: vendors, activity: activity}
}

type vendorRequest struct {
	Name           string `json:"name"`
	Company        string `json:"company"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	Specialization string `json:"specialization"`
	Rating         int    `json:"rating"`
	Notes          string `json:"notes"`
}

func validRating(rating int) bool {
	return rating >= 0 && rating <= 5
}

func (h *Vendors) List(c *gin.Context) {
	project, ok := resolveProject(c, h.projects)
	if !ok {
		return
	}
	vendors, err := h.vendors.ListByProject(project.ID)
	if err != nil {
		failed(c, err, "load vendors")
		return
	}
	c.JSON(http.StatusOK, vendors)
}

func (h *Vendors) Create(c *gin.Context) {
	project, ok := resolveProject(c, h.projects)
	if !ok {
		return
	}

	var req vendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		jsonError(c, http.StatusBadRequest, "Vendor name is required")
		return
	}
	if !validRating(req.Rating) {
		jsonError(c, http.StatusBadRequest, "Rating must be between 1 and 5")
		return
	}

	vendor := models.Vendor{
		ProjectID:      project.ID,
		Name:           req.Name,
		Company:        req.Company,
		Phone:          req.Phone,
		Email:          req.Email,
		Specialization: req.Specialization,
		Rating:         req.Rating,
		Notes:          req.Notes,
	}
	if err := h.vendors.Create(&vendor); err != nil {
		failed(c, err, "create vendor")
		return
	}

	user := middleware.CurrentUser(c)
	h.activity.Record(user.ID, project.ID, "vendor", vendor.ID, "create", "Created vendor: "+vendor.Name)
	c.JSON(http.StatusCreated, vendor)
}

func (h *Vendors) Get(c *gin.Context) {
	project, ok := resolveProject(c, h.projects)
	if !ok {
		return
	}
	vendorID, ok := pathID(c, "vendorID")
	if !ok {
		return
	}
	vendor, err := h.vendors.FindByID(project.ID, vendorID)
	if err != nil {
		failed(c, err, "load vendor")
		return
	}
	c.JSON(http.StatusOK, vendor)
}

type vendorUpdateRequest struct {
	Name           *string `json:"name"`
	Company        *string `json:"company"`
	Phone          *string `json:"phone"`
	Email          *string `json:"email"`
	Specialization *string `json:"specialization"`
	Rating         *int    `json:"rating"`
	Notes          *string `json:"notes"`
	DisplayOrder   *int    `json:"display_order"`
}

func (h *Vendors) Update(c *gin.Context) {
	project, ok := resolveProject(c, h.projects)
	if !ok {
		return
	}
	vendorID, ok := pathID(c, "vendorID")
	if !ok {
		return
	}

	var req vendorUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		jsonError(c, http.StatusBadRequest, "Vendor name is required")
		return
	}
	if req.Rating != nil && !validRating(*req.Rating) {
		jsonError(c, http.StatusBadRequest, "Rating must be between 1 and 5")
		return
	}

	vendor, err := h.vendors.Update(project.ID, vendorID, repository.VendorUpdate{
		Name:           req.Name,
		Company:        req.Company,
		Phone:          req.Phone,
		Email:          req.Email,
		Specialization: req.Specialization,
		Rating:         req.Rating,
		Notes:          req.Notes,
		DisplayOrder:   req.DisplayOrder,
	})
	if err != nil {
		failed(c, err, "update vendor")
		return
	}

	user := middleware.CurrentUser(c)
	h.activity.Record(user.ID, project.ID, "vendor", vendor.ID, "update", "Updated vendor: "+vendor.Name)
	c.JSON(http.StatusOK, vendor)
}

func (h *Vendors) Delete(c *gin.Context) {
	project, ok := resolveProject(c, h.projects)
	if !ok {
		return
	}
	vendorID, ok := pathID(c, "vendorID")
	if !ok {
		return
	}
	if err := h.vendors.Delete(project.ID, vendorID); err != nil {
		failed(c, err, "delete vendor")
		return
	}

	user := middleware.CurrentUser(c)
	h.activity.Record(user.ID, project.ID, "vendor", vendorID, "delete", "Deleted vendor")
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Vendors) Reorder(c *gin.Context) {
	project, ok := resolveProject(c, h.projects)
	if !ok {
		return
	}

	var req reorderRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.IDs) == 0 {
		jsonError(c, http.StatusBadRequest, "Ordered id list is required")
		return
	}
	if err := h.vendors.Reorder(project.ID, req.IDs); err != nil {
		failed(c, err, "reorder vendors")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
