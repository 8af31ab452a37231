package handlers

import (
	"net/http"
	"strings"
	"time"

	"renobudget/internal/models"
	"renobudget/internal/repository"

	"github.com/gin-gonic/gin"
)

type BudgetDetails struct {
	projects *repository.Projects
	items    *repository.BudgetItems
	details  *repository.BudgetDetails
}

func NewBudgetDetails(projects *repository.Projects, items *repository.BudgetItems, details *repository.BudgetDetails) *BudgetDetails {
	return &BudgetDetails{projects: projects, items: items, details: details}
}

// resolveItem scopes the :itemID parameter through the owning project.
func (h *BudgetDetails) resolveItem(c *gin.Context) (*models.BudgetItem, bool) {
	project, ok := resolveProject(c, h.projects)
	if !ok {
		return nil, false
	}
	itemID, ok := pathID(c, "itemID")
	if !ok {
		return nil, false
	}
	item, err := h.items.FindByID(project.ID, itemID)
	if err != nil {
		failed(c, err, "load budget item")
		return nil, false
	}
	return item, true
}

func (h *BudgetDetails) resolveDetail(c *gin.Context) (*models.BudgetDetail, bool) {
	item, ok := h.resolveItem(c)
	if !ok {
		return nil, false
	}
	detailID, ok := pathID(c, "detailID")
	if !ok {
		return nil, false
	}
	detail, err := h.details.FindByID(item.ID, detailID)
	if err != nil {
		failed(c, err, "load detail")
		return nil, false
	}
	return detail, true
}

type detailRequest struct {
	DetailType string  `json:"detail_type"`
	Name       string  `json:"name"`
	Quantity   float64 `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	Vendor     string  `json:"vendor"`
	Status     string  `json:"status"`
	Notes      string  `json:"notes"`
}

func (h *BudgetDetails) List(c *gin.Context) {
	item, ok := h.resolveItem(c)
	if !ok {
		return
	}
	details, err := h.details.ListByItem(item.ID)
	if err != nil {
		failed(c, err, "load details")
		return
	}
	c.JSON(http.StatusOK, details)
}

func (h *BudgetDetails) Create(c *gin.Context) {
	item, ok := h.resolveItem(c)
	if !ok {
		return
	}

	var req detailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		jsonError(c, http.StatusBadRequest, "Detail name is required")
		return
	}
	detailType := models.DetailType(req.DetailType)
	if !detailType.Valid() {
		jsonError(c, http.StatusBadRequest, "Invalid detail type")
		return
	}

	detail := models.BudgetDetail{
		BudgetItemID: item.ID,
		DetailType:   detailType,
		Name:         req.Name,
		Quantity:     req.Quantity,
		UnitPrice:    req.UnitPrice,
		Vendor:       req.Vendor,
		Status:       req.Status,
		Notes:        req.Notes,
	}
	if err := h.details.Create(&detail); err != nil {
		failed(c, err, "create detail")
		return
	}
	c.JSON(http.StatusCreated, detail)
}

type detailUpdateRequest struct {
	DetailType *string  `json:"detail_type"`
	Name       *string  `json:"name"`
	Quantity   *float64 `json:"quantity"`
	UnitPrice  *float64 `json:"unit_price"`
	Vendor     *string  `json:"vendor"`
	Status     *string  `json:"status"`
	Notes      *string  `json:"notes"`
}

func (h *BudgetDetails) Update(c *gin.Context) {
	item, ok := h.resolveItem(c)
	if !ok {
		return
	}
	detailID, ok := pathID(c, "detailID")
	if !ok {
		return
	}

	var req detailUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	upd := repository.BudgetDetailUpdate{
		Name:      req.Name,
		Quantity:  req.Quantity,
		UnitPrice: req.UnitPrice,
		Vendor:    req.Vendor,
		Status:    req.Status,
		Notes:     req.Notes,
	}
	if req.DetailType != nil {
		dt := models.DetailType(*req.DetailType)
		if !dt.Valid() {
			jsonError(c, http.StatusBadRequest, "Invalid detail type")
			return
		}
		upd.DetailType = &dt
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		jsonError(c, http.StatusBadRequest, "Detail name is required")
		return
	}

	detail, err := h.details.Update(item.ID, detailID, upd)
	if err != nil {
		failed(c, err, "update detail")
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *BudgetDetails) Delete(c *gin.Context) {
	item, ok := h.resolveItem(c)
	if !ok {
		return
	}
	detailID, ok := pathID(c, "detailID")
	if !ok {
		return
	}
	if err := h.details.Delete(item.ID, detailID); err != nil {
		failed(c, err, "delete detail")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

type actualRequest struct {
	Name          string  `json:"name"`
	Quantity      float64 `json:"quantity"`
	UnitPrice     float64 `json:"unit_price"`
	Vendor        string  `json:"vendor"`
	InvoiceNumber string  `json:"invoice_number"`
	PurchaseDate  *string `json:"purchase_date"`
	PaymentMethod string  `json:"payment_method"`
	Notes         string  `json:"notes"`
}

func (h *BudgetDetails) ListActuals(c *gin.Context) {
	detail, ok := h.resolveDetail(c)
	if !ok {
		return
	}
	actuals, err := h.details.ListActuals(detail.ID)
	if err != nil {
		failed(c, err, "load actuals")
		return
	}
	c.JSON(http.StatusOK, actuals)
}

func (h *BudgetDetails) CreateActual(c *gin.Context) {
	detail, ok := h.resolveDetail(c)
	if !ok {
		return
	}

	var req actualRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	var purchaseDate *time.Time
	if req.PurchaseDate != nil && *req.PurchaseDate != "" {
		t, err := time.Parse("2006-01-02", *req.PurchaseDate)
		if err != nil {
			jsonError(c, http.StatusBadRequest, "Invalid purchase date")
			return
		}
		purchaseDate = &t
	}

	actual := models.BudgetActual{
		BudgetDetailID: detail.ID,
		Name:           strings.TrimSpace(req.Name),
		Quantity:       req.Quantity,
		UnitPrice:      req.UnitPrice,
		Vendor:         req.Vendor,
		InvoiceNumber:  req.InvoiceNumber,
		PurchaseDate:   purchaseDate,
		PaymentMethod:  req.PaymentMethod,
		Notes:          req.Notes,
	}
	if err := h.details.CreateActual(detail.BudgetItemID, &actual); err != nil {
		failed(c, err, "create actual")
		return
	}
	c.JSON(http.StatusCreated, actual)
}

type actualUpdateRequest struct {
	Name          *string  `json:"name"`
	Quantity      *float64 `json:"quantity"`
	UnitPrice     *float64 `json:"unit_price"`
	Vendor        *string  `json:"vendor"`
	InvoiceNumber *string  `json:"invoice_number"`
	PurchaseDate  *string  `json:"purchase_date"`
	PaymentMethod *string  `json:"payment_method"`
	Notes         *string  `json:"notes"`
}

func (h *BudgetDetails) UpdateActual(c *gin.Context) {
	detail, ok := h.resolveDetail(c)
	if !ok {
		return
	}
	actualID, ok := pathID(c, "actualID")
	if !ok {
		return
	}

	var req actualUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	upd := repository.BudgetActualUpdate{
		Name:          req.Name,
		Quantity:      req.Quantity,
		UnitPrice:     req.UnitPrice,
		Vendor:        req.Vendor,
		InvoiceNumber: req.InvoiceNumber,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	}
	if req.PurchaseDate != nil && *req.PurchaseDate != "" {
		t, err := time.Parse("2006-01-02", *req.PurchaseDate)
		if err != nil {
			jsonError(c, http.StatusBadRequest, "Invalid purchase date")
			return
		}
		upd.PurchaseDate = &t
	}

	actual, err := h.details.UpdateActual(detail.BudgetItemID, detail.ID, actualID, upd)
	if err != nil {
		failed(c, err, "update actual")
		return
	}
	c.JSON(http.StatusOK, actual)
}

func (h *BudgetDetails) DeleteActual(c *gin.Context) {
	detail, ok := h.resolveDetail(c)
	if !ok {
		return
	}
	actualID, ok := pathID(c, "actualID")
	if !ok {
		return
	}
	if err := h.details.DeleteActual(detail.BudgetItemID, detail.ID, actualID); err != nil {
		failed(c, err, "delete actual")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
