package handlers

import (
	"net/http"

	"renobudget/internal/repository"

	"github.com/gin-gonic/gin"
)

type Categories struct {
	categories *repository.Categories
}

func NewCategories(categories *repository.Categories) *Categories {
	return &Categories{categories: categories}
}

func (h *Categories) List(c *gin.Context) {
	categories, err := h.categories.FindAll()
	if err != nil {
		failed(c, err, "load categories")
		return
	}
	c.JSON(http.StatusOK, categories)
}
