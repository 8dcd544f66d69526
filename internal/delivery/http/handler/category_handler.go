package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	entity "local-market/internal/domain"
	service "local-market/internal/service"
)

type CategoryHandler struct {
	categoryService *service.CategoryService
}

func NewCategoryHandler(categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// GET /api/categories
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.ListCategories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	if categories == nil {
		categories = []entity.Category{}
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}
