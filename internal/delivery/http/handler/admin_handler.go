package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	entity "local-market/internal/domain"
	service "local-market/internal/service"
)

type AdminHandler struct {
	categoryService *service.CategoryService
}

func NewAdminHandler(categoryService *service.CategoryService) *AdminHandler {
	return &AdminHandler{categoryService: categoryService}
}

// POST /api/admin/categories
func (h *AdminHandler) CreateCategory(c *gin.Context) {
	var input entity.CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category name is required"})
		return
	}

	category, err := h.categoryService.CreateCategory(input.Name)
	if err != nil {
		switch err {
		case service.ErrCategoryExists:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error creating category"})
		}
		return
	}

	c.JSON(http.StatusCreated, category)
}

// GET /api/admin/categories
func (h *AdminHandler) ListCategories(c *gin.Context) {
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

// PUT /api/admin/categories/:id
func (h *AdminHandler) UpdateCategory(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category id"})
		return
	}

	var input entity.CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category name is required"})
		return
	}

	if err := h.categoryService.UpdateCategory(categoryID, input.Name); err != nil {
		switch err {
		case service.ErrCategoryNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error updating category"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category updated successfully"})
}

// DELETE /api/admin/categories/:id
func (h *AdminHandler) DeleteCategory(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category id"})
		return
	}

	if err := h.categoryService.DeleteCategory(categoryID); err != nil {
		switch err {
		case service.ErrCategoryNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error deleting category"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
