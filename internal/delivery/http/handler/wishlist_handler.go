package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	entity "local-market/internal/domain"
	service "local-market/internal/service"
)

type WishlistHandler struct {
	wishlistService *service.WishlistService
}

func NewWishlistHandler(wishlistService *service.WishlistService) *WishlistHandler {
	return &WishlistHandler{wishlistService: wishlistService}
}

// GET /api/wishlists
func (h *WishlistHandler) ListWishlist(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	products, err := h.wishlistService.List(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	if products == nil {
		products = []entity.WishlistProduct{}
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// POST /api/wishlists
func (h *WishlistHandler) AddToWishlist(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	var input entity.AddToWishlistInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product id is required"})
		return
	}

	if err := h.wishlistService.Add(userID, input.ProductID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error adding to wishlist"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Product added to wishlist"})
}

// DELETE /api/wishlists/:productId
func (h *WishlistHandler) RemoveFromWishlist(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	if err := h.wishlistService.Remove(userID, productID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error removing from wishlist"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product removed from wishlist"})
}
