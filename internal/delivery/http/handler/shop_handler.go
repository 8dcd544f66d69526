package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	entity "local-market/internal/domain"
	service "local-market/internal/service"
)

type ShopHandler struct {
	shopService *service.ShopService
}

func NewShopHandler(shopService *service.ShopService) *ShopHandler {
	return &ShopHandler{shopService: shopService}
}

func (h *ShopHandler) CreateShop(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	var input entity.CreateShopInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "detail": err.Error()})
		return
	}

	shop, err := h.shopService.CreateShop(userID, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error creating shop"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Shop created successfully", "shopId": shop.ID})
}

func (h *ShopHandler) ListShops(c *gin.Context) {
	shops, err := h.shopService.ListShops()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	if shops == nil {
		shops = []entity.Shop{}
	}
	c.JSON(http.StatusOK, gin.H{"shops": shops})
}

func (h *ShopHandler) GetShop(c *gin.Context) {
	shopID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid shop id"})
		return
	}

	shop, err := h.shopService.GetShop(shopID)
	if err != nil {
		switch err {
		case service.ErrShopNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		}
		return
	}

	c.JSON(http.StatusOK, shop)
}

func (h *ShopHandler) UpdateShop(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	shopID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid shop id"})
		return
	}

	var input entity.CreateShopInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "detail": err.Error()})
		return
	}

	if err := h.shopService.UpdateShop(userID, shopID, input.Name, input.Description); err != nil {
		switch err {
		case service.ErrShopNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "shop not found or you do not have permission"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error updating shop"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Shop updated successfully"})
}
