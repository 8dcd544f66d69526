package handler

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	entity "local-market/internal/domain"
	service "local-market/internal/service"
)

// SellerHandler backs the seller dashboard: shop profile, product
// management with image uploads, and order fulfilment.
type SellerHandler struct {
	shopService    *service.ShopService
	productService *service.ProductService
	orderService   *service.OrderService
	uploadsDir     string
}

func NewSellerHandler(shopService *service.ShopService, productService *service.ProductService, orderService *service.OrderService, uploadsDir string) *SellerHandler {
	return &SellerHandler{
		shopService:    shopService,
		productService: productService,
		orderService:   orderService,
		uploadsDir:     uploadsDir,
	}
}

// saveUpload stores one uploaded file under the uploads dir with a
// timestamped name and returns the stored filename.
func (h *SellerHandler) saveUpload(c *gin.Context, file *multipart.FileHeader) (string, error) {
	name := fmt.Sprintf("%d%s", time.Now().UnixNano(), filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, filepath.Join(h.uploadsDir, name)); err != nil {
		return "", err
	}
	return name, nil
}

// GET /api/seller/shop
func (h *SellerHandler) GetShop(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	shop, err := h.shopService.GetOrCreateShop(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	c.JSON(http.StatusOK, shop)
}

// PUT /api/seller/shop
func (h *SellerHandler) UpdateShop(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	var input entity.UpdateShopProfileInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "detail": err.Error()})
		return
	}

	var logoURL, coverURL *string
	if file, err := c.FormFile("logo"); err == nil {
		name, err := h.saveUpload(c, file)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error saving logo"})
			return
		}
		logoURL = &name
	}
	if file, err := c.FormFile("coverPhoto"); err == nil {
		name, err := h.saveUpload(c, file)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error saving cover photo"})
			return
		}
		coverURL = &name
	}

	if err := h.shopService.UpdateShopProfile(userID, input, logoURL, coverURL); err != nil {
		switch err {
		case service.ErrShopNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error updating shop"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Shop updated successfully"})
}

// GET /api/seller/products
func (h *SellerHandler) ListProducts(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	products, err := h.productService.ListSellerProducts(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

// POST /api/seller/products
func (h *SellerHandler) AddProduct(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	var input entity.SellerProductInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "detail": err.Error()})
		return
	}

	var imageURLs []string
	if form, err := c.MultipartForm(); err == nil {
		files := form.File["images"]
		if len(files) > 5 {
			files = files[:5]
		}
		for _, file := range files {
			name, err := h.saveUpload(c, file)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "error saving image"})
				return
			}
			imageURLs = append(imageURLs, name)
		}
	}

	product, err := h.productService.AddSellerProduct(userID, input, imageURLs)
	if err != nil {
		switch err {
		case service.ErrNoShopOwned:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error adding product"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Product added successfully", "productId": product.ID})
}

// PUT /api/seller/products/:id
func (h *SellerHandler) UpdateProduct(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	var input entity.SellerProductInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "detail": err.Error()})
		return
	}

	var imageURL *string
	if file, err := c.FormFile("image"); err == nil {
		name, err := h.saveUpload(c, file)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error saving image"})
			return
		}
		imageURL = &name
	}

	if err := h.productService.UpdateSellerProduct(userID, productID, input, imageURL); err != nil {
		switch err {
		case service.ErrProductNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case service.ErrNotProductOwner:
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error updating product"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully"})
}

// DELETE /api/seller/products/:id
func (h *SellerHandler) DeleteProduct(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	if err := h.productService.DeleteSellerProduct(userID, productID); err != nil {
		switch err {
		case service.ErrProductNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error deleting product"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

// GET /api/seller/orders
func (h *SellerHandler) ListOrders(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	orders, err := h.orderService.ListSellerOrders(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// PUT /api/seller/orders/:orderId/status
func (h *SellerHandler) UpdateOrderStatus(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	var input entity.UpdateOrderStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "detail": err.Error()})
		return
	}

	if err := h.orderService.UpdateStatus(userID, orderID, input.Status); err != nil {
		switch err {
		case service.ErrOrderNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case service.ErrNotOrderSeller:
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case service.ErrInvalidStatus, service.ErrInvalidTransition:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error updating order status"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
}
