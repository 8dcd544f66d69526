package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	entity "local-market/internal/domain"
	service "local-market/internal/service"
)

type ReviewHandler struct {
	reviewService *service.ReviewService
}

func NewReviewHandler(reviewService *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// POST /api/reviews
func (h *ReviewHandler) AddReview(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	var input entity.CreateReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "detail": err.Error()})
		return
	}

	review, err := h.reviewService.AddReview(userID, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error adding review"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Review added successfully", "reviewId": review.ID})
}

// PUT /api/reviews/:id
func (h *ReviewHandler) EditReview(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid review id"})
		return
	}

	var input entity.UpdateReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "detail": err.Error()})
		return
	}

	if err := h.reviewService.EditReview(userID, reviewID, input); err != nil {
		switch err {
		case service.ErrReviewNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "review not found or you do not have permission"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error updating review"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review updated successfully"})
}

// GET /api/reviews/product/:productId
func (h *ReviewHandler) ListProductReviews(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	reviews, err := h.reviewService.ListProductReviews(productID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	if reviews == nil {
		reviews = []entity.ReviewWithUser{}
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

// GET /api/reviews/user
func (h *ReviewHandler) ListMyReviews(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	reviews, err := h.reviewService.ListUserReviews(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	if reviews == nil {
		reviews = []entity.ReviewWithProduct{}
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}
