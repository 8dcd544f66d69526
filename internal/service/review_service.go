package service

import (
	"errors"
	"time"

	"github.com/google/uuid"

	entity "local-market/internal/domain"
	repo "local-market/internal/repository/sqlite"
)

var ErrReviewNotFound = errors.New("review not found")

type ReviewService struct {
	reviewRepo repo.ReviewRepository
}

func NewReviewService(reviewRepo repo.ReviewRepository) *ReviewService {
	return &ReviewService{reviewRepo: reviewRepo}
}

func (s *ReviewService) AddReview(userID uuid.UUID, input entity.CreateReviewInput) (*entity.Review, error) {
	review := &entity.Review{
		ID:        uuid.New(),
		UserID:    userID,
		ProductID: input.ProductID,
		Rating:    input.Rating,
		Comment:   input.Comment,
		CreatedAt: time.Now(),
	}
	if err := s.reviewRepo.Create(review); err != nil {
		return nil, err
	}
	return review, nil
}

// EditReview only touches the author's own review; a miss is not found.
func (s *ReviewService) EditReview(userID, reviewID uuid.UUID, input entity.UpdateReviewInput) error {
	ok, err := s.reviewRepo.Update(reviewID, userID, input.Rating, input.Comment)
	if err != nil {
		return err
	}
	if !ok {
		return ErrReviewNotFound
	}
	return nil
}

func (s *ReviewService) ListProductReviews(productID uuid.UUID) ([]entity.ReviewWithUser, error) {
	return s.reviewRepo.GetByProduct(productID)
}

func (s *ReviewService) ListUserReviews(userID uuid.UUID) ([]entity.ReviewWithProduct, error) {
	return s.reviewRepo.GetByUser(userID)
}
