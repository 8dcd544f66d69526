package service

import (
	"github.com/google/uuid"

	entity "local-market/internal/domain"
	repo "local-market/internal/repository/sqlite"
)

type WishlistService struct {
	wishlistRepo repo.WishlistRepository
}

func NewWishlistService(wishlistRepo repo.WishlistRepository) *WishlistService {
	return &WishlistService{wishlistRepo: wishlistRepo}
}

func (s *WishlistService) Add(userID, productID uuid.UUID) error {
	return s.wishlistRepo.Add(userID, productID)
}

func (s *WishlistService) Remove(userID, productID uuid.UUID) error {
	return s.wishlistRepo.Remove(userID, productID)
}

func (s *WishlistService) List(userID uuid.UUID) ([]entity.WishlistProduct, error) {
	return s.wishlistRepo.GetByUser(userID)
}
