package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	entity "local-market/internal/domain"
	repo "local-market/internal/repository/sqlite"
)

var ErrShopNotFound = errors.New("shop not found")

type ShopService struct {
	shopRepo repo.ShopRepository
	userRepo repo.UserRepository
}

func NewShopService(shopRepo repo.ShopRepository, userRepo repo.UserRepository) *ShopService {
	return &ShopService{
		shopRepo: shopRepo,
		userRepo: userRepo,
	}
}

func (s *ShopService) CreateShop(ownerID uuid.UUID, input entity.CreateShopInput) (*entity.Shop, error) {
	shop := &entity.Shop{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Name:        input.Name,
		Description: input.Description,
		CreatedAt:   time.Now(),
	}
	if err := s.shopRepo.CreateShop(shop); err != nil {
		return nil, err
	}
	return shop, nil
}

func (s *ShopService) ListShops() ([]entity.Shop, error) {
	return s.shopRepo.GetAll()
}

func (s *ShopService) GetShop(id uuid.UUID) (*entity.Shop, error) {
	shop, err := s.shopRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, ErrShopNotFound
	}
	return shop, nil
}

// UpdateShop changes nothing unless the shop belongs to ownerID; a miss
// on either condition is reported as not found.
func (s *ShopService) UpdateShop(ownerID, shopID uuid.UUID, name, description string) error {
	ok, err := s.shopRepo.UpdateShop(shopID, ownerID, name, description)
	if err != nil {
		return err
	}
	if !ok {
		return ErrShopNotFound
	}
	return nil
}

// GetOrCreateShop backs the seller dashboard: a seller without a shop
// gets a default one named after them on first visit.
func (s *ShopService) GetOrCreateShop(ownerID uuid.UUID) (*entity.Shop, error) {
	shop, err := s.shopRepo.GetByOwnerID(ownerID)
	if err != nil {
		return nil, err
	}
	if shop != nil {
		return shop, nil
	}

	user, err := s.userRepo.GetByID(ownerID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	shop = &entity.Shop{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Name:        fmt.Sprintf("%s's Shop", user.Username),
		Description: "Welcome to my shop!",
		CreatedAt:   time.Now(),
	}
	if err := s.shopRepo.CreateShop(shop); err != nil {
		return nil, err
	}
	return shop, nil
}

func (s *ShopService) UpdateShopProfile(ownerID uuid.UUID, input entity.UpdateShopProfileInput, logoURL, coverPhotoURL *string) error {
	ok, err := s.shopRepo.UpdateShopProfile(ownerID, input.Name, input.Description, logoURL, coverPhotoURL)
	if err != nil {
		return err
	}
	if !ok {
		return ErrShopNotFound
	}
	return nil
}
