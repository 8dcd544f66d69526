package service

import (
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	entity "local-market/internal/domain"
	repo "local-market/internal/repository/sqlite"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrNoShopOwned     = errors.New("seller does not have a shop")
	ErrNotProductOwner = errors.New("you do not have permission to modify this product")
)

type ProductService struct {
	productRepo repo.ProductRepository
	shopRepo    repo.ShopRepository
}

func NewProductService(productRepo repo.ProductRepository, shopRepo repo.ShopRepository) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		shopRepo:    shopRepo,
	}
}

// ListProducts returns a paginated page when both page and limit are set,
// otherwise everything matching the filter.
func (s *ProductService) ListProducts(filter entity.ProductFilter) (*entity.ProductPage, error) {
	products, err := s.productRepo.List(filter)
	if err != nil {
		return nil, err
	}

	page := &entity.ProductPage{Products: products}
	if filter.Page > 0 && filter.Limit > 0 {
		total, err := s.productRepo.Count(filter)
		if err != nil {
			return nil, err
		}
		page.CurrentPage = filter.Page
		page.TotalProducts = total
		page.TotalPages = (total + filter.Limit - 1) / filter.Limit
	}
	return page, nil
}

func (s *ProductService) GetProduct(id uuid.UUID) (*entity.ProductWithImage, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

func (s *ProductService) CreateProduct(input entity.CreateProductInput) (*entity.Product, error) {
	product := &entity.Product{
		ID:          uuid.New(),
		ShopID:      input.ShopID,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		CreatedAt:   time.Now(),
	}
	if err := s.productRepo.CreateProduct(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) ListSellerProducts(sellerID uuid.UUID) ([]entity.ProductWithImage, error) {
	return s.productRepo.GetByShopOwner(sellerID)
}

// AddSellerProduct creates a product in the seller's own shop along with
// any uploaded image rows.
func (s *ProductService) AddSellerProduct(sellerID uuid.UUID, input entity.SellerProductInput, imageURLs []string) (*entity.Product, error) {
	shop, err := s.shopRepo.GetByOwnerID(sellerID)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, ErrNoShopOwned
	}

	product := &entity.Product{
		ID:          uuid.New(),
		ShopID:      shop.ID,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		Stock:       input.Stock,
		CreatedAt:   time.Now(),
	}
	if err := s.productRepo.CreateProduct(product); err != nil {
		return nil, err
	}

	for _, url := range imageURLs {
		img := entity.ProductImage{ID: uuid.New(), ProductID: product.ID, ImageURL: url}
		if err := s.productRepo.CreateProductImage(&img); err != nil {
			return nil, err
		}
	}
	return product, nil
}

func (s *ProductService) UpdateSellerProduct(sellerID, productID uuid.UUID, input entity.SellerProductInput, imageURL *string) error {
	existing, err := s.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrProductNotFound
	}

	shop, err := s.shopRepo.GetByOwnerID(sellerID)
	if err != nil {
		return err
	}
	if shop == nil || shop.ID != existing.ShopID {
		return ErrNotProductOwner
	}

	product := existing.Product
	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price
	product.Category = input.Category
	product.Stock = input.Stock

	if err := s.productRepo.UpdateProduct(&product); err != nil {
		return err
	}

	if imageURL != nil {
		if err := s.productRepo.UpdateProductImage(productID, *imageURL); err != nil {
			return err
		}
	}
	return nil
}

// DeleteSellerProduct removes the product when it belongs to the seller;
// image rows are cleaned up best-effort afterwards.
func (s *ProductService) DeleteSellerProduct(sellerID, productID uuid.UUID) error {
	ok, err := s.productRepo.DeleteProduct(productID, sellerID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrProductNotFound
	}

	if err := s.productRepo.DeleteProductImages(productID); err != nil {
		slog.Warn("failed to delete product images", "product_id", productID, "err", err)
	}
	return nil
}
