package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"oneconversion/internal/models/db_models"
	"oneconversion/internal/models/request_models"
	"oneconversion/internal/models/response_models"
	"oneconversion/internal/repositories"
	"oneconversion/pkg/utils"
)

type ProductServiceInterface interface {
	CreateProduct(ctx context.Context, request request_models.ProductRequest) (*response_models.ProductResponse, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, request request_models.ProductRequest) (*response_models.ProductResponse, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	GetProductBySlug(ctx context.Context, slug string) (*response_models.ProductResponse, error)
	ListProducts(ctx context.Context) ([]response_models.ProductResponse, error)
}

type ProductService struct {
	products repositories.ProductRepositoryInterface
	logger   *zap.Logger
}

func NewProductService(products repositories.ProductRepositoryInterface, logger *zap.Logger) ProductServiceInterface {
	return &ProductService{
		products: products,
		logger:   logger,
	}
}

func (s *ProductService) CreateProduct(ctx context.Context, request request_models.ProductRequest) (*response_models.ProductResponse, error) {
	if request.PriceInCents <= 0 {
		return nil, utils.ErrInvalidAmount
	}

	product := &db_models.Product{
		Slug:         utils.GenerateSlug(request.Name),
		Name:         request.Name,
		Description:  request.Description,
		PriceInCents: request.PriceInCents,
		BannerURL:    request.BannerURL,
		LogoURL:      request.LogoURL,
	}

	if err := s.products.Create(ctx, product); err != nil {
		s.logger.Error("failed to create product", zap.String("name", request.Name), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	response := toProductResponse(*product)
	return &response, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, request request_models.ProductRequest) (*response_models.ProductResponse, error) {
	if request.PriceInCents <= 0 {
		return nil, utils.ErrInvalidAmount
	}

	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("product lookup failed", zap.String("id", id.String()), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if product == nil {
		return nil, utils.ErrProductNotFound
	}

	// Slug stays stable across edits so checkout links keep working.
	product.Name = request.Name
	product.Description = request.Description
	product.PriceInCents = request.PriceInCents
	product.BannerURL = request.BannerURL
	product.LogoURL = request.LogoURL

	if err := s.products.Update(ctx, product); err != nil {
		s.logger.Error("failed to update product", zap.String("id", id.String()), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	response := toProductResponse(*product)
	return &response, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if product == nil {
		return utils.ErrProductNotFound
	}

	if err := s.products.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete product", zap.String("id", id.String()), zap.Error(err))
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *ProductService) GetProductBySlug(ctx context.Context, slug string) (*response_models.ProductResponse, error) {
	product, err := s.products.FindBySlug(ctx, slug)
	if err != nil {
		s.logger.Error("product lookup failed", zap.String("slug", slug), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if product == nil {
		return nil, utils.ErrProductNotFound
	}

	response := toProductResponse(*product)
	return &response, nil
}

func (s *ProductService) ListProducts(ctx context.Context) ([]response_models.ProductResponse, error) {
	products, err := s.products.ListAll(ctx)
	if err != nil {
		s.logger.Error("failed to list products", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.ProductResponse, 0, len(products))
	for _, product := range products {
		responses = append(responses, toProductResponse(product))
	}
	return responses, nil
}

func toProductResponse(product db_models.Product) response_models.ProductResponse {
	return response_models.ProductResponse{
		ID:           product.ID.String(),
		Slug:         product.Slug,
		Name:         product.Name,
		Description:  product.Description,
		PriceInCents: product.PriceInCents,
		BannerURL:    product.BannerURL,
		LogoURL:      product.LogoURL,
	}
}
