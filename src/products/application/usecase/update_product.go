package usecase

import (
	"context"
	"fmt"

	"sales/src/products/application/request"
	"sales/src/products/application/response"
	"sales/src/products/domain/port"
	"sales/src/products/infrastructure/cache"

	"github.com/google/uuid"
)

// UpdateProductUseCase caso de uso para actualizar un producto
type UpdateProductUseCase struct {
	productRepo  port.ProductRepository
	productCache *cache.ProductCache
}

// NewUpdateProductUseCase crea una nueva instancia del caso de uso
func NewUpdateProductUseCase(productRepo port.ProductRepository, productCache *cache.ProductCache) *UpdateProductUseCase {
	return &UpdateProductUseCase{
		productRepo:  productRepo,
		productCache: productCache,
	}
}

// Execute actualiza el producto y refresca el cache
func (uc *UpdateProductUseCase) Execute(ctx context.Context, productID uuid.UUID, req *request.UpdateProductRequest) (*response.ProductResponse, error) {
	product, err := uc.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if err := product.Update(req.Name, req.Description, req.Category, req.Price, req.ImageURL); err != nil {
		return nil, err
	}

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("error updating product: %w", err)
	}

	if uc.productCache != nil {
		uc.productCache.Set(product)
	}

	return response.NewProductResponse(product), nil
}
