package usecase

import (
	"context"
	"fmt"

	"sales/src/products/application/request"
	"sales/src/products/application/response"
	"sales/src/products/domain/entity"
	"sales/src/products/domain/port"
	"sales/src/products/infrastructure/cache"
)

// CreateProductUseCase caso de uso para crear un producto
type CreateProductUseCase struct {
	productRepo  port.ProductRepository
	productCache *cache.ProductCache
}

// NewCreateProductUseCase crea una nueva instancia del caso de uso
func NewCreateProductUseCase(productRepo port.ProductRepository, productCache *cache.ProductCache) *CreateProductUseCase {
	return &CreateProductUseCase{
		productRepo:  productRepo,
		productCache: productCache,
	}
}

// Execute crea y persiste el producto
func (uc *CreateProductUseCase) Execute(ctx context.Context, req *request.CreateProductRequest) (*response.ProductResponse, error) {
	product, err := entity.NewProduct(req.Name, req.Description, req.Category, req.Price, req.ImageURL)
	if err != nil {
		return nil, err
	}

	if err := uc.productRepo.Save(ctx, product); err != nil {
		return nil, fmt.Errorf("error saving product: %w", err)
	}

	if uc.productCache != nil {
		uc.productCache.Set(product)
	}

	return response.NewProductResponse(product), nil
}
