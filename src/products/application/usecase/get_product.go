package usecase

import (
	"context"

	"sales/src/products/application/response"
	"sales/src/products/domain/port"
	"sales/src/products/infrastructure/cache"

	"github.com/google/uuid"
)

// GetProductUseCase caso de uso para obtener un producto por su ID.
// Read-through: consulta el cache y cae al repositorio, poblando el cache.
type GetProductUseCase struct {
	productRepo  port.ProductRepository
	productCache *cache.ProductCache
}

// NewGetProductUseCase crea una nueva instancia del caso de uso
func NewGetProductUseCase(productRepo port.ProductRepository, productCache *cache.ProductCache) *GetProductUseCase {
	return &GetProductUseCase{
		productRepo:  productRepo,
		productCache: productCache,
	}
}

// Execute retorna el producto, desde cache si está disponible
func (uc *GetProductUseCase) Execute(ctx context.Context, productID uuid.UUID) (*response.ProductResponse, error) {
	if uc.productCache != nil {
		if product, ok := uc.productCache.Get(productID); ok {
			return response.NewProductResponse(product), nil
		}
	}

	product, err := uc.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if uc.productCache != nil {
		uc.productCache.Set(product)
	}

	return response.NewProductResponse(product), nil
}
