package usecase

import (
	"context"
	"fmt"

	"sales/src/products/domain/port"
	"sales/src/products/infrastructure/cache"

	"github.com/google/uuid"
)

// DeleteProductUseCase caso de uso para dar de baja un producto.
// Baja lógica: el producto se desactiva, las ventas históricas que lo
// referencian conservan su snapshot.
type DeleteProductUseCase struct {
	productRepo  port.ProductRepository
	productCache *cache.ProductCache
}

// NewDeleteProductUseCase crea una nueva instancia del caso de uso
func NewDeleteProductUseCase(productRepo port.ProductRepository, productCache *cache.ProductCache) *DeleteProductUseCase {
	return &DeleteProductUseCase{
		productRepo:  productRepo,
		productCache: productCache,
	}
}

// Execute desactiva el producto e invalida el cache
func (uc *DeleteProductUseCase) Execute(ctx context.Context, productID uuid.UUID) error {
	product, err := uc.productRepo.FindByID(ctx, productID)
	if err != nil {
		return err
	}

	product.Deactivate()

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return fmt.Errorf("error deactivating product: %w", err)
	}

	if uc.productCache != nil {
		uc.productCache.Remove(productID)
	}

	return nil
}
