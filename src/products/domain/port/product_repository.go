package port

import (
	"context"

	"sales/src/products/domain/entity"
	"sales/src/shared/domain/criteria"

	"github.com/google/uuid"
)

// ProductRepository define el contrato para persistir productos
type ProductRepository interface {
	Save(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error

	// FindByID retorna entity.ErrProductNotFound si no existe
	FindByID(ctx context.Context, productID uuid.UUID) (*entity.Product, error)

	// Search retorna productos según criteria junto con el total sin paginar
	Search(ctx context.Context, crit criteria.Criteria) ([]*entity.Product, int, error)
}
