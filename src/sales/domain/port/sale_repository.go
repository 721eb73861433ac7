package port

import (
	"context"

	"sales/src/sales/domain/entity"
	"sales/src/shared/domain/criteria"

	"github.com/google/uuid"
)

// SaleRepository define el contrato para persistir ventas.
// El aggregate siempre se carga y persiste completo: FindByID retorna la
// venta con todos sus items, Save/Update escriben root + items atómicamente.
type SaleRepository interface {
	// Save persiste una venta nueva con sus items en una transacción
	Save(ctx context.Context, sale *entity.Sale) error

	// Update persiste el estado actual del aggregate (root + items)
	Update(ctx context.Context, sale *entity.Sale) error

	// FindByID retorna la venta con su colección de items completa.
	// Retorna entity.ErrSaleNotFound si no existe.
	FindByID(ctx context.Context, saleID uuid.UUID) (*entity.Sale, error)

	// Search retorna ventas según criteria (filtros, orden, paginación)
	// junto con el total sin paginar
	Search(ctx context.Context, crit criteria.Criteria) ([]*entity.Sale, int, error)

	// NextSaleNumber genera el siguiente número de venta secuencial.
	// Monotónico creciente, tolerante a huecos.
	NextSaleNumber(ctx context.Context) (int, error)
}
