package usecase

import (
	"context"
	"fmt"

	"sales/src/sales/application/response"
	"sales/src/sales/domain/port"

	"github.com/google/uuid"
)

// CancelSaleUseCase caso de uso para cancelar una venta
type CancelSaleUseCase struct {
	saleRepo  port.SaleRepository
	publisher port.EventPublisher
}

// NewCancelSaleUseCase crea una nueva instancia del caso de uso
func NewCancelSaleUseCase(saleRepo port.SaleRepository, publisher port.EventPublisher) *CancelSaleUseCase {
	return &CancelSaleUseCase{
		saleRepo:  saleRepo,
		publisher: publisher,
	}
}

// Execute cancela la venta. Los items y el total quedan como registro
// histórico: la cancelación es solo un cambio de estado.
func (uc *CancelSaleUseCase) Execute(ctx context.Context, saleID uuid.UUID) (*response.SaleResponse, error) {
	sale, err := uc.saleRepo.FindByID(ctx, saleID)
	if err != nil {
		return nil, err
	}

	if err := sale.Cancel(); err != nil {
		return nil, err
	}

	if err := uc.saleRepo.Update(ctx, sale); err != nil {
		return nil, fmt.Errorf("error canceling sale: %w", err)
	}

	publishDomainEvents(ctx, uc.publisher, sale)

	return response.NewSaleResponse(sale), nil
}
