package usecase

import (
	"context"
	"fmt"

	"sales/src/sales/application/response"
	"sales/src/sales/domain/port"

	"github.com/google/uuid"
)

// RemoveSaleItemUseCase caso de uso para remover un item de una venta
type RemoveSaleItemUseCase struct {
	saleRepo  port.SaleRepository
	publisher port.EventPublisher
}

// NewRemoveSaleItemUseCase crea una nueva instancia del caso de uso
func NewRemoveSaleItemUseCase(saleRepo port.SaleRepository, publisher port.EventPublisher) *RemoveSaleItemUseCase {
	return &RemoveSaleItemUseCase{
		saleRepo:  saleRepo,
		publisher: publisher,
	}
}

// Execute remueve el item del aggregate y persiste el estado recalculado.
// El evento de item cancelado se publica junto con el de venta modificada,
// en orden de emisión.
func (uc *RemoveSaleItemUseCase) Execute(ctx context.Context, saleID, itemID uuid.UUID) (*response.SaleResponse, error) {
	sale, err := uc.saleRepo.FindByID(ctx, saleID)
	if err != nil {
		return nil, err
	}

	if err := sale.RemoveItem(itemID); err != nil {
		return nil, err
	}

	if err := uc.saleRepo.Update(ctx, sale); err != nil {
		return nil, fmt.Errorf("error removing sale item: %w", err)
	}

	publishDomainEvents(ctx, uc.publisher, sale)

	return response.NewSaleResponse(sale), nil
}
