package usecase

import (
	"context"
	"fmt"

	"sales/src/sales/application/request"
	"sales/src/sales/application/response"
	"sales/src/sales/domain/port"

	"github.com/google/uuid"
)

// UpdateSaleUseCase caso de uso para actualizar cantidades de items de una venta
type UpdateSaleUseCase struct {
	saleRepo  port.SaleRepository
	publisher port.EventPublisher
}

// NewUpdateSaleUseCase crea una nueva instancia del caso de uso
func NewUpdateSaleUseCase(saleRepo port.SaleRepository, publisher port.EventPublisher) *UpdateSaleUseCase {
	return &UpdateSaleUseCase{
		saleRepo:  saleRepo,
		publisher: publisher,
	}
}

// Execute carga el aggregate, aplica cada cambio de cantidad y persiste.
// Cualquier violación de regla aborta sin persistir cambios parciales.
func (uc *UpdateSaleUseCase) Execute(ctx context.Context, saleID uuid.UUID, req *request.UpdateSaleRequest) (*response.SaleResponse, error) {
	sale, err := uc.saleRepo.FindByID(ctx, saleID)
	if err != nil {
		return nil, err
	}

	for _, itemReq := range req.Items {
		if err := sale.UpdateItem(itemReq.ItemID, itemReq.Quantity); err != nil {
			return nil, err
		}
	}

	if err := uc.saleRepo.Update(ctx, sale); err != nil {
		return nil, fmt.Errorf("error updating sale: %w", err)
	}

	publishDomainEvents(ctx, uc.publisher, sale)

	return response.NewSaleResponse(sale), nil
}
