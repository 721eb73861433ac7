package usecase

import (
	"context"
	"fmt"

	"sales/src/sales/application/request"
	"sales/src/sales/application/response"
	"sales/src/sales/domain/port"

	"github.com/google/uuid"
)

// AddSaleItemUseCase caso de uso para agregar un item a una venta existente
type AddSaleItemUseCase struct {
	saleRepo  port.SaleRepository
	publisher port.EventPublisher
}

// NewAddSaleItemUseCase crea una nueva instancia del caso de uso
func NewAddSaleItemUseCase(saleRepo port.SaleRepository, publisher port.EventPublisher) *AddSaleItemUseCase {
	return &AddSaleItemUseCase{
		saleRepo:  saleRepo,
		publisher: publisher,
	}
}

// Execute agrega el item al aggregate y persiste el estado recalculado
func (uc *AddSaleItemUseCase) Execute(ctx context.Context, saleID uuid.UUID, req *request.AddSaleItemRequest) (*response.SaleResponse, error) {
	sale, err := uc.saleRepo.FindByID(ctx, saleID)
	if err != nil {
		return nil, err
	}

	if err := sale.AddItem(req.ProductID, req.ProductName, req.Quantity, req.UnitPrice); err != nil {
		return nil, err
	}

	if err := uc.saleRepo.Update(ctx, sale); err != nil {
		return nil, fmt.Errorf("error saving sale item: %w", err)
	}

	publishDomainEvents(ctx, uc.publisher, sale)

	return response.NewSaleResponse(sale), nil
}
