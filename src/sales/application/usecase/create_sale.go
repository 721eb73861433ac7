package usecase

import (
	"context"
	"fmt"

	"sales/src/sales/application/request"
	"sales/src/sales/application/response"
	"sales/src/sales/domain/entity"
	"sales/src/sales/domain/port"
)

// CreateSaleUseCase caso de uso para crear una venta
type CreateSaleUseCase struct {
	saleRepo  port.SaleRepository
	publisher port.EventPublisher
}

// NewCreateSaleUseCase crea una nueva instancia del caso de uso
func NewCreateSaleUseCase(saleRepo port.SaleRepository, publisher port.EventPublisher) *CreateSaleUseCase {
	return &CreateSaleUseCase{
		saleRepo:  saleRepo,
		publisher: publisher,
	}
}

// Execute ejecuta la creación de la venta:
// 1. Generar número de venta secuencial
// 2. Crear aggregate Sale en memoria y agregar cada item (reglas de negocio)
// 3. Persistir root + items atómicamente
// 4. Publicar eventos de dominio drenados (solo después del commit)
func (uc *CreateSaleUseCase) Execute(ctx context.Context, req *request.CreateSaleRequest) (*response.CreateSaleResponse, error) {
	saleNumber, err := uc.saleRepo.NextSaleNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("error generating sale number: %w", err)
	}

	sale := entity.NewSale(saleNumber, req.CustomerID, req.CustomerName, req.BranchID, req.BranchName)

	for _, itemReq := range req.Items {
		if err := sale.AddItem(itemReq.ProductID, itemReq.ProductName, itemReq.Quantity, itemReq.UnitPrice); err != nil {
			// Violación de regla de negocio: propagar sin envolver para que
			// el controller la mapee a bad request
			return nil, err
		}
	}

	if err := uc.saleRepo.Save(ctx, sale); err != nil {
		return nil, fmt.Errorf("error saving sale: %w", err)
	}

	publishDomainEvents(ctx, uc.publisher, sale)

	return &response.CreateSaleResponse{
		SaleID:      sale.ID,
		SaleNumber:  sale.SaleNumber,
		TotalAmount: sale.TotalAmount,
		TotalItems:  sale.TotalItems(),
		Status:      string(sale.Status),
	}, nil
}
