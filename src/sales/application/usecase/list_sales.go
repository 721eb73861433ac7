package usecase

import (
	"context"
	"math"

	"sales/src/sales/application/response"
	"sales/src/sales/domain/port"
	"sales/src/shared/domain/criteria"
)

// ListSalesUseCase caso de uso para listar ventas con filtros y paginación
type ListSalesUseCase struct {
	saleRepo port.SaleRepository
}

// NewListSalesUseCase crea una nueva instancia del caso de uso
func NewListSalesUseCase(saleRepo port.SaleRepository) *ListSalesUseCase {
	return &ListSalesUseCase{
		saleRepo: saleRepo,
	}
}

// Execute ejecuta la búsqueda según criteria
func (uc *ListSalesUseCase) Execute(ctx context.Context, crit criteria.Criteria) (*response.ListSalesResponse, error) {
	sales, totalCount, err := uc.saleRepo.Search(ctx, crit)
	if err != nil {
		return nil, err
	}

	items := make([]response.SaleResponse, 0, len(sales))
	for _, sale := range sales {
		items = append(items, *response.NewSaleResponse(sale))
	}

	pageSize := crit.PageSize()
	totalPages := int(math.Ceil(float64(totalCount) / float64(pageSize)))

	return &response.ListSalesResponse{
		Items:      items,
		TotalCount: totalCount,
		Page:       crit.Page(),
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}
