package usecase

import (
	"context"
	"math"

	"sales/src/products/application/response"
	"sales/src/products/domain/port"
	"sales/src/shared/domain/criteria"
)

// ListProductsUseCase caso de uso para listar productos con filtros y paginación
type ListProductsUseCase struct {
	productRepo port.ProductRepository
}

// NewListProductsUseCase crea una nueva instancia del caso de uso
func NewListProductsUseCase(productRepo port.ProductRepository) *ListProductsUseCase {
	return &ListProductsUseCase{
		productRepo: productRepo,
	}
}

// Execute ejecuta la búsqueda según criteria
func (uc *ListProductsUseCase) Execute(ctx context.Context, crit criteria.Criteria) (*response.ListProductsResponse, error) {
	products, totalCount, err := uc.productRepo.Search(ctx, crit)
	if err != nil {
		return nil, err
	}

	items := make([]response.ProductResponse, 0, len(products))
	for _, product := range products {
		items = append(items, *response.NewProductResponse(product))
	}

	pageSize := crit.PageSize()
	totalPages := int(math.Ceil(float64(totalCount) / float64(pageSize)))

	return &response.ListProductsResponse{
		Items:      items,
		TotalCount: totalCount,
		Page:       crit.Page(),
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}
