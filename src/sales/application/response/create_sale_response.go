package response

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateSaleResponse representa la respuesta de creación de venta
type CreateSaleResponse struct {
	SaleID      uuid.UUID       `json:"sale_id"`
	SaleNumber  int             `json:"sale_number"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	TotalItems  int             `json:"total_items"`
	Status      string          `json:"status"`
}
