package request

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AddSaleItemRequest representa la petición para agregar un item a una venta existente
type AddSaleItemRequest struct {
	ProductID   uuid.UUID       `json:"product_id" binding:"required"`
	ProductName string          `json:"product_name" binding:"required"`
	Quantity    int             `json:"quantity" binding:"required,min=1"`
	UnitPrice   decimal.Decimal `json:"unit_price" binding:"required"`
}
