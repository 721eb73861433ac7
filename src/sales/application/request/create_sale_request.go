package request

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateSaleItemRequest representa un item dentro de una venta nueva
type CreateSaleItemRequest struct {
	ProductID   uuid.UUID       `json:"product_id" binding:"required"`
	ProductName string          `json:"product_name" binding:"required"`
	Quantity    int             `json:"quantity" binding:"required,min=1"`
	UnitPrice   decimal.Decimal `json:"unit_price" binding:"required"`
}

// CreateSaleRequest representa la petición para crear una venta (multi-item)
type CreateSaleRequest struct {
	CustomerID   uuid.UUID               `json:"customer_id" binding:"required"`
	CustomerName string                  `json:"customer_name" binding:"required"`
	BranchID     uuid.UUID               `json:"branch_id" binding:"required"`
	BranchName   string                  `json:"branch_name" binding:"required"`
	Items        []CreateSaleItemRequest `json:"items" binding:"required,min=1,dive"`
}
