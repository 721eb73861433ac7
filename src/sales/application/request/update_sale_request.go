package request

import "github.com/google/uuid"

// UpdateSaleItemRequest representa el cambio de cantidad de un item existente
type UpdateSaleItemRequest struct {
	ItemID   uuid.UUID `json:"item_id" binding:"required"`
	Quantity int       `json:"quantity" binding:"required,min=1"`
}

// UpdateSaleRequest representa la petición para actualizar items de una venta
type UpdateSaleRequest struct {
	Items []UpdateSaleItemRequest `json:"items" binding:"required,min=1,dive"`
}
