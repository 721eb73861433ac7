package response

import (
	"time"

	"sales/src/sales/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleItemResponse representa un item de venta en las respuestas
type SaleItemResponse struct {
	ItemID      uuid.UUID       `json:"item_id"`
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Discount    decimal.Decimal `json:"discount"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

// SaleResponse representa una venta completa en las respuestas
type SaleResponse struct {
	ID           uuid.UUID          `json:"id"`
	SaleNumber   int                `json:"sale_number"`
	SaleDate     time.Time          `json:"sale_date"`
	CustomerID   uuid.UUID          `json:"customer_id"`
	CustomerName string             `json:"customer_name"`
	BranchID     uuid.UUID          `json:"branch_id"`
	BranchName   string             `json:"branch_name"`
	TotalAmount  decimal.Decimal    `json:"total_amount"`
	Status       string             `json:"status"`
	IsCanceled   bool               `json:"is_canceled"`
	Items        []SaleItemResponse `json:"items"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    *time.Time         `json:"updated_at,omitempty"`
}

// NewSaleResponse mapea el aggregate a su representación de transporte
func NewSaleResponse(sale *entity.Sale) *SaleResponse {
	items := make([]SaleItemResponse, 0, len(sale.Items))
	for i := range sale.Items {
		item := &sale.Items[i]
		items = append(items, SaleItemResponse{
			ItemID:      item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Discount:    item.Discount,
			TotalPrice:  item.TotalPrice(),
		})
	}

	return &SaleResponse{
		ID:           sale.ID,
		SaleNumber:   sale.SaleNumber,
		SaleDate:     sale.SaleDate,
		CustomerID:   sale.CustomerID,
		CustomerName: sale.CustomerName,
		BranchID:     sale.BranchID,
		BranchName:   sale.BranchName,
		TotalAmount:  sale.TotalAmount,
		Status:       string(sale.Status),
		IsCanceled:   sale.IsCanceled(),
		Items:        items,
		CreatedAt:    sale.CreatedAt,
		UpdatedAt:    sale.UpdatedAt,
	}
}
