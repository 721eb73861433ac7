package entity

import (
	"time"

	shared "sales/src/shared/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxItemQuantity es el máximo de items idénticos permitido por venta
const MaxItemQuantity = 20

// SaleItem representa un item dentro de una venta (Entity dentro del Aggregate).
// ProductID, ProductName y UnitPrice son snapshot inmutable al momento de la venta.
type SaleItem struct {
	shared.Base
	SaleID      uuid.UUID       `json:"sale_id"`
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Discount    decimal.Decimal `json:"discount"`
}

// NewSaleItem crea un nuevo item de venta con su descuento calculado
func NewSaleItem(saleID, productID uuid.UUID, productName string, quantity int, unitPrice decimal.Decimal) (*SaleItem, error) {
	// Regla de negocio: no se pueden vender más de 20 items idénticos
	if quantity > MaxItemQuantity {
		return nil, ErrInvalidQuantity
	}
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if unitPrice.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidPrice
	}

	item := &SaleItem{
		Base:        shared.NewBase(),
		SaleID:      saleID,
		ProductID:   productID,
		ProductName: productName,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
	}
	item.Discount = CalculateDiscount(item.Quantity, item.UnitPrice)

	return item, nil
}

// UpdateQuantity cambia la cantidad y recalcula el descuento.
// No modifica UnitPrice ni el snapshot del producto.
func (i *SaleItem) UpdateQuantity(quantity int) error {
	if quantity > MaxItemQuantity {
		return ErrInvalidQuantity
	}
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	i.Quantity = quantity
	i.Discount = CalculateDiscount(i.Quantity, i.UnitPrice)
	i.Touch()

	return nil
}

// Cancel emite la notificación de item cancelado. No modifica los campos
// del item: removerlo de la colección es responsabilidad del Sale.
func (i *SaleItem) Cancel() {
	i.AddDomainEvent(ItemCanceledEvent{
		SaleID:    i.SaleID,
		ItemID:    i.ID,
		ProductID: i.ProductID,
		Quantity:  i.Quantity,
		Timestamp: time.Now().UTC(),
	})
}

// TotalPrice retorna (UnitPrice × Quantity) − Discount.
// Siempre se calcula como lectura, nunca se almacena.
func (i *SaleItem) TotalPrice() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity))).Sub(i.Discount)
}
