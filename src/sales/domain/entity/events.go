package entity

import (
	"time"

	"github.com/google/uuid"
)

// Nombres de eventos de dominio del módulo sales
const (
	EventSaleCreated  = "sales.sale.created"
	EventSaleModified = "sales.sale.modified"
	EventSaleCanceled = "sales.sale.canceled"
	EventItemCanceled = "sales.sale.item_canceled"
)

// SaleCreatedEvent se emite al crear una venta
type SaleCreatedEvent struct {
	SaleID     uuid.UUID `json:"sale_id"`
	SaleNumber int       `json:"sale_number"`
	CustomerID uuid.UUID `json:"customer_id"`
	BranchID   uuid.UUID `json:"branch_id"`
	Timestamp  time.Time `json:"timestamp"`
}

func (e SaleCreatedEvent) EventName() string     { return EventSaleCreated }
func (e SaleCreatedEvent) OccurredAt() time.Time { return e.Timestamp }

// SaleModifiedEvent se emite en cada mutación de items de la venta
type SaleModifiedEvent struct {
	SaleID     uuid.UUID `json:"sale_id"`
	SaleNumber int       `json:"sale_number"`
	Timestamp  time.Time `json:"timestamp"`
}

func (e SaleModifiedEvent) EventName() string     { return EventSaleModified }
func (e SaleModifiedEvent) OccurredAt() time.Time { return e.Timestamp }

// SaleCanceledEvent se emite al cancelar una venta
type SaleCanceledEvent struct {
	SaleID     uuid.UUID `json:"sale_id"`
	SaleNumber int       `json:"sale_number"`
	Timestamp  time.Time `json:"timestamp"`
}

func (e SaleCanceledEvent) EventName() string     { return EventSaleCanceled }
func (e SaleCanceledEvent) OccurredAt() time.Time { return e.Timestamp }

// ItemCanceledEvent se emite cuando un item es removido de la venta
type ItemCanceledEvent struct {
	SaleID    uuid.UUID `json:"sale_id"`
	ItemID    uuid.UUID `json:"item_id"`
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Timestamp time.Time `json:"timestamp"`
}

func (e ItemCanceledEvent) EventName() string     { return EventItemCanceled }
func (e ItemCanceledEvent) OccurredAt() time.Time { return e.Timestamp }
