package entity

import (
	"time"

	shared "sales/src/shared/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleStatus representa el estado de una venta
type SaleStatus string

const (
	SaleStatusCreated    SaleStatus = "CREATED"
	SaleStatusProcessing SaleStatus = "PROCESSING"
	SaleStatusCompleted  SaleStatus = "COMPLETED"
	SaleStatusCanceled   SaleStatus = "CANCELED"
)

// Sale representa una venta (Aggregate Root).
// Es dueña exclusiva de su colección de SaleItem: los items se crean con
// AddItem y se destruyen con RemoveItem, no tienen repositorio propio.
// CANCELED es terminal: ninguna mutación posterior tiene éxito.
type Sale struct {
	shared.Base
	SaleNumber   int             `json:"sale_number"`
	SaleDate     time.Time       `json:"sale_date"`
	CustomerID   uuid.UUID       `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	BranchID     uuid.UUID       `json:"branch_id"`
	BranchName   string          `json:"branch_name"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Status       SaleStatus      `json:"status"`
	Items        []SaleItem      `json:"items"`
}

// NewSale crea una nueva venta vacía (DDD Aggregate Root).
// El saleNumber lo asigna el caller: unicidad y numeración secuencial son
// responsabilidad del repositorio, no de esta capa.
func NewSale(saleNumber int, customerID uuid.UUID, customerName string, branchID uuid.UUID, branchName string) *Sale {
	sale := &Sale{
		Base:         shared.NewBase(),
		SaleNumber:   saleNumber,
		SaleDate:     time.Now().UTC(),
		CustomerID:   customerID,
		CustomerName: customerName,
		BranchID:     branchID,
		BranchName:   branchName,
		TotalAmount:  decimal.Zero,
		Status:       SaleStatusCreated,
	}

	sale.AddDomainEvent(SaleCreatedEvent{
		SaleID:     sale.ID,
		SaleNumber: sale.SaleNumber,
		CustomerID: sale.CustomerID,
		BranchID:   sale.BranchID,
		Timestamp:  time.Now().UTC(),
	})

	return sale
}

// AddItem agrega un item a la venta y recalcula el total
func (s *Sale) AddItem(productID uuid.UUID, productName string, quantity int, unitPrice decimal.Decimal) error {
	if s.IsCanceled() {
		return ErrSaleAlreadyCanceled
	}

	// Regla de negocio: no se pueden vender más de 20 items idénticos.
	// El constructor del item revalida; se mantienen ambos chequeos.
	if quantity > MaxItemQuantity {
		return ErrInvalidQuantity
	}

	item, err := NewSaleItem(s.ID, productID, productName, quantity, unitPrice)
	if err != nil {
		return err
	}

	s.Items = append(s.Items, *item)
	s.recalculateTotalAmount()

	s.AddDomainEvent(SaleModifiedEvent{
		SaleID:     s.ID,
		SaleNumber: s.SaleNumber,
		Timestamp:  time.Now().UTC(),
	})
	s.Touch()

	return nil
}

// UpdateItem cambia la cantidad de un item existente y recalcula el total
func (s *Sale) UpdateItem(itemID uuid.UUID, quantity int) error {
	if s.IsCanceled() {
		return ErrSaleAlreadyCanceled
	}

	item := s.findItem(itemID)
	if item == nil {
		return ErrItemNotFound
	}

	if err := item.UpdateQuantity(quantity); err != nil {
		return err
	}

	s.recalculateTotalAmount()

	s.AddDomainEvent(SaleModifiedEvent{
		SaleID:     s.ID,
		SaleNumber: s.SaleNumber,
		Timestamp:  time.Now().UTC(),
	})
	s.Touch()

	return nil
}

// RemoveItem cancela un item, lo remueve de la colección y recalcula el total
func (s *Sale) RemoveItem(itemID uuid.UUID) error {
	if s.IsCanceled() {
		return ErrSaleAlreadyCanceled
	}

	index := -1
	for i := range s.Items {
		if s.Items[i].ID == itemID {
			index = i
			break
		}
	}
	if index == -1 {
		return ErrItemNotFound
	}

	// Emitir la notificación del item antes de removerlo; el evento se
	// absorbe en la lista del aggregate para preservar el orden de emisión
	item := &s.Items[index]
	item.Cancel()
	s.absorbEvents(item)

	s.Items = append(s.Items[:index], s.Items[index+1:]...)
	s.recalculateTotalAmount()

	s.AddDomainEvent(SaleModifiedEvent{
		SaleID:     s.ID,
		SaleNumber: s.SaleNumber,
		Timestamp:  time.Now().UTC(),
	})
	s.Touch()

	return nil
}

// Cancel marca la venta como cancelada (estado terminal).
// No modifica Items ni TotalAmount: quedan como registro histórico.
func (s *Sale) Cancel() error {
	if s.Status == SaleStatusCanceled {
		return ErrSaleAlreadyCanceled
	}

	s.Status = SaleStatusCanceled

	s.AddDomainEvent(SaleCanceledEvent{
		SaleID:     s.ID,
		SaleNumber: s.SaleNumber,
		Timestamp:  time.Now().UTC(),
	})
	s.Touch()

	return nil
}

// IsCanceled indica si la venta está cancelada
func (s *Sale) IsCanceled() bool {
	return s.Status == SaleStatusCanceled
}

// TotalItems retorna el número total de items
func (s *Sale) TotalItems() int {
	return len(s.Items)
}

func (s *Sale) findItem(itemID uuid.UUID) *SaleItem {
	for i := range s.Items {
		if s.Items[i].ID == itemID {
			return &s.Items[i]
		}
	}
	return nil
}

// recalculateTotalAmount recalcula el total como suma completa sobre los
// items actuales, nunca de forma incremental
func (s *Sale) recalculateTotalAmount() {
	total := decimal.Zero
	for i := range s.Items {
		total = total.Add(s.Items[i].TotalPrice())
	}
	s.TotalAmount = total
}

func (s *Sale) absorbEvents(item *SaleItem) {
	for _, event := range item.PullDomainEvents() {
		s.AddDomainEvent(event)
	}
}
