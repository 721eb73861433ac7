package entity

import (
	"time"

	"github.com/google/uuid"
)

// DomainEvent representa un evento de dominio emitido por un aggregate.
// Los eventos se acumulan en la entidad durante la unidad de trabajo y se
// drenan con PullDomainEvents después de persistir.
type DomainEvent interface {
	EventName() string
	OccurredAt() time.Time
}

// Base contiene la identidad y el ciclo de vida común a todas las entidades
type Base struct {
	ID        uuid.UUID  `json:"id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`

	domainEvents []DomainEvent
}

// NewBase crea una base con identidad nueva y timestamp de creación
func NewBase() Base {
	return Base{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC(),
	}
}

// AddDomainEvent registra un evento de dominio en la entidad
func (b *Base) AddDomainEvent(event DomainEvent) {
	b.domainEvents = append(b.domainEvents, event)
}

// PullDomainEvents retorna los eventos acumulados en orden de emisión
// y limpia la lista. El caller los publica después del commit.
func (b *Base) PullDomainEvents() []DomainEvent {
	events := b.domainEvents
	b.domainEvents = nil
	return events
}

// Touch actualiza el timestamp de modificación
func (b *Base) Touch() {
	now := time.Now().UTC()
	b.UpdatedAt = &now
}
