package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	shared "sales/src/shared/domain/entity"
)

// EventHandler procesa un evento de dominio despachado por el bus
type EventHandler func(ctx context.Context, event shared.DomainEvent) error

// InMemoryBus despacha eventos de dominio en proceso, en el mismo orden en
// que fueron emitidos. Cada evento se loguea con su payload serializado.
// Los handlers se ejecutan sincrónicamente; un handler que falla no detiene
// a los demás.
type InMemoryBus struct {
	mu       sync.RWMutex
	handlers map[string][]EventHandler
}

// NewInMemoryBus crea un nuevo bus de eventos en memoria
func NewInMemoryBus() *InMemoryBus {
	return &InMemoryBus{
		handlers: make(map[string][]EventHandler),
	}
}

// Subscribe registra un handler para un nombre de evento
func (b *InMemoryBus) Subscribe(eventName string, handler EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventName] = append(b.handlers[eventName], handler)
}

// SubscribeAll registra un handler para todos los eventos
func (b *InMemoryBus) SubscribeAll(handler EventHandler) {
	b.Subscribe("*", handler)
}

// Publish despacha los eventos en orden de emisión
func (b *InMemoryBus) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	var firstErr error

	for _, event := range events {
		b.logEvent(event)

		for _, handler := range b.handlersFor(event.EventName()) {
			if err := handler(ctx, event); err != nil {
				log.Printf("WARNING: event handler failed for %s: %v", event.EventName(), err)
				if firstErr == nil {
					firstErr = fmt.Errorf("handler failed for %s: %w", event.EventName(), err)
				}
			}
		}
	}

	return firstErr
}

func (b *InMemoryBus) handlersFor(eventName string) []EventHandler {
	b.mu.RLock()
	defer b.mu.RUnlock()

	handlers := make([]EventHandler, 0, len(b.handlers[eventName])+len(b.handlers["*"]))
	handlers = append(handlers, b.handlers[eventName]...)
	handlers = append(handlers, b.handlers["*"]...)
	return handlers
}

func (b *InMemoryBus) logEvent(event shared.DomainEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("Domain Event: %s (payload not serializable: %v)", event.EventName(), err)
		return
	}
	log.Printf("Domain Event: %s - %s", event.EventName(), payload)
}
