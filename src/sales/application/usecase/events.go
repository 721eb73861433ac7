package usecase

import (
	"context"
	"log"

	"sales/src/sales/domain/entity"
	"sales/src/sales/domain/port"
)

// publishDomainEvents drena y despacha los eventos del aggregate.
// Se invoca SOLO después de que la persistencia confirmó: un error de
// publicación se loguea pero no falla la operación (el estado ya persistió).
func publishDomainEvents(ctx context.Context, publisher port.EventPublisher, sale *entity.Sale) {
	if publisher == nil {
		return
	}

	events := sale.PullDomainEvents()
	if len(events) == 0 {
		return
	}

	if err := publisher.Publish(ctx, events...); err != nil {
		log.Printf("WARNING: Failed to publish domain events for sale %s: %v", sale.ID, err)
	}
}
