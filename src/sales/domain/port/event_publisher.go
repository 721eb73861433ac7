package port

import (
	"context"

	shared "sales/src/shared/domain/entity"
)

// EventPublisher define el contrato para despachar eventos de dominio.
// Los use cases publican los eventos drenados del aggregate DESPUÉS de que
// la persistencia confirma, nunca antes. Cada evento se despacha una sola vez.
type EventPublisher interface {
	Publish(ctx context.Context, events ...shared.DomainEvent) error
}
