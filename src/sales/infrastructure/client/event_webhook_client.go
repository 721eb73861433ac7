package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	shared "sales/src/shared/domain/entity"
)

// EventWebhookClient reenvía eventos de dominio a un endpoint HTTP externo.
// Se suscribe al bus de eventos cuando EVENT_WEBHOOK_URL está configurado.
type EventWebhookClient struct {
	httpClient *http.Client
	webhookURL string
}

// NewEventWebhookClient crea una nueva instancia del cliente.
// Retorna nil si EVENT_WEBHOOK_URL no está configurado.
func NewEventWebhookClient() *EventWebhookClient {
	webhookURL := os.Getenv("EVENT_WEBHOOK_URL")
	if webhookURL == "" {
		return nil
	}

	return &EventWebhookClient{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		webhookURL: webhookURL,
	}
}

// Notify envía el envelope del evento al webhook configurado
func (c *EventWebhookClient) Notify(ctx context.Context, event shared.DomainEvent) error {
	envelope := map[string]interface{}{
		"event_type":   event.EventName(),
		"occurred_at":  event.OccurredAt().UTC().Format(time.RFC3339),
		"published_by": "sales-service",
		"payload":      event,
	}

	body, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("error marshaling event envelope: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("error creating webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error calling event webhook: %w", err)
	}
	defer resp.Body.Close()

	// Drenar el body para reusar la conexión
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("event webhook returned status %d", resp.StatusCode)
	}

	return nil
}
