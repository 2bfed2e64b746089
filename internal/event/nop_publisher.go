package event

import (
	"context"
	"log/slog"
)

// NopEventPublisher swallows every event. The service falls back to it when
// RabbitMQ is disabled or unreachable at startup, so event publication is
// never load-bearing for request handling.
type NopEventPublisher struct {
	logger *slog.Logger
}

var _ EventPublisher = (*NopEventPublisher)(nil)

func NewNopEventPublisher(logger *slog.Logger) *NopEventPublisher {
	return &NopEventPublisher{logger: logger.With("component", "NopEventPublisher")}
}

func (p *NopEventPublisher) PublishCustomerCreated(ctx context.Context, event CustomerCreatedEvent) error {
	p.logger.DebugContext(ctx, "Dropping customer created event", "customerId", event.CustomerID)
	return nil
}

func (p *NopEventPublisher) PublishPayoutProcessed(ctx context.Context, event PayoutProcessedEvent) error {
	p.logger.DebugContext(ctx, "Dropping payout processed event", "payoutId", event.PayoutID)
	return nil
}

func (p *NopEventPublisher) PublishContractExpiring(ctx context.Context, event ContractExpiringEvent) error {
	p.logger.DebugContext(ctx, "Dropping contract expiring event", "contractId", event.ContractID)
	return nil
}
