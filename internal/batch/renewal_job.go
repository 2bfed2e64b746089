package batch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"insurance-office/internal/domain/contract"
	"insurance-office/internal/event"
)

// RenewalReminderJob publishes one contract.expiring event for every contract
// whose expiration date falls inside the configured window. It only reads:
// contract status is never changed here, expiring is an update someone has to
// make deliberately.
type RenewalReminderJob struct {
	contracts  contract.ContractService
	publisher  event.EventPublisher
	windowDays int
	logger     *slog.Logger
}

func NewRenewalReminderJob(
	contracts contract.ContractService,
	publisher event.EventPublisher,
	windowDays int,
	logger *slog.Logger,
) *RenewalReminderJob {
	if contracts == nil || publisher == nil || logger == nil {
		panic("RenewalReminderJob dependencies cannot be nil")
	}
	if windowDays <= 0 {
		windowDays = contract.DefaultExpiringWindowDays
	}
	return &RenewalReminderJob{
		contracts:  contracts,
		publisher:  publisher,
		windowDays: windowDays,
		logger:     logger.With("job", "RenewalReminder"),
	}
}

func (j *RenewalReminderJob) Run(ctx context.Context) error {
	startTime := time.Now()
	j.logger.InfoContext(ctx, "Starting daily renewal reminder job.", slog.Int("windowDays", j.windowDays))

	expiring, err := j.contracts.ExpiringWithin(ctx, j.windowDays)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to load expiring contracts, aborting job.", slog.Any("error", err))
		return fmt.Errorf("cannot run job, failed to load expiring contracts: %w", err)
	}
	j.logger.InfoContext(ctx, "Fetched expiring contracts.", slog.Int("count", len(expiring)))

	if len(expiring) == 0 {
		j.logger.InfoContext(ctx, "No expiring contracts found.", slog.Duration("duration", time.Since(startTime)))
		return nil
	}

	var published, errorCount int
	for _, c := range expiring {
		if c.ExpirationDate == nil {
			continue
		}

		logCtx := j.logger.With(slog.String("contractID", c.ContractID))
		pubErr := j.publisher.PublishContractExpiring(ctx, event.ContractExpiringEvent{
			ContractID:     c.ContractID,
			CustomerID:     c.CustomerID,
			CustomerName:   c.CustomerName,
			InsuranceName:  c.InsuranceName,
			ExpirationDate: *c.ExpirationDate,
		})
		if pubErr != nil {
			logCtx.ErrorContext(ctx, "Failed to publish renewal reminder", slog.Any("error", pubErr))
			errorCount++
			continue
		}
		published++
	}

	summaryLog := j.logger.With(
		slog.Duration("duration", time.Since(startTime)),
		slog.Int("expiring_contracts", len(expiring)),
		slog.Int("reminders_published", published),
		slog.Int("errors_encountered", errorCount),
	)
	if errorCount > 0 {
		summaryLog.WarnContext(ctx, "Renewal reminder job finished with errors.")
		return fmt.Errorf("job completed with %d errors", errorCount)
	}
	summaryLog.InfoContext(ctx, "Renewal reminder job finished successfully.")
	return nil
}
