package payout

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"insurance-office/internal/domain/assessment"
	"insurance-office/internal/pkg/apperrors"
	"insurance-office/internal/pkg/sequence"

	"github.com/shopspring/decimal"
)

// PayoutService defines the business operations for processing payouts.
type PayoutService interface {
	ProcessPayout(ctx context.Context, payoutID, assessmentID string, payoutDate time.Time, amount decimal.Decimal, status Status) (*Payout, error)
	GetPayout(ctx context.Context, payoutID string) (*Payout, error)
	ListPayouts(ctx context.Context) ([]*Payout, error)
	PendingPayouts(ctx context.Context) ([]*Payout, error)
	PayoutsForContract(ctx context.Context, contractID string) ([]*Payout, error)
	UpdateStatus(ctx context.Context, payoutID string, status Status) error
	TotalsByStatus(ctx context.Context) ([]StatusTotal, error)
	NextPayoutID(ctx context.Context) (string, error)
}

type payoutService struct {
	repo        PayoutRepository
	assessments assessment.AssessmentService
	logger      *slog.Logger
}

func NewPayoutService(repo PayoutRepository, assessments assessment.AssessmentService, logger *slog.Logger) PayoutService {
	if repo == nil {
		panic("payoutService: repository is nil")
	}
	if assessments == nil {
		panic("payoutService: assessment service is nil")
	}
	if logger == nil {
		panic("payoutService: logger is nil")
	}
	return &payoutService{
		repo:        repo,
		assessments: assessments,
		logger:      logger.With(slog.String("component", "PayoutService")),
	}
}

var _ PayoutService = (*payoutService)(nil)

// ProcessPayout records a payout for a claim. Only assessments that are
// approved and not yet paid out are eligible; the check is an exclusion query
// at selection time, so two concurrent payouts for the same assessment are
// ultimately arbitrated by the insert, not here.
func (s *payoutService) ProcessPayout(ctx context.Context, payoutID, assessmentID string, payoutDate time.Time, amount decimal.Decimal, status Status) (*Payout, error) {
	payoutID = strings.TrimSpace(payoutID)
	assessmentID = strings.TrimSpace(assessmentID)

	if assessmentID == "" {
		return nil, apperrors.NewValidationError("assessmentId", "an assessment must be selected")
	}
	if payoutDate.IsZero() {
		return nil, apperrors.NewValidationError("payoutDate", "payout date is required")
	}
	if amount.IsNegative() {
		return nil, fmt.Errorf("%w: payout amount cannot be negative", apperrors.ErrInvalidAmount)
	}
	if status == "" {
		status = StatusPending
	}
	if !ValidStatus(status) {
		return nil, apperrors.NewValidationError("status", fmt.Sprintf("unknown payout status %q", status))
	}

	eligible, err := s.assessments.ApprovedWithoutPayout(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to determine eligible claims: %w", err)
	}
	if !claimEligible(eligible, assessmentID) {
		return nil, fmt.Errorf("%w: assessment %s is not approved or already paid out", apperrors.ErrClaimNotEligible, assessmentID)
	}

	if payoutID == "" {
		next, err := s.NextPayoutID(ctx)
		if err != nil {
			return nil, err
		}
		payoutID = next
	} else if !sequence.Payouts.Valid(payoutID) {
		return nil, apperrors.NewValidationError("payoutId",
			fmt.Sprintf("identifier %q does not fit the %s-series format", payoutID, sequence.Payouts.Prefix))
	}

	p := &Payout{
		PayoutID:     payoutID,
		AssessmentID: assessmentID,
		PayoutDate:   payoutDate,
		Amount:       amount,
		Status:       status,
	}

	if err := s.repo.Insert(ctx, p); err != nil {
		s.logger.ErrorContext(ctx, "Repository failed to insert payout",
			slog.String("payoutID", payoutID), slog.Any("error", err))
		return nil, fmt.Errorf("failed to process payout %s: %w", payoutID, err)
	}

	s.logger.InfoContext(ctx, "Payout processed",
		slog.String("payoutID", payoutID),
		slog.String("assessmentID", assessmentID),
		slog.String("amount", amount.String()))
	return p, nil
}

func claimEligible(claims []*assessment.ApprovedClaim, assessmentID string) bool {
	for _, c := range claims {
		if c.AssessmentID == assessmentID {
			return true
		}
	}
	return false
}

func (s *payoutService) GetPayout(ctx context.Context, payoutID string) (*Payout, error) {
	return s.repo.FindByID(ctx, payoutID)
}

func (s *payoutService) ListPayouts(ctx context.Context) ([]*Payout, error) {
	payouts, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list payouts: %w", err)
	}
	return payouts, nil
}

func (s *payoutService) PendingPayouts(ctx context.Context) ([]*Payout, error) {
	payouts, err := s.repo.FindPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending payouts: %w", err)
	}
	return payouts, nil
}

func (s *payoutService) PayoutsForContract(ctx context.Context, contractID string) ([]*Payout, error) {
	payouts, err := s.repo.FindByContract(ctx, contractID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payouts for contract %s: %w", contractID, err)
	}
	return payouts, nil
}

// UpdateStatus replaces the payout status with any valid value, in either
// direction. A completed payout can be reopened by the back office.
func (s *payoutService) UpdateStatus(ctx context.Context, payoutID string, status Status) error {
	if !ValidStatus(status) {
		return apperrors.NewValidationError("status", fmt.Sprintf("unknown payout status %q", status))
	}
	if err := s.repo.UpdateStatus(ctx, payoutID, status); err != nil {
		return fmt.Errorf("failed to update payout %s: %w", payoutID, err)
	}
	s.logger.InfoContext(ctx, "Payout status updated",
		slog.String("payoutID", payoutID), slog.String("status", string(status)))
	return nil
}

func (s *payoutService) TotalsByStatus(ctx context.Context) ([]StatusTotal, error) {
	totals, err := s.repo.TotalsByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to total payouts: %w", err)
	}
	return totals, nil
}

// NextPayoutID suggests the next P-series identifier. The suggestion is not
// reserved; a concurrent insert with the same ID loses at the primary key.
func (s *payoutService) NextPayoutID(ctx context.Context) (string, error) {
	maxID, err := s.repo.MaxID(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to determine next payout ID: %w", err)
	}
	return sequence.Payouts.Next(maxID), nil
}
