package assessment

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"insurance-office/internal/domain/contract"
	"insurance-office/internal/pkg/apperrors"
	"insurance-office/internal/pkg/sequence"

	"github.com/shopspring/decimal"
)

type AssessmentService interface {
	FileClaim(ctx context.Context, assessmentID, contractID string, assessmentDate time.Time, claimAmount decimal.Decimal, result Result) (*Assessment, error)
	GetAssessment(ctx context.Context, assessmentID string) (*Assessment, error)
	ListAssessments(ctx context.Context) ([]*Assessment, error)
	PendingAssessments(ctx context.Context) ([]*Assessment, error)
	ClaimsForContract(ctx context.Context, contractID string) ([]*Assessment, error)
	ApprovedWithoutPayout(ctx context.Context) ([]*ApprovedClaim, error)
	UpdateResult(ctx context.Context, assessmentID string, result Result) error
	NextAssessmentID(ctx context.Context) (string, error)
}

var _ AssessmentService = (*assessmentService)(nil)

type assessmentService struct {
	repo      AssessmentRepository
	contracts contract.ContractService
	logger    *slog.Logger
}

func NewAssessmentService(repo AssessmentRepository, contracts contract.ContractService, logger *slog.Logger) AssessmentService {
	if repo == nil {
		panic("assessment repository cannot be nil")
	}
	if contracts == nil {
		panic("contract service cannot be nil")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	}
	return &assessmentService{
		repo:      repo,
		contracts: contracts,
		logger:    logger.With(slog.String("component", "assessmentService")),
	}
}

// FileClaim records a new claim against an existing contract. The claim
// amount must not be negative; the result defaults to Pending when empty.
func (s *assessmentService) FileClaim(ctx context.Context, assessmentID, contractID string, assessmentDate time.Time, claimAmount decimal.Decimal, result Result) (*Assessment, error) {
	assessmentID = strings.TrimSpace(assessmentID)
	contractID = strings.TrimSpace(contractID)

	if contractID == "" {
		return nil, apperrors.NewValidationError("contractId", "a contract must be selected")
	}
	if assessmentDate.IsZero() {
		return nil, apperrors.NewValidationError("assessmentDate", "assessment date is required")
	}
	if claimAmount.IsNegative() {
		return nil, apperrors.NewValidationError("claimAmount", "claim amount cannot be negative")
	}
	if result == "" {
		result = ResultPending
	}
	if !ValidResult(result) {
		return nil, apperrors.NewValidationError("result", fmt.Sprintf("unknown assessment result %q", result))
	}

	if _, err := s.contracts.GetContract(ctx, contractID); err != nil {
		return nil, fmt.Errorf("contract %s: %w", contractID, err)
	}

	if assessmentID == "" {
		next, err := s.NextAssessmentID(ctx)
		if err != nil {
			return nil, err
		}
		assessmentID = next
	} else if !sequence.Assessments.Valid(assessmentID) {
		return nil, apperrors.NewValidationError("assessmentId",
			fmt.Sprintf("identifier %q does not fit the %s-series format", assessmentID, sequence.Assessments.Prefix))
	}

	a := &Assessment{
		AssessmentID:   assessmentID,
		ContractID:     contractID,
		AssessmentDate: assessmentDate,
		ClaimAmount:    claimAmount,
		Result:         result,
	}

	if err := s.repo.Insert(ctx, a); err != nil {
		s.logger.ErrorContext(ctx, "Repository failed to insert assessment",
			slog.String("assessmentID", assessmentID), slog.Any("error", err))
		return nil, fmt.Errorf("failed to file claim %s: %w", assessmentID, err)
	}

	s.logger.InfoContext(ctx, "Claim filed",
		slog.String("assessmentID", assessmentID),
		slog.String("contractID", contractID),
		slog.String("claimAmount", claimAmount.String()))
	return a, nil
}

func (s *assessmentService) GetAssessment(ctx context.Context, assessmentID string) (*Assessment, error) {
	return s.repo.FindByID(ctx, assessmentID)
}

func (s *assessmentService) ListAssessments(ctx context.Context) ([]*Assessment, error) {
	assessments, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list assessments: %w", err)
	}
	return assessments, nil
}

func (s *assessmentService) PendingAssessments(ctx context.Context) ([]*Assessment, error) {
	assessments, err := s.repo.FindPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending assessments: %w", err)
	}
	return assessments, nil
}

func (s *assessmentService) ClaimsForContract(ctx context.Context, contractID string) ([]*Assessment, error) {
	assessments, err := s.repo.FindByContract(ctx, contractID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assessments for contract %s: %w", contractID, err)
	}
	return assessments, nil
}

func (s *assessmentService) ApprovedWithoutPayout(ctx context.Context) ([]*ApprovedClaim, error) {
	claims, err := s.repo.FindApprovedWithoutPayout(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved claims without payout: %w", err)
	}
	return claims, nil
}

// UpdateResult replaces the claim result. Approved back to Pending is just as
// legal as the forward direction.
func (s *assessmentService) UpdateResult(ctx context.Context, assessmentID string, result Result) error {
	if !ValidResult(result) {
		return apperrors.NewValidationError("result", fmt.Sprintf("unknown assessment result %q", result))
	}

	if err := s.repo.UpdateResult(ctx, assessmentID, result); err != nil {
		s.logger.ErrorContext(ctx, "Repository failed to update assessment result",
			slog.String("assessmentID", assessmentID), slog.Any("error", err))
		return fmt.Errorf("failed to update result for assessment %s: %w", assessmentID, err)
	}

	s.logger.InfoContext(ctx, "Assessment result updated",
		slog.String("assessmentID", assessmentID), slog.String("result", string(result)))
	return nil
}

func (s *assessmentService) NextAssessmentID(ctx context.Context) (string, error) {
	maxID, err := s.repo.MaxID(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to determine next assessment ID: %w", err)
	}
	return sequence.Assessments.Next(maxID), nil
}
