package assessment

import "context"

type AssessmentRepository interface {
	Insert(ctx context.Context, a *Assessment) error

	FindByID(ctx context.Context, assessmentID string) (*Assessment, error)

	FindAll(ctx context.Context) ([]*Assessment, error)

	FindByContract(ctx context.Context, contractID string) ([]*Assessment, error)

	FindPending(ctx context.Context) ([]*Assessment, error)

	// FindApprovedWithoutPayout returns approved claims whose contract has no
	// payout row yet (anti-join against payouts).
	FindApprovedWithoutPayout(ctx context.Context) ([]*ApprovedClaim, error)

	UpdateResult(ctx context.Context, assessmentID string, result Result) error

	MaxID(ctx context.Context) (string, error)
}
