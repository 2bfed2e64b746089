package insurancetype

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"insurance-office/internal/pkg/apperrors"
	"insurance-office/internal/pkg/sequence"
)

type InsuranceTypeService interface {
	CreateInsuranceType(ctx context.Context, insuranceTypeID, name, description string) (*InsuranceType, error)
	GetInsuranceType(ctx context.Context, insuranceTypeID string) (*InsuranceType, error)
	ListInsuranceTypes(ctx context.Context) ([]*InsuranceType, error)
	UpdateInsuranceType(ctx context.Context, insuranceTypeID, name, description string) error
	DeleteInsuranceType(ctx context.Context, insuranceTypeID string) error
	DropdownOptions(ctx context.Context) ([]Option, error)
	NextInsuranceTypeID(ctx context.Context) (string, error)
}

var _ InsuranceTypeService = (*insuranceTypeService)(nil)

type insuranceTypeService struct {
	repo   InsuranceTypeRepository
	logger *slog.Logger
}

func NewInsuranceTypeService(repo InsuranceTypeRepository, logger *slog.Logger) InsuranceTypeService {
	if repo == nil {
		panic("insurance type repository cannot be nil")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	}
	return &insuranceTypeService{
		repo:   repo,
		logger: logger.With(slog.String("component", "insuranceTypeService")),
	}
}

func (s *insuranceTypeService) CreateInsuranceType(ctx context.Context, insuranceTypeID, name, description string) (*InsuranceType, error) {
	insuranceTypeID = strings.TrimSpace(insuranceTypeID)
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)

	if name == "" {
		return nil, apperrors.NewValidationError("name", "insurance name cannot be empty")
	}
	if description == "" {
		return nil, apperrors.NewValidationError("description", "description cannot be empty")
	}

	if insuranceTypeID == "" {
		next, err := s.NextInsuranceTypeID(ctx)
		if err != nil {
			return nil, err
		}
		insuranceTypeID = next
	} else if !sequence.InsuranceTypes.Valid(insuranceTypeID) {
		return nil, apperrors.NewValidationError("insuranceTypeId",
			fmt.Sprintf("identifier %q does not fit the %s-series format", insuranceTypeID, sequence.InsuranceTypes.Prefix))
	}

	it := &InsuranceType{
		InsuranceTypeID: insuranceTypeID,
		Name:            name,
		Description:     description,
	}

	if err := s.repo.Insert(ctx, it); err != nil {
		s.logger.ErrorContext(ctx, "Repository failed to insert insurance type",
			slog.String("insuranceTypeID", insuranceTypeID), slog.Any("error", err))
		return nil, fmt.Errorf("failed to create insurance type %s: %w", insuranceTypeID, err)
	}

	s.logger.InfoContext(ctx, "Insurance type created", slog.String("insuranceTypeID", insuranceTypeID))
	return it, nil
}

func (s *insuranceTypeService) GetInsuranceType(ctx context.Context, insuranceTypeID string) (*InsuranceType, error) {
	return s.repo.FindByID(ctx, insuranceTypeID)
}

func (s *insuranceTypeService) ListInsuranceTypes(ctx context.Context) ([]*InsuranceType, error) {
	types, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list insurance types: %w", err)
	}
	return types, nil
}

func (s *insuranceTypeService) UpdateInsuranceType(ctx context.Context, insuranceTypeID, name, description string) error {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)

	if name == "" || description == "" {
		return apperrors.NewValidationError("", "name and description are both required")
	}

	err := s.repo.Update(ctx, &InsuranceType{
		InsuranceTypeID: insuranceTypeID,
		Name:            name,
		Description:     description,
	})
	if err != nil {
		return fmt.Errorf("failed to update insurance type %s: %w", insuranceTypeID, err)
	}

	s.logger.InfoContext(ctx, "Insurance type updated", slog.String("insuranceTypeID", insuranceTypeID))
	return nil
}

func (s *insuranceTypeService) DeleteInsuranceType(ctx context.Context, insuranceTypeID string) error {
	if err := s.repo.Delete(ctx, insuranceTypeID); err != nil {
		s.logger.WarnContext(ctx, "Failed to delete insurance type",
			slog.String("insuranceTypeID", insuranceTypeID), slog.Any("error", err))
		return err
	}
	s.logger.InfoContext(ctx, "Insurance type deleted", slog.String("insuranceTypeID", insuranceTypeID))
	return nil
}

func (s *insuranceTypeService) DropdownOptions(ctx context.Context) ([]Option, error) {
	types, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build insurance type options: %w", err)
	}

	options := make([]Option, 0, len(types))
	for _, it := range types {
		options = append(options, Option{
			ID:    it.InsuranceTypeID,
			Label: fmt.Sprintf("%s: %s", it.InsuranceTypeID, it.Name),
		})
	}
	return options, nil
}

func (s *insuranceTypeService) NextInsuranceTypeID(ctx context.Context) (string, error) {
	maxID, err := s.repo.MaxID(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to determine next insurance type ID: %w", err)
	}
	return sequence.InsuranceTypes.Next(maxID), nil
}
