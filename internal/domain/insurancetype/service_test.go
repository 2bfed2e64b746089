package insurancetype_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"insurance-office/internal/domain/insurancetype"
	"insurance-office/internal/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupTest() (*insurancetype.MockInsuranceTypeRepository, insurancetype.InsuranceTypeService) {
	mockRepo := new(insurancetype.MockInsuranceTypeRepository)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return mockRepo, insurancetype.NewInsuranceTypeService(mockRepo, logger)
}

func TestInsuranceTypeService_CreateInsuranceType(t *testing.T) {
	ctx := context.Background()

	t.Run("Generated ID uses the T series", func(t *testing.T) {
		mockRepo, service := setupTest()
		mockRepo.On("MaxID", ctx).Return("T011", nil).Once()
		mockRepo.On("Insert", ctx, mock.MatchedBy(func(it *insurancetype.InsuranceType) bool {
			return it.InsuranceTypeID == "T012" && it.Name == "Auto"
		})).Return(nil).Once()

		created, err := service.CreateInsuranceType(ctx, "", "Auto", "Vehicle coverage")

		assert.NoError(t, err)
		assert.Equal(t, "T012", created.InsuranceTypeID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Explicit ID outside the T series is rejected", func(t *testing.T) {
		mockRepo, service := setupTest()

		_, err := service.CreateInsuranceType(ctx, "INS-1", "Auto", "Vehicle coverage")
		assert.ErrorIs(t, err, apperrors.ErrValidation)
		mockRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("Missing fields stop at the boundary", func(t *testing.T) {
		mockRepo, service := setupTest()

		_, err := service.CreateInsuranceType(ctx, "", " ", "desc")
		assert.ErrorIs(t, err, apperrors.ErrValidation)

		_, err = service.CreateInsuranceType(ctx, "", "Auto", "")
		assert.ErrorIs(t, err, apperrors.ErrValidation)

		mockRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})
}

func TestInsuranceTypeService_DeleteInsuranceType(t *testing.T) {
	ctx := context.Background()

	t.Run("Type in use is rejected, not partially deleted", func(t *testing.T) {
		mockRepo, service := setupTest()
		mockRepo.On("Delete", ctx, "T001").
			Return(fmt.Errorf("%w: insurance type is referenced by a contract", apperrors.ErrConflict)).Once()

		err := service.DeleteInsuranceType(ctx, "T001")
		assert.ErrorIs(t, err, apperrors.ErrConflict)
	})
}

func TestInsuranceTypeService_DropdownOptions(t *testing.T) {
	ctx := context.Background()
	mockRepo, service := setupTest()
	mockRepo.On("FindAll", ctx).Return([]*insurancetype.InsuranceType{
		{InsuranceTypeID: "T001", Name: "Auto"},
	}, nil).Once()

	options, err := service.DropdownOptions(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []insurancetype.Option{{ID: "T001", Label: "T001: Auto"}}, options)
}
