package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/foodtruck-service/internal/domain"
	apperrors "github.com/foodtruck-service/internal/pkg/errors"
	"github.com/foodtruck-service/internal/repository/memory"
	"github.com/foodtruck-service/internal/usecase"
	"github.com/foodtruck-service/internal/usecase/dto"
)

const testStream = "stream:vendor:events"

func addTruckRequest(id, status string) dto.AddTruckRequest {
	return dto.AddTruckRequest{
		ID:           id,
		Name:         "Taco Cart",
		FacilityType: "Truck",
		Address:      "1 Market St",
		FoodItems:    dto.ItemList{"tacos", "burritos"},
		ExpiryDate:   "2027-01-01",
		Status:       status,
	}
}

func TestVendorUseCase_AddTruckTwice(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewVendorUseCase(memory.NewVendorRepository(), nil, testStream, zap.NewNop())

	first, err := uc.AddTruck(ctx, addTruckRequest("T1", "active"))
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeCreated, first.Outcome)
	assert.Equal(t, "added", first.Message())

	second, err := uc.AddTruck(ctx, addTruckRequest("T1", "inactive"))
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeUpdated, second.Outcome)
	assert.Equal(t, "updated", second.Message())

	all, err := uc.ListTrucks(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "T1", all[0].ID)
	assert.Equal(t, "inactive", all[0].Status)
}

func TestVendorUseCase_PublishesEvents(t *testing.T) {
	ctx := context.Background()
	stream := &MockStreamRepository{}

	stream.On("PublishToStream", mock.Anything, testStream, mock.MatchedBy(func(e domain.VendorEvent) bool {
		return e.Type == domain.VendorCreatedEvent && e.Vendor.ID == "T1"
	})).Return(nil).Once()
	stream.On("PublishToStream", mock.Anything, testStream, mock.MatchedBy(func(e domain.VendorEvent) bool {
		return e.Type == domain.VendorUpdatedEvent && e.Vendor.Status == "inactive"
	})).Return(nil).Once()

	uc := usecase.NewVendorUseCase(memory.NewVendorRepository(), stream, testStream, zap.NewNop())

	_, err := uc.AddTruck(ctx, addTruckRequest("T1", "active"))
	require.NoError(t, err)
	_, err = uc.AddTruck(ctx, addTruckRequest("T1", "inactive"))
	require.NoError(t, err)

	stream.AssertExpectations(t)
}

func TestVendorUseCase_PublishFailureDoesNotFailRequest(t *testing.T) {
	ctx := context.Background()
	stream := &MockStreamRepository{}
	stream.On("PublishToStream", mock.Anything, testStream, mock.Anything).Return(errors.New("redis down")).Once()

	uc := usecase.NewVendorUseCase(memory.NewVendorRepository(), stream, testStream, zap.NewNop())

	resp, err := uc.AddTruck(ctx, addTruckRequest("T1", "active"))
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeCreated, resp.Outcome)
	stream.AssertExpectations(t)
}

func TestVendorUseCase_RepositoryFailure(t *testing.T) {
	ctx := context.Background()
	repo := &MockVendorRepository{}
	stream := &MockStreamRepository{}
	repo.On("Upsert", mock.Anything, mock.Anything).Return(domain.UpsertOutcome(""), errors.New("boom")).Once()

	uc := usecase.NewVendorUseCase(repo, stream, testStream, zap.NewNop())

	resp, err := uc.AddTruck(ctx, addTruckRequest("T1", "active"))
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, apperrors.ErrInternalServer)
	stream.AssertNotCalled(t, "PublishToStream", mock.Anything, mock.Anything, mock.Anything)
}

func TestVendorUseCase_GetTruck(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewVendorUseCase(memory.NewVendorRepository(), nil, testStream, zap.NewNop())

	_, err := uc.GetTruck(ctx, "T1")
	assert.ErrorIs(t, err, apperrors.ErrTruckNotFound)

	_, err = uc.AddTruck(ctx, addTruckRequest("T1", "active"))
	require.NoError(t, err)

	vendor, err := uc.GetTruck(ctx, "T1")
	require.NoError(t, err)
	assert.Equal(t, []string{"tacos", "burritos"}, vendor.FoodItems)
}
