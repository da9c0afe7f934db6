package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/foodtruck-service/internal/domain"
)

// MockSnapshotRepository is a mock of SnapshotRepository
type MockSnapshotRepository struct {
	mock.Mock
}

func (m *MockSnapshotRepository) Load(ctx context.Context) (*domain.Node, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Node), args.Error(1)
}

// MockVendorRepository is a mock of VendorRepository
type MockVendorRepository struct {
	mock.Mock
}

func (m *MockVendorRepository) Upsert(ctx context.Context, vendor domain.Vendor) (domain.UpsertOutcome, error) {
	args := m.Called(ctx, vendor)
	return args.Get(0).(domain.UpsertOutcome), args.Error(1)
}

func (m *MockVendorRepository) GetByID(ctx context.Context, id string) (*domain.Vendor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vendor), args.Error(1)
}

func (m *MockVendorRepository) List(ctx context.Context) ([]domain.Vendor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Vendor), args.Error(1)
}

// MockStreamRepository is a mock of StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}
