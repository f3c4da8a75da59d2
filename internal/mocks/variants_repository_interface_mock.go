// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/conceptair/sizing-service/internal/domain/model"
	"github.com/conceptair/sizing-service/internal/repository"
)

type MockVariantsRepositoryInterface struct {
	mock.Mock
}

func (m *MockVariantsRepositoryInterface) GetActive(ctx context.Context, name string) (*repository.VariantConfig, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.VariantConfig), args.Error(1)
}

func (m *MockVariantsRepositoryInterface) ListActive(ctx context.Context) ([]repository.VariantConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.VariantConfig), args.Error(1)
}

func (m *MockVariantsRepositoryInterface) Upsert(ctx context.Context, variant model.AircraftVariant, createdBy string) (*repository.VariantConfig, error) {
	args := m.Called(ctx, variant, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.VariantConfig), args.Error(1)
}

func (m *MockVariantsRepositoryInterface) History(ctx context.Context, name string, limit int) ([]repository.VariantConfig, error) {
	args := m.Called(ctx, name, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.VariantConfig), args.Error(1)
}
