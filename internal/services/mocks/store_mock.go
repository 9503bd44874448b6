// filepath: internal/services/mocks/store_mock.go
package mocks

import (
	"context"

	"focusboard/internal/models"
	"focusboard/internal/repository"
	"focusboard/internal/services"

	"github.com/stretchr/testify/mock"
)

// MockStore is a mock implementation of services.Store.
// Lookup options are passed to Called as one slice argument.
type MockStore struct {
	mock.Mock
}

var _ services.Store = (*MockStore)(nil)

func (m *MockStore) Create(ctx context.Context, table string, data models.Record) (models.Record, error) {
	args := m.Called(ctx, table, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(models.Record), args.Error(1)
}

func (m *MockStore) Get(ctx context.Context, table, id string, opts ...repository.LookupOption) (models.Record, bool, error) {
	args := m.Called(ctx, table, id, opts)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(models.Record), args.Bool(1), args.Error(2)
}

func (m *MockStore) GetAll(ctx context.Context, table string, q repository.Query) ([]models.Record, error) {
	args := m.Called(ctx, table, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Record), args.Error(1)
}

func (m *MockStore) Update(ctx context.Context, table, id string, data models.Record, opts ...repository.LookupOption) (models.Record, bool, error) {
	args := m.Called(ctx, table, id, data, opts)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(models.Record), args.Bool(1), args.Error(2)
}

func (m *MockStore) Delete(ctx context.Context, table, id string, opts ...repository.LookupOption) (bool, error) {
	args := m.Called(ctx, table, id, opts)
	return args.Bool(0), args.Error(1)
}

func (m *MockStore) Count(ctx context.Context, table string, filters models.Record) (int, error) {
	args := m.Called(ctx, table, filters)
	return args.Int(0), args.Error(1)
}
