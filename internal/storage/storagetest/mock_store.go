// Package storagetest provides a testify mock of storage.Store.
package storagetest

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/placecraft/internal/domain"
)

// MockStore implements [storage.Store].
type MockStore struct {
	mock.Mock
}

// Load implements [storage.Store].
func (m *MockStore) Load(ctx context.Context, name string) (*domain.Game, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Game), args.Error(1)
}

// Save implements [storage.Store].
func (m *MockStore) Save(ctx context.Context, name string, g *domain.Game) error {
	args := m.Called(ctx, name, g)
	return args.Error(0)
}

// List implements [storage.Store].
func (m *MockStore) List(ctx context.Context) ([]domain.WorldSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WorldSummary), args.Error(1)
}

// Ping implements [storage.Store].
func (m *MockStore) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Close implements [storage.Store].
func (m *MockStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
