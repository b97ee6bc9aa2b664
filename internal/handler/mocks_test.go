package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/BattleArena_Go/internal/battle"
)

// MockBattleService mocks battle.Service
type MockBattleService struct {
	mock.Mock
}

func (m *MockBattleService) Start(ctx context.Context, req battle.Request) (*battle.Report, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*battle.Report), args.Error(1)
}

func (m *MockBattleService) Get(ctx context.Context, id string) (*battle.Report, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*battle.Report), args.Error(1)
}
