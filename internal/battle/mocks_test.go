package battle

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/BattleArena_Go/internal/army"
	"github.com/osse101/BattleArena_Go/internal/combat"
)

// MockRenderer implements Renderer for testing
type MockRenderer struct {
	mock.Mock
}

func (m *MockRenderer) RenderRound(ctx context.Context, round int, army1, army2 *army.Army, report *combat.RoundReport) error {
	args := m.Called(ctx, round, army1, army2, report)
	return args.Error(0)
}

func (m *MockRenderer) RenderResult(ctx context.Context, result Result) error {
	args := m.Called(ctx, result)
	return args.Error(0)
}
