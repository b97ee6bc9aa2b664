package battle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/BattleArena_Go/internal/domain"
	"github.com/osse101/BattleArena_Go/internal/event"
	"github.com/osse101/BattleArena_Go/internal/logger"
	"github.com/osse101/BattleArena_Go/internal/roster"
)

// Service defines the interface for headless battles
type Service interface {
	Start(ctx context.Context, req Request) (*Report, error)
	Get(ctx context.Context, id string) (*Report, error)
}

// Request describes both armies of a battle
type Request struct {
	Army1 []roster.UnitSpec `json:"army1"`
	Army2 []roster.UnitSpec `json:"army2"`
}

// Report is a finished battle as stored and served
type Report struct {
	Result
	Winner            string            `json:"winner,omitempty"`
	RoundLimitReached bool              `json:"round_limit_reached,omitempty"`
	Army1Spec         []roster.UnitSpec `json:"army1"`
	Army2Spec         []roster.UnitSpec `json:"army2"`
	CreatedAt         time.Time         `json:"created_at"`
}

// ServiceConfig configures the battle service
type ServiceConfig struct {
	MaxRounds int
	CacheSize int
	CacheTTL  time.Duration
}

type service struct {
	builder  *roster.Builder
	eventBus event.Bus
	cfg      ServiceConfig
	reports  *reportCache
}

// NewService creates a battle service building armies with builder
func NewService(builder *roster.Builder, eventBus event.Bus, cfg ServiceConfig) Service {
	return &service{
		builder:  builder,
		eventBus: eventBus,
		cfg:      cfg,
		reports:  newReportCache(cfg.CacheSize, cfg.CacheTTL),
	}
}

// Start builds both armies, runs the battle to completion and stores
// the report. A battle stopped by the round limit is still reported,
// flagged with RoundLimitReached.
func (s *service) Start(ctx context.Context, req Request) (*Report, error) {
	army1, err := s.builder.BuildArmy(req.Army1)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBuildArmyFailed, domain.ErrInvalidInput, domain.Army1, err)
	}
	army2, err := s.builder.BuildArmy(req.Army2)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBuildArmyFailed, domain.ErrInvalidInput, domain.Army2, err)
	}

	controller := &Controller{
		ID:        uuid.NewString(),
		MaxRounds: s.cfg.MaxRounds,
		Bus:       s.eventBus,
	}

	result, err := controller.Run(ctx, army1, army2)
	limitReached := errors.Is(err, domain.ErrRoundLimitReached)
	if err != nil && !limitReached {
		return nil, err
	}

	report := &Report{
		Result:            *result,
		RoundLimitReached: limitReached,
		Army1Spec:         req.Army1,
		Army2Spec:         req.Army2,
		CreatedAt:         time.Now().UTC(),
	}
	if side, ok := result.Outcome.Winner(); ok {
		report.Winner = side.String()
	}

	s.reports.Set(report)
	logger.FromContext(ctx).Debug(LogMsgReportCached, "battle_id", report.ID, "cached", s.reports.Len())

	return report, nil
}

// Get returns a stored report, domain.ErrBattleNotFound when unknown or expired
func (s *service) Get(ctx context.Context, id string) (*Report, error) {
	report, ok := s.reports.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrBattleNotFound, id)
	}
	return report, nil
}
