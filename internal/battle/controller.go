// Package battle drives battles from start to decision. The Controller
// runs the round loop for one pair of armies and reports progress to a
// Renderer and an event bus; the Service runs headless battles from unit
// descriptions and keeps their reports for later retrieval.
package battle

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/osse101/BattleArena_Go/internal/army"
	"github.com/osse101/BattleArena_Go/internal/combat"
	"github.com/osse101/BattleArena_Go/internal/domain"
	"github.com/osse101/BattleArena_Go/internal/event"
	"github.com/osse101/BattleArena_Go/internal/logger"
)

// Renderer presents a running battle. RenderRound is called before each
// round with a nil report and again after it with the round's report.
// An error from either method stops the battle.
type Renderer interface {
	RenderRound(ctx context.Context, round int, army1, army2 *army.Army, report *combat.RoundReport) error
	RenderResult(ctx context.Context, result Result) error
}

// Result is the final state of a battle
type Result struct {
	ID      string                `json:"id"`
	Outcome domain.Outcome        `json:"outcome"`
	Rounds  int                   `json:"rounds"`
	Reports []*combat.RoundReport `json:"round_reports"`
	Army1   []domain.Unit         `json:"survivors_army1"`
	Army2   []domain.Unit         `json:"survivors_army2"`
	// Aborted is set when the battle stopped before a terminal outcome
	Aborted bool `json:"aborted,omitempty"`
}

// Controller runs a single battle. The zero value runs without a round
// limit, renderer or event bus.
type Controller struct {
	// ID identifies the battle in events and logs; generated when empty
	ID string
	// MaxRounds stops undecided battles, 0 means no limit
	MaxRounds int
	Renderer  Renderer
	Bus       event.Bus
}

// Run resolves rounds until one side or both are eliminated. The armies
// are mutated in place. When the battle is cut short by the round limit
// or by ctx, the partial result is returned with the error.
func (c *Controller) Run(ctx context.Context, army1, army2 *army.Army) (*Result, error) {
	if army1 == nil || army2 == nil || army1.IsEmpty() || army2.IsEmpty() {
		return nil, fmt.Errorf(ErrMsgArmiesRequired, domain.ErrArmyEmpty)
	}

	id := c.ID
	if id == "" {
		id = uuid.NewString()
	}
	log := logger.FromContext(ctx).With("battle_id", id)

	result := &Result{ID: id, Outcome: domain.OutcomeContinue}
	log.Info(LogMsgBattleStarted, "army1_units", army1.Count(), "army2_units", army2.Count())
	c.publish(ctx, event.NewBattleStartedEvent(id, Summarize(army1), Summarize(army2)))

	var runErr error
	for round := 1; ; round++ {
		if c.MaxRounds > 0 && round > c.MaxRounds {
			runErr = fmt.Errorf(ErrMsgRoundLimit, domain.ErrRoundLimitReached, c.MaxRounds)
			break
		}
		if err := ctx.Err(); err != nil {
			runErr = err
			break
		}

		if err := c.render(ctx, round, army1, army2, nil); err != nil {
			runErr = err
			break
		}

		report := combat.ResolveRound(army1, army2)
		result.Rounds = round
		result.Reports = append(result.Reports, report)
		result.Outcome = report.Outcome

		log.Debug(LogMsgRoundResolved,
			"round", round,
			"outcome", report.Outcome,
			"hits", len(report.Damage),
			"casualties", len(report.Casualties))
		c.publish(ctx, event.NewBattleRoundResolvedEvent(id, round, report.Outcome, report.Damage, report.Casualties))

		if err := c.render(ctx, round, army1, army2, report); err != nil {
			runErr = err
			break
		}

		if report.Outcome.IsTerminal() {
			break
		}
	}

	result.Army1 = army1.Units()
	result.Army2 = army2.Units()
	result.Aborted = runErr != nil

	c.publish(ctx, event.NewBattleFinishedEvent(event.BattleFinishedPayloadV1{
		BattleID:   id,
		Outcome:    result.Outcome,
		Rounds:     result.Rounds,
		Survivors1: len(result.Army1),
		Survivors2: len(result.Army2),
		Aborted:    result.Aborted,
	}))

	if runErr != nil {
		log.Warn(LogMsgBattleAborted, "rounds", result.Rounds, "error", runErr)
		return result, runErr
	}

	log.Info(LogMsgBattleFinished, "outcome", result.Outcome, "rounds", result.Rounds)

	if c.Renderer != nil {
		if err := c.Renderer.RenderResult(ctx, *result); err != nil {
			return result, fmt.Errorf(ErrMsgRenderResult, err)
		}
	}
	return result, nil
}

func (c *Controller) render(ctx context.Context, round int, army1, army2 *army.Army, report *combat.RoundReport) error {
	if c.Renderer == nil {
		return nil
	}
	if err := c.Renderer.RenderRound(ctx, round, army1, army2, report); err != nil {
		return fmt.Errorf(ErrMsgRenderFailed, round, err)
	}
	return nil
}

// publish never fails the battle; subscriber errors are only logged
func (c *Controller) publish(ctx context.Context, evt event.Event) {
	if c.Bus == nil {
		return
	}
	if err := c.Bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgEventPublishFailed, "event_type", evt.Type, "error", err)
	}
}

// Summarize describes the units of a as event payload entries
func Summarize(a *army.Army) []event.UnitSummaryV1 {
	units := a.Units()
	out := make([]event.UnitSummaryV1, 0, len(units))
	for pos, u := range units {
		summary := event.UnitSummaryV1{Position: pos, Name: u.Name, HP: u.HP}
		for _, item := range u.Items() {
			summary.Items = append(summary.Items, item.Name)
		}
		out = append(out, summary)
	}
	return out
}

// IsStopped reports whether err means the battle was cut short rather
// than failing: the round limit or a cancelled context.
func IsStopped(err error) bool {
	return errors.Is(err, domain.ErrRoundLimitReached) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}
