package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/osse101/BattleArena_Go/internal/army"
	"github.com/osse101/BattleArena_Go/internal/battle"
	"github.com/osse101/BattleArena_Go/internal/combat"
	"github.com/osse101/BattleArena_Go/internal/domain"
)

var _ battle.Renderer = (*App)(nil)

// RenderRound draws the battlefield before each round, followed by the
// previous round's log, and waits for Enter when pausing. The report of a
// resolved round is kept for the next view.
func (a *App) RenderRound(ctx context.Context, round int, army1, army2 *army.Army, report *combat.RoundReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if report != nil {
		a.lastReport = formatReport(report)
		return nil
	}

	a.drawBattlefield(army1, army2)
	a.printf(PromptNextRound, round)
	if !a.opts.Pause {
		a.println("")
		return nil
	}
	// an exhausted input keeps the battle running unattended
	if _, err := a.readLine(); err != nil {
		a.opts.Pause = false
		a.println("")
	}
	return nil
}

// RenderResult draws the final battlefield and the outcome line
func (a *App) RenderResult(_ context.Context, result battle.Result) error {
	a.drawBattlefield(a.army1, a.army2)
	a.println(ResultLine(result.Outcome))
	return nil
}

// ResultLine is the closing line for a decided battle
func ResultLine(outcome domain.Outcome) string {
	switch outcome {
	case domain.OutcomeArmy1Wins:
		return ResultArmy1Wins
	case domain.OutcomeArmy2Wins:
		return ResultArmy2Wins
	default:
		return ResultDraw
	}
}

func (a *App) drawBattlefield(army1, army2 *army.Army) {
	a.clear()
	a.println(TitleBattlefield)
	a.println("")
	a.println(FormatBattlefield(army1, army2))
	if len(a.lastReport) > 0 {
		a.println(strings.Repeat("-", min(a.width, 2*columnWidth+3+len(marginLeft))))
		for _, line := range a.lastReport {
			a.println(line)
		}
	}
	a.println("")
}

// FormatBattlefield renders both armies side by side, one row per
// position, each unit shown as "name (HP: n)"
func FormatBattlefield(army1, army2 *army.Army) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s%-*s | %s\n", marginLeft, columnWidth, ColumnHeaderLeft, ColumnHeaderRight)
	for position := 0; position < domain.MaxArmySize; position++ {
		fmt.Fprintf(&b, "%s%-*s | %-*s", marginLeft, columnWidth, cell(army1, position), columnWidth, cell(army2, position))
		if position < domain.MaxArmySize-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func cell(a *army.Army, position int) string {
	var u domain.Unit
	if a == nil || !a.PeekAt(position, &u) {
		return ""
	}
	return fmt.Sprintf("%s (HP: %d)", u.Name, u.HP)
}

func formatReport(report *combat.RoundReport) []string {
	lines := make([]string, 0, len(report.Damage)+len(report.Casualties))
	for _, hit := range report.Damage {
		lines = append(lines, fmt.Sprintf(MsgHit, hit.Side, hit.Attacker, hit.Item, hit.Defender, hit.Damage, hit.DefenderHP))
	}
	for _, fallen := range report.Casualties {
		lines = append(lines, fmt.Sprintf(MsgFallen, fallen.Side, fallen.Name))
	}
	return lines
}
