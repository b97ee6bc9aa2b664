// Package tui is the line-oriented terminal front end: a menu to build
// both armies from the catalog and a round-by-round battlefield view.
package tui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/osse101/BattleArena_Go/internal/army"
	"github.com/osse101/BattleArena_Go/internal/battle"
	"github.com/osse101/BattleArena_Go/internal/catalog"
	"github.com/osse101/BattleArena_Go/internal/domain"
	"github.com/osse101/BattleArena_Go/internal/event"
	"github.com/osse101/BattleArena_Go/internal/logger"
	"github.com/osse101/BattleArena_Go/internal/roster"
)

// errInputClosed is returned once the input stream is exhausted
var errInputClosed = errors.New("input closed")

// Options tunes an App
type Options struct {
	// MaxRounds stops undecided battles, 0 means no limit
	MaxRounds int
	// Bus receives battle events, may be nil
	Bus event.Bus
	// Clear wipes the screen before each view; only sensible on a terminal
	Clear bool
	// Pause waits for Enter before every round
	Pause bool
}

// App is one interactive session
type App struct {
	in      *bufio.Scanner
	out     io.Writer
	catalog *catalog.Catalog
	builder *roster.Builder
	opts    Options
	width   int

	army1 *army.Army
	army2 *army.Army

	lastReport []string
}

// New creates a session reading commands from in and drawing to out
func New(in io.Reader, out io.Writer, c *catalog.Catalog, opts Options) *App {
	return &App{
		in:      bufio.NewScanner(in),
		out:     out,
		catalog: c,
		builder: roster.NewBuilder(c),
		opts:    opts,
		width:   terminalWidth(out),
		army1:   army.New(),
		army2:   army.New(),
	}
}

// Army returns the army on the given side
func (a *App) Army(side domain.Side) *army.Army {
	if side == domain.Army2 {
		return a.army2
	}
	return a.army1
}

// Run shows the main menu until the user exits, a battle ends or the
// input runs out
func (a *App) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		a.showMenu()
		choice, err := a.readLine()
		if err != nil {
			return nil
		}

		switch choice {
		case "1":
			a.CreateArmy(ctx, domain.Army1)
		case "2":
			a.CreateArmy(ctx, domain.Army2)
		case "3":
			if a.army1.IsEmpty() || a.army2.IsEmpty() {
				a.println(MsgArmiesRequired)
				continue
			}
			_, err := a.StartBattle(ctx)
			if err != nil && !battle.IsStopped(err) {
				return err
			}
			a.println(PromptExit)
			_, _ = a.readLine()
			return nil
		case "4":
			return nil
		default:
			a.println(MsgInvalidChoice)
		}
	}
}

// CreateArmy resets the army on side and enlists units until the user
// enters an empty name, the army is full or the input runs out
func (a *App) CreateArmy(ctx context.Context, side domain.Side) {
	target := a.Army(side)
	target.Init()

	for !target.IsFull() {
		a.clear()
		a.printf(PromptUnitName)
		name, err := a.readLine()
		if err != nil || name == "" {
			break
		}

		unit, err := a.equip(ctx, name)
		if errors.Is(err, errInputClosed) {
			break
		}
		if err != nil {
			continue
		}
		target.Push(unit)
	}

	if target.IsFull() {
		a.println(fmt.Sprintf(MsgArmyFull, side))
	}
	a.println(fmt.Sprintf(MsgArmyCreated, side, target.Count()))
	logger.FromContext(ctx).Info(LogMsgArmyCreated, "side", side, "units", target.Count())
}

// equip asks for both items and builds the unit. Rejected units are
// reported and return a non-nil error so the caller asks again.
func (a *App) equip(ctx context.Context, name string) (domain.Unit, error) {
	first, err := a.selectItem(fmt.Sprintf(PromptFirstItem, name), false)
	if err != nil {
		return domain.Unit{}, err
	}
	second, err := a.selectItem(fmt.Sprintf(PromptSecondItem, name), true)
	if err != nil {
		return domain.Unit{}, err
	}

	unit, err := a.builder.NewUnit(name, first, second)
	if err != nil {
		logger.FromContext(ctx).Info(LogMsgUnitRejected, "name", name, "error", err)
		if errors.Is(err, domain.ErrSlotsExceeded) {
			a.println(fmt.Sprintf(MsgSlotsExceeded, name, err))
		} else {
			a.println(fmt.Sprintf(MsgInvalidName, err))
		}
		return domain.Unit{}, err
	}
	return unit, nil
}

// selectItem lists the catalog and returns the chosen item name. When
// optional is set, 0 selects no item and an empty name is returned.
func (a *App) selectItem(title string, optional bool) (string, error) {
	items := a.catalog.Items()

	a.clear()
	a.println(title)
	a.println("")
	for i, item := range items {
		a.println(fmt.Sprintf("  %d. %s (att %d, def %d, slots %d, range %d, radius %d)",
			i+1, item.Name, item.Attack, item.Defense, item.Slots, item.Range, item.Radius))
	}
	a.println("")

	prompt := PromptItemNumber
	if optional {
		prompt = PromptItemOrNone
	}

	for {
		a.printf(prompt)
		line, err := a.readLine()
		if err != nil {
			return "", err
		}

		n, err := strconv.Atoi(line)
		switch {
		case err != nil:
		case n == 0 && optional:
			return "", nil
		case n >= 1 && n <= len(items):
			return items[n-1].Name, nil
		}
		a.println(MsgInvalidSelection)
	}
}

// StartBattle fights the two armies with the App as renderer
func (a *App) StartBattle(ctx context.Context) (*battle.Result, error) {
	a.lastReport = nil
	controller := &battle.Controller{
		MaxRounds: a.opts.MaxRounds,
		Renderer:  a,
		Bus:       a.opts.Bus,
	}

	result, err := controller.Run(ctx, a.army1, a.army2)
	if err != nil && result != nil {
		logger.FromContext(ctx).Warn(LogMsgBattleStopped, "rounds", result.Rounds, "error", err)
		a.drawBattlefield(a.army1, a.army2)
		a.println(fmt.Sprintf(ResultUndecided, result.Rounds))
	}
	return result, err
}

func (a *App) showMenu() {
	a.clear()
	a.println(TitleMenu)
	a.println("")
	a.println(MenuCreateArmy1)
	a.println(MenuCreateArmy2)
	a.println(MenuStartBattle)
	a.println(MenuExit)
	a.println("")
	a.printf(PromptChoice)
}

func (a *App) readLine() (string, error) {
	if !a.in.Scan() {
		if err := a.in.Err(); err != nil {
			return "", err
		}
		return "", errInputClosed
	}
	return strings.TrimSpace(a.in.Text()), nil
}

func (a *App) clear() {
	if a.opts.Clear {
		_, _ = io.WriteString(a.out, clearScreen)
	}
}

func (a *App) println(line string) {
	_, _ = fmt.Fprintln(a.out, line)
}

func (a *App) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(a.out, format, args...)
}
