// Package roster turns unit descriptions into armies, resolving item
// names against the catalog and enforcing the per-unit slot limit.
package roster

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/osse101/BattleArena_Go/internal/army"
	"github.com/osse101/BattleArena_Go/internal/catalog"
	"github.com/osse101/BattleArena_Go/internal/domain"
)

// UnitSpec describes one unit to enlist. Empty item names mean "no item".
type UnitSpec struct {
	Name  string   `json:"name"`
	Items []string `json:"items,omitempty"`
}

// Builder creates units equipped from a catalog
type Builder struct {
	catalog *catalog.Catalog
}

// NewBuilder returns a Builder resolving items in c
func NewBuilder(c *catalog.Catalog) *Builder {
	return &Builder{catalog: c}
}

// NewUnit creates a unit at full health carrying up to two items
func (b *Builder) NewUnit(name string, itemNames ...string) (domain.Unit, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Unit{}, fmt.Errorf("%w: name is empty", domain.ErrInvalidUnitName)
	}
	if utf8.RuneCountInString(name) > domain.MaxNameLength {
		return domain.Unit{}, fmt.Errorf("%w: name exceeds %d characters", domain.ErrInvalidUnitName, domain.MaxNameLength)
	}
	if len(itemNames) > domain.MaxUnitItems {
		return domain.Unit{}, fmt.Errorf("%w: %d given, at most %d", domain.ErrTooManyItems, len(itemNames), domain.MaxUnitItems)
	}

	var equipped [domain.MaxUnitItems]*domain.Item
	for i, itemName := range itemNames {
		itemName = strings.TrimSpace(itemName)
		if itemName == "" {
			continue
		}
		item, ok := b.catalog.Lookup(itemName)
		if !ok {
			return domain.Unit{}, fmt.Errorf("%w: %s", domain.ErrItemNotFound, itemName)
		}
		equipped[i] = item
	}

	unit := domain.NewUnit(name, equipped[0], equipped[1])
	if !unit.CheckSlots() {
		return domain.Unit{}, fmt.Errorf("%w: %s uses %d of %d", domain.ErrSlotsExceeded, name, unit.SlotsUsed(), domain.MaxSlots)
	}
	return unit, nil
}

// Enlist builds the unit described by spec and pushes it onto a.
// The army is checked first so a full army reports ErrArmyFull even
// for an otherwise invalid unit.
func (b *Builder) Enlist(a *army.Army, spec UnitSpec) error {
	if a.IsFull() {
		return domain.ErrArmyFull
	}

	unit, err := b.NewUnit(spec.Name, spec.Items...)
	if err != nil {
		return err
	}

	if !a.Push(unit) {
		return domain.ErrArmyFull
	}
	return nil
}

// BuildArmy creates an army from 1 to domain.MaxArmySize unit specs
func (b *Builder) BuildArmy(specs []UnitSpec) (*army.Army, error) {
	if len(specs) < domain.MinArmySize {
		return nil, domain.ErrArmyEmpty
	}
	if len(specs) > domain.MaxArmySize {
		return nil, fmt.Errorf("%w: %d units given, at most %d", domain.ErrArmyFull, len(specs), domain.MaxArmySize)
	}

	a := army.New()
	for i, spec := range specs {
		if err := b.Enlist(a, spec); err != nil {
			return nil, fmt.Errorf("unit %d: %w", i+1, err)
		}
	}
	return a, nil
}
