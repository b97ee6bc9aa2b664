// Package army implements the ordered, capacity-bounded unit container
// both sides of a battle are built from.
//
// Positions are dense: units always occupy 0..Top() with no gaps, and
// removing a unit shifts every unit behind it one position forward.
// Combat targeting relies on this, since position 0 is always the
// nearest surviving unit. An Army is not safe for concurrent use.
package army

import "github.com/osse101/BattleArena_Go/internal/domain"

// Army holds at most domain.MaxArmySize units, owned by value
type Army struct {
	units []domain.Unit
}

// New returns an empty army
func New() *Army {
	a := &Army{}
	a.Init()
	return a
}

// Init resets the army to empty. Safe to call repeatedly.
func (a *Army) Init() {
	clear(a.units)
	if cap(a.units) < domain.MaxArmySize {
		a.units = make([]domain.Unit, 0, domain.MaxArmySize)
		return
	}
	a.units = a.units[:0]
}

// Count is the number of units in the army
func (a *Army) Count() int {
	return len(a.units)
}

// Top is the highest occupied position, -1 when empty
func (a *Army) Top() int {
	return len(a.units) - 1
}

// IsEmpty reports whether the army has no units left
func (a *Army) IsEmpty() bool {
	return len(a.units) == 0
}

// IsFull reports whether the army holds exactly domain.MaxArmySize units
func (a *Army) IsFull() bool {
	return len(a.units) == domain.MaxArmySize
}

// Push appends a unit behind the last one. It returns false and leaves
// the army untouched when the army is full.
func (a *Army) Push(unit domain.Unit) bool {
	if a.IsFull() {
		return false
	}
	a.units = append(a.units, unit)
	return true
}

// PopAt removes the unit at position and compacts the units behind it.
// It returns false when position is outside [0, Top()].
func (a *Army) PopAt(position int) bool {
	if !a.valid(position) {
		return false
	}
	copy(a.units[position:], a.units[position+1:])
	a.units[len(a.units)-1] = domain.Unit{}
	a.units = a.units[:len(a.units)-1]
	return true
}

// PeekAt copies the unit at position into out without modifying the
// army. It returns false when position is outside [0, Top()].
func (a *Army) PeekAt(position int, out *domain.Unit) bool {
	if !a.valid(position) || out == nil {
		return false
	}
	*out = a.units[position]
	return true
}

// ApplyDamage subtracts damage from the hit points of the unit at
// position. Units are not removed here; see combat.ResolveRound.
func (a *Army) ApplyDamage(position, damage int) bool {
	if !a.valid(position) {
		return false
	}
	a.units[position].HP -= damage
	return true
}

// Units returns a copy of the units in position order
func (a *Army) Units() []domain.Unit {
	out := make([]domain.Unit, len(a.units))
	copy(out, a.units)
	return out
}

// TotalHP sums the hit points of the units still standing
func (a *Army) TotalHP() int {
	total := 0
	for i := range a.units {
		if a.units[i].HP > 0 {
			total += a.units[i].HP
		}
	}
	return total
}

func (a *Army) valid(position int) bool {
	return position >= 0 && position < len(a.units)
}
