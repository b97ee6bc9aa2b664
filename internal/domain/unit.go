package domain

// Unit is a named combatant. Item1 and Item2 point into the catalog and
// may be nil.
type Unit struct {
	Name  string `json:"name"`
	Item1 *Item  `json:"item1,omitempty"`
	Item2 *Item  `json:"item2,omitempty"`
	HP    int    `json:"hp"`
}

// NewUnit returns a unit at full health
func NewUnit(name string, item1, item2 *Item) Unit {
	return Unit{Name: name, Item1: item1, Item2: item2, HP: StartingHP}
}

// Items returns the equipped items in slot order, skipping empty slots
func (u *Unit) Items() []*Item {
	items := make([]*Item, 0, MaxUnitItems)
	if u.Item1 != nil {
		items = append(items, u.Item1)
	}
	if u.Item2 != nil {
		items = append(items, u.Item2)
	}
	return items
}

// ItemAt returns the item in slot 1 or 2, nil when the slot is empty
func (u *Unit) ItemAt(slot int) *Item {
	switch slot {
	case ItemSlotFirst:
		return u.Item1
	case ItemSlotSecond:
		return u.Item2
	default:
		return nil
	}
}

// SlotsUsed is the combined slot cost of the equipped items
func (u *Unit) SlotsUsed() int {
	total := 0
	for _, item := range u.Items() {
		total += item.Slots
	}
	return total
}

// CheckSlots reports whether the equipped items fit in MaxSlots
func (u *Unit) CheckSlots() bool {
	return u.SlotsUsed() <= MaxSlots
}

// TotalDefense sums the defense of the equipped items (0 with none)
func (u *Unit) TotalDefense() int {
	total := 0
	for _, item := range u.Items() {
		total += item.Defense
	}
	return total
}

// IsAlive reports whether the unit still has hit points
func (u *Unit) IsAlive() bool {
	return u.HP > 0
}
