package domain

// Item is an equippable catalog entry. Items are created once when the
// catalog is loaded and are shared by pointer; they are never mutated.
type Item struct {
	Name    string `json:"name" db:"name"`
	Attack  int    `json:"att" db:"attack"`
	Defense int    `json:"def" db:"defense"`
	Slots   int    `json:"slots" db:"slots"`
	Range   int    `json:"range" db:"range"`   // highest attacker position the item fires from
	Radius  int    `json:"radius" db:"radius"` // defending positions struck beyond the front one
}

// Reaches reports whether the item fires from the given attacker position
func (i *Item) Reaches(position int) bool {
	return position >= 0 && position <= i.Range
}

// Equal compares every attribute, names included
func (i *Item) Equal(other *Item) bool {
	if i == nil || other == nil {
		return i == other
	}
	return *i == *other
}
