// Package catalog holds the fixed set of items units can equip. A
// Catalog is built once, from a JSON file or a store, and is read-only
// afterwards, so it is safe to share between goroutines.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/cases"

	"github.com/osse101/BattleArena_Go/internal/domain"
	"github.com/osse101/BattleArena_Go/internal/repository"
)

// Sentinel errors for catalog construction
var (
	ErrDuplicateItem = errors.New("duplicate item name")
	ErrInvalidItem   = errors.New("invalid item")
)

// Catalog is an immutable, ordered set of items with case-insensitive lookup
type Catalog struct {
	items  []*domain.Item
	byName map[string]*domain.Item
}

// New copies items into a catalog. Names must be unique ignoring case.
func New(items []domain.Item) (*Catalog, error) {
	c := &Catalog{
		items:  make([]*domain.Item, 0, len(items)),
		byName: make(map[string]*domain.Item, len(items)),
	}

	for i := range items {
		if err := checkItem(i, &items[i]); err != nil {
			return nil, err
		}

		key := foldName(items[i].Name)
		if _, exists := c.byName[key]; exists {
			return nil, fmt.Errorf(ErrFmtDuplicateItem, ErrDuplicateItem, items[i].Name)
		}

		item := items[i]
		c.items = append(c.items, &item)
		c.byName[key] = &item
	}

	return c, nil
}

// FromRepository builds a catalog from every item persisted in repo
func FromRepository(ctx context.Context, repo repository.Catalog) (*Catalog, error) {
	items, err := repo.GetAllItems(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadStoredItemsFailed, err)
	}
	return New(items)
}

// Lookup finds an item by name, ignoring case
func (c *Catalog) Lookup(name string) (*domain.Item, bool) {
	item, ok := c.byName[foldName(name)]
	return item, ok
}

// Items returns the items in load order
func (c *Catalog) Items() []*domain.Item {
	out := make([]*domain.Item, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of items
func (c *Catalog) Len() int {
	return len(c.items)
}

// foldName builds a fresh Caser per call; a Caser keeps state and is not
// safe for concurrent use.
func foldName(name string) string {
	return cases.Fold().String(name)
}

func checkItem(index int, item *domain.Item) error {
	if item.Name == "" {
		return fmt.Errorf(ErrFmtItemAtIndexEmpty, ErrInvalidItem, index)
	}
	if utf8.RuneCountInString(item.Name) > domain.MaxNameLength {
		return fmt.Errorf(ErrFmtItemNameTooLong, ErrInvalidItem, item.Name, domain.MaxNameLength)
	}

	fields := []struct {
		name  string
		value int
	}{
		{"att", item.Attack},
		{"def", item.Defense},
		{"slots", item.Slots},
		{"range", item.Range},
		{"radius", item.Radius},
	}
	for _, f := range fields {
		if f.value < 0 {
			return fmt.Errorf(ErrFmtItemNegativeField, ErrInvalidItem, item.Name, f.name)
		}
	}

	return nil
}
