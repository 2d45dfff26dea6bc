package board

import (
	"slices"

	"github.com/idilsaglam/dailytodo/internal/model"
)

// List is the ordered set of cards plus the creation form visibility flag.
type List struct {
	items       []model.Item
	formVisible bool
}

// NewList copies items into a new List.
func NewList(items []model.Item) *List {
	return &List{items: slices.Clone(items)}
}

// Append adds it at the end. Nothing is validated; partial cards are fine.
func (l *List) Append(it model.Item) {
	l.items = append(l.items, it)
}

// RemoveByID removes the first card with id. An unknown id is a no-op.
func (l *List) RemoveByID(id int64) (model.Item, bool) {
	i := l.Index(id)
	if i < 0 {
		return model.Item{}, false
	}
	removed := l.items[i]
	l.items = slices.Delete(l.items, i, i+1)
	return removed, true
}

// Index returns the position of the first card with id, or -1.
func (l *List) Index(id int64) int {
	return slices.IndexFunc(l.items, func(it model.Item) bool { return it.ID == id })
}

// Has reports whether a card with id is listed.
func (l *List) Has(id int64) bool { return l.Index(id) >= 0 }

// At returns the card at position i.
func (l *List) At(i int) (model.Item, bool) {
	if i < 0 || i >= len(l.items) {
		return model.Item{}, false
	}
	return l.items[i], true
}

// Items returns a copy of the cards in insertion order.
func (l *List) Items() []model.Item { return slices.Clone(l.items) }

func (l *List) Len() int { return len(l.items) }

func (l *List) FormVisible() bool { return l.formVisible }
func (l *List) ShowForm()         { l.formVisible = true }
func (l *List) HideForm()         { l.formVisible = false }
