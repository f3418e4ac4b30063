// Package items holds the ordered, read-only collection of entries a list
// box session browses.
package items

import (
	"errors"
	"fmt"
	"iter"
)

// ErrIndexOutOfRange is returned when an index outside 0..Len()-1 is requested.
var ErrIndexOutOfRange = errors.New("index out of range")

// Item is a single selectable entry. Index is its position in the store.
type Item struct {
	Index int
	Text  string
}

// Store is an ordered collection of items. Insertion order is display order
// and indices are always exactly 0..Len()-1.
type Store struct {
	items []Item
}

// New builds a store from texts, assigning indices in order.
func New(texts ...string) *Store {
	s := &Store{items: make([]Item, 0, len(texts))}
	for _, text := range texts {
		s.items = append(s.items, Item{Index: len(s.items), Text: text})
	}
	return s
}

// Len returns the number of items.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Get returns the item at index.
func (s *Store) Get(index int) (Item, error) {
	if index < 0 || index >= s.Len() {
		return Item{}, fmt.Errorf("get item %d of %d: %w", index, s.Len(), ErrIndexOutOfRange)
	}
	return s.items[index], nil
}

// All iterates the items in index order.
func (s *Store) All() iter.Seq[Item] {
	return func(yield func(Item) bool) {
		for i := 0; i < s.Len(); i++ {
			if !yield(s.items[i]) {
				return
			}
		}
	}
}

// Texts returns a copy of the item texts in order.
func (s *Store) Texts() []string {
	out := make([]string, 0, s.Len())
	for item := range s.All() {
		out = append(out, item.Text)
	}
	return out
}
