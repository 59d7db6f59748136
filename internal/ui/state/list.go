package state

// Item is an entry of a selectable list. Key identifies the entry for the
// provider; Label is what the user sees.
type Item interface {
	Key() string
	Label() string
}

// Commit is emitted when a list selection is finalised.
type Commit struct {
	Key   string
	Label string
}

// List tracks an optional selection over an ordered collection. Selected is
// -1 when nothing is selected and otherwise always indexes Items.
type List[T Item] struct {
	ID             string
	items          []T
	selected       int
	ViewportOffset int
}

// NewList constructs a list with no selection.
func NewList[T Item](id string, items []T) *List[T] {
	l := &List[T]{ID: id, selected: -1}
	l.SetItems(items)
	return l
}

// Items returns a copy of the current entries.
func (l *List[T]) Items() []T {
	return cloneItems(l.items)
}

// Len reports the number of entries.
func (l *List[T]) Len() int {
	return len(l.items)
}

// Selected returns the selected index, if any.
func (l *List[T]) Selected() (int, bool) {
	if l.selected < 0 || l.selected >= len(l.items) {
		return -1, false
	}
	return l.selected, true
}

// Current returns the selected entry, if any.
func (l *List[T]) Current() (T, bool) {
	idx, ok := l.Selected()
	if !ok {
		var zero T
		return zero, false
	}
	return l.items[idx], true
}

// IndexOf returns the index for a given key, or -1.
func (l *List[T]) IndexOf(key string) int {
	if key == "" {
		return -1
	}
	for i, item := range l.items {
		if item.Key() == key {
			return i
		}
	}
	return -1
}

// SetItems replaces the entries wholesale. A selection that still exists is
// kept on the same key; otherwise it is clamped to the new bounds, and an
// empty list always clears it.
func (l *List[T]) SetItems(items []T) {
	var prevKey string
	if current, ok := l.Current(); ok {
		prevKey = current.Key()
	}
	l.items = cloneItems(items)
	if len(l.items) == 0 {
		l.selected = -1
		l.ViewportOffset = 0
		return
	}
	if l.selected < 0 {
		return
	}
	if idx := l.IndexOf(prevKey); idx >= 0 {
		l.selected = idx
		return
	}
	if l.selected >= len(l.items) {
		l.selected = len(l.items) - 1
	}
}

// MoveUp selects the previous entry, or the first entry when nothing is
// selected. It never wraps.
func (l *List[T]) MoveUp() bool {
	n := len(l.items)
	if n == 0 {
		l.selected = -1
		return false
	}
	idx, ok := l.Selected()
	if !ok {
		l.selected = 0
		return true
	}
	if idx == 0 {
		return false
	}
	l.selected = idx - 1
	return true
}

// MoveDown selects the next entry, or the first entry when nothing is
// selected. It never moves past the last entry.
func (l *List[T]) MoveDown() bool {
	n := len(l.items)
	if n == 0 {
		l.selected = -1
		return false
	}
	idx, ok := l.Selected()
	if !ok {
		l.selected = 0
		return true
	}
	if idx >= n-1 {
		return false
	}
	l.selected = idx + 1
	return true
}

// Clear drops the selection.
func (l *List[T]) Clear() bool {
	if l.selected < 0 {
		return false
	}
	l.selected = -1
	return true
}

// Commit returns the selected entry's key and label. The index is checked
// against the current entries since they may have been replaced after the
// selection was made.
func (l *List[T]) Commit() (Commit, bool) {
	item, ok := l.Current()
	if !ok {
		return Commit{}, false
	}
	return Commit{Key: item.Key(), Label: item.Label()}, true
}

// Labels returns the display labels in order.
func (l *List[T]) Labels() []string {
	labels := make([]string, len(l.items))
	for i, item := range l.items {
		labels[i] = item.Label()
	}
	return labels
}

func cloneItems[T any](items []T) []T {
	if len(items) == 0 {
		return nil
	}
	dup := make([]T, len(items))
	copy(dup, items)
	return dup
}
