package state

// EnsureVisible adjusts the viewport offset so the selection stays visible
// within maxVisible rows.
func (l *List[T]) EnsureVisible(maxVisible int) {
	if len(l.items) == 0 || maxVisible <= 0 {
		l.ViewportOffset = 0
		return
	}
	maxOffset := len(l.items) - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if l.ViewportOffset > maxOffset {
		l.ViewportOffset = maxOffset
	}
	if l.ViewportOffset < 0 {
		l.ViewportOffset = 0
	}
	idx, ok := l.Selected()
	if !ok {
		return
	}
	if idx < l.ViewportOffset {
		l.ViewportOffset = idx
	}
	upper := l.ViewportOffset + maxVisible - 1
	if idx > upper {
		l.ViewportOffset = idx - maxVisible + 1
		if l.ViewportOffset > maxOffset {
			l.ViewportOffset = maxOffset
		}
	}
}

// Window returns the slice of entries visible at the current offset along
// with the index of the first one.
func (l *List[T]) Window(maxVisible int) ([]T, int) {
	if maxVisible <= 0 || len(l.items) <= maxVisible {
		return l.items, 0
	}
	start := l.ViewportOffset
	if start < 0 {
		start = 0
	}
	if start+maxVisible > len(l.items) {
		start = len(l.items) - maxVisible
	}
	return l.items[start : start+maxVisible], start
}
