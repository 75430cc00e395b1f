package state

// MoveCursorLeft moves the cursor one item back, wrapping to the end.
func (l *List) MoveCursorLeft() bool {
	n := len(l.Items)
	if n == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	if l.Cursor <= 0 {
		l.Cursor = n - 1
	} else {
		l.Cursor--
	}
	return old != l.Cursor
}

// MoveCursorRight moves the cursor one item forward, wrapping to the start.
func (l *List) MoveCursorRight() bool {
	n := len(l.Items)
	if n == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	if l.Cursor >= n-1 || l.Cursor < 0 {
		l.Cursor = 0
	} else {
		l.Cursor++
	}
	return old != l.Cursor
}

// MoveCursorUp moves the cursor one grid row up; columns is the current
// grid width in items. Movement clamps at the first row.
func (l *List) MoveCursorUp(columns int) bool {
	return l.moveCursorBy(-gridStep(columns))
}

// MoveCursorDown moves the cursor one grid row down.
func (l *List) MoveCursorDown(columns int) bool {
	return l.moveCursorBy(gridStep(columns))
}

// MoveCursorHome moves the cursor to the first item.
func (l *List) MoveCursorHome() bool {
	if len(l.Items) == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = 0
	return old != l.Cursor
}

// MoveCursorEnd moves the cursor to the last item.
func (l *List) MoveCursorEnd() bool {
	n := len(l.Items)
	if n == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = n - 1
	return old != l.Cursor
}

func gridStep(columns int) int {
	if columns < 1 {
		return 1
	}
	return columns
}

func (l *List) moveCursorBy(delta int) bool {
	if len(l.Items) == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	l.Cursor += delta
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= len(l.Items) {
		l.Cursor = len(l.Items) - 1
	}
	return l.Cursor != old
}

// EnsureCursorVisible adjusts the row-based viewport offset so the cursor's
// grid row stays inside the visible window.
func (l *List) EnsureCursorVisible(columns, visibleRows int) {
	if len(l.Items) == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= len(l.Items) {
		l.Cursor = len(l.Items) - 1
	}
	if columns < 1 {
		columns = 1
	}
	if visibleRows <= 0 {
		l.ViewportOffset = 0
		return
	}
	totalRows := (len(l.Items) + columns - 1) / columns
	maxOffset := totalRows - visibleRows
	if maxOffset < 0 {
		maxOffset = 0
	}
	if l.ViewportOffset > maxOffset {
		l.ViewportOffset = maxOffset
	}
	if l.ViewportOffset < 0 {
		l.ViewportOffset = 0
	}
	cursorRow := l.Cursor / columns
	if cursorRow < l.ViewportOffset {
		l.ViewportOffset = cursorRow
	}
	upper := l.ViewportOffset + visibleRows - 1
	if cursorRow > upper {
		l.ViewportOffset = cursorRow - visibleRows + 1
		if l.ViewportOffset < 0 {
			l.ViewportOffset = 0
		}
		if l.ViewportOffset > maxOffset {
			l.ViewportOffset = maxOffset
		}
	}
}
