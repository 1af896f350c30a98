package tui

type pane int

const (
	nonePane pane = iota
	searchPane
	resultsPane
	detailPane
)

// StateManager tracks the cursor, the focused pane and which entities are
// expanded in the result list
type StateManager struct {
	Cursor int
	// Offset is the first visible line of the result list
	Offset int

	ActivePane pane
	ShowDetail bool

	// ExpandAll expands every entity except the ones in collapsed
	ExpandAll bool
	expanded  map[string]bool
	collapsed map[string]bool

	count int
}

// NewStateManager creates a new state manager instance
func NewStateManager() *StateManager {
	return &StateManager{
		ActivePane: resultsPane,
		ShowDetail: true,
		expanded:   make(map[string]bool),
		collapsed:  make(map[string]bool),
	}
}

// UpdateCount sets the number of visible lines and clamps the cursor
func (sm *StateManager) UpdateCount(count int) {
	sm.count = count
	if count == 0 {
		sm.Cursor = 0
		sm.Offset = 0
		return
	}
	if sm.Cursor >= count {
		sm.Cursor = count - 1
	}
	if sm.Offset > sm.Cursor {
		sm.Offset = sm.Cursor
	}
}

// Count returns the number of lines the cursor moves over
func (sm *StateManager) Count() int {
	return sm.count
}

// MoveCursorUp moves the cursor one line up
func (sm *StateManager) MoveCursorUp() bool {
	if sm.Cursor > 0 {
		sm.Cursor--
		return true
	}
	return false
}

// MoveCursorDown moves the cursor one line down
func (sm *StateManager) MoveCursorDown() bool {
	if sm.Cursor < sm.count-1 {
		sm.Cursor++
		return true
	}
	return false
}

// MoveCursor moves the cursor by delta lines, stopping at the ends
func (sm *StateManager) MoveCursor(delta int) {
	sm.Cursor += delta
	if sm.Cursor >= sm.count {
		sm.Cursor = sm.count - 1
	}
	if sm.Cursor < 0 {
		sm.Cursor = 0
	}
}

// EnsureVisible scrolls so the cursor is inside a window of height lines
func (sm *StateManager) EnsureVisible(height int) {
	if height <= 0 {
		return
	}
	if sm.Cursor < sm.Offset {
		sm.Offset = sm.Cursor
	}
	if sm.Cursor >= sm.Offset+height {
		sm.Offset = sm.Cursor - height + 1
	}
	if maxOffset := sm.count - height; sm.Offset > maxOffset {
		sm.Offset = maxOffset
	}
	if sm.Offset < 0 {
		sm.Offset = 0
	}
}

// HandleTabNavigation cycles between the result list and the detail pane.
// From the search bar it always moves to the result list.
func (sm *StateManager) HandleTabNavigation() {
	switch sm.ActivePane {
	case searchPane:
		sm.ActivePane = resultsPane
	case resultsPane:
		if sm.ShowDetail {
			sm.ActivePane = detailPane
		}
	case detailPane:
		sm.ActivePane = resultsPane
	}
}

// SwitchToSearch focuses the search bar
func (sm *StateManager) SwitchToSearch() {
	sm.ActivePane = searchPane
}

// ExitSearch returns focus to the result list
func (sm *StateManager) ExitSearch() {
	sm.ActivePane = resultsPane
}

// ToggleDetail shows or hides the detail pane
func (sm *StateManager) ToggleDetail() {
	sm.ShowDetail = !sm.ShowDetail
	if !sm.ShowDetail && sm.ActivePane == detailPane {
		sm.ActivePane = resultsPane
	}
}

// IsExpanded reports whether the entity with code is expanded
func (sm *StateManager) IsExpanded(code string) bool {
	if sm.ExpandAll {
		return !sm.collapsed[code]
	}
	return sm.expanded[code]
}

// ToggleExpanded flips the expansion of one entity
func (sm *StateManager) ToggleExpanded(code string) {
	if sm.ExpandAll {
		sm.collapsed[code] = !sm.collapsed[code]
		return
	}
	sm.expanded[code] = !sm.expanded[code]
}

// SetExpandAll expands or collapses every entity, dropping per-entity state
func (sm *StateManager) SetExpandAll(expand bool) {
	sm.ExpandAll = expand
	sm.expanded = make(map[string]bool)
	sm.collapsed = make(map[string]bool)
}

// ResetCursor moves the cursor back to the first line
func (sm *StateManager) ResetCursor() {
	sm.Cursor = 0
	sm.Offset = 0
}
