package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// StatusType represents the type of status message
type StatusType int

const (
	StatusTypeSuccess StatusType = iota
	StatusTypeWarning
	StatusTypeError
	StatusTypeInfo
)

// StatusFeedback is a temporary status message
type StatusFeedback struct {
	Message   string
	Icon      string
	ShowUntil time.Time
	Type      StatusType
}

// ClearStatusMsg clears the current status feedback
type ClearStatusMsg struct{}

// StatusManager manages temporary status messages
type StatusManager struct {
	CurrentStatus   *StatusFeedback
	DefaultDuration time.Duration
}

// NewStatusManager creates a new status manager
func NewStatusManager() *StatusManager {
	return &StatusManager{
		DefaultDuration: 2 * time.Second,
	}
}

// ShowFeedback displays a message and returns a command that clears it
func (sm *StatusManager) ShowFeedback(icon, message string, statusType StatusType) tea.Cmd {
	sm.CurrentStatus = &StatusFeedback{
		Message:   message,
		Icon:      icon,
		ShowUntil: time.Now().Add(sm.DefaultDuration),
		Type:      statusType,
	}

	return tea.Tick(sm.DefaultDuration, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}

// ShowSuccess shows a success message
func (sm *StatusManager) ShowSuccess(message string) tea.Cmd {
	return sm.ShowFeedback("✓", message, StatusTypeSuccess)
}

// ShowWarning shows a warning message
func (sm *StatusManager) ShowWarning(message string) tea.Cmd {
	return sm.ShowFeedback("⚠", message, StatusTypeWarning)
}

// ShowError shows an error message
func (sm *StatusManager) ShowError(message string) tea.Cmd {
	return sm.ShowFeedback("×", message, StatusTypeError)
}

// ShowInfo shows an informational message
func (sm *StatusManager) ShowInfo(message string) tea.Cmd {
	return sm.ShowFeedback("ℹ", message, StatusTypeInfo)
}

// Clear drops the current message once it has expired
func (sm *StatusManager) Clear() {
	if sm.CurrentStatus != nil && time.Now().After(sm.CurrentStatus.ShowUntil.Add(-10*time.Millisecond)) {
		sm.CurrentStatus = nil
	}
}

// View renders the current message, or "" when there is none
func (sm *StatusManager) View() string {
	if sm.CurrentStatus == nil {
		return ""
	}
	text := sm.CurrentStatus.Icon + " " + sm.CurrentStatus.Message
	switch sm.CurrentStatus.Type {
	case StatusTypeSuccess:
		return SuccessStyle.Render(text)
	case StatusTypeWarning:
		return WarningStyle.Render(text)
	case StatusTypeError:
		return ErrorStyle.Render(text)
	default:
		return DescriptionStyle.Render(text)
	}
}
