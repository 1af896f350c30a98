package tui

import (
	"runtime"
	"strings"
)

// OSType represents the operating system type
type OSType int

const (
	OSMac OSType = iota
	OSLinux
	OSWindows
	OSUnknown
)

// GetOS returns the current operating system type
func GetOS() OSType {
	switch runtime.GOOS {
	case "darwin":
		return OSMac
	case "linux":
		return OSLinux
	case "windows":
		return OSWindows
	default:
		return OSUnknown
	}
}

// ShortcutKey is a keyboard shortcut with OS-specific variations
type ShortcutKey struct {
	Mac     string
	Linux   string
	Windows string
	Default string
	Help    string
}

// Get returns the shortcut for the current OS
func (s ShortcutKey) Get() string {
	switch GetOS() {
	case OSMac:
		if s.Mac != "" {
			return s.Mac
		}
	case OSLinux:
		if s.Linux != "" {
			return s.Linux
		}
	case OSWindows:
		if s.Windows != "" {
			return s.Windows
		}
	}
	return s.Default
}

// Matches reports whether key triggers the shortcut
func (s ShortcutKey) Matches(key string) bool {
	return key == s.Get()
}

// Shortcuts lists the browser key bindings
var Shortcuts = struct {
	Search        ShortcutKey
	SwitchPane    ShortcutKey
	CycleMode     ShortcutKey
	CycleType     ShortcutKey
	NextDatatype  ShortcutKey
	NextEntity    ShortcutKey
	Toggle        ShortcutKey
	ExpandAll     ShortcutKey
	Codelist      ShortcutKey
	Copy          ShortcutKey
	CopyLink      ShortcutKey
	Descriptions  ShortcutKey
	Detail        ShortcutKey
	ResetFilters  ShortcutKey
	Quit          ShortcutKey
	Cancel        ShortcutKey
	CodelistClear ShortcutKey
}{
	Search:        ShortcutKey{Default: "/", Help: "search"},
	SwitchPane:    ShortcutKey{Default: "tab", Help: "switch pane"},
	CycleMode:     ShortcutKey{Default: "m", Help: "mode"},
	CycleType:     ShortcutKey{Default: "t", Help: "type"},
	NextDatatype:  ShortcutKey{Default: "d", Help: "datatype"},
	NextEntity:    ShortcutKey{Default: "e", Help: "entity"},
	Toggle:        ShortcutKey{Default: "enter", Help: "expand"},
	ExpandAll:     ShortcutKey{Default: "x", Help: "expand all"},
	Codelist:      ShortcutKey{Default: "l", Help: "codelist"},
	Copy:          ShortcutKey{Default: "c", Help: "copy code"},
	CopyLink:      ShortcutKey{Default: "y", Help: "copy link"},
	Descriptions:  ShortcutKey{Default: "D", Help: "descriptions"},
	Detail:        ShortcutKey{Default: "p", Help: "detail"},
	ResetFilters:  ShortcutKey{Default: "r", Help: "reset filters"},
	Quit:          ShortcutKey{Default: "q", Help: "quit"},
	Cancel:        ShortcutKey{Default: "esc", Help: "clear"},
	CodelistClear: ShortcutKey{Default: "ctrl+u", Help: "clear filter"},
}

// helpLine renders "key action" pairs separated by bullets
func helpLine(keys ...ShortcutKey) string {
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k.Get()+" "+k.Help)
	}
	return strings.Join(parts, " • ")
}
