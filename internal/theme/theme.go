// Package theme resolves the dark/light display preference.
package theme

import "strings"

// Mode is a colour scheme.
type Mode string

const (
	Dark  Mode = "dark"
	Light Mode = "light"
)

// StorageKey names the persisted preference (cookie and browser storage).
const StorageKey = "theme"

// PreferenceHeader carries the platform colour scheme hint.
const PreferenceHeader = "Sec-CH-Prefers-Color-Scheme"

// Parse returns the mode for a stored value. Anything other than "dark"
// or "light" is treated as absent.
func Parse(saved string) (Mode, bool) {
	switch Mode(saved) {
	case Dark, Light:
		return Mode(saved), true
	}
	return "", false
}

// Resolve picks the saved mode, falling back to the platform preference.
func Resolve(saved string, prefersDark bool) Mode {
	if m, ok := Parse(saved); ok {
		return m
	}
	if prefersDark {
		return Dark
	}
	return Light
}

// PrefersDark interprets the preference header value.
func PrefersDark(header string) bool {
	return strings.EqualFold(strings.Trim(strings.TrimSpace(header), `"`), "dark")
}

// Toggle flips the mode.
func Toggle(m Mode) Mode {
	if m == Dark {
		return Light
	}
	return Dark
}

// Class is the style class applied to the document root.
func Class(m Mode) string {
	if m == Dark {
		return "dark"
	}
	return ""
}
