package config

import (
	"fmt"
	"strings"

	"golang.org/x/term"
)

// ColorMode controls the reverse-video highlight of today.
type ColorMode string

const (
	ColorAlways ColorMode = "always"
	ColorAuto   ColorMode = "auto"
	ColorNever  ColorMode = "never"
)

// ParseColor accepts always, auto or never.
func ParseColor(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(s)); m {
	case ColorAlways, ColorAuto, ColorNever:
		return m, nil
	}
	return ColorAlways, fmt.Errorf("unknown color mode %q (want always, auto or never)", s)
}

// Enabled reports whether output written to fd should carry escapes.
func (m ColorMode) Enabled(fd int) bool {
	switch m {
	case ColorNever:
		return false
	case ColorAuto:
		return term.IsTerminal(fd)
	}
	return true
}
