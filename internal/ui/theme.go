// Package ui provides the FurniLayout application UI components.
//
// This file defines a custom compact Fyne theme for a dense editor layout.

package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Theme modes stored in the app config.
const (
	ThemeSystem = "system"
	ThemeLight  = "light"
	ThemeDark   = "dark"
)

// FurniLayoutTheme wraps the default Fyne theme with compact sizing overrides.
// A light or dark mode pins the variant; system follows the OS.
type FurniLayoutTheme struct {
	base    fyne.Theme
	variant fyne.ThemeVariant
	fixed   bool
}

// NewFurniLayoutTheme creates a theme for the given mode.
func NewFurniLayoutTheme(mode string) *FurniLayoutTheme {
	t := &FurniLayoutTheme{base: theme.DefaultTheme()}
	t.SetMode(mode)
	return t
}

// SetMode updates the theme variant (light/dark/system).
func (t *FurniLayoutTheme) SetMode(mode string) {
	switch mode {
	case ThemeLight:
		t.variant, t.fixed = theme.VariantLight, true
	case ThemeDark:
		t.variant, t.fixed = theme.VariantDark, true
	default:
		t.fixed = false
	}
}

// Color delegates to the base theme, with the pinned variant if there is one.
func (t *FurniLayoutTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if t.fixed {
		variant = t.variant
	}
	return t.base.Color(name, variant)
}

// Font delegates to the base theme.
func (t *FurniLayoutTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

// Icon delegates to the base theme.
func (t *FurniLayoutTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

// Size returns compact sizing overrides.
func (t *FurniLayoutTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 12
	case theme.SizeNameCaptionText:
		return 9
	case theme.SizeNameHeadingText:
		return 20
	case theme.SizeNameSubHeadingText:
		return 15
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameInlineIcon:
		return 16
	default:
		return t.base.Size(name)
	}
}
