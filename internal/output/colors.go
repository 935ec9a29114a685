package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// colorsEnabled reports whether the terminal supports colored output.
func colorsEnabled() bool {
	return termenv.EnvColorProfile() != termenv.Ascii
}

// Heading styles a section heading
func Heading(text string) string {
	if !colorsEnabled() {
		return text
	}
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("6")).
		Render(text)
}

// Value styles a computed result value
func Value(text string) string {
	if !colorsEnabled() {
		return text
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("12")).
		Render(text)
}

// Good styles a passing verdict
func Good(text string) string {
	if !colorsEnabled() {
		return text
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("2")).
		Render(text)
}

// Caution styles a warning verdict
func Caution(text string) string {
	if !colorsEnabled() {
		return text
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("3")).
		Render(text)
}

// Dim makes text dim/gray
func Dim(text string) string {
	if !colorsEnabled() {
		return text
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Render(text)
}
