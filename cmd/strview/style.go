package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/strview/codec"
)

var replacementStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#FF6B6B"))

// highlight marks replacement characters when writing to a terminal.
func (a *app) highlight(s string) string {
	if !a.styled {
		return s
	}
	r := string(codec.Replacement)
	return strings.ReplaceAll(s, r, replacementStyle.Render(r))
}
