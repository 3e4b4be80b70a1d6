package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"jsonlens/internal/tree"
)

// Run starts the interactive tree view over a projected document tree.
// source is the display name of the input (file name or "stdin").
func Run(root *tree.Node, source string) error {
	applyColorProfilePreference()
	applyGlyphPreference()
	m := newAppModel(root, source)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
