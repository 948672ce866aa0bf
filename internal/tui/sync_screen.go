package tui

import "github.com/charmbracelet/bubbles/spinner"

func newSyncSpinner() spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return s
}
