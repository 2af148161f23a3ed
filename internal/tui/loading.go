package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// LoadingState drives the spinner shown while data is in flight.
type LoadingState struct {
	spinner spinner.Model
	message string
}

// NewLoadingState returns a spinner labelled with message.
func NewLoadingState(message string) *LoadingState {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(ColorAccent)
	return &LoadingState{spinner: s, message: message}
}

// Init starts the spinner.
func (l *LoadingState) Init() tea.Cmd {
	return l.spinner.Tick
}

// Update advances the spinner on its tick messages.
func (l *LoadingState) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	l.spinner, cmd = l.spinner.Update(msg)
	return cmd
}

// Frame returns the current spinner frame.
func (l *LoadingState) Frame() string {
	return l.spinner.View()
}

// RenderLoading renders the full-screen loading view.
func RenderLoading(l *LoadingState) string {
	return "\n  " + l.Frame() + " " + l.message + "\n"
}
