package ui

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// Model drives a Session from bubbletea. Each key message is one batch.
type Model struct {
	session  *Session
	renderer Renderer
	height   int
}

func NewModel(s *Session, r Renderer) Model {
	return Model{session: s, renderer: r}
}

func (m Model) Init() tea.Cmd {
	m.session.Open()
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height

	case tea.KeyMsg:
		m.session.Apply(KeysFromTea(msg))
		if m.session.Done() {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.session.Done() {
		return ""
	}
	return m.renderer.View(m.renderer.Layout(m.session, m.height))
}

// RunTea runs the session as a bubbletea program on the alternate screen.
// The picker draws on stderr so stdout stays free for the chosen path.
// Terminal setup and restore belong to bubbletea; either failing is
// returned.
func RunTea(ctx context.Context, s *Session, r Renderer, opts ...tea.ProgramOption) (Result, error) {
	opts = append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithOutput(os.Stderr),
	}, opts...)

	p := tea.NewProgram(NewModel(s, r), opts...)
	if _, err := p.Run(); err != nil {
		return Result{}, fmt.Errorf("picker failed: %w", err)
	}
	return s.Result(), nil
}
