package ui

import (
	"context"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelUpdate(t *testing.T) {
	s := NewSession(greek, Options{})
	var m tea.Model = NewModel(s, NewRenderer("> ", "205"))
	assert.Nil(t, m.Init())

	m, cmd := m.Update(tea.WindowSizeMsg{Width: 40, Height: 3})
	assert.Nil(t, cmd)

	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ga")})
	assert.Nil(t, cmd)
	view := stripANSI(m.View())
	assert.Equal(t, "> ga\n"+selectedMarker+"gamma\n"+plainMarker+"alpha", view, "height 3 leaves room for two rows")

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, "/g", s.Result().Path)
}

func TestModelCancel(t *testing.T) {
	s := NewSession(greek, Options{})
	var m tea.Model = NewModel(s, NewRenderer("> ", "205"))
	m.Init()

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, "", m.View())
	assert.Equal(t, Result{}, s.Result())
}

func TestRunTea(t *testing.T) {
	s := NewSession(greek, Options{})
	res, err := RunTea(context.Background(), s, NewRenderer("> ", "205"),
		tea.WithInput(strings.NewReader("ga\r")),
		tea.WithOutput(io.Discard),
		tea.WithoutSignalHandler(),
	)
	require.NoError(t, err)
	assert.Equal(t, Result{Name: "gamma", Path: "/g", Selected: true}, res)
}
