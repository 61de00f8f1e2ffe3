package ui

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/montrey/workspaces/search"
)

func TestLayoutShowsPromptAndEveryCandidate(t *testing.T) {
	r := NewRenderer("> ", "205")
	s := newTestSession(greek)
	s.Apply(append(Type("a"), KeyDown))

	f := r.Layout(s, 0)
	assert.Equal(t, "> a", f.Prompt)
	require.Len(t, f.Lines, 3)
	assert.Equal(t, "alpha", f.Lines[0].Text)
	assert.Equal(t, []int{0}, f.Lines[0].Matches)
	assert.False(t, f.Lines[0].Selected)
	assert.True(t, f.Lines[1].Selected)
	assert.False(t, f.Lines[2].Selected)
}

func TestLayoutScrollsToHighlight(t *testing.T) {
	var entries []search.Entry
	for i := 0; i < 10; i++ {
		entries = append(entries, search.Entry{Name: fmt.Sprintf("ws%02d", i), Path: "/"})
	}
	r := NewRenderer("> ", "205")
	s := newTestSession(entries)

	f := r.Layout(s, 4)
	require.Len(t, f.Lines, 3)
	assert.Equal(t, "ws00", f.Lines[0].Text)

	for i := 0; i < 5; i++ {
		s.Apply([]Key{KeyDown})
	}
	f = r.Layout(s, 4)
	require.Len(t, f.Lines, 3)
	assert.Equal(t, []string{"ws03", "ws04", "ws05"}, lineTexts(f))
	assert.True(t, f.Lines[2].Selected)
}

func TestLayoutOneRowShowsOnlyPrompt(t *testing.T) {
	r := NewRenderer("> ", "205")
	s := newTestSession(greek)
	s.Apply([]Key{KeyDown})

	f := r.Layout(s, 1)
	assert.Equal(t, "> ", f.Prompt)
	assert.Empty(t, f.Lines)

	f = r.Layout(s, 2)
	assert.Equal(t, []string{"beta"}, lineTexts(f))
	assert.True(t, f.Lines[0].Selected)
}

func TestLayoutShrinksWithList(t *testing.T) {
	r := NewRenderer("> ", "205")
	s := NewSession(greek, Options{MaxDistance: 1})
	s.Open()
	assert.Len(t, r.Layout(s, 10).Lines, 3)

	s.Apply(Type("gamx"))
	assert.Equal(t, []string{"gamma"}, lineTexts(r.Layout(s, 10)))

	s.Apply(Type("yz"))
	assert.Empty(t, r.Layout(s, 10).Lines)
}

func TestView(t *testing.T) {
	r := NewRenderer("> ", "205")
	s := newTestSession(greek)
	s.Apply(Type("ga"))

	lines := strings.Split(stripANSI(r.View(r.Layout(s, 0))), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "> ga", lines[0])
	assert.Equal(t, selectedMarker+"gamma", lines[1])
	assert.Equal(t, plainMarker+"alpha", lines[2])
	assert.Equal(t, plainMarker+"beta", lines[3])
}

func TestPaint(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(20, 5)

	r := NewRenderer("> ", "205")
	s := newTestSession(greek)
	s.Apply(Type("be"))
	r.Paint(screen, r.Layout(s, 5))

	assert.Equal(t, "> be", simRow(screen, 0))
	assert.Equal(t, selectedMarker+"beta", simRow(screen, 1))
	assert.Equal(t, plainMarker+"alpha", simRow(screen, 2))
	assert.Equal(t, plainMarker+"gamma", simRow(screen, 3))
	assert.Equal(t, "", simRow(screen, 4))

	assert.True(t, simBold(screen, 2, 1), "highlighted row is styled")
	assert.False(t, simBold(screen, 2, 2))

	// A shorter list must not leave stale rows behind.
	s2 := NewSession(greek, Options{MaxDistance: 1})
	s2.Open()
	s2.Apply(Type("bet"))
	r.Paint(screen, r.Layout(s2, 5))
	assert.Equal(t, selectedMarker+"beta", simRow(screen, 1))
	assert.Equal(t, "", simRow(screen, 2))
	assert.Equal(t, "", simRow(screen, 3))
}

func TestPaintClipsToWidth(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(6, 3)

	r := NewRenderer("> ", "205")
	s := newTestSession([]search.Entry{{Name: "averylongname", Path: "/"}})
	r.Paint(screen, r.Layout(s, 3))
	assert.Equal(t, selectedMarker+"aver", simRow(screen, 1))
}

func lineTexts(f Frame) []string {
	var out []string
	for _, l := range f.Lines {
		out = append(out, l.Text)
	}
	return out
}

func simRow(screen tcell.SimulationScreen, y int) string {
	cells, width, _ := screen.GetContents()
	var b strings.Builder
	for x := 0; x < width; x++ {
		c := cells[y*width+x]
		if len(c.Runes) == 0 {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(c.Runes[0])
	}
	return strings.TrimRight(b.String(), " ")
}

func simBold(screen tcell.SimulationScreen, x, y int) bool {
	cells, width, _ := screen.GetContents()
	_, _, attrs := cells[y*width+x].Style.Decompose()
	return attrs&tcell.AttrBold != 0
}

// stripANSI drops escape sequences so assertions don't depend on the
// color profile lipgloss detects.
func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEscape = true
		case inEscape:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
