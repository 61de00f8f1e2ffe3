package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/montrey/workspaces/search"
)

const (
	selectedMarker = "▸ "
	plainMarker    = "  "
)

// Frame is one screen's worth of picker: the prompt line and the visible
// slice of the ranked list.
type Frame struct {
	Prompt string
	Lines  []Line
}

// Line is one candidate row.
type Line struct {
	Text     string
	Matches  []int // byte offsets into Text to emphasise
	Selected bool
}

// Renderer lays out and draws a Session. The same Frame can be turned into
// a bubbletea view string or painted onto a tcell screen.
type Renderer struct {
	Prompt string

	promptStyle        lipgloss.Style
	selectedStyle      lipgloss.Style
	selectedMatchStyle lipgloss.Style
	plainStyle         lipgloss.Style
	matchStyle         lipgloss.Style

	promptCell        tcell.Style
	selectedCell      tcell.Style
	selectedMatchCell tcell.Style
	plainCell         tcell.Style
	matchCell         tcell.Style
}

// NewRenderer builds a renderer drawing prompt before the query and the
// highlighted row in color (an ANSI 256 index such as "205" or a hex value).
func NewRenderer(prompt, color string) Renderer {
	accent := lipgloss.Color(color)
	cellAccent := tcellColor(color)

	return Renderer{
		Prompt: prompt,

		promptStyle:        lipgloss.NewStyle().Foreground(accent).Bold(true),
		selectedStyle:      lipgloss.NewStyle().Foreground(accent).Bold(true),
		selectedMatchStyle: lipgloss.NewStyle().Foreground(accent).Bold(true).Underline(true),
		plainStyle:         lipgloss.NewStyle(),
		matchStyle:         lipgloss.NewStyle().Underline(true),

		promptCell:        tcell.StyleDefault.Foreground(cellAccent).Bold(true),
		selectedCell:      tcell.StyleDefault.Foreground(cellAccent).Bold(true),
		selectedMatchCell: tcell.StyleDefault.Foreground(cellAccent).Bold(true).Underline(true),
		plainCell:         tcell.StyleDefault,
		matchCell:         tcell.StyleDefault.Underline(true),
	}
}

func tcellColor(s string) tcell.Color {
	if n, err := strconv.Atoi(s); err == nil {
		return tcell.PaletteColor(n)
	}
	return tcell.GetColor(s)
}

// Layout computes the frame for a screen height rows tall, prompt included.
// A height of zero or less shows every candidate, a height of one only the
// prompt. Otherwise the list window scrolls just enough to keep the
// highlighted row on screen.
func (r Renderer) Layout(s *Session, height int) Frame {
	query := s.Query().Text
	sel := s.Selection()

	start, end := 0, len(sel.Ranked)
	if rows := height - 1; height > 0 && end > rows {
		if sel.Highlight >= rows {
			start = sel.Highlight - rows + 1
		}
		end = start + rows
		if rows == 0 {
			start, end = 0, 0
		}
	}

	f := Frame{Prompt: r.Prompt + query}
	for i := start; i < end; i++ {
		name := sel.Ranked[i]
		f.Lines = append(f.Lines, Line{
			Text:     name,
			Matches:  search.MatchedIndexes(query, name),
			Selected: i == sel.Highlight,
		})
	}
	return f
}

// View draws the frame as a string for bubbletea, which repaints the whole
// region each time.
func (r Renderer) View(f Frame) string {
	var b strings.Builder
	b.WriteString(r.promptStyle.Render(r.Prompt))
	b.WriteString(strings.TrimPrefix(f.Prompt, r.Prompt))
	for _, line := range f.Lines {
		b.WriteByte('\n')
		if line.Selected {
			b.WriteString(r.selectedStyle.Render(selectedMarker))
			writeSegments(&b, line, r.selectedStyle, r.selectedMatchStyle)
			continue
		}
		b.WriteString(plainMarker)
		writeSegments(&b, line, r.plainStyle, r.matchStyle)
	}
	return b.String()
}

// writeSegments renders runs of matched and unmatched characters.
func writeSegments(b *strings.Builder, line Line, base, match lipgloss.Style) {
	matched := matchSet(line.Matches)
	var run strings.Builder
	runMatched := false
	flush := func() {
		if run.Len() == 0 {
			return
		}
		style := base
		if runMatched {
			style = match
		}
		b.WriteString(style.Render(run.String()))
		run.Reset()
	}
	for i, ch := range line.Text {
		if matched[i] != runMatched {
			flush()
			runMatched = matched[i]
		}
		run.WriteRune(ch)
	}
	flush()
}

func matchSet(matches []int) map[int]bool {
	set := make(map[int]bool, len(matches))
	for _, m := range matches {
		set[m] = true
	}
	return set
}

// Paint clears the screen and draws the frame on it.
func (r Renderer) Paint(screen tcell.Screen, f Frame) {
	screen.Clear()
	width, _ := screen.Size()

	x := drawText(screen, 0, 0, width, r.Prompt, nil, r.promptCell, r.promptCell)
	x = drawText(screen, x, 0, width, strings.TrimPrefix(f.Prompt, r.Prompt), nil, r.plainCell, r.plainCell)
	screen.ShowCursor(x, 0)

	for i, line := range f.Lines {
		y := i + 1
		if line.Selected {
			x := drawText(screen, 0, y, width, selectedMarker, nil, r.selectedCell, r.selectedCell)
			drawText(screen, x, y, width, line.Text, line.Matches, r.selectedCell, r.selectedMatchCell)
			continue
		}
		x := drawText(screen, 0, y, width, plainMarker, nil, r.plainCell, r.plainCell)
		drawText(screen, x, y, width, line.Text, line.Matches, r.plainCell, r.matchCell)
	}
	screen.Show()
}

// drawText writes text from column x, clipped at width, and returns the
// column after the last cell written.
func drawText(screen tcell.Screen, x, y, width int, text string, matches []int, base, match tcell.Style) int {
	matched := matchSet(matches)
	for i, ch := range text {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			w = 1
		}
		if x+w > width {
			break
		}
		style := base
		if matched[i] {
			style = match
		}
		screen.SetContent(x, y, ch, nil, style)
		x += w
	}
	return x
}
