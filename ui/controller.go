package ui

// State is the Input Controller's state tag.
type State int

const (
	Editing State = iota
	Confirmed
	Cancelled
)

func (s State) String() string {
	switch s {
	case Confirmed:
		return "confirmed"
	case Cancelled:
		return "cancelled"
	default:
		return "editing"
	}
}

// Handle applies a single key to the session and reports whether the query
// text changed. Once the session has left Editing every key is ignored.
// Handle never re-ranks; Apply does that once per batch.
func (s *Session) Handle(k Key) bool {
	if s.state != Editing {
		return false
	}

	switch k.Action {
	case ActionInsert:
		s.query.Text += string(k.Rune)
		s.selection.Highlight = 0
		return true

	case ActionDelete:
		s.selection.Highlight = 0
		if s.query.Text == "" {
			return false
		}
		runes := []rune(s.query.Text)
		s.query.Text = string(runes[:len(runes)-1])
		return true

	case ActionUp:
		if s.selection.Highlight > 0 {
			s.selection.Highlight--
		}

	case ActionDown:
		if s.selection.Highlight < len(s.selection.Ranked)-1 {
			s.selection.Highlight++
		}

	case ActionConfirm:
		if s.guarded() || len(s.selection.Ranked) == 0 {
			return false
		}
		s.chosen = s.selection.order[s.selection.Highlight]
		s.state = Confirmed

	case ActionCancel:
		s.state = Cancelled
	}
	return false
}

// guarded reports whether a confirm now falls inside the startup window.
// Some terminals replay the Enter that launched the program once raw mode
// is entered.
func (s *Session) guarded() bool {
	if s.guard <= 0 || s.opened.IsZero() {
		return false
	}
	return s.now().Sub(s.opened) < s.guard
}
