package ui

import (
	"time"

	"github.com/montrey/workspaces/search"
)

// Options configures a Session.
type Options struct {
	// ConfirmGuard drops confirm keys arriving this soon after Open.
	ConfirmGuard time.Duration
	// MaxDistance drops candidates farther than this from the query.
	// Zero keeps every candidate.
	MaxDistance int
	// Now replaces time.Now, for tests.
	Now func() time.Time
}

// Query is the text typed so far. Edits only ever happen at the end.
type Query struct {
	Text string
}

// Selection is the ranked candidate list and the highlighted row.
type Selection struct {
	Ranked    []string
	Highlight int

	order []int // entry ordinals behind Ranked
}

// Result is the outcome of a session. Selected is false when the user
// cancelled.
type Result struct {
	Name     string
	Path     string
	Selected bool
}

// Session is the state of one picker run: an immutable snapshot of entries
// with its index, the query, the selection and the controller state.
type Session struct {
	index     *search.Index
	query     Query
	selection Selection
	state     State
	chosen    int
	dirty     bool

	guard  time.Duration
	opened time.Time
	now    func() time.Time
}

// NewSession snapshots entries and ranks them for the empty query.
func NewSession(entries []search.Entry, opts Options) *Session {
	snapshot := append([]search.Entry(nil), entries...)
	s := &Session{
		index: search.NewIndex(snapshot, opts.MaxDistance),
		guard: opts.ConfirmGuard,
		now:   opts.Now,
	}
	if s.now == nil {
		s.now = time.Now
	}
	s.rerank()
	return s
}

// Open marks the moment the terminal was acquired; the confirm guard runs
// from here.
func (s *Session) Open() {
	s.opened = s.now()
}

// Apply feeds a batch of keys in order and re-ranks once if the query
// changed. The exception is a navigation or confirm key following an edit in
// the same batch: the list is re-ranked before it so the key acts on the
// edited query, and such a batch may rank more than once.
func (s *Session) Apply(batch []Key) {
	for _, k := range batch {
		if s.dirty && navigates(k) {
			s.rerank()
		}
		if s.Handle(k) {
			s.dirty = true
		}
	}
	if s.dirty {
		s.rerank()
	}
}

func navigates(k Key) bool {
	switch k.Action {
	case ActionUp, ActionDown, ActionConfirm:
		return true
	}
	return false
}

func (s *Session) rerank() {
	order := s.index.Order(s.query.Text)
	ranked := make([]string, len(order))
	for i, ordinal := range order {
		ranked[i] = s.index.Entry(ordinal).Name
	}

	highlight := s.selection.Highlight
	if highlight >= len(ranked) {
		highlight = len(ranked) - 1
	}
	if highlight < 0 {
		highlight = 0
	}
	s.selection = Selection{Ranked: ranked, Highlight: highlight, order: order}
	s.dirty = false
}

// Query returns the current query.
func (s *Session) Query() Query { return s.query }

// Selection returns the current ranked list and highlight.
func (s *Session) Selection() Selection { return s.selection }

// State returns the controller state.
func (s *Session) State() State { return s.state }

// Done reports whether the session reached a terminal state.
func (s *Session) Done() bool { return s.state != Editing }

// Len is the number of entries in the snapshot.
func (s *Session) Len() int { return s.index.Len() }

// Result returns the confirmed entry, or the zero Result.
func (s *Session) Result() Result {
	if s.state != Confirmed {
		return Result{}
	}
	e := s.index.Entry(s.chosen)
	return Result{Name: e.Name, Path: e.Path, Selected: true}
}
