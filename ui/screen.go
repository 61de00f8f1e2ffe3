package ui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
)

var newScreen = tcell.NewScreen

// ErrScreenClosed is returned when the screen stops delivering events
// before the session finished.
var ErrScreenClosed = errors.New("screen closed")

// shutdownEvent wakes PollEvent when the context is cancelled.
type shutdownEvent struct {
	when time.Time
}

func (e *shutdownEvent) When() time.Time { return e.when }

// RunScreen runs the session on a tcell screen: poll a batch of events,
// apply it, repaint, until the session is confirmed or cancelled. The screen
// is initialised here and finalised on every return, panics included.
func RunScreen(ctx context.Context, screen tcell.Screen, s *Session, r Renderer) (Result, error) {
	if err := screen.Init(); err != nil {
		return Result{}, fmt.Errorf("failed to acquire terminal: %w", err)
	}
	defer screen.Fini()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			screen.PostEvent(&shutdownEvent{when: time.Now()})
		case <-done:
		}
	}()

	s.Open()
	paint := func() {
		_, height := screen.Size()
		r.Paint(screen, r.Layout(s, height))
	}
	paint()

	for !s.Done() {
		ev := screen.PollEvent()
		if ev == nil {
			return Result{}, ErrScreenClosed
		}

		var batch []Key
		for {
			switch ev := ev.(type) {
			case *tcell.EventKey:
				batch = append(batch, KeyFromTcell(ev))
			case *tcell.EventResize:
				screen.Sync()
			case *shutdownEvent:
				return Result{}, ctx.Err()
			}
			if !screen.HasPendingEvent() {
				break
			}
			if ev = screen.PollEvent(); ev == nil {
				return Result{}, ErrScreenClosed
			}
		}

		s.Apply(batch)
		paint()
	}
	return s.Result(), nil
}
