package ui

import (
	"context"
	"fmt"
	"log"

	"github.com/montrey/workspaces/config"
)

// Run acquires the terminal with the named backend, drives the session to
// completion and releases the terminal.
func Run(ctx context.Context, backend string, s *Session, r Renderer) (Result, error) {
	log.Printf("picker: %s backend, %d entries", backend, s.Len())

	var (
		res Result
		err error
	)
	switch backend {
	case config.BackendTcell:
		screen, serr := newScreen()
		if serr != nil {
			return Result{}, fmt.Errorf("failed to create screen: %w", serr)
		}
		res, err = RunScreen(ctx, screen, s, r)
	case config.BackendBubbletea, "":
		res, err = RunTea(ctx, s, r)
	default:
		return Result{}, fmt.Errorf("unknown picker backend %q", backend)
	}
	if err != nil {
		log.Printf("picker: %v", err)
		return Result{}, err
	}

	log.Printf("picker: %s query=%q", s.State(), s.Query().Text)
	return res, nil
}
