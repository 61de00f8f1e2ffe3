package store

import (
	"bufio"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ImportResult counts what ImportLegacy did.
type ImportResult struct {
	Added   int
	Skipped []string // names already present
}

// ParseLegacy reads the plain-text workspace list: one "name,path" per line,
// blank lines ignored. The path is everything after the first comma.
func ParseLegacy(r io.Reader) ([]Workspace, error) {
	var workspaces []Workspace
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		name, path, ok := strings.Cut(line, ",")
		if !ok {
			return nil, fmt.Errorf("line %d: expected name,path", lineNo)
		}
		if name == "" {
			return nil, fmt.Errorf("line %d: %w", lineNo, ErrEmptyName)
		}
		workspaces = append(workspaces, Workspace{Name: name, Path: path})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read workspace list: %w", err)
	}
	return workspaces, nil
}

// ImportLegacy adds every workspace from a plain-text list, skipping names
// that already exist.
func ImportLegacy(db *sql.DB, r io.Reader) (ImportResult, error) {
	var result ImportResult
	workspaces, err := ParseLegacy(r)
	if err != nil {
		return result, err
	}
	for _, ws := range workspaces {
		err := AddWorkspace(db, ws.Name, ws.Path)
		switch {
		case err == nil:
			result.Added++
		case errors.Is(err, ErrWorkspaceExists):
			result.Skipped = append(result.Skipped, ws.Name)
		default:
			return result, err
		}
	}
	return result, nil
}
