package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrWorkspaceExists   = errors.New("workspace already exists")
	ErrWorkspaceNotFound = errors.New("workspace not found")
	ErrEmptyName         = errors.New("workspace name must not be empty")
	ErrInvalidName       = errors.New("workspace name must not contain commas or line breaks")
)

// Workspace is a saved name bound to a directory.
type Workspace struct {
	Name string
	Path string
}

// ValidateName checks a name can be stored and round-trip through the
// line-oriented legacy format.
func ValidateName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if strings.ContainsAny(name, ",\r\n") {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

// AddWorkspace saves a new workspace. It fails with ErrWorkspaceExists if the
// name is taken.
func AddWorkspace(db *sql.DB, name, path string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	query := `INSERT INTO workspaces (name, path) VALUES (?, ?) ON CONFLICT(name) DO NOTHING`
	res, err := db.Exec(query, name, path)
	if err != nil {
		return fmt.Errorf("failed to add workspace %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to add workspace %q: %w", name, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrWorkspaceExists, name)
	}
	return nil
}

// RemoveWorkspace deletes a workspace and its visit history. It fails with
// ErrWorkspaceNotFound if the name is absent.
func RemoveWorkspace(db *sql.DB, name string) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to remove workspace %q: %w", name, err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`DELETE FROM workspaces WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("failed to remove workspace %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to remove workspace %q: %w", name, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrWorkspaceNotFound, name)
	}
	if _, err := tx.Exec(`DELETE FROM history WHERE name = ?`, name); err != nil {
		return fmt.Errorf("failed to clear history for %q: %w", name, err)
	}
	return tx.Commit()
}

// GetWorkspace looks up a single workspace by name.
func GetWorkspace(db *sql.DB, name string) (Workspace, error) {
	var ws Workspace
	err := db.QueryRow(`SELECT name, path FROM workspaces WHERE name = ?`, name).Scan(&ws.Name, &ws.Path)
	if err == sql.ErrNoRows {
		return Workspace{}, fmt.Errorf("%w: %s", ErrWorkspaceNotFound, name)
	}
	if err != nil {
		return Workspace{}, fmt.Errorf("failed to get workspace %q: %w", name, err)
	}
	return ws, nil
}

// ListWorkspaces returns every workspace in alphabetical order of name.
func ListWorkspaces(db *sql.DB) ([]Workspace, error) {
	rows, err := db.Query(`SELECT name, path FROM workspaces ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list workspaces: %w", err)
	}
	defer rows.Close()

	var workspaces []Workspace
	for rows.Next() {
		var ws Workspace
		if err := rows.Scan(&ws.Name, &ws.Path); err != nil {
			return nil, err
		}
		workspaces = append(workspaces, ws)
	}
	return workspaces, rows.Err()
}
