package store

import (
	"database/sql"
	"fmt"
	"time"
)

type HistoryItem struct {
	Name        string
	Frequency   int
	LastVisited time.Time
}

// RecordVisit bumps the visit count and last_visited timestamp for a
// workspace, inserting it on first visit.
func RecordVisit(db *sql.DB, name string) error {
	query := `
		INSERT INTO history (name, frequency, last_visited)
		VALUES (?, 1, CURRENT_TIMESTAMP)
		ON CONFLICT(name) DO UPDATE SET
			frequency = frequency + 1,
			last_visited = CURRENT_TIMESTAMP
	`
	_, err := db.Exec(query, name)
	if err != nil {
		return fmt.Errorf("failed to record visit: %w", err)
	}
	return nil
}

// GetHistory returns visit history keyed by workspace name, most recent first.
func GetHistory(db *sql.DB) ([]HistoryItem, error) {
	query := `SELECT name, frequency, last_visited FROM history ORDER BY last_visited DESC, name`
	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get history: %w", err)
	}
	defer rows.Close()

	var items []HistoryItem
	for rows.Next() {
		var item HistoryItem
		if err := rows.Scan(&item.Name, &item.Frequency, &item.LastVisited); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
