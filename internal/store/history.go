package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/footprint-tools/cmdspec/internal/domain"
)

// NewSessionID returns an identifier for one shell session.
func NewSessionID() string {
	return uuid.NewString()
}

// Append records one shell line.
func (s *Store) Append(sessionID, line string, at time.Time) error {
	_, err := s.db.Exec(
		`INSERT INTO shell_history (session_id, line, entered_at) VALUES (?, ?, ?)`,
		sessionID,
		line,
		at.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("append history: %w", err)
	}
	return nil
}

// Recent returns up to limit of the newest entries, oldest first.
// A limit of zero or less returns every entry.
func (s *Store) Recent(limit int) ([]domain.HistoryEntry, error) {
	query := `
		SELECT id, session_id, line, entered_at
		FROM (
			SELECT id, session_id, line, entered_at
			FROM shell_history
			ORDER BY id DESC
			LIMIT ?
		)
		ORDER BY id ASC
	`
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []domain.HistoryEntry
	for rows.Next() {
		var (
			e  domain.HistoryEntry
			ts string
		)
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Line, &ts); err != nil {
			return nil, err
		}
		e.EnteredAt, err = time.Parse(time.RFC3339Nano, ts)
		if err != nil {
			return nil, fmt.Errorf("history entry %d: %w", e.ID, err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Trim deletes all but the newest keep entries and reports how many
// rows were removed.
func (s *Store) Trim(keep int) (int64, error) {
	if keep < 0 {
		keep = 0
	}
	result, err := s.db.Exec(
		`DELETE FROM shell_history
		 WHERE id NOT IN (SELECT id FROM shell_history ORDER BY id DESC LIMIT ?)`,
		keep,
	)
	if err != nil {
		return 0, fmt.Errorf("trim history: %w", err)
	}
	return result.RowsAffected()
}

var _ domain.HistoryStore = (*Store)(nil)
