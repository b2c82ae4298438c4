package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SelectionRepo handles the selection history.
type SelectionRepo struct {
	db *sql.DB
}

func NewSelectionRepo(db *sql.DB) *SelectionRepo { return &SelectionRepo{db: db} }

// Record stores s. Missing ID and SelectedAt are filled in.
func (r *SelectionRepo) Record(ctx context.Context, s Selection) (Selection, error) {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.SelectedAt.IsZero() {
		s.SelectedAt = time.Now().UTC().Truncate(time.Second)
	}
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO selections(id, code, name, prefix, selected_at) VALUES (?, ?, ?, ?, ?);
	`, s.ID, s.Code, s.Name, s.Prefix, s.SelectedAt)
	if err != nil {
		return Selection{}, fmt.Errorf("insert selection: %w", err)
	}
	return s, nil
}

// Recent returns up to limit selections, newest first.
func (r *SelectionRepo) Recent(ctx context.Context, limit int) ([]Selection, error) {
	if limit <= 0 {
		return nil, nil
	}
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, code, name, prefix, selected_at
	FROM selections
	ORDER BY selected_at DESC, rowid DESC
	LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Selection
	for rows.Next() {
		var s Selection
		if err := rows.Scan(&s.ID, &s.Code, &s.Name, &s.Prefix, &s.SelectedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
