package sqldb

import (
	"context"
	"database/sql"

	"github.com/vos-crm/crm/internal/crm/domain"
)

type notesRepo struct {
	q *Queries
}

const noteColumns = `id, customer_id, author_id, author_name, content, created_at`

func scanNote(s scanner) (domain.Note, error) {
	var (
		n        domain.Note
		authorID sql.NullString
	)
	if err := s.Scan(&n.ID, &n.CustomerID, &authorID, &n.AuthorName, &n.Content, &n.CreatedAt); err != nil {
		return domain.Note{}, err
	}
	n.AuthorID = mapNullString(authorID)
	n.CreatedAt = n.CreatedAt.UTC()
	return n, nil
}

func (r *notesRepo) CreateNote(ctx context.Context, n domain.Note) error {
	_, err := r.q.exec(ctx,
		`INSERT INTO notes (`+noteColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		n.ID, n.CustomerID, mapStringNull(n.AuthorID), n.AuthorName, n.Content, n.CreatedAt.UTC(),
	)
	return err
}

func (r *notesRepo) GetNoteByID(ctx context.Context, id string) (domain.Note, error) {
	n, err := scanNote(r.q.queryRow(ctx, `SELECT `+noteColumns+` FROM notes WHERE id = ?`, id))
	if err != nil {
		return domain.Note{}, mapNotFound(err)
	}
	return n, nil
}

func (r *notesRepo) DeleteNote(ctx context.Context, id string) error {
	return r.q.execOne(ctx, `DELETE FROM notes WHERE id = ?`, id)
}

func (r *notesRepo) ListNotes(ctx context.Context, customerID string) ([]domain.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes`
	var args []any
	if customerID != "" {
		query += ` WHERE customer_id = ?`
		args = append(args, customerID)
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.q.query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Note
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}
