package sqldb

import (
	"context"
	"database/sql"

	"github.com/vos-crm/crm/internal/crm/domain"
)

type documentsRepo struct {
	q *Queries
}

const documentColumns = `id, customer_id, original_name, file_name, mime_type, size, path, uploaded_by, created_at`

func scanDocument(s scanner) (domain.Document, error) {
	var (
		d          domain.Document
		uploadedBy sql.NullString
	)
	if err := s.Scan(&d.ID, &d.CustomerID, &d.OriginalName, &d.FileName, &d.MimeType, &d.Size, &d.Path, &uploadedBy, &d.CreatedAt); err != nil {
		return domain.Document{}, err
	}
	d.UploadedBy = mapNullString(uploadedBy)
	d.CreatedAt = d.CreatedAt.UTC()
	return d, nil
}

func (r *documentsRepo) CreateDocument(ctx context.Context, d domain.Document) error {
	_, err := r.q.exec(ctx,
		`INSERT INTO documents (`+documentColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		d.ID, d.CustomerID, d.OriginalName, d.FileName, d.MimeType, d.Size, d.Path,
		mapStringNull(d.UploadedBy), d.CreatedAt.UTC(),
	)
	return err
}

func (r *documentsRepo) GetDocumentByID(ctx context.Context, id string) (domain.Document, error) {
	d, err := scanDocument(r.q.queryRow(ctx, `SELECT `+documentColumns+` FROM documents WHERE id = ?`, id))
	if err != nil {
		return domain.Document{}, mapNotFound(err)
	}
	return d, nil
}

func (r *documentsRepo) ListDocuments(ctx context.Context, customerID string) ([]domain.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents`
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

	var out []domain.Document
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *documentsRepo) DeleteDocument(ctx context.Context, id string) error {
	return r.q.execOne(ctx, `DELETE FROM documents WHERE id = ?`, id)
}
