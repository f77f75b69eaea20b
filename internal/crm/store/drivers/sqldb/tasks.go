package sqldb

import (
	"context"
	"database/sql"
	"strings"

	"github.com/vos-crm/crm/internal/crm/domain"
	"github.com/vos-crm/crm/internal/crm/store"
)

type tasksRepo struct {
	q *Queries
}

const taskColumns = `id, title, notes, status, deadline, customer_id, assigned_to, created_by,
	created_at, updated_at, completed_at`

func scanTask(s scanner) (domain.Task, error) {
	var (
		t           domain.Task
		status      string
		deadline    sql.NullTime
		customerID  sql.NullString
		assignedTo  sql.NullString
		createdBy   sql.NullString
		completedAt sql.NullTime
	)
	err := s.Scan(&t.ID, &t.Title, &t.Notes, &status, &deadline, &customerID, &assignedTo, &createdBy,
		&t.CreatedAt, &t.UpdatedAt, &completedAt)
	if err != nil {
		return domain.Task{}, err
	}
	t.Status = domain.TaskStatus(status)
	t.Deadline = mapNullTimePtr(deadline)
	t.CustomerID = mapNullString(customerID)
	t.AssignedTo = mapNullString(assignedTo)
	t.CreatedBy = mapNullString(createdBy)
	t.CompletedAt = mapNullTimePtr(completedAt)
	t.CreatedAt = t.CreatedAt.UTC()
	t.UpdatedAt = t.UpdatedAt.UTC()
	return t, nil
}

func (r *tasksRepo) CreateTask(ctx context.Context, t domain.Task) error {
	_, err := r.q.exec(ctx,
		`INSERT INTO tasks (`+taskColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Title, t.Notes, string(t.Status), mapOptionalTime(t.Deadline),
		mapStringNull(t.CustomerID), mapStringNull(t.AssignedTo), mapStringNull(t.CreatedBy),
		t.CreatedAt.UTC(), t.UpdatedAt.UTC(), mapOptionalTime(t.CompletedAt),
	)
	return err
}

func (r *tasksRepo) GetTaskByID(ctx context.Context, id string) (domain.Task, error) {
	t, err := scanTask(r.q.queryRow(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id))
	if err != nil {
		return domain.Task{}, mapNotFound(err)
	}
	return t, nil
}

func (r *tasksRepo) UpdateTask(ctx context.Context, t domain.Task) error {
	return r.q.execOne(ctx,
		`UPDATE tasks SET title = ?, notes = ?, status = ?, deadline = ?, customer_id = ?,
			assigned_to = ?, updated_at = ?, completed_at = ?
		WHERE id = ?`,
		t.Title, t.Notes, string(t.Status), mapOptionalTime(t.Deadline), mapStringNull(t.CustomerID),
		mapStringNull(t.AssignedTo), t.UpdatedAt.UTC(), mapOptionalTime(t.CompletedAt), t.ID,
	)
}

func (r *tasksRepo) DeleteTask(ctx context.Context, id string) error {
	return r.q.execOne(ctx, `DELETE FROM tasks WHERE id = ?`, id)
}

func (r *tasksRepo) ListTasks(ctx context.Context, f store.TaskFilter) ([]domain.Task, error) {
	var (
		where []string
		args  []any
	)
	if f.CustomerID != "" {
		where = append(where, "customer_id = ?")
		args = append(args, f.CustomerID)
	}
	if f.AssignedTo != "" {
		where = append(where, "assigned_to = ?")
		args = append(args, f.AssignedTo)
	}
	if f.Status != "" {
		where = append(where, "status = ?")
		args = append(args, string(f.Status))
	}

	query := `SELECT ` + taskColumns + ` FROM tasks`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY CASE WHEN deadline IS NULL THEN 1 ELSE 0 END, deadline ASC, created_at DESC, id DESC`

	rows, err := r.q.query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
