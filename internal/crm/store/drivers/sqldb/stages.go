package sqldb

import (
	"context"

	"github.com/vos-crm/crm/internal/crm/domain"
)

type stagesRepo struct {
	q *Queries
}

func (r *stagesRepo) ListStages(ctx context.Context) ([]domain.Stage, error) {
	rows, err := r.q.query(ctx, `SELECT id, name, label, color, position FROM pipeline_stages ORDER BY position, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Stage
	for rows.Next() {
		var s domain.Stage
		if err := rows.Scan(&s.ID, &s.Name, &s.Label, &s.Color, &s.Order); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *stagesRepo) ReplaceStages(ctx context.Context, stages []domain.Stage) error {
	if _, err := r.q.exec(ctx, `DELETE FROM pipeline_stages`); err != nil {
		return err
	}
	for _, s := range stages {
		if _, err := r.q.exec(ctx,
			`INSERT INTO pipeline_stages (id, name, label, color, position) VALUES (?, ?, ?, ?, ?)`,
			s.ID, s.Name, s.Label, s.Color, s.Order,
		); err != nil {
			return err
		}
	}
	return nil
}
