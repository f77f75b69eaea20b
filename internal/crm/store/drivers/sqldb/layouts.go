package sqldb

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/vos-crm/crm/internal/crm/domain"
)

type layoutsRepo struct {
	q *Queries
}

func (r *layoutsRepo) GetLayout(ctx context.Context, userID string) (domain.DashboardLayout, error) {
	var (
		l             domain.DashboardLayout
		kpis, widgets string
	)
	err := r.q.queryRow(ctx,
		`SELECT user_id, kpis, widgets, updated_at FROM dashboard_layouts WHERE user_id = ?`, userID,
	).Scan(&l.UserID, &kpis, &widgets, &l.UpdatedAt)
	if err != nil {
		return domain.DashboardLayout{}, mapNotFound(err)
	}
	if err := json.Unmarshal([]byte(kpis), &l.KPIs); err != nil {
		return domain.DashboardLayout{}, fmt.Errorf("decode kpis: %w", err)
	}
	if err := json.Unmarshal([]byte(widgets), &l.Widgets); err != nil {
		return domain.DashboardLayout{}, fmt.Errorf("decode widgets: %w", err)
	}
	l.UpdatedAt = l.UpdatedAt.UTC()
	return l, nil
}

func (r *layoutsRepo) SaveLayout(ctx context.Context, l domain.DashboardLayout) error {
	kpis, err := json.Marshal(nonNil(l.KPIs))
	if err != nil {
		return err
	}
	widgets, err := json.Marshal(nonNil(l.Widgets))
	if err != nil {
		return err
	}
	_, err = r.q.exec(ctx,
		`INSERT INTO dashboard_layouts (user_id, kpis, widgets, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET kpis = excluded.kpis, widgets = excluded.widgets, updated_at = excluded.updated_at`,
		l.UserID, string(kpis), string(widgets), l.UpdatedAt.UTC(),
	)
	return err
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
