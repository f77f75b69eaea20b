package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vos-crm/crm/internal/crm/domain"
)

func TestParseKPITypes(t *testing.T) {
	t.Parallel()

	all, err := ParseKPITypes("")
	require.NoError(t, err)
	require.Len(t, all, len(domain.KPICatalog))

	some, err := ParseKPITypes("open_tasks, total_customers,,open_tasks")
	require.NoError(t, err)
	require.Equal(t, []domain.KPIType{domain.KPIOpenTasks, domain.KPITotalCustomers}, some)

	_, err = ParseKPITypes("total_customers,revenue")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func kpiByType(rs []KPIResult) map[domain.KPIType]KPIResult {
	m := make(map[domain.KPIType]KPIResult, len(rs))
	for _, r := range rs {
		m[r.Type] = r
	}
	return m
}

func TestComputeKPIs(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	day := 24 * time.Hour
	past := now.Add(-day)
	future := now.Add(day)
	doneAt := now.Add(-2 * day)

	snap := Snapshot{
		Stages: domain.DefaultStages(),
		Users: []domain.User{
			{ID: "u1", Name: "Anne de Vries", Role: domain.RoleEmployee},
			{ID: "u2", Name: "Bob", Role: domain.RoleAdmin},
			{ID: "u3", Name: "Klant", Role: domain.RoleCustomer},
		},
		Customers: []domain.Customer{
			{Type: domain.CustomerPerson, Status: "NIEUW", CreatedAt: now.Add(-2 * day), LastActivity: now},
			{Type: domain.CustomerPerson, Status: "AFGEROND", CreatedAt: time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC), LastActivity: time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)},
			{Type: domain.CustomerOrganization, Status: "AFGEROND", CreatedAt: time.Date(2026, 2, 20, 12, 0, 0, 0, time.UTC), LastActivity: time.Date(2026, 2, 24, 12, 0, 0, 0, time.UTC)},
			{Type: domain.CustomerOrganization, Status: "ONDERHANDELING", CreatedAt: time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), LastActivity: past},
		},
		Tasks: []domain.Task{
			{Status: domain.TaskOpen, AssignedTo: "u1", Deadline: &past, CreatedAt: now.Add(-5 * day)},
			{Status: domain.TaskInProgress, AssignedTo: "u1", Deadline: &future, CreatedAt: now.Add(-5 * day)},
			{Status: domain.TaskDone, AssignedTo: "u1", Deadline: &past, CreatedAt: now.Add(-6 * day), CompletedAt: &doneAt},
			{Status: domain.TaskCanceled, AssignedTo: "u2", CreatedAt: now.Add(-day)},
		},
		Notes: []domain.Note{
			{CreatedAt: now.Add(-time.Hour)},
			{CreatedAt: now.Add(-8 * day)},
		},
		Documents: []domain.Document{
			{CreatedAt: now.Add(-6 * day)},
		},
	}

	all, err := ParseKPITypes("")
	require.NoError(t, err)
	got := kpiByType(ComputeKPIs(snap, all, "u1", now))
	require.Len(t, got, len(domain.KPICatalog))

	total := got[domain.KPITotalCustomers]
	require.Equal(t, 4.0, total.Value)
	require.Equal(t, "Totaal klanten", total.Label)
	require.Equal(t, "2 personen · 2 organisaties", total.SubValue)

	require.Equal(t, 2.0, got[domain.KPIPersonCustomers].Value)
	require.Equal(t, 2.0, got[domain.KPIOrganizationCustomers].Value)

	// One this month against two in February.
	newMonth := got[domain.KPINewCustomersMonth]
	require.Equal(t, 1.0, newMonth.Value)
	require.Equal(t, "-50.0% vs vorige maand", newMonth.SubValue)

	conv := got[domain.KPIConversionRate]
	require.Equal(t, 50.0, conv.Value)
	require.Equal(t, "50.0%", conv.Display)
	require.Equal(t, "2 van 4 leads omgezet", conv.SubValue)

	// Lead times of 20 and 4 days.
	require.Equal(t, 12.0, got[domain.KPIAvgLeadTime].Value)
	require.Equal(t, "50/50", got[domain.KPICustomerTypeDistribution].Display)
	require.Equal(t, 2.0, got[domain.KPILeadsPipeline].Value)
	require.Equal(t, 1.0, got[domain.KPICompletedDealsMonth].Value)

	require.Equal(t, 2.0, got[domain.KPIMyTasks].Value)
	require.Equal(t, "3 totaal toegewezen", got[domain.KPIMyTasks].SubValue)
	require.Equal(t, 2.0, got[domain.KPIOpenTasks].Value)
	require.Equal(t, 1.0, got[domain.KPIOverdueTasks].Value, "done tasks are never overdue")
	require.Equal(t, 1, got[domain.KPITasksByStatus].Breakdown["CANCELED"])
	require.Equal(t, "1 open · 1 bezig · 1 klaar", got[domain.KPITasksByStatus].SubValue)
	require.Equal(t, 4.0, got[domain.KPIAvgTaskDuration].Value)

	perEmployee := got[domain.KPITasksPerEmployee]
	require.Equal(t, []SeriesPoint{{Label: "Anne", Value: 3}, {Label: "Bob", Value: 1}}, perEmployee.Series)
	require.Equal(t, "hoogste: Anne", perEmployee.SubValue)

	require.Equal(t, 1.0, got[domain.KPINewNotesWeek].Value)
	require.Equal(t, 2.0, got[domain.KPITotalNotes].Value)
	require.Equal(t, 1.0, got[domain.KPINewDocumentsWeek].Value)
	require.Equal(t, 3.0, got[domain.KPIRecentActivity].Value)
}

func TestComputeKPIsEmpty(t *testing.T) {
	t.Parallel()

	types := []domain.KPIType{domain.KPIConversionRate, domain.KPINewCustomersMonth, domain.KPITasksPerEmployee}
	got := ComputeKPIs(Snapshot{}, types, "", time.Now())
	require.Len(t, got, 3)
	require.Equal(t, "0.0%", got[0].Display)
	require.Equal(t, "+0.0% vs vorige maand", got[1].SubValue)
	require.Equal(t, "geen taken", got[2].SubValue)
}

func TestDashboardLayout(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &DashboardService{Store: st}
	u := seedUser(t, st, "anne@vos.nl", domain.RoleEmployee, "password1")

	l, err := svc.Layout(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, domain.DefaultDashboardLayout(u.ID), l)

	custom := domain.DashboardLayout{
		UserID: u.ID,
		KPIs:   []domain.KPIConfig{{ID: "1", Type: domain.KPIOverdueTasks, Label: "Te laat", Order: 0}},
		Widgets: []domain.WidgetConfig{
			{ID: "1", Type: "kpi", Subtype: "overdue_tasks", Label: "Te laat", Visible: true, Size: "small"},
			{ID: "2", Type: "table", Subtype: "recent_customers", Label: "Nieuw", Order: 1},
		},
	}
	_, err = svc.SaveLayout(ctx, custom)
	require.NoError(t, err)

	l, err = svc.Layout(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, custom.KPIs, l.KPIs)
	require.Equal(t, custom.Widgets, l.Widgets)

	bad := custom
	bad.KPIs = []domain.KPIConfig{{ID: "1", Type: "revenue"}}
	_, err = svc.SaveLayout(ctx, bad)
	require.ErrorIs(t, err, ErrInvalidInput)

	bad = custom
	bad.Widgets = []domain.WidgetConfig{{ID: "1", Type: "iframe"}}
	_, err = svc.SaveLayout(ctx, bad)
	require.ErrorIs(t, err, ErrInvalidInput)

	bad = custom
	bad.Widgets = []domain.WidgetConfig{{ID: "1", Type: "chart", Size: "huge"}}
	_, err = svc.SaveLayout(ctx, bad)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestDashboardKPIsFromStore(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &DashboardService{Store: st}
	u := seedUser(t, st, "anne@vos.nl", domain.RoleEmployee, "password1")
	seedCustomer(t, st, "Eva", "Smit", "eva@example.com")

	got, err := svc.KPIs(ctx, u.ID, []domain.KPIType{domain.KPITotalCustomers, domain.KPILeadsPipeline})
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, 1.0, got[0].Value)
	require.Equal(t, 1.0, got[1].Value)
}
