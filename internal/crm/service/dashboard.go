package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/vos-crm/crm/internal/crm/domain"
	"github.com/vos-crm/crm/internal/crm/store"
)

// maxLayoutEntries bounds a saved layout.
const maxLayoutEntries = 50

// SeriesPoint is one bar of a small chart.
type SeriesPoint struct {
	Label string
	Value int
}

// KPIResult is one computed indicator. Display is the formatted value the
// tile shows; SubValue is the caption underneath.
type KPIResult struct {
	Type      domain.KPIType
	Label     string
	Value     float64
	Display   string
	SubValue  string
	Breakdown map[string]int
	Series    []SeriesPoint
}

// Snapshot is the data the KPIs are reduced from.
type Snapshot struct {
	Customers []domain.Customer
	Tasks     []domain.Task
	Notes     []domain.Note
	Documents []domain.Document
	Users     []domain.User
	Stages    []domain.Stage
}

type DashboardService struct {
	Store store.Store
}

// ParseKPITypes turns a comma separated list into catalog types. Empty input
// selects the whole catalog.
func ParseKPITypes(raw string) ([]domain.KPIType, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		out := make([]domain.KPIType, len(domain.KPICatalog))
		for i, d := range domain.KPICatalog {
			out[i] = d.Type
		}
		return out, nil
	}
	var out []domain.KPIType
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		t, ok := domain.ParseKPIType(part)
		if !ok {
			return nil, invalid("unknown KPI type %q", part)
		}
		if !slices.Contains(out, t) {
			out = append(out, t)
		}
	}
	return out, nil
}

// KPIs loads a snapshot and computes the requested indicators for userID.
func (s *DashboardService) KPIs(ctx context.Context, userID string, types []domain.KPIType) ([]KPIResult, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return ComputeKPIs(snap, types, userID, time.Now().UTC()), nil
}

func (s *DashboardService) snapshot(ctx context.Context) (Snapshot, error) {
	var (
		snap Snapshot
		err  error
	)
	err = eachCustomerPage(ctx, s.Store, boardPageSize, func(page []domain.Customer) error {
		snap.Customers = append(snap.Customers, page...)
		return nil
	})
	if err != nil {
		return Snapshot{}, fmt.Errorf("load customers: %w", err)
	}
	if snap.Tasks, err = s.Store.Tasks().ListTasks(ctx, store.TaskFilter{}); err != nil {
		return Snapshot{}, fmt.Errorf("load tasks: %w", err)
	}
	if snap.Notes, err = s.Store.Notes().ListNotes(ctx, ""); err != nil {
		return Snapshot{}, fmt.Errorf("load notes: %w", err)
	}
	if snap.Documents, err = s.Store.Documents().ListDocuments(ctx, ""); err != nil {
		return Snapshot{}, fmt.Errorf("load documents: %w", err)
	}
	if snap.Users, err = s.Store.Users().ListUsers(ctx); err != nil {
		return Snapshot{}, fmt.Errorf("load users: %w", err)
	}
	if snap.Stages, err = s.Store.Stages().ListStages(ctx); err != nil {
		return Snapshot{}, fmt.Errorf("load stages: %w", err)
	}
	return snap, nil
}

// wonStage is the last pipeline stage; reaching it closes the deal.
func wonStage(stages []domain.Stage) string {
	best := ""
	order := math.MinInt
	for _, st := range stages {
		if st.Order > order {
			best, order = st.Name, st.Order
		}
	}
	return best
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }

func wholeDays(d time.Duration) int { return int(math.Floor(d.Hours() / 24)) }

func meanDays(days []int) int {
	if len(days) == 0 {
		return 0
	}
	sum := 0
	for _, d := range days {
		sum += d
	}
	return int(math.Round(float64(sum) / float64(len(days))))
}

func countResult(v int) KPIResult {
	return KPIResult{Value: float64(v), Display: fmt.Sprint(v)}
}

// ComputeKPIs reduces a snapshot to the requested indicators. It is a pure
// function of its arguments.
func ComputeKPIs(snap Snapshot, types []domain.KPIType, userID string, now time.Time) []KPIResult {
	now = now.UTC()
	weekAgo := now.Add(-7 * 24 * time.Hour)
	lastMonth := time.Date(now.Year(), now.Month()-1, 1, 0, 0, 0, 0, time.UTC)
	won := wonStage(snap.Stages)

	var persons, orgs, thisMonth, prevMonth, converted, dealsMonth int
	var leadDays []int
	for _, c := range snap.Customers {
		switch c.Type {
		case domain.CustomerPerson:
			persons++
		case domain.CustomerOrganization:
			orgs++
		}
		if sameMonth(c.CreatedAt, now) {
			thisMonth++
		}
		if sameMonth(c.CreatedAt, lastMonth) {
			prevMonth++
		}
		if won != "" && c.Status == won {
			converted++
			leadDays = append(leadDays, wholeDays(c.LastActivity.Sub(c.CreatedAt)))
			if sameMonth(c.LastActivity, now) {
				dealsMonth++
			}
		}
	}
	total := len(snap.Customers)

	byStatus := map[string]int{}
	for _, st := range domain.TaskStatuses {
		byStatus[string(st)] = 0
	}
	var open, overdue, mine, mineTotal int
	var taskDays []int
	for _, t := range snap.Tasks {
		byStatus[string(t.Status)]++
		if t.IsOpen() {
			open++
		}
		if t.IsOverdue(now) {
			overdue++
		}
		if userID != "" && t.AssignedTo == userID {
			mineTotal++
			if t.IsOpen() {
				mine++
			}
		}
		if t.Status == domain.TaskDone {
			end := now
			if t.CompletedAt != nil {
				end = *t.CompletedAt
			}
			taskDays = append(taskDays, wholeDays(end.Sub(t.CreatedAt)))
		}
	}

	notesWeek := 0
	for _, n := range snap.Notes {
		if n.CreatedAt.After(weekAgo) {
			notesWeek++
		}
	}
	docsWeek := 0
	for _, d := range snap.Documents {
		if d.CreatedAt.After(weekAgo) {
			docsWeek++
		}
	}

	out := make([]KPIResult, 0, len(types))
	for _, typ := range types {
		var r KPIResult
		switch typ {
		case domain.KPITotalCustomers:
			r = countResult(total)
			r.SubValue = fmt.Sprintf("%d personen · %d organisaties", persons, orgs)
			r.Breakdown = map[string]int{string(domain.CustomerPerson): persons, string(domain.CustomerOrganization): orgs}
		case domain.KPIPersonCustomers:
			r = countResult(persons)
		case domain.KPIOrganizationCustomers:
			r = countResult(orgs)
		case domain.KPINewCustomersMonth:
			growth := 0.0
			if prevMonth > 0 {
				growth = float64(thisMonth-prevMonth) / float64(prevMonth) * 100
			}
			sign := ""
			if growth >= 0 {
				sign = "+"
			}
			r = countResult(thisMonth)
			r.SubValue = fmt.Sprintf("%s%.1f%% vs vorige maand", sign, growth)
			r.Breakdown = map[string]int{"thisMonth": thisMonth, "lastMonth": prevMonth}
		case domain.KPIConversionRate:
			rate := 0.0
			if total > 0 {
				rate = round1(float64(converted) / float64(total) * 100)
			}
			r = KPIResult{Value: rate, Display: fmt.Sprintf("%.1f%%", rate)}
			r.SubValue = fmt.Sprintf("%d van %d leads omgezet", converted, total)
		case domain.KPIAvgLeadTime:
			r = countResult(meanDays(leadDays))
			r.SubValue = "dagen gemiddeld"
		case domain.KPICustomerTypeDistribution:
			personPct, orgPct := 0, 0
			if total > 0 {
				personPct = int(math.Round(float64(persons) / float64(total) * 100))
				orgPct = 100 - personPct
			}
			r = KPIResult{Value: float64(personPct), Display: fmt.Sprintf("%d/%d", personPct, orgPct)}
			r.SubValue = "Personen / Organisaties (%)"
			r.Breakdown = map[string]int{string(domain.CustomerPerson): persons, string(domain.CustomerOrganization): orgs}
		case domain.KPILeadsPipeline:
			r = countResult(total - converted)
		case domain.KPIMyTasks:
			r = countResult(mine)
			r.SubValue = fmt.Sprintf("%d totaal toegewezen", mineTotal)
		case domain.KPIOpenTasks:
			r = countResult(open)
		case domain.KPITasksByStatus:
			r = countResult(len(snap.Tasks))
			r.SubValue = fmt.Sprintf("%d open · %d bezig · %d klaar",
				byStatus[string(domain.TaskOpen)], byStatus[string(domain.TaskInProgress)], byStatus[string(domain.TaskDone)])
			r.Breakdown = byStatus
		case domain.KPIAvgTaskDuration:
			r = countResult(meanDays(taskDays))
			r.SubValue = "dagen gemiddeld"
		case domain.KPITasksPerEmployee:
			series := tasksPerEmployee(snap.Users, snap.Tasks)
			if len(series) > 0 {
				r = countResult(series[0].Value)
				r.SubValue = "hoogste: " + series[0].Label
			} else {
				r = countResult(0)
				r.SubValue = "geen taken"
			}
			r.Series = series
		case domain.KPINewNotesWeek:
			r = countResult(notesWeek)
		case domain.KPINewDocumentsWeek:
			r = countResult(docsWeek)
		case domain.KPICompletedDealsMonth:
			r = countResult(dealsMonth)
		case domain.KPITotalNotes:
			r = countResult(len(snap.Notes))
		case domain.KPIOverdueTasks:
			r = countResult(overdue)
		case domain.KPIRecentActivity:
			r = countResult(docsWeek + open)
		default:
			continue
		}
		r.Type = typ
		r.Label = kpiLabel(typ)
		out = append(out, r)
	}
	return out
}

func kpiLabel(t domain.KPIType) string {
	for _, d := range domain.KPICatalog {
		if d.Type == t {
			return d.Label
		}
	}
	return string(t)
}

// tasksPerEmployee counts assigned tasks per staff member, busiest first.
func tasksPerEmployee(users []domain.User, tasks []domain.Task) []SeriesPoint {
	counts := map[string]int{}
	for _, t := range tasks {
		if t.AssignedTo != "" {
			counts[t.AssignedTo]++
		}
	}
	series := make([]SeriesPoint, 0, len(users))
	for _, u := range users {
		if !u.Role.IsStaff() {
			continue
		}
		series = append(series, SeriesPoint{Label: u.FirstName(), Value: counts[u.ID]})
	}
	slices.SortStableFunc(series, func(a, b SeriesPoint) int { return b.Value - a.Value })
	return series
}

// Layout returns the stored layout or the default one.
func (s *DashboardService) Layout(ctx context.Context, userID string) (domain.DashboardLayout, error) {
	l, err := s.Store.Layouts().GetLayout(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.DefaultDashboardLayout(userID), nil
	}
	return l, err
}

var (
	widgetTypes = []string{"kpi", "chart", "agenda", "table"}
	widgetSizes = []string{"", "small", "medium", "large", "full"}
)

// SaveLayout validates and stores a user's layout.
func (s *DashboardService) SaveLayout(ctx context.Context, l domain.DashboardLayout) (domain.DashboardLayout, error) {
	if len(l.KPIs) > maxLayoutEntries || len(l.Widgets) > maxLayoutEntries {
		return domain.DashboardLayout{}, invalid("a layout holds at most %d entries per list", maxLayoutEntries)
	}
	for _, k := range l.KPIs {
		if _, ok := domain.ParseKPIType(string(k.Type)); !ok {
			return domain.DashboardLayout{}, invalid("unknown KPI type %q", k.Type)
		}
	}
	for _, w := range l.Widgets {
		if !slices.Contains(widgetTypes, w.Type) {
			return domain.DashboardLayout{}, invalid("unknown widget type %q", w.Type)
		}
		if !slices.Contains(widgetSizes, w.Size) {
			return domain.DashboardLayout{}, invalid("unknown widget size %q", w.Size)
		}
		if w.Type == "kpi" {
			if _, ok := domain.ParseKPIType(w.Subtype); !ok {
				return domain.DashboardLayout{}, invalid("unknown KPI type %q", w.Subtype)
			}
		}
	}
	if l.KPIs == nil {
		l.KPIs = []domain.KPIConfig{}
	}
	if l.Widgets == nil {
		l.Widgets = []domain.WidgetConfig{}
	}

	l.UpdatedAt = now()
	if err := s.Store.Layouts().SaveLayout(ctx, l); err != nil {
		return domain.DashboardLayout{}, err
	}
	return l, nil
}
