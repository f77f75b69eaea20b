package domain

import "time"

// KPIType names one dashboard indicator.
type KPIType string

const (
	KPITotalCustomers           KPIType = "total_customers"
	KPIPersonCustomers          KPIType = "person_customers"
	KPIOrganizationCustomers    KPIType = "organization_customers"
	KPINewCustomersMonth        KPIType = "new_customers_month"
	KPIConversionRate           KPIType = "conversion_rate"
	KPIAvgLeadTime              KPIType = "avg_lead_time"
	KPICustomerTypeDistribution KPIType = "customer_type_distribution"
	KPILeadsPipeline            KPIType = "leads_pipeline"
	KPIMyTasks                  KPIType = "my_tasks"
	KPIOpenTasks                KPIType = "open_tasks"
	KPITasksByStatus            KPIType = "tasks_by_status"
	KPIAvgTaskDuration          KPIType = "avg_task_duration"
	KPITasksPerEmployee         KPIType = "tasks_per_employee"
	KPINewNotesWeek             KPIType = "new_notes_week"
	KPINewDocumentsWeek         KPIType = "new_documents_week"
	KPICompletedDealsMonth      KPIType = "completed_deals_month"
	KPITotalNotes               KPIType = "total_notes"
	KPIOverdueTasks             KPIType = "overdue_tasks"
	KPIRecentActivity           KPIType = "recent_activity"
)

// KPIDefinition is an entry of the fixed KPI catalog.
type KPIDefinition struct {
	Type  KPIType
	Label string
}

// KPICatalog is the fixed, ordered set of indicators the dashboard offers.
var KPICatalog = []KPIDefinition{
	{KPITotalCustomers, "Totaal klanten"},
	{KPIPersonCustomers, "Personen"},
	{KPIOrganizationCustomers, "Organisaties"},
	{KPINewCustomersMonth, "Nieuwe klanten deze maand"},
	{KPIConversionRate, "Conversieratio"},
	{KPIAvgLeadTime, "Gem. doorlooptijd lead"},
	{KPICustomerTypeDistribution, "Verdeling klanttype"},
	{KPILeadsPipeline, "Leads in pipeline"},
	{KPIMyTasks, "Mijn taken"},
	{KPIOpenTasks, "Open taken"},
	{KPITasksByStatus, "Taken per status"},
	{KPIAvgTaskDuration, "Gem. doorlooptijd taak"},
	{KPITasksPerEmployee, "Taken per medewerker"},
	{KPINewNotesWeek, "Nieuwe notities deze week"},
	{KPINewDocumentsWeek, "Nieuwe documenten deze week"},
	{KPICompletedDealsMonth, "Afgeronde deals deze maand"},
	{KPITotalNotes, "Totaal notities"},
	{KPIOverdueTasks, "Verlopen taken"},
	{KPIRecentActivity, "Recente activiteit"},
}

// ParseKPIType accepts only catalog entries.
func ParseKPIType(s string) (KPIType, bool) {
	for _, d := range KPICatalog {
		if string(d.Type) == s {
			return d.Type, true
		}
	}
	return "", false
}

// KPIConfig is one KPI tile in a user's layout.
type KPIConfig struct {
	ID    string  `json:"id"`
	Type  KPIType `json:"type"`
	Label string  `json:"label"`
	Order int     `json:"order"`
}

// WidgetConfig is one dashboard widget in a user's layout.
type WidgetConfig struct {
	ID      string `json:"id"`
	Type    string `json:"type"`    // kpi, chart, agenda, table
	Subtype string `json:"subtype"` // KPI type or chart/agenda/table name
	Label   string `json:"label"`
	Order   int    `json:"order"`
	Visible bool   `json:"visible"`
	Size    string `json:"size,omitempty"` // small, medium, large, full
}

// DashboardLayout is the per-user dashboard arrangement. The frontend keeps
// the same JSON in localStorage under "vos-dashboard-kpis" and
// "vos-dashboard-widgets".
type DashboardLayout struct {
	UserID    string
	KPIs      []KPIConfig
	Widgets   []WidgetConfig
	UpdatedAt time.Time
}

// DefaultDashboardLayout is served until a user saves their own.
func DefaultDashboardLayout(userID string) DashboardLayout {
	return DashboardLayout{
		UserID: userID,
		KPIs: []KPIConfig{
			{ID: "1", Type: KPITotalCustomers, Label: "Totaal klanten", Order: 0},
			{ID: "2", Type: KPILeadsPipeline, Label: "Leads in pipeline", Order: 1},
			{ID: "3", Type: KPIOpenTasks, Label: "Open taken", Order: 2},
			{ID: "4", Type: KPINewDocumentsWeek, Label: "Nieuwe documenten deze week", Order: 3},
		},
		Widgets: []WidgetConfig{
			{ID: "1", Type: "kpi", Subtype: "total_customers", Label: "Totaal klanten", Order: 0, Visible: true, Size: "small"},
			{ID: "2", Type: "kpi", Subtype: "leads_pipeline", Label: "Leads in pipeline", Order: 1, Visible: true, Size: "small"},
			{ID: "3", Type: "kpi", Subtype: "open_tasks", Label: "Open taken", Order: 2, Visible: true, Size: "small"},
			{ID: "4", Type: "kpi", Subtype: "new_documents_week", Label: "Nieuwe documenten", Order: 3, Visible: true, Size: "small"},
			{ID: "5", Type: "chart", Subtype: "customers_per_month", Label: "Nieuwe klanten per maand", Order: 4, Visible: true, Size: "medium"},
			{ID: "6", Type: "chart", Subtype: "tasks_per_week", Label: "Taken afgerond per week", Order: 5, Visible: true, Size: "medium"},
			{ID: "7", Type: "chart", Subtype: "customer_type_distribution", Label: "Verdeling klanttype", Order: 6, Visible: true, Size: "medium"},
			{ID: "8", Type: "chart", Subtype: "leads_per_phase", Label: "Leads per fase", Order: 7, Visible: true, Size: "medium"},
			{ID: "9", Type: "agenda", Subtype: "upcoming_tasks", Label: "Openstaande taken", Order: 8, Visible: true, Size: "small"},
			{ID: "10", Type: "agenda", Subtype: "recent_documents", Label: "Recente documenten", Order: 9, Visible: true, Size: "small"},
			{ID: "11", Type: "agenda", Subtype: "recent_notes", Label: "Recente notities", Order: 10, Visible: true, Size: "small"},
			{ID: "12", Type: "table", Subtype: "recent_customers", Label: "Laatst toegevoegd", Order: 11, Visible: true, Size: "full"},
		},
	}
}
