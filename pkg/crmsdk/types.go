package crmsdk

import "time"

// ============================================================================
// Errors
// ============================================================================

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_request"`
	Message string `json:"message,omitempty" example:"email is required"`
}

// OKResponse is returned by endpoints without a richer result.
type OKResponse struct {
	OK bool `json:"ok" example:"true"`
}

// ============================================================================
// Auth and users
// ============================================================================

type LoginRequest struct {
	Email    string `json:"email" example:"anne@vos-crm.nl"`
	Password string `json:"password" example:"correct horse"`
}

type RegisterRequest struct {
	Token    string `json:"token"`
	Name     string `json:"name" example:"Anne de Vries"`
	Password string `json:"password"`
}

// AuthResponse is returned by login and registration.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      User      `json:"user"`
}

type User struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Role       string    `json:"role" example:"MEDEWERKER"`
	CustomerID string    `json:"customerId,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

type UserList struct {
	Items []User `json:"items"`
}

type ChangeRoleRequest struct {
	Role string `json:"role" example:"BEHEERDER"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// ============================================================================
// Customers
// ============================================================================

type Customer struct {
	ID           string     `json:"id"`
	Type         string     `json:"type" example:"PERSON"`
	FirstName    string     `json:"firstName"`
	Infix        string     `json:"infix"`
	LastName     string     `json:"lastName"`
	CompanyName  string     `json:"companyName"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	Street       string     `json:"street"`
	HouseNumber  string     `json:"houseNumber"`
	Postcode     string     `json:"postcode"`
	City         string     `json:"city"`
	Status       string     `json:"status" example:"NIEUW"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
	LastActivity time.Time  `json:"lastActivity"`
}

// CustomerDetail is a single customer with its documents, newest first.
type CustomerDetail struct {
	Customer
	Documents []Document `json:"documents"`
}

type CustomerPage struct {
	Total    int        `json:"total"`
	Page     int        `json:"page"`
	PageSize int        `json:"pageSize"`
	Items    []Customer `json:"items"`
}

// CustomerInput creates a customer. Type defaults to PERSON and Status to
// the first pipeline stage.
type CustomerInput struct {
	Type        string `json:"type,omitempty"`
	FirstName   string `json:"firstName,omitempty"`
	Infix       string `json:"infix,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	CompanyName string `json:"companyName,omitempty"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	Street      string `json:"street,omitempty"`
	HouseNumber string `json:"houseNumber,omitempty"`
	Postcode    string `json:"postcode,omitempty"`
	City        string `json:"city,omitempty"`
	Status      string `json:"status,omitempty"`
}

// CustomerPatch changes only the fields that are set.
type CustomerPatch struct {
	Type        *string `json:"type,omitempty"`
	FirstName   *string `json:"firstName,omitempty"`
	Infix       *string `json:"infix,omitempty"`
	LastName    *string `json:"lastName,omitempty"`
	CompanyName *string `json:"companyName,omitempty"`
	Email       *string `json:"email,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Street      *string `json:"street,omitempty"`
	HouseNumber *string `json:"houseNumber,omitempty"`
	Postcode    *string `json:"postcode,omitempty"`
	City        *string `json:"city,omitempty"`
	Status      *string `json:"status,omitempty"`
}

type StatusRequest struct {
	Status string `json:"status" example:"CONTACT_GELEGD"`
}

// ListCustomersParams mirrors the GET /customers query string. Zero values
// are omitted.
type ListCustomersParams struct {
	Q        string
	Page     int
	PageSize int
	Sort     string
	Order    string
	Status   string
	Type     string
}

// ============================================================================
// Documents
// ============================================================================

type Document struct {
	ID           string    `json:"id"`
	CustomerID   string    `json:"customerId"`
	OriginalName string    `json:"originalName"`
	FileName     string    `json:"fileName"`
	MimeType     string    `json:"mimeType"`
	Size         int64     `json:"size"`
	UploadedBy   string    `json:"uploadedBy,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

type DocumentList struct {
	Items []Document `json:"items"`
}

// ============================================================================
// Invites
// ============================================================================

type InviteRequest struct {
	Email      string `json:"email" example:"nieuw@example.com"`
	Role       string `json:"role,omitempty" example:"KLANT"`
	CustomerID string `json:"customerId,omitempty"`
}

type InviteResponse struct {
	OK        bool      `json:"ok"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// InviteValidation is what the registration page shows before submitting.
type InviteValidation struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// ============================================================================
// Address lookup
// ============================================================================

type Address struct {
	Street      string `json:"street" example:"Damrak"`
	City        string `json:"city" example:"Amsterdam"`
	Postcode    string `json:"postcode" example:"1012LG"`
	HouseNumber string `json:"houseNumber" example:"1"`
}

// ============================================================================
// Pipeline
// ============================================================================

type Stage struct {
	ID    string `json:"id"`
	Name  string `json:"name" example:"NIEUW"`
	Label string `json:"label" example:"Nieuw"`
	Color string `json:"color" example:"#94A3B8"`
	Order int    `json:"order"`
}

type StageList struct {
	Items []Stage `json:"items"`
}

// StageInput is one entry of PUT /pipeline/stages; order is the list position.
type StageInput struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Label string `json:"label"`
	Color string `json:"color"`
}

type BoardColumn struct {
	Stage     Stage      `json:"stage"`
	Customers []Customer `json:"customers"`
}

type Board struct {
	Columns    []BoardColumn `json:"columns"`
	Unassigned []Customer    `json:"unassigned"`
}

// ============================================================================
// Tasks
// ============================================================================

type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Notes       string     `json:"notes"`
	Status      string     `json:"status" example:"OPEN"`
	Deadline    *time.Time `json:"deadline"`
	CustomerID  string     `json:"customerId,omitempty"`
	AssignedTo  string     `json:"assignedTo,omitempty"`
	CreatedBy   string     `json:"createdBy,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	CompletedAt *time.Time `json:"completedAt"`
}

type TaskList struct {
	Items []Task `json:"items"`
}

// TaskInput creates a task. Deadline is RFC 3339 or YYYY-MM-DD.
type TaskInput struct {
	Title      string `json:"title"`
	Notes      string `json:"notes,omitempty"`
	Status     string `json:"status,omitempty"`
	Deadline   string `json:"deadline,omitempty"`
	CustomerID string `json:"customerId,omitempty"`
	AssignedTo string `json:"assignedTo,omitempty"`
}

// TaskPatch changes the set fields; an empty Deadline, CustomerID or
// AssignedTo clears it.
type TaskPatch struct {
	Title      *string `json:"title,omitempty"`
	Notes      *string `json:"notes,omitempty"`
	Status     *string `json:"status,omitempty"`
	Deadline   *string `json:"deadline,omitempty"`
	CustomerID *string `json:"customerId,omitempty"`
	AssignedTo *string `json:"assignedTo,omitempty"`
}

// ListTasksParams filters GET /tasks. AssignedTo accepts "me".
type ListTasksParams struct {
	CustomerID string
	AssignedTo string
	Status     string
}

// ============================================================================
// Notes
// ============================================================================

type Note struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customerId"`
	AuthorID   string    `json:"authorId,omitempty"`
	AuthorName string    `json:"authorName"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
}

type NoteList struct {
	Items []Note `json:"items"`
}

type NoteRequest struct {
	CustomerID string `json:"customerId"`
	Content    string `json:"content" example:"<p>Klant teruggebeld</p>"`
}

// ============================================================================
// Dashboard
// ============================================================================

type KPIDefinition struct {
	Type  string `json:"type" example:"total_customers"`
	Label string `json:"label" example:"Totaal klanten"`
}

type KPICatalog struct {
	Items []KPIDefinition `json:"items"`
}

type SeriesPoint struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

type KPIResult struct {
	Type      string         `json:"type"`
	Label     string         `json:"label"`
	Value     float64        `json:"value"`
	Display   string         `json:"display"`
	SubValue  string         `json:"subValue,omitempty"`
	Breakdown map[string]int `json:"breakdown,omitempty"`
	Series    []SeriesPoint  `json:"series,omitempty"`
}

type KPIList struct {
	Items []KPIResult `json:"items"`
}

type KPIConfig struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Label string `json:"label"`
	Order int    `json:"order"`
}

type WidgetConfig struct {
	ID      string `json:"id"`
	Type    string `json:"type" example:"kpi"`
	Subtype string `json:"subtype" example:"total_customers"`
	Label   string `json:"label"`
	Order   int    `json:"order"`
	Visible bool   `json:"visible"`
	Size    string `json:"size,omitempty" example:"small"`
}

// DashboardLayout is the per-user arrangement. UpdatedAt is nil while the
// defaults are in use.
type DashboardLayout struct {
	KPIs      []KPIConfig    `json:"kpis"`
	Widgets   []WidgetConfig `json:"widgets"`
	UpdatedAt *time.Time     `json:"updatedAt"`
}

// ============================================================================
// Health
// ============================================================================

type HealthResponse struct {
	OK      bool   `json:"ok"`
	Env     string `json:"env" example:"dev"`
	Version string `json:"version" example:"0.1.0"`
	Uptime  string `json:"uptime" example:"1h2m3s"`
}

type DBHealthResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}
