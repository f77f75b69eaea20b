package crmsdk

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

// ============================================================================
// Pipeline
// ============================================================================

func (s *Session) ListStages(ctx context.Context) ([]Stage, error) {
	var list StageList
	if err := s.doJSON(ctx, http.MethodGet, "/pipeline/stages", nil, &list, http.StatusOK); err != nil {
		return nil, err
	}
	return list.Items, nil
}

func (s *Session) GetBoard(ctx context.Context) (*Board, error) {
	var b Board
	if err := s.doJSON(ctx, http.MethodGet, "/pipeline/board", nil, &b, http.StatusOK); err != nil {
		return nil, err
	}
	return &b, nil
}

// ============================================================================
// Tasks
// ============================================================================

func (s *Session) ListTasks(ctx context.Context, params ListTasksParams) ([]Task, error) {
	v := url.Values{}
	if params.CustomerID != "" {
		v.Set("customerId", params.CustomerID)
	}
	if params.AssignedTo != "" {
		v.Set("assignedTo", params.AssignedTo)
	}
	if params.Status != "" {
		v.Set("status", params.Status)
	}
	path := "/tasks"
	if len(v) > 0 {
		path += "?" + v.Encode()
	}

	var list TaskList
	if err := s.doJSON(ctx, http.MethodGet, path, nil, &list, http.StatusOK); err != nil {
		return nil, err
	}
	return list.Items, nil
}

func (s *Session) GetTask(ctx context.Context, id string) (*Task, error) {
	var t Task
	if err := s.doJSON(ctx, http.MethodGet, "/tasks/"+id, nil, &t, http.StatusOK); err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Session) CreateTask(ctx context.Context, in TaskInput) (*Task, error) {
	var t Task
	if err := s.doJSON(ctx, http.MethodPost, "/tasks", in, &t, http.StatusCreated); err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Session) UpdateTask(ctx context.Context, id string, patch TaskPatch) (*Task, error) {
	var t Task
	if err := s.doJSON(ctx, http.MethodPatch, "/tasks/"+id, patch, &t, http.StatusOK); err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Session) DeleteTask(ctx context.Context, id string) error {
	return s.doJSON(ctx, http.MethodDelete, "/tasks/"+id, nil, nil, http.StatusOK)
}

// ============================================================================
// Notes
// ============================================================================

func (s *Session) ListNotes(ctx context.Context, customerID string) ([]Note, error) {
	path := "/notes"
	if customerID != "" {
		path += "?customerId=" + url.QueryEscape(customerID)
	}

	var list NoteList
	if err := s.doJSON(ctx, http.MethodGet, path, nil, &list, http.StatusOK); err != nil {
		return nil, err
	}
	return list.Items, nil
}

// CreateNote adds an HTML note; the server strips unsafe markup.
func (s *Session) CreateNote(ctx context.Context, customerID, content string) (*Note, error) {
	var n Note
	if err := s.doJSON(ctx, http.MethodPost, "/notes", NoteRequest{CustomerID: customerID, Content: content}, &n, http.StatusCreated); err != nil {
		return nil, err
	}
	return &n, nil
}

func (s *Session) DeleteNote(ctx context.Context, id string) error {
	return s.doJSON(ctx, http.MethodDelete, "/notes/"+id, nil, nil, http.StatusOK)
}

// ============================================================================
// Dashboard
// ============================================================================

func (s *Session) KPICatalog(ctx context.Context) ([]KPIDefinition, error) {
	var c KPICatalog
	if err := s.doJSON(ctx, http.MethodGet, "/dashboard/kpis/catalog", nil, &c, http.StatusOK); err != nil {
		return nil, err
	}
	return c.Items, nil
}

// KPIs computes the given indicators, or the whole catalog when none are given.
func (s *Session) KPIs(ctx context.Context, types ...string) ([]KPIResult, error) {
	path := "/dashboard/kpis"
	if len(types) > 0 {
		path += "?types=" + url.QueryEscape(strings.Join(types, ","))
	}

	var list KPIList
	if err := s.doJSON(ctx, http.MethodGet, path, nil, &list, http.StatusOK); err != nil {
		return nil, err
	}
	return list.Items, nil
}

func (s *Session) DashboardLayout(ctx context.Context) (*DashboardLayout, error) {
	var l DashboardLayout
	if err := s.doJSON(ctx, http.MethodGet, "/dashboard/layout", nil, &l, http.StatusOK); err != nil {
		return nil, err
	}
	return &l, nil
}

func (s *Session) SaveDashboardLayout(ctx context.Context, layout DashboardLayout) (*DashboardLayout, error) {
	var l DashboardLayout
	if err := s.doJSON(ctx, http.MethodPut, "/dashboard/layout", layout, &l, http.StatusOK); err != nil {
		return nil, err
	}
	return &l, nil
}

// ============================================================================
// Address
// ============================================================================

// LookupAddress resolves a Dutch postcode and house number.
func (s *Session) LookupAddress(ctx context.Context, postcode, number string) (*Address, error) {
	v := url.Values{"postcode": {postcode}, "number": {number}}

	var a Address
	if err := s.doJSON(ctx, http.MethodGet, "/address/lookup?"+v.Encode(), nil, &a, http.StatusOK); err != nil {
		return nil, err
	}
	return &a, nil
}
