package crmsdk

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

func (p ListCustomersParams) query() string {
	v := url.Values{}
	set := func(k, val string) {
		if val != "" {
			v.Set(k, val)
		}
	}
	set("q", p.Q)
	set("sort", p.Sort)
	set("order", p.Order)
	set("status", p.Status)
	set("type", p.Type)
	if p.Page > 0 {
		v.Set("page", strconv.Itoa(p.Page))
	}
	if p.PageSize > 0 {
		v.Set("pageSize", strconv.Itoa(p.PageSize))
	}
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}

func (s *Session) ListCustomers(ctx context.Context, params ListCustomersParams) (*CustomerPage, error) {
	var page CustomerPage
	if err := s.doJSON(ctx, http.MethodGet, "/customers"+params.query(), nil, &page, http.StatusOK); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetCustomer returns the customer including its documents.
func (s *Session) GetCustomer(ctx context.Context, id string) (*CustomerDetail, error) {
	var c CustomerDetail
	if err := s.doJSON(ctx, http.MethodGet, "/customers/"+id, nil, &c, http.StatusOK); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Session) CreateCustomer(ctx context.Context, in CustomerInput) (*Customer, error) {
	var c Customer
	if err := s.doJSON(ctx, http.MethodPost, "/customers", in, &c, http.StatusCreated); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Session) UpdateCustomer(ctx context.Context, id string, patch CustomerPatch) (*Customer, error) {
	var c Customer
	if err := s.doJSON(ctx, http.MethodPatch, "/customers/"+id, patch, &c, http.StatusOK); err != nil {
		return nil, err
	}
	return &c, nil
}

// SetCustomerStatus moves a customer to another pipeline stage.
func (s *Session) SetCustomerStatus(ctx context.Context, id, status string) (*Customer, error) {
	var c Customer
	if err := s.doJSON(ctx, http.MethodPatch, "/customers/"+id+"/status", StatusRequest{Status: status}, &c, http.StatusOK); err != nil {
		return nil, err
	}
	return &c, nil
}

// ExportCustomers streams the CSV export into w and returns the byte count.
func (s *Session) ExportCustomers(ctx context.Context, w io.Writer) (int64, error) {
	resp, err := s.doRequest(ctx, http.MethodGet, "/customers/export", nil, nil)
	if err != nil {
		return 0, err
	}
	return copyBody(resp, w)
}
