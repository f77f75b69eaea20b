package http

import (
	"encoding/csv"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vos-crm/crm/internal/crm/service"
	"github.com/vos-crm/crm/pkg/crmsdk"
)

func TestCustomersCRUD(t *testing.T) {
	env := newTestEnv(t)

	c := env.createCustomer(t, crmsdk.CustomerInput{
		FirstName: "Jan",
		LastName:  "Jansen",
		Email:     "Jan@Example.com",
		Postcode:  "1012 ab",
		City:      "Amsterdam",
	})
	require.Equal(t, "jan@example.com", c.Email)
	require.Equal(t, "PERSON", c.Type)
	require.Equal(t, "NIEUW", c.Status)

	t.Run("duplicate email", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/customers", env.employeeToken, crmsdk.CustomerInput{
			FirstName: "Other", LastName: "Person", Email: "jan@example.com",
		})
		require.Equal(t, http.StatusConflict, rec.Code)
		require.Equal(t, "conflict", decode[crmsdk.ErrorResponse](t, rec).Error)
	})

	t.Run("organization requires company name", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/customers", env.employeeToken, crmsdk.CustomerInput{
			Type: "ORGANIZATION", Email: "info@bakker.nl",
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, decode[crmsdk.ErrorResponse](t, rec).Message, "companyName")
	})

	t.Run("get with documents", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/customers/"+c.ID, env.employeeToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"documents":[]`)
		got := decode[crmsdk.CustomerDetail](t, rec)
		require.Equal(t, c.ID, got.ID)
		require.NotNil(t, got.Documents)
		require.Empty(t, got.Documents)

		rec = env.do(t, http.MethodGet, "/customers/missing", env.employeeToken, nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("patch only changes given fields", func(t *testing.T) {
		phone := "020-1234567"
		rec := env.do(t, http.MethodPatch, "/customers/"+c.ID, env.employeeToken, crmsdk.CustomerPatch{Phone: &phone})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		got := decode[crmsdk.Customer](t, rec)
		require.Equal(t, phone, got.Phone)
		require.Equal(t, "Jan", got.FirstName)
	})

	t.Run("status change", func(t *testing.T) {
		rec := env.do(t, http.MethodPatch, "/customers/"+c.ID+"/status", env.employeeToken, crmsdk.StatusRequest{Status: "CONTACT_GELEGD"})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		require.Equal(t, "CONTACT_GELEGD", decode[crmsdk.Customer](t, rec).Status)

		rec = env.do(t, http.MethodPatch, "/customers/"+c.ID+"/status", env.employeeToken, crmsdk.StatusRequest{Status: "GEEN_FASE"})
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("admin deletes", func(t *testing.T) {
		rec := env.do(t, http.MethodDelete, "/customers/"+c.ID, env.adminToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"ok":true}`, rec.Body.String())

		rec = env.do(t, http.MethodDelete, "/customers/"+c.ID, env.adminToken, nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestListCustomers(t *testing.T) {
	env := newTestEnv(t)

	env.createCustomer(t, crmsdk.CustomerInput{FirstName: "Jan", LastName: "Jansen", Email: "jan@example.com", City: "Utrecht"})
	env.createCustomer(t, crmsdk.CustomerInput{FirstName: "Piet", LastName: "de Vries", Email: "piet@example.com", City: "Rotterdam"})
	env.createCustomer(t, crmsdk.CustomerInput{Type: "ORGANIZATION", CompanyName: "Bakkerij Utrecht", Email: "info@bakkerij.nl"})

	tests := []struct {
		name  string
		query string
		total int
	}{
		{"all", "", 3},
		{"search matches city and company", "?q=utrecht", 2},
		{"search is case insensitive", "?q=PIET", 1},
		{"type filter", "?type=ORGANIZATION", 1},
		{"status filter", "?status=NIEUW", 3},
		{"no match", "?q=zzz", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, http.MethodGet, "/customers"+tt.query, env.employeeToken, nil)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			page := decode[crmsdk.CustomerPage](t, rec)
			require.Equal(t, tt.total, page.Total)
			require.Len(t, page.Items, tt.total)
		})
	}

	t.Run("paging", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/customers?pageSize=2&page=2&sort=email&order=asc", env.employeeToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		page := decode[crmsdk.CustomerPage](t, rec)
		require.Equal(t, 3, page.Total)
		require.Equal(t, 2, page.Page)
		require.Equal(t, 2, page.PageSize)
		require.Len(t, page.Items, 1)
		require.Equal(t, "piet@example.com", page.Items[0].Email)
	})

	t.Run("unknown sort field", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/customers?sort=password", env.employeeToken, nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "invalid_request", decode[crmsdk.ErrorResponse](t, rec).Error)
	})
}

func TestExportCustomers(t *testing.T) {
	env := newTestEnv(t)

	env.createCustomer(t, crmsdk.CustomerInput{FirstName: "Jan", LastName: "Jansen", Email: "jan@example.com"})
	env.createCustomer(t, crmsdk.CustomerInput{Type: "ORGANIZATION", CompanyName: "Visser Zn.", Email: "info@visser.nl", City: "Den Haag, Zuid-Holland"})

	rec := env.do(t, http.MethodGet, "/customers/export", env.employeeToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	require.Equal(t, `attachment; filename="customers.csv"`, rec.Header().Get("Content-Disposition"))

	rows, err := csv.NewReader(strings.NewReader(rec.Body.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, strings.Join(service.ExportHeader, ","), strings.Join(rows[0], ","))

	cities := map[string]string{}
	for _, row := range rows[1:] {
		cities[row[4]] = row[9]
	}
	require.Equal(t, "Den Haag, Zuid-Holland", cities["info@visser.nl"])

	rec = env.do(t, http.MethodGet, "/customers/export", env.customerToken, nil)
	require.Equal(t, http.StatusForbidden, rec.Code)
}
