package http

import (
	"net/http"

	"github.com/vos-crm/crm/internal/crm/service"
	"github.com/vos-crm/crm/pkg/crmsdk"
	"github.com/vos-crm/crm/pkg/httpx"
)

type CustomersHandler struct {
	CustomerService *service.CustomerService
}

// HandleList godoc
//
//	@Summary		List customers
//	@Description	Paged, searchable list. q matches name, company, e-mail and city case-insensitively.
//	@Description	pageSize defaults to 10 and is clamped to 1..100; sort must be a whitelisted field.
//	@Tags			Customers
//	@Produce		json
//	@Param			q			query		string	false	"Search text"
//	@Param			page		query		int		false	"Page, 1-based"
//	@Param			pageSize	query		int		false	"Page size"
//	@Param			sort		query		string	false	"createdAt, updatedAt, lastActivity, firstName, lastName, companyName, email, city, status"
//	@Param			order		query		string	false	"asc or desc (default)"
//	@Param			status		query		string	false	"Pipeline stage"
//	@Param			type		query		string	false	"PERSON or ORGANIZATION"
//	@Success		200			{object}	crmsdk.CustomerPage
//	@Failure		400			{object}	crmsdk.ErrorResponse
//	@Failure		401			{object}	crmsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/customers [get].
func (h *CustomersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := h.CustomerService.List(r.Context(), service.CustomerQuery{
		Q:        q.Get("q"),
		Page:     q.Get("page"),
		PageSize: q.Get("pageSize"),
		Sort:     q.Get("sort"),
		Order:    q.Get("order"),
		Status:   q.Get("status"),
		Type:     q.Get("type"),
	})
	if err != nil {
		writeServiceError(w, r, err, "failed to list customers")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, crmsdk.CustomerPage{
		Total:    page.Total,
		Page:     page.Page,
		PageSize: page.PageSize,
		Items:    toCustomers(page.Items),
	})
}

// HandleGet godoc
//
//	@Summary	Get a customer with its documents
//	@Tags		Customers
//	@Produce	json
//	@Param		id	path		string	true	"Customer ID"
//	@Success	200	{object}	crmsdk.CustomerDetail
//	@Failure	404	{object}	crmsdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/customers/{id} [get].
func (h *CustomersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	detail, err := h.CustomerService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, "failed to get customer")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, crmsdk.CustomerDetail{
		Customer:  toCustomer(detail.Customer),
		Documents: toDocuments(detail.Documents),
	})
}

// HandleCreate godoc
//
//	@Summary		Create a customer
//	@Description	Persons need firstName, lastName and email; organizations need companyName and email.
//	@Tags			Customers
//	@Accept			json
//	@Produce		json
//	@Param			request	body		crmsdk.CustomerInput	true	"Customer"
//	@Success		201		{object}	crmsdk.Customer
//	@Failure		400		{object}	crmsdk.ErrorResponse
//	@Failure		409		{object}	crmsdk.ErrorResponse	"e-mail already in use"
//	@Security		BearerAuth
//	@Router			/customers [post].
func (h *CustomersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in service.CustomerInput
	if err := httpx.DecodeJSON(w, r, &in); err != nil {
		writeServiceError(w, r, err, "failed to decode customer")
		return
	}

	c, err := h.CustomerService.Create(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, err, "failed to create customer")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toCustomer(c))
}

// HandleUpdate godoc
//
//	@Summary	Edit customer fields
//	@Tags		Customers
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"Customer ID"
//	@Param		request	body		crmsdk.CustomerPatch	true	"Fields to change"
//	@Success	200		{object}	crmsdk.Customer
//	@Failure	400		{object}	crmsdk.ErrorResponse
//	@Failure	404		{object}	crmsdk.ErrorResponse
//	@Failure	409		{object}	crmsdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/customers/{id} [patch].
func (h *CustomersHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var p service.CustomerPatch
	if err := httpx.DecodeJSON(w, r, &p); err != nil {
		writeServiceError(w, r, err, "failed to decode customer patch")
		return
	}

	c, err := h.CustomerService.Update(r.Context(), r.PathValue("id"), p)
	if err != nil {
		writeServiceError(w, r, err, "failed to update customer")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toCustomer(c))
}

// HandleSetStatus godoc
//
//	@Summary	Move a customer to another pipeline stage
//	@Tags		Customers
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"Customer ID"
//	@Param		request	body		crmsdk.StatusRequest	true	"Target stage"
//	@Success	200		{object}	crmsdk.Customer
//	@Failure	400		{object}	crmsdk.ErrorResponse	"unknown stage"
//	@Failure	404		{object}	crmsdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/customers/{id}/status [patch].
func (h *CustomersHandler) HandleSetStatus(w http.ResponseWriter, r *http.Request) {
	var req crmsdk.StatusRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err, "failed to decode status request")
		return
	}

	c, err := h.CustomerService.SetStatus(r.Context(), r.PathValue("id"), req.Status)
	if err != nil {
		writeServiceError(w, r, err, "failed to set customer status")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toCustomer(c))
}

// HandleDelete godoc
//
//	@Summary		Delete a customer
//	@Description	Removes the customer with its documents and notes. Tasks stay, unlinked.
//	@Tags			Customers
//	@Produce		json
//	@Param			id	path		string	true	"Customer ID"
//	@Success		200	{object}	crmsdk.OKResponse
//	@Failure		403	{object}	crmsdk.ErrorResponse
//	@Failure		404	{object}	crmsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/customers/{id} [delete].
func (h *CustomersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.CustomerService.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err, "failed to delete customer")
		return
	}
	httpx.WriteOK(w)
}

// HandleExport godoc
//
//	@Summary		Export all customers as CSV
//	@Description	Streams every customer ordered by id. The header row is fixed.
//	@Tags			Customers
//	@Produce		text/csv
//	@Success		200	{string}	string	"CSV document"
//	@Failure		401	{object}	crmsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/customers/export [get].
func (h *CustomersHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	httpx.NoCache(w)
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="customers.csv"`)
	w.WriteHeader(http.StatusOK)

	rc := http.NewResponseController(w)
	flush := func() { _ = rc.Flush() }

	// Once the header is out a failure can only cut the stream short; the
	// service has already logged it.
	_, _ = h.CustomerService.ExportCSV(r.Context(), w, flush)
}
