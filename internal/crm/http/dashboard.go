package http

import (
	"net/http"

	"github.com/vos-crm/crm/internal/crm/domain"
	"github.com/vos-crm/crm/internal/crm/service"
	"github.com/vos-crm/crm/pkg/crmsdk"
	"github.com/vos-crm/crm/pkg/httpx"
)

type DashboardHandler struct {
	DashboardService *service.DashboardService
}

// HandleCatalog godoc
//
//	@Summary	KPI catalog
//	@Tags		Dashboard
//	@Produce	json
//	@Success	200	{object}	crmsdk.KPICatalog
//	@Security	BearerAuth
//	@Router		/dashboard/kpis/catalog [get].
func (h *DashboardHandler) HandleCatalog(w http.ResponseWriter, r *http.Request) {
	resp := crmsdk.KPICatalog{Items: make([]crmsdk.KPIDefinition, len(domain.KPICatalog))}
	for i, d := range domain.KPICatalog {
		resp.Items[i] = crmsdk.KPIDefinition{Type: string(d.Type), Label: d.Label}
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleKPIs godoc
//
//	@Summary		Compute KPIs
//	@Description	Computes the requested indicators, or the whole catalog when types is omitted.
//	@Tags			Dashboard
//	@Produce		json
//	@Param			types	query		string	false	"Comma separated KPI types"
//	@Success		200		{object}	crmsdk.KPIList
//	@Failure		400		{object}	crmsdk.ErrorResponse	"unknown KPI type"
//	@Security		BearerAuth
//	@Router			/dashboard/kpis [get].
func (h *DashboardHandler) HandleKPIs(w http.ResponseWriter, r *http.Request) {
	types, err := service.ParseKPITypes(r.URL.Query().Get("types"))
	if err != nil {
		writeServiceError(w, r, err, "")
		return
	}

	ctx := r.Context()
	results, err := h.DashboardService.KPIs(ctx, httpx.UserIDFromContext(ctx), types)
	if err != nil {
		writeServiceError(w, r, err, "failed to compute KPIs")
		return
	}
	resp := crmsdk.KPIList{Items: make([]crmsdk.KPIResult, len(results))}
	for i, res := range results {
		resp.Items[i] = toKPIResult(res)
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleGetLayout godoc
//
//	@Summary		Get the caller's dashboard layout
//	@Description	Returns the default layout until one is saved.
//	@Tags			Dashboard
//	@Produce		json
//	@Success		200	{object}	crmsdk.DashboardLayout
//	@Security		BearerAuth
//	@Router			/dashboard/layout [get].
func (h *DashboardHandler) HandleGetLayout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l, err := h.DashboardService.Layout(ctx, httpx.UserIDFromContext(ctx))
	if err != nil {
		writeServiceError(w, r, err, "failed to load dashboard layout")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toLayout(l))
}

// HandleSaveLayout godoc
//
//	@Summary	Save the caller's dashboard layout
//	@Tags		Dashboard
//	@Accept		json
//	@Produce	json
//	@Param		request	body		crmsdk.DashboardLayout	true	"KPI tiles and widgets"
//	@Success	200		{object}	crmsdk.DashboardLayout
//	@Failure	400		{object}	crmsdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/dashboard/layout [put].
func (h *DashboardHandler) HandleSaveLayout(w http.ResponseWriter, r *http.Request) {
	var req crmsdk.DashboardLayout
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err, "failed to decode dashboard layout")
		return
	}

	ctx := r.Context()
	l, err := h.DashboardService.SaveLayout(ctx, fromLayout(httpx.UserIDFromContext(ctx), req))
	if err != nil {
		writeServiceError(w, r, err, "failed to save dashboard layout")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toLayout(l))
}
