package http

import (
	"net/http"

	"github.com/vos-crm/crm/internal/crm/service"
	"github.com/vos-crm/crm/pkg/crmsdk"
	"github.com/vos-crm/crm/pkg/httpx"
)

type PipelineHandler struct {
	PipelineService *service.PipelineService
}

// HandleListStages godoc
//
//	@Summary	List pipeline stages in order
//	@Tags		Pipeline
//	@Produce	json
//	@Success	200	{object}	crmsdk.StageList
//	@Security	BearerAuth
//	@Router		/pipeline/stages [get].
func (h *PipelineHandler) HandleListStages(w http.ResponseWriter, r *http.Request) {
	stages, err := h.PipelineService.ListStages(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "failed to list stages")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, crmsdk.StageList{Items: toStages(stages)})
}

// HandleReplaceStages godoc
//
//	@Summary		Replace the stage list
//	@Description	Order follows list position. Removing or renaming a stage that still has customers fails with 409.
//	@Tags			Pipeline
//	@Accept			json
//	@Produce		json
//	@Param			request	body		[]crmsdk.StageInput	true	"Complete stage list"
//	@Success		200		{object}	crmsdk.StageList
//	@Failure		400		{object}	crmsdk.ErrorResponse
//	@Failure		403		{object}	crmsdk.ErrorResponse
//	@Failure		409		{object}	crmsdk.ErrorResponse	"stage in use"
//	@Security		BearerAuth
//	@Router			/pipeline/stages [put].
func (h *PipelineHandler) HandleReplaceStages(w http.ResponseWriter, r *http.Request) {
	var req []crmsdk.StageInput
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err, "failed to decode stages")
		return
	}

	in := make([]service.StageInput, len(req))
	for i, s := range req {
		in[i] = service.StageInput(s)
	}
	stages, err := h.PipelineService.ReplaceStages(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, err, "failed to replace stages")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, crmsdk.StageList{Items: toStages(stages)})
}

// HandleBoard godoc
//
//	@Summary		Kanban board
//	@Description	Customers grouped by stage, most recent activity first. Customers in no known stage are listed as unassigned.
//	@Tags			Pipeline
//	@Produce		json
//	@Success		200	{object}	crmsdk.Board
//	@Security		BearerAuth
//	@Router			/pipeline/board [get].
func (h *PipelineHandler) HandleBoard(w http.ResponseWriter, r *http.Request) {
	board, err := h.PipelineService.Board(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "failed to build board")
		return
	}

	resp := crmsdk.Board{
		Columns:    make([]crmsdk.BoardColumn, len(board.Columns)),
		Unassigned: toCustomers(board.Unassigned),
	}
	for i, col := range board.Columns {
		resp.Columns[i] = crmsdk.BoardColumn{Stage: toStage(col.Stage), Customers: toCustomers(col.Customers)}
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}
