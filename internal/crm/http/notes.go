package http

import (
	"net/http"

	"github.com/vos-crm/crm/internal/crm/domain"
	"github.com/vos-crm/crm/internal/crm/service"
	"github.com/vos-crm/crm/pkg/crmsdk"
	"github.com/vos-crm/crm/pkg/httpx"
)

type NotesHandler struct {
	NoteService *service.NoteService
}

// HandleList godoc
//
//	@Summary	List notes, newest first
//	@Tags		Notes
//	@Produce	json
//	@Param		customerId	query		string	false	"Customer ID"
//	@Success	200			{object}	crmsdk.NoteList
//	@Security	BearerAuth
//	@Router		/notes [get].
func (h *NotesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	notes, err := h.NoteService.List(r.Context(), r.URL.Query().Get("customerId"))
	if err != nil {
		writeServiceError(w, r, err, "failed to list notes")
		return
	}
	resp := crmsdk.NoteList{Items: make([]crmsdk.Note, len(notes))}
	for i, n := range notes {
		resp.Items[i] = toNote(n)
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleCreate godoc
//
//	@Summary		Add a note to a customer
//	@Description	Content is HTML and is sanitised; markup outside the safe subset is dropped.
//	@Tags			Notes
//	@Accept			json
//	@Produce		json
//	@Param			request	body		crmsdk.NoteRequest	true	"Note"
//	@Success		201		{object}	crmsdk.Note
//	@Failure		400		{object}	crmsdk.ErrorResponse
//	@Failure		404		{object}	crmsdk.ErrorResponse	"unknown customer"
//	@Security		BearerAuth
//	@Router			/notes [post].
func (h *NotesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req crmsdk.NoteRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err, "failed to decode note")
		return
	}

	ctx := r.Context()
	n, err := h.NoteService.Create(ctx, req.CustomerID, req.Content, httpx.UserIDFromContext(ctx))
	if err != nil {
		writeServiceError(w, r, err, "failed to create note")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toNote(n))
}

// HandleDelete godoc
//
//	@Summary		Delete a note
//	@Description	Only the author or an administrator may delete a note.
//	@Tags			Notes
//	@Produce		json
//	@Param			id	path		string	true	"Note ID"
//	@Success		200	{object}	crmsdk.OKResponse
//	@Failure		403	{object}	crmsdk.ErrorResponse
//	@Failure		404	{object}	crmsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/notes/{id} [delete].
func (h *NotesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	role := domain.Role(httpx.RoleFromContext(ctx))
	if err := h.NoteService.Delete(ctx, r.PathValue("id"), httpx.UserIDFromContext(ctx), role); err != nil {
		writeServiceError(w, r, err, "failed to delete note")
		return
	}
	httpx.WriteOK(w)
}
