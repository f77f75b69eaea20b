package http

import (
	"net/http"
	"strings"

	"github.com/vos-crm/crm/internal/crm/service"
	"github.com/vos-crm/crm/pkg/crmsdk"
	"github.com/vos-crm/crm/pkg/httpx"
)

type TasksHandler struct {
	TaskService *service.TaskService
}

// HandleList godoc
//
//	@Summary		List tasks
//	@Description	Ordered by deadline (none last), then newest first. assignedTo=me selects the caller's tasks.
//	@Tags			Tasks
//	@Produce		json
//	@Param			customerId	query		string	false	"Customer ID"
//	@Param			assignedTo	query		string	false	"User ID or me"
//	@Param			status		query		string	false	"OPEN, IN_PROGRESS, DONE or CANCELED"
//	@Success		200			{object}	crmsdk.TaskList
//	@Failure		400			{object}	crmsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/tasks [get].
func (h *TasksHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	assignee := strings.TrimSpace(q.Get("assignedTo"))
	if strings.EqualFold(assignee, "me") {
		assignee = httpx.UserIDFromContext(ctx)
	}

	tasks, err := h.TaskService.List(ctx, service.TaskQuery{
		CustomerID: q.Get("customerId"),
		AssignedTo: assignee,
		Status:     q.Get("status"),
	})
	if err != nil {
		writeServiceError(w, r, err, "failed to list tasks")
		return
	}
	resp := crmsdk.TaskList{Items: make([]crmsdk.Task, len(tasks))}
	for i, t := range tasks {
		resp.Items[i] = toTask(t)
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleGet godoc
//
//	@Summary	Get a task
//	@Tags		Tasks
//	@Produce	json
//	@Param		id	path		string	true	"Task ID"
//	@Success	200	{object}	crmsdk.Task
//	@Failure	404	{object}	crmsdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/tasks/{id} [get].
func (h *TasksHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	t, err := h.TaskService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, "failed to get task")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toTask(t))
}

// HandleCreate godoc
//
//	@Summary	Create a task
//	@Tags		Tasks
//	@Accept		json
//	@Produce	json
//	@Param		request	body		crmsdk.TaskInput	true	"Task"
//	@Success	201		{object}	crmsdk.Task
//	@Failure	400		{object}	crmsdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/tasks [post].
func (h *TasksHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in service.TaskInput
	if err := httpx.DecodeJSON(w, r, &in); err != nil {
		writeServiceError(w, r, err, "failed to decode task")
		return
	}

	ctx := r.Context()
	t, err := h.TaskService.Create(ctx, in, httpx.UserIDFromContext(ctx))
	if err != nil {
		writeServiceError(w, r, err, "failed to create task")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toTask(t))
}

// HandleUpdate godoc
//
//	@Summary		Edit a task
//	@Description	Moving a task to DONE records completedAt; leaving DONE clears it.
//	@Tags			Tasks
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Task ID"
//	@Param			request	body		crmsdk.TaskPatch	true	"Fields to change"
//	@Success		200		{object}	crmsdk.Task
//	@Failure		400		{object}	crmsdk.ErrorResponse
//	@Failure		404		{object}	crmsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/tasks/{id} [patch].
func (h *TasksHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var p service.TaskPatch
	if err := httpx.DecodeJSON(w, r, &p); err != nil {
		writeServiceError(w, r, err, "failed to decode task patch")
		return
	}

	t, err := h.TaskService.Update(r.Context(), r.PathValue("id"), p)
	if err != nil {
		writeServiceError(w, r, err, "failed to update task")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toTask(t))
}

// HandleDelete godoc
//
//	@Summary	Delete a task
//	@Tags		Tasks
//	@Produce	json
//	@Param		id	path		string	true	"Task ID"
//	@Success	200	{object}	crmsdk.OKResponse
//	@Failure	404	{object}	crmsdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/tasks/{id} [delete].
func (h *TasksHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.TaskService.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err, "failed to delete task")
		return
	}
	httpx.WriteOK(w)
}
