package http

import (
	"net/http"

	"github.com/vos-crm/crm/internal/crm/service"
	"github.com/vos-crm/crm/pkg/crmsdk"
	"github.com/vos-crm/crm/pkg/httpx"
)

type UsersHandler struct {
	UserService *service.UserService
}

// HandleList godoc
//
//	@Summary	List user accounts
//	@Tags		Users
//	@Produce	json
//	@Success	200	{object}	crmsdk.UserList
//	@Failure	401	{object}	crmsdk.ErrorResponse
//	@Failure	403	{object}	crmsdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/users [get].
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserService.ListUsers(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "failed to list users")
		return
	}
	resp := crmsdk.UserList{Items: make([]crmsdk.User, len(users))}
	for i, u := range users {
		resp.Items[i] = toUser(u)
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleChangeRole godoc
//
//	@Summary		Change a user's role
//	@Description	Administrators cannot remove their own administrator role.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"User ID"
//	@Param			request	body		crmsdk.ChangeRoleRequest	true	"New role"
//	@Success		200		{object}	crmsdk.User
//	@Failure		400		{object}	crmsdk.ErrorResponse
//	@Failure		403		{object}	crmsdk.ErrorResponse
//	@Failure		404		{object}	crmsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/users/{id}/role [patch].
func (h *UsersHandler) HandleChangeRole(w http.ResponseWriter, r *http.Request) {
	var req crmsdk.ChangeRoleRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err, "failed to decode role request")
		return
	}

	ctx := r.Context()
	user, err := h.UserService.ChangeRole(ctx, httpx.UserIDFromContext(ctx), r.PathValue("id"), req.Role)
	if err != nil {
		writeServiceError(w, r, err, "failed to change role")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUser(user))
}

// HandleChangePassword godoc
//
//	@Summary	Change own password
//	@Tags		Users
//	@Accept		json
//	@Produce	json
//	@Param		request	body		crmsdk.ChangePasswordRequest	true	"Current and new password"
//	@Success	200		{object}	crmsdk.OKResponse
//	@Failure	400		{object}	crmsdk.ErrorResponse
//	@Failure	401		{object}	crmsdk.ErrorResponse	"current password wrong"
//	@Security	BearerAuth
//	@Router		/users/me/password [put].
func (h *UsersHandler) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	var req crmsdk.ChangePasswordRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err, "failed to decode password request")
		return
	}

	ctx := r.Context()
	if err := h.UserService.ChangePassword(ctx, httpx.UserIDFromContext(ctx), req.CurrentPassword, req.NewPassword); err != nil {
		writeServiceError(w, r, err, "failed to change password")
		return
	}
	httpx.WriteOK(w)
}
