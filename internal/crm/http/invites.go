package http

import (
	"net/http"

	"github.com/vos-crm/crm/internal/crm/service"
	"github.com/vos-crm/crm/pkg/crmsdk"
	"github.com/vos-crm/crm/pkg/httpx"
)

type InvitesHandler struct {
	InviteService *service.InviteService
}

// HandleCreate godoc
//
//	@Summary		Invite a user
//	@Description	Stores a single-use invite valid for seven days and mails the registration link.
//	@Description	Role defaults to KLANT. This is an admin-only operation.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		crmsdk.InviteRequest	true	"Invite request"
//	@Success		200		{object}	crmsdk.InviteResponse	"ok, expiresAt"
//	@Failure		400		{object}	crmsdk.ErrorResponse	"error, message"
//	@Failure		403		{object}	crmsdk.ErrorResponse	"error, message"
//	@Failure		404		{object}	crmsdk.ErrorResponse	"unknown customer"
//	@Failure		502		{object}	crmsdk.ErrorResponse	"mail could not be sent"
//	@Security		BearerAuth
//	@Router			/invites [post].
func (h *InvitesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req crmsdk.InviteRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err, "failed to decode invite request")
		return
	}

	inv, err := h.InviteService.CreateInvite(ctx, service.InviteInput{
		Email:      req.Email,
		Role:       req.Role,
		CustomerID: req.CustomerID,
		CreatedBy:  httpx.UserIDFromContext(ctx),
	})
	if err != nil {
		writeServiceError(w, r, err, "failed to create invite")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, crmsdk.InviteResponse{OK: true, ExpiresAt: inv.ExpiresAt})
}

// HandleValidate godoc
//
//	@Summary		Check an invite token
//	@Description	Unknown, used and expired tokens all answer 410.
//	@Tags			Invitations
//	@Produce		json
//	@Param			token	query		string	true	"Raw invite token"
//	@Success		200		{object}	crmsdk.InviteValidation	"email, role"
//	@Failure		400		{object}	crmsdk.ErrorResponse	"token missing"
//	@Failure		410		{object}	crmsdk.ErrorResponse	"invite invalid, used or expired"
//	@Router			/invites/validate [get].
func (h *InvitesHandler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	inv, err := h.InviteService.ValidateInvite(r.Context(), r.URL.Query().Get("token"))
	if err != nil {
		writeServiceError(w, r, err, "failed to validate invite")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, crmsdk.InviteValidation{Email: inv.Email, Role: string(inv.Role)})
}
