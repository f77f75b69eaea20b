package http

import (
	"net/http"

	"github.com/vos-crm/crm/internal/crm/service"
	"github.com/vos-crm/crm/pkg/crmsdk"
	"github.com/vos-crm/crm/pkg/httpx"
)

type AuthHandler struct {
	AuthService *service.AuthService
}

// HandleLogin godoc
//
//	@Summary		Log in
//	@Description	Exchange e-mail and password for a bearer token valid for seven days.
//	@Description	Unknown e-mail and wrong password give the same 401 body.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		crmsdk.LoginRequest		true	"Credentials"
//	@Success		200		{object}	crmsdk.AuthResponse		"token, expiresAt, user"
//	@Failure		400		{object}	crmsdk.ErrorResponse	"error, message"
//	@Failure		401		{object}	crmsdk.ErrorResponse	"error, message"
//	@Failure		429		{object}	crmsdk.ErrorResponse	"error, message"
//	@Router			/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req crmsdk.LoginRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err, "failed to decode login request")
		return
	}

	sess, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err, "login failed")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toSession(sess))
}

// HandleRegister godoc
//
//	@Summary		Register with an invite
//	@Description	Redeem an invite token, create the account and log in. A token can be redeemed once.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		crmsdk.RegisterRequest	true	"Invite token, name and password"
//	@Success		200		{object}	crmsdk.AuthResponse		"token, expiresAt, user"
//	@Failure		400		{object}	crmsdk.ErrorResponse	"error, message"
//	@Failure		409		{object}	crmsdk.ErrorResponse	"account already exists"
//	@Failure		410		{object}	crmsdk.ErrorResponse	"invite invalid, used or expired"
//	@Router			/auth/register [post].
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req crmsdk.RegisterRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err, "failed to decode register request")
		return
	}

	sess, err := h.AuthService.Register(r.Context(), req.Token, req.Name, req.Password)
	if err != nil {
		writeServiceError(w, r, err, "registration failed")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toSession(sess))
}

// HandleMe godoc
//
//	@Summary		Current user
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	crmsdk.User
//	@Failure		401	{object}	crmsdk.ErrorResponse	"error, message"
//	@Failure		404	{object}	crmsdk.ErrorResponse	"account no longer exists"
//	@Security		BearerAuth
//	@Router			/auth/me [get].
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	user, err := h.AuthService.Me(r.Context(), httpx.UserIDFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, r, err, "failed to load current user")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUser(user))
}
