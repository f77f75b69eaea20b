package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/vos-crm/crm/internal/crm/address"
	"github.com/vos-crm/crm/pkg/crmsdk"
	"github.com/vos-crm/crm/pkg/httpx"
	"github.com/vos-crm/crm/pkg/slogx"
)

// AddressLookup resolves a postcode and house number.
type AddressLookup interface {
	Lookup(ctx context.Context, postcode, number string) (address.Address, error)
}

type AddressHandler struct {
	Lookup AddressLookup
}

// ServeHTTP godoc
//
//	@Summary		Look up an address
//	@Description	Resolves a Dutch postcode and house number to street and city.
//	@Tags			Address
//	@Produce		json
//	@Param			postcode	query		string	true	"Postcode, whitespace is ignored"
//	@Param			number		query		string	true	"House number"
//	@Success		200			{object}	crmsdk.Address
//	@Failure		400			{object}	crmsdk.ErrorResponse
//	@Failure		404			{object}	crmsdk.ErrorResponse	"no such address"
//	@Failure		502			{object}	crmsdk.ErrorResponse	"lookup service unavailable"
//	@Security		BearerAuth
//	@Router			/address/lookup [get].
func (h *AddressHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	postcode := address.NormalizePostcode(q.Get("postcode"))
	number := strings.TrimSpace(q.Get("number"))
	if postcode == "" || number == "" {
		writeBadRequest(w, "postcode and number are required")
		return
	}

	addr, err := h.Lookup.Lookup(r.Context(), postcode, number)
	if err != nil {
		if errors.Is(err, address.ErrUpstream) {
			slogx.FromContext(r.Context()).Warn("address lookup upstream failure", slog.Any("error", err))
		}
		writeServiceError(w, r, err, "address lookup failed")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, crmsdk.Address(addr))
}
