package service

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"strings"

	"github.com/vos-crm/crm/internal/crm/domain"
	"github.com/vos-crm/crm/internal/crm/store"
	"github.com/vos-crm/crm/pkg/cryptox"
	"github.com/vos-crm/crm/pkg/idx"
	"github.com/vos-crm/crm/pkg/slogx"
)

var ErrMailFailed = errors.New("invite mail could not be sent")

// InviteInput is what an administrator submits.
type InviteInput struct {
	Email      string `validate:"required,email,max=254"`
	Role       string
	CustomerID string
	CreatedBy  string
}

type InviteService struct {
	Store  store.Store
	Mailer InviteMailer

	// FrontendURL is the base of the registration link.
	FrontendURL string
}

// RegisterLink builds FRONTEND_URL/register?token=...
func RegisterLink(base, token string) string {
	return strings.TrimRight(base, "/") + "/register?token=" + url.QueryEscape(token)
}

// CreateInvite stores a single-use invite and mails the raw token. Only the
// token's SHA-256 is persisted.
func (s *InviteService) CreateInvite(ctx context.Context, in InviteInput) (domain.Invite, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input
	in.Email = domain.NormalizeEmail(in.Email)
	if err := validate.Struct(in); err != nil {
		return domain.Invite{}, validationError(err)
	}
	role := domain.RoleCustomer
	if strings.TrimSpace(in.Role) != "" {
		r, ok := domain.ParseRole(in.Role)
		if !ok {
			return domain.Invite{}, invalid("role must be one of BEHEERDER, MEDEWERKER, KLANT")
		}
		role = r
	}

	// 2. A named customer must exist
	in.CustomerID = strings.TrimSpace(in.CustomerID)
	if in.CustomerID != "" {
		if _, err := s.Store.Customers().GetCustomerByID(ctx, in.CustomerID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return domain.Invite{}, ErrCustomerNotFound
			}
			return domain.Invite{}, err
		}
	}

	// 3. Generate the token and store its fingerprint
	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		log.Error("failed to generate invite token", slog.Any("error", err))
		return domain.Invite{}, err
	}

	ts := now()
	inv := domain.Invite{
		ID:         idx.NewAt(ts).String(),
		Email:      in.Email,
		Role:       role,
		CustomerID: in.CustomerID,
		TokenHash:  cryptox.HashToken(token),
		ExpiresAt:  ts.Add(domain.InviteTTL),
		CreatedBy:  in.CreatedBy,
		CreatedAt:  ts,
	}
	if err := s.Store.Invites().CreateInvite(ctx, inv); err != nil {
		log.Error("failed to create invite", slog.Any("error", err))
		return domain.Invite{}, err
	}

	// 4. Mail the link
	msg := InviteMessage{
		To:        inv.Email,
		Role:      string(inv.Role),
		Link:      RegisterLink(s.FrontendURL, token),
		ExpiresAt: inv.ExpiresAt,
	}
	if err := s.Mailer.SendInvite(ctx, msg); err != nil {
		log.Error("failed to send invite mail",
			slog.String("invite_id", inv.ID),
			slog.Any("error", err),
		)
		return domain.Invite{}, ErrMailFailed
	}

	log.Info("invite created",
		slog.String("invite_id", inv.ID),
		slog.String("role", string(inv.Role)),
		slog.Time("expires_at", inv.ExpiresAt),
	)
	return inv, nil
}

// ValidateInvite reports the e-mail and role of a usable invite. Unknown,
// used and expired tokens all give ErrInviteGone.
func (s *InviteService) ValidateInvite(ctx context.Context, token string) (domain.Invite, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return domain.Invite{}, invalid("token is required")
	}

	inv, err := s.Store.Invites().GetInviteByTokenHash(ctx, cryptox.HashToken(token))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Invite{}, ErrInviteGone
		}
		return domain.Invite{}, err
	}
	if !inv.Usable(now()) {
		return domain.Invite{}, ErrInviteGone
	}
	return inv, nil
}
