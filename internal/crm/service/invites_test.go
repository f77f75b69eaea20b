package service

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vos-crm/crm/internal/crm/domain"
)

func TestRegisterLink(t *testing.T) {
	t.Parallel()

	require.Equal(t, "http://localhost:5173/register?token=abc", RegisterLink("http://localhost:5173/", "abc"))
	require.Equal(t, "https://crm.vos.nl/register?token=a%2Bb", RegisterLink("https://crm.vos.nl", "a+b"))
}

func TestCreateInvite(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	mailer := &recordingMailer{}
	svc := &InviteService{Store: st, Mailer: mailer, FrontendURL: "http://crm.test"}
	admin := seedUser(t, st, "admin@vos.nl", domain.RoleAdmin, "password1")

	inv, err := svc.CreateInvite(ctx, InviteInput{Email: " Klant@Example.com ", CreatedBy: admin.ID})
	require.NoError(t, err)
	require.Equal(t, "klant@example.com", inv.Email)
	require.Equal(t, domain.RoleCustomer, inv.Role)
	require.WithinDuration(t, time.Now().Add(7*24*time.Hour), inv.ExpiresAt, time.Minute)

	require.Len(t, mailer.sent, 1)
	msg := mailer.sent[0]
	require.Equal(t, "klant@example.com", msg.To)

	link, err := url.Parse(msg.Link)
	require.NoError(t, err)
	require.Equal(t, "/register", link.Path)
	token := link.Query().Get("token")
	require.NotEmpty(t, token)
	require.NotEqual(t, token, inv.TokenHash)

	got, err := svc.ValidateInvite(ctx, token)
	require.NoError(t, err)
	require.Equal(t, inv.ID, got.ID)

	// The mailed token registers an account.
	auth, _ := newAuthService(t, st)
	sess, err := auth.Register(ctx, token, "Klant", "longenough")
	require.NoError(t, err)
	require.Equal(t, domain.RoleCustomer, sess.User.Role)

	_, err = svc.ValidateInvite(ctx, token)
	require.ErrorIs(t, err, ErrInviteGone)
}

func TestCreateInviteRejections(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	t.Run("bad email", func(t *testing.T) {
		svc := &InviteService{Store: st, Mailer: &recordingMailer{}}
		_, err := svc.CreateInvite(ctx, InviteInput{Email: "nope"})
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("bad role", func(t *testing.T) {
		svc := &InviteService{Store: st, Mailer: &recordingMailer{}}
		_, err := svc.CreateInvite(ctx, InviteInput{Email: "a@example.com", Role: "ADMIN"})
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown customer", func(t *testing.T) {
		svc := &InviteService{Store: st, Mailer: &recordingMailer{}}
		_, err := svc.CreateInvite(ctx, InviteInput{Email: "a@example.com", CustomerID: "missing"})
		require.ErrorIs(t, err, ErrCustomerNotFound)
	})

	t.Run("mail failure", func(t *testing.T) {
		mailer := &recordingMailer{fail: true}
		svc := &InviteService{Store: st, Mailer: mailer}
		_, err := svc.CreateInvite(ctx, InviteInput{Email: "a@example.com", Role: "medewerker"})
		require.ErrorIs(t, err, ErrMailFailed)
		require.Empty(t, mailer.sent)
	})
}

func TestValidateInvite(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &InviteService{Store: st, Mailer: &recordingMailer{}}

	_, err := svc.ValidateInvite(ctx, "  ")
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.ValidateInvite(ctx, "unknown")
	require.ErrorIs(t, err, ErrInviteGone)

	expired := seedInvite(t, st, "old@example.com", domain.RoleEmployee, now().Add(-time.Second))
	_, err = svc.ValidateInvite(ctx, expired)
	require.ErrorIs(t, err, ErrInviteGone)

	fresh := seedInvite(t, st, "new@example.com", domain.RoleEmployee, now().Add(time.Hour))
	inv, err := svc.ValidateInvite(ctx, fresh)
	require.NoError(t, err)
	require.Equal(t, "new@example.com", inv.Email)
	require.Equal(t, domain.RoleEmployee, inv.Role)
}
