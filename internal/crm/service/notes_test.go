package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vos-crm/crm/internal/crm/domain"
)

func TestSanitizeNote(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"<p>Gebeld, <strong>akkoord</strong></p>", "<p>Gebeld, <strong>akkoord</strong></p>"},
		{`<p onclick="steal()">hi</p>`, "<p>hi</p>"},
		{"<script>alert(1)</script>ok", "ok"},
		{`<a href="javascript:alert(1)">x</a>`, "x"},
		{"  <script></script>  ", ""},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, SanitizeNote(tt.in), tt.in)
	}
}

func TestNotes(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &NoteService{Store: st}

	anne := seedUser(t, st, "anne@vos.nl", domain.RoleEmployee, "password1")
	bob := seedUser(t, st, "bob@vos.nl", domain.RoleEmployee, "password1")
	admin := seedUser(t, st, "admin@vos.nl", domain.RoleAdmin, "password1")
	c := seedCustomer(t, st, "Eva", "Smit", "eva@example.com")

	n, err := svc.Create(ctx, c.ID, `<p>Offerte besproken<img src=x onerror="x()"></p>`, anne.ID)
	require.NoError(t, err)
	require.Equal(t, "anne", n.AuthorName)
	require.NotContains(t, n.Content, "onerror")

	cust, err := st.Customers().GetCustomerByID(ctx, c.ID)
	require.NoError(t, err)
	require.True(t, cust.LastActivity.Equal(n.CreatedAt))

	list, err := svc.List(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)

	t.Run("rejections", func(t *testing.T) {
		_, err := svc.Create(ctx, c.ID, "<script>only</script>", anne.ID)
		require.ErrorIs(t, err, ErrInvalidInput)

		_, err = svc.Create(ctx, c.ID, strings.Repeat("a", MaxNoteLength+1), anne.ID)
		require.ErrorIs(t, err, ErrInvalidInput)

		_, err = svc.Create(ctx, "missing", "hello", anne.ID)
		require.ErrorIs(t, err, ErrCustomerNotFound)

		_, err = svc.Create(ctx, "", "hello", anne.ID)
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("only author or admin deletes", func(t *testing.T) {
		require.ErrorIs(t, svc.Delete(ctx, n.ID, bob.ID, bob.Role), ErrForbidden)
		require.NoError(t, svc.Delete(ctx, n.ID, anne.ID, anne.Role))

		other, err := svc.Create(ctx, c.ID, "tweede", bob.ID)
		require.NoError(t, err)
		require.NoError(t, svc.Delete(ctx, other.ID, admin.ID, admin.Role))

		require.ErrorIs(t, svc.Delete(ctx, other.ID, admin.ID, admin.Role), ErrNoteNotFound)
	})
}
