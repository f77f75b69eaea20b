package crm_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vos-crm/crm/pkg/crmsdk"
)

// TestInviteCustomerPortal walks the whole onboarding flow: an employee
// invites a customer contact, the contact registers through the mailed link
// and can then only reach their own account.
func TestInviteCustomerPortal(t *testing.T) {
	c := setupCRMContainer(t)
	client := crmsdk.NewSDKClient(c.URL)
	ctx := context.Background()
	admin := loginAdmin(t, client)

	cust, err := admin.CreateCustomer(ctx, crmsdk.CustomerInput{
		FirstName: "Sophie",
		LastName:  "Jansen",
		Email:     "sophie@example.com",
	})
	require.NoError(t, err)

	inv, err := admin.CreateInvite(ctx, crmsdk.InviteRequest{
		Email:      "sophie@example.com",
		Role:       "KLANT",
		CustomerID: cust.ID,
	})
	require.NoError(t, err)
	require.True(t, inv.OK)

	token := c.inviteToken(t, "sophie@example.com")

	v, err := client.ValidateInvite(ctx, token)
	require.NoError(t, err)
	require.Equal(t, "sophie@example.com", v.Email)
	require.Equal(t, "KLANT", v.Role)

	klant, err := client.Register(ctx, token, "Sophie Jansen", "Welkom!2345")
	require.NoError(t, err)
	require.Equal(t, "KLANT", klant.User().Role)
	require.Equal(t, cust.ID, klant.User().CustomerID)

	// Tokens are single use
	_, err = client.Register(ctx, token, "Sophie Jansen", "Welkom!2345")
	require.True(t, crmsdk.IsStatus(err, http.StatusGone))
	_, err = client.ValidateInvite(ctx, token)
	require.True(t, crmsdk.IsCode(err, crmsdk.ErrorCodeGone))

	again, err := client.Login(ctx, "sophie@example.com", "Welkom!2345")
	require.NoError(t, err)

	_, err = again.ListCustomers(ctx, crmsdk.ListCustomersParams{})
	require.True(t, crmsdk.IsStatus(err, http.StatusForbidden))
	_, err = again.ListUsers(ctx)
	require.True(t, crmsdk.IsStatus(err, http.StatusForbidden))

	users, err := admin.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
}

func TestInviteEmployeeAndPromote(t *testing.T) {
	c := setupCRMContainer(t)
	client := crmsdk.NewSDKClient(c.URL)
	ctx := context.Background()
	admin := loginAdmin(t, client)

	_, err := admin.CreateInvite(ctx, crmsdk.InviteRequest{Email: "anne@vos-crm.nl", Role: "MEDEWERKER"})
	require.NoError(t, err)

	anne, err := client.Register(ctx, c.inviteToken(t, "anne@vos-crm.nl"), "Anne de Vries", "Medewerker!1")
	require.NoError(t, err)
	require.Equal(t, "MEDEWERKER", anne.User().Role)

	// Employees work with customers but cannot manage accounts
	_, err = anne.ListCustomers(ctx, crmsdk.ListCustomersParams{})
	require.NoError(t, err)
	_, err = anne.CreateInvite(ctx, crmsdk.InviteRequest{Email: "x@example.com", Role: "MEDEWERKER"})
	require.True(t, crmsdk.IsStatus(err, http.StatusForbidden))

	u, err := admin.ChangeRole(ctx, anne.User().ID, "BEHEERDER")
	require.NoError(t, err)
	require.Equal(t, "BEHEERDER", u.Role)

	// The role travels in the token, so it applies from the next login
	_, err = anne.ListUsers(ctx)
	require.True(t, crmsdk.IsStatus(err, http.StatusForbidden))

	anne, err = client.Login(ctx, "anne@vos-crm.nl", "Medewerker!1")
	require.NoError(t, err)
	_, err = anne.ListUsers(ctx)
	require.NoError(t, err)
}

func TestInviteUnknownToken(t *testing.T) {
	c := setupCRMContainer(t)
	client := crmsdk.NewSDKClient(c.URL)
	ctx := context.Background()

	_, err := client.ValidateInvite(ctx, "does-not-exist")
	require.True(t, crmsdk.IsStatus(err, http.StatusGone))

	_, err = client.Register(ctx, "does-not-exist", "Iemand", "Wachtwoord!1")
	require.True(t, crmsdk.IsStatus(err, http.StatusGone))
}
