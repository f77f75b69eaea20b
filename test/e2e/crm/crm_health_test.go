package crm_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vos-crm/crm/pkg/crmsdk"
)

func TestHealth(t *testing.T) {
	c := setupCRMContainer(t)
	client := crmsdk.NewSDKClient(c.URL)
	ctx := context.Background()

	health, err := client.GetHealth(ctx)
	require.NoError(t, err)
	require.True(t, health.OK)
	require.Equal(t, "test", health.Env)
	require.NotEmpty(t, health.Version)

	db, err := client.GetDBHealth(ctx)
	require.NoError(t, err)
	require.True(t, db.OK)
}

func TestLoginAndSession(t *testing.T) {
	c := setupCRMContainer(t)
	client := crmsdk.NewSDKClient(c.URL)
	ctx := context.Background()

	_, err := client.Login(ctx, adminEmail, "wrong password")
	require.True(t, crmsdk.IsStatus(err, http.StatusUnauthorized))
	require.True(t, crmsdk.IsCode(err, crmsdk.ErrorCodeInvalidCredentials))

	// Addresses are matched case-insensitively
	sess, err := client.Login(ctx, "ADMIN@voscrm.local", adminPassword)
	require.NoError(t, err)

	me, err := sess.Me(ctx)
	require.NoError(t, err)
	require.Equal(t, adminEmail, me.Email)

	_, err = client.NewSessionFromToken("not-a-token").Me(ctx)
	require.True(t, crmsdk.IsStatus(err, http.StatusUnauthorized))

	require.NoError(t, sess.ChangePassword(ctx, adminPassword, "Nieuw!wachtwoord1"))
	_, err = client.Login(ctx, adminEmail, adminPassword)
	require.Error(t, err)
	_, err = client.Login(ctx, adminEmail, "Nieuw!wachtwoord1")
	require.NoError(t, err)
}
