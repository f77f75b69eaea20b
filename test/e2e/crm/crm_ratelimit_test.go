package crm_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vos-crm/crm/pkg/crmsdk"
)

// TestRateLimitLogin verifies that repeated logins for one address are
// throttled by the strict profile (burst of 5).
func TestRateLimitLogin(t *testing.T) {
	c := setupCRMContainerWithDefaultRateLimits(t)
	client := crmsdk.NewSDKClient(c.URL)
	ctx := context.Background()

	var lastErr error
	for i := range 6 {
		_, err := client.Login(ctx, adminEmail, "wrong password")
		require.Error(t, err)
		if i < 5 {
			require.True(t, crmsdk.IsStatus(err, http.StatusUnauthorized), "request %d should not be limited yet", i+1)
		}
		lastErr = err
	}

	require.True(t, crmsdk.IsStatus(lastErr, http.StatusTooManyRequests))
	require.True(t, crmsdk.IsCode(lastErr, crmsdk.ErrorCodeRateLimited))

	// Health checks are not throttled with the login
	_, err := client.GetHealth(ctx)
	require.NoError(t, err)
}
