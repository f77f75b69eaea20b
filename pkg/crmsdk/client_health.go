package crmsdk

import (
	"context"
	"net/http"
)

// GetHealth checks that the service is up.
func (c *SDKClient) GetHealth(ctx context.Context) (*HealthResponse, error) {
	var health HealthResponse
	if err := c.doJSON(ctx, http.MethodGet, "/health", nil, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}

// GetDBHealth checks the database connection. A failing database comes back
// as an *APIError with status 503.
func (c *SDKClient) GetDBHealth(ctx context.Context) (*DBHealthResponse, error) {
	var health DBHealthResponse
	if err := c.doJSON(ctx, http.MethodGet, "/health/db", nil, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}
