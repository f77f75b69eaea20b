package address

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	var gotQuery, gotRows string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotRows = r.URL.Query().Get("rows")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"response":{"numFound":1,"docs":[
			{"weergavenaam":"Damrak 1, 1012LG Amsterdam","straatnaam":"Damrak","woonplaatsnaam":"Amsterdam"}
		]}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	addr, err := c.Lookup(context.Background(), " 1012 lg ", "1")
	require.NoError(t, err)
	require.Equal(t, "1012lg 1", gotQuery)
	require.Equal(t, "1", gotRows)
	require.Equal(t, Address{Street: "Damrak 1", City: "Amsterdam", Postcode: "1012lg", HouseNumber: "1"}, addr)
}

func TestLookupFallsBackToStraatnaam(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"response":{"docs":[{"straatnaam":"Kerkstraat","woonplaatsnaam":"Zwolle"}]}}`))
	}))
	defer srv.Close()

	addr, err := NewClient(srv.URL, time.Second).Lookup(context.Background(), "8011AB", "4")
	require.NoError(t, err)
	require.Equal(t, "Kerkstraat", addr.Street)
	require.Equal(t, "Zwolle", addr.City)
}

func TestLookupErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    error
	}{
		{"no docs", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"response":{"numFound":0,"docs":[]}}`))
		}, ErrNotFound},
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}, ErrUpstream},
		{"garbage", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html>`))
		}, ErrUpstream},
		{"slow", func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-time.After(2 * time.Second):
			case <-r.Context().Done():
			}
		}, ErrUpstream},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			_, err := NewClient(srv.URL, 100*time.Millisecond).Lookup(context.Background(), "1012LG", "1")
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLookupUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewClient(url, time.Second).Lookup(context.Background(), "1012LG", "1")
	require.ErrorIs(t, err, ErrUpstream)
}
