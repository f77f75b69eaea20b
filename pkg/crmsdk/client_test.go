package crmsdk

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newStubServer(t *testing.T, mux *http.ServeMux) *SDKClient {
	t.Helper()

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return NewSDKClient(srv.URL + "/")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestLoginAndAuthorizedCalls(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Password != "secret" {
			writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: ErrorCodeInvalidCredentials, Message: "Invalid email or password"})
			return
		}
		writeJSON(w, http.StatusOK, AuthResponse{
			Token:     "tok",
			ExpiresAt: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
			User:      User{ID: "u1", Email: req.Email, Role: "MEDEWERKER"},
		})
	})
	mux.HandleFunc("GET /customers", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		require.Equal(t, "Sophie", r.URL.Query().Get("q"))
		require.Equal(t, "2", r.URL.Query().Get("page"))
		require.False(t, r.URL.Query().Has("pageSize"))
		writeJSON(w, http.StatusOK, CustomerPage{Total: 1, Page: 2, PageSize: 20, Items: []Customer{{ID: "c1"}}})
	})
	client := newStubServer(t, mux)
	ctx := context.Background()

	_, err := client.Login(ctx, "anne@vos-crm.nl", "wrong")
	require.Error(t, err)
	require.True(t, IsStatus(err, http.StatusUnauthorized))
	require.True(t, IsCode(err, ErrorCodeInvalidCredentials))

	sess, err := client.Login(ctx, "anne@vos-crm.nl", "secret")
	require.NoError(t, err)
	require.Equal(t, "tok", sess.Token())
	require.Equal(t, "u1", sess.User().ID)
	require.Equal(t, 2030, sess.ExpiresAt().Year())

	page, err := sess.ListCustomers(ctx, ListCustomersParams{Q: "Sophie", Page: 2})
	require.NoError(t, err)
	require.Equal(t, 1, page.Total)
	require.Equal(t, "c1", page.Items[0].ID)
}

func TestUploadDocumentSendsMultipart(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /documents", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		f, hdr, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		body, err := io.ReadAll(f)
		require.NoError(t, err)

		writeJSON(w, http.StatusCreated, Document{
			ID:           "d1",
			CustomerID:   r.FormValue("customerId"),
			OriginalName: hdr.Filename,
			Size:         int64(len(body)),
		})
	})
	client := newStubServer(t, mux)
	sess := client.NewSessionFromToken("tok")

	doc, err := sess.UploadDocument(context.Background(), "c1", "offerte.txt", strings.NewReader("hello"))
	require.NoError(t, err)
	require.Equal(t, "c1", doc.CustomerID)
	require.Equal(t, "offerte.txt", doc.OriginalName)
	require.EqualValues(t, 5, doc.Size)
}

func TestErrorParsing(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health/db", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusServiceUnavailable, DBHealthResponse{OK: false, Error: "database is closed"})
	})
	mux.HandleFunc("GET /customers/export", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	client := newStubServer(t, mux)
	ctx := context.Background()

	_, err := client.GetDBHealth(ctx)
	require.True(t, IsStatus(err, http.StatusServiceUnavailable))
	require.ErrorContains(t, err, "database is closed")

	var sb strings.Builder
	_, err = client.NewSessionFromToken("tok").ExportCustomers(ctx, &sb)
	require.True(t, IsStatus(err, http.StatusInternalServerError))
	require.Empty(t, sb.String())

	_, err = client.GetHealth(ctx)
	require.True(t, IsCode(err, "not_found"))
}

func TestListCustomersQuery(t *testing.T) {
	t.Parallel()

	require.Empty(t, ListCustomersParams{}.query())
	require.Equal(t, "?order=asc&pageSize=5&sort=email", ListCustomersParams{Sort: "email", Order: "asc", PageSize: 5}.query())
}
