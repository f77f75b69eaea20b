package http

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vos-crm/crm/pkg/crmsdk"
)

func (e *testEnv) upload(t *testing.T, customerID, name string, content []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if customerID != "" {
		require.NoError(t, mw.WriteField("customerId", customerID))
	}
	if name != "" {
		fw, err := mw.CreateFormFile("file", name)
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/documents", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+e.employeeToken)
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func TestDocuments(t *testing.T) {
	env := newTestEnv(t)
	c := env.createCustomer(t, crmsdk.CustomerInput{FirstName: "Jan", LastName: "Jansen", Email: "jan@example.com"})

	rec := env.upload(t, c.ID, "offerte 2026.txt", []byte("hello world"))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	doc := decode[crmsdk.Document](t, rec)
	require.Equal(t, c.ID, doc.CustomerID)
	require.Equal(t, "offerte 2026.txt", doc.OriginalName)
	require.EqualValues(t, 11, doc.Size)
	require.True(t, strings.HasPrefix(doc.MimeType, "text/plain"), doc.MimeType)
	require.Equal(t, env.employee.ID, doc.UploadedBy)
	require.NotContains(t, rec.Body.String(), "path")

	t.Run("listed per customer", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/documents?customerId="+c.ID, env.employeeToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		list := decode[crmsdk.DocumentList](t, rec)
		require.Len(t, list.Items, 1)
		require.Equal(t, doc.ID, list.Items[0].ID)
	})

	t.Run("download", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/documents/"+doc.ID+"/download", env.employeeToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "hello world", rec.Body.String())
		require.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
		require.Contains(t, rec.Header().Get("Content-Disposition"), "offerte 2026.txt")
	})

	t.Run("too large", func(t *testing.T) {
		rec := env.upload(t, c.ID, "big.bin", bytes.Repeat([]byte{'x'}, 200))
		require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
		require.Equal(t, "file_too_large", decode[crmsdk.ErrorResponse](t, rec).Error)
	})

	t.Run("missing parts", func(t *testing.T) {
		rec := env.upload(t, "", "a.txt", []byte("a"))
		require.Equal(t, http.StatusBadRequest, rec.Code)

		rec = env.upload(t, c.ID, "", nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown customer", func(t *testing.T) {
		rec := env.upload(t, "missing", "a.txt", []byte("a"))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("file removed from storage", func(t *testing.T) {
		rec := env.upload(t, c.ID, "gone.txt", []byte("soon gone"))
		require.Equal(t, http.StatusCreated, rec.Code)
		gone := decode[crmsdk.Document](t, rec)

		stored, err := env.store.Documents().GetDocumentByID(context.Background(), gone.ID)
		require.NoError(t, err)
		require.NoError(t, os.Remove(stored.Path))

		rec = env.do(t, http.MethodGet, "/documents/"+gone.ID+"/download", env.employeeToken, nil)
		require.Equal(t, http.StatusGone, rec.Code)

		rec = env.do(t, http.MethodDelete, "/documents/"+gone.ID, env.employeeToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("delete", func(t *testing.T) {
		rec := env.do(t, http.MethodDelete, "/documents/"+doc.ID, env.employeeToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = env.do(t, http.MethodGet, "/documents/"+doc.ID+"/download", env.employeeToken, nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}
