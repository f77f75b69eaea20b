package http

import (
	"errors"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/vos-crm/crm/internal/crm/service"
	"github.com/vos-crm/crm/pkg/crmsdk"
	"github.com/vos-crm/crm/pkg/httpx"
)

// multipartOverhead is allowed on top of MaxBytes for boundaries, part
// headers and the customerId field.
const multipartOverhead = 1 << 20

// uploadMemory is how much of a multipart body is kept in memory before
// spilling to a temp file.
const uploadMemory = 8 << 20

type DocumentsHandler struct {
	DocumentService *service.DocumentService
}

// HandleList godoc
//
//	@Summary	List documents, newest first
//	@Tags		Documents
//	@Produce	json
//	@Param		customerId	query		string	false	"Only this customer's documents"
//	@Success	200			{object}	crmsdk.DocumentList
//	@Security	BearerAuth
//	@Router		/documents [get].
func (h *DocumentsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	docs, err := h.DocumentService.List(r.Context(), r.URL.Query().Get("customerId"))
	if err != nil {
		writeServiceError(w, r, err, "failed to list documents")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, crmsdk.DocumentList{Items: toDocuments(docs)})
}

// HandleUpload godoc
//
//	@Summary		Upload a document
//	@Description	Multipart form with customerId and file. The MIME type is sniffed when the client sends none.
//	@Tags			Documents
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			customerId	formData	string	true	"Customer ID"
//	@Param			file		formData	file	true	"Document"
//	@Success		201			{object}	crmsdk.Document
//	@Failure		400			{object}	crmsdk.ErrorResponse
//	@Failure		404			{object}	crmsdk.ErrorResponse	"unknown customer"
//	@Failure		413			{object}	crmsdk.ErrorResponse	"file too large"
//	@Security		BearerAuth
//	@Router			/documents [post].
func (h *DocumentsHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	if limit := h.DocumentService.MaxBytes; limit > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, limit+multipartOverhead)
	}
	if err := r.ParseMultipartForm(uploadMemory); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			writeServiceError(w, r, service.ErrFileTooLarge, "")
			return
		}
		writeBadRequest(w, "customerId and file are required")
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	customerID := strings.TrimSpace(r.FormValue("customerId"))
	file, header, err := r.FormFile("file")
	if customerID == "" || err != nil {
		writeBadRequest(w, "customerId and file are required")
		return
	}
	defer file.Close()

	ctx := r.Context()
	doc, err := h.DocumentService.Upload(ctx, service.UploadInput{
		CustomerID: customerID,
		FileName:   header.Filename,
		MimeType:   header.Header.Get("Content-Type"),
		Body:       file,
		UploadedBy: httpx.UserIDFromContext(ctx),
	})
	if err != nil {
		writeServiceError(w, r, err, "failed to upload document")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toDocument(doc))
}

// HandleDownload godoc
//
//	@Summary	Download a document
//	@Tags		Documents
//	@Produce	octet-stream
//	@Param		id	path		string	true	"Document ID"
//	@Success	200	{file}		file
//	@Failure	404	{object}	crmsdk.ErrorResponse
//	@Failure	410	{object}	crmsdk.ErrorResponse	"file gone from storage"
//	@Security	BearerAuth
//	@Router		/documents/{id}/download [get].
func (h *DocumentsHandler) HandleDownload(w http.ResponseWriter, r *http.Request) {
	doc, f, err := h.DocumentService.Open(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, "failed to open document")
		return
	}
	defer f.Close()

	if doc.MimeType != "" {
		w.Header().Set("Content-Type", doc.MimeType)
	}
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{
		"filename": doc.OriginalName,
	}))
	http.ServeContent(w, r, doc.OriginalName, time.Time{}, f)
}

// HandleDelete godoc
//
//	@Summary		Delete a document
//	@Description	Succeeds even when the stored file is already gone.
//	@Tags			Documents
//	@Produce		json
//	@Param			id	path		string	true	"Document ID"
//	@Success		200	{object}	crmsdk.OKResponse
//	@Failure		404	{object}	crmsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/documents/{id} [delete].
func (h *DocumentsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.DocumentService.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err, "failed to delete document")
		return
	}
	httpx.WriteOK(w)
}
