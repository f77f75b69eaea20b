package crmsdk

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
)

func (s *Session) ListDocuments(ctx context.Context, customerID string) ([]Document, error) {
	path := "/documents"
	if customerID != "" {
		path += "?customerId=" + url.QueryEscape(customerID)
	}

	var list DocumentList
	if err := s.doJSON(ctx, http.MethodGet, path, nil, &list, http.StatusOK); err != nil {
		return nil, err
	}
	return list.Items, nil
}

// UploadDocument streams r as a multipart upload without buffering it.
func (s *Session) UploadDocument(ctx context.Context, customerID, fileName string, r io.Reader) (*Document, error) {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		err := func() error {
			if err := mw.WriteField("customerId", customerID); err != nil {
				return err
			}
			part, err := mw.CreateFormFile("file", fileName)
			if err != nil {
				return err
			}
			if _, err := io.Copy(part, r); err != nil {
				return err
			}
			return mw.Close()
		}()
		_ = pw.CloseWithError(err)
	}()

	resp, err := s.doRequest(ctx, http.MethodPost, "/documents", pr, map[string]string{
		"Content-Type": mw.FormDataContentType(),
	})
	if err != nil {
		_ = pr.CloseWithError(err)
		return nil, fmt.Errorf("upload %s: %w", fileName, err)
	}

	var doc Document
	if err := decodeJSON(resp, &doc, http.StatusCreated); err != nil {
		return nil, err
	}
	return &doc, nil
}

// DownloadDocument writes the document content into w.
func (s *Session) DownloadDocument(ctx context.Context, id string, w io.Writer) (int64, error) {
	resp, err := s.doRequest(ctx, http.MethodGet, "/documents/"+id+"/download", nil, nil)
	if err != nil {
		return 0, err
	}
	return copyBody(resp, w)
}

func (s *Session) DeleteDocument(ctx context.Context, id string) error {
	return s.doJSON(ctx, http.MethodDelete, "/documents/"+id, nil, nil, http.StatusOK)
}
