package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"mime"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/vos-crm/crm/internal/crm/domain"
	"github.com/vos-crm/crm/internal/crm/store"
	"github.com/vos-crm/crm/pkg/idx"
	"github.com/vos-crm/crm/pkg/slogx"
)

var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrFileGone         = errors.New("document file is no longer available")
	ErrFileTooLarge     = errors.New("file exceeds the upload limit")
)

// sniffLen is how much of an upload is inspected when the client sent no
// usable content type.
const sniffLen = 3072

// UploadInput describes one multipart upload.
type UploadInput struct {
	CustomerID string
	FileName   string
	MimeType   string // from the part header, may be empty
	Body       io.Reader
	UploadedBy string
}

type DocumentService struct {
	Store store.Store
	Files FileStore

	// MaxBytes caps the stored file size; zero means no cap.
	MaxBytes int64
}

// List returns documents newest first; an empty customerID lists all.
func (s *DocumentService) List(ctx context.Context, customerID string) ([]domain.Document, error) {
	docs, err := s.Store.Documents().ListDocuments(ctx, strings.TrimSpace(customerID))
	if err != nil {
		return nil, err
	}
	if docs == nil {
		docs = []domain.Document{}
	}
	return docs, nil
}

// detectMime keeps a meaningful client supplied type and otherwise sniffs
// the leading bytes.
func detectMime(declared string, head []byte) string {
	if declared != "" {
		if mt, _, err := mime.ParseMediaType(declared); err == nil && mt != "application/octet-stream" {
			return declared
		}
	}
	return mimetype.Detect(head).String()
}

// Upload stores the file and its metadata row. If the row cannot be written
// the file is removed again.
func (s *DocumentService) Upload(ctx context.Context, in UploadInput) (domain.Document, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input and the owning customer
	in.CustomerID = strings.TrimSpace(in.CustomerID)
	name := filepath.Base(strings.ReplaceAll(in.FileName, `\`, "/"))
	if in.CustomerID == "" || in.Body == nil || name == "" || name == "." || name == "/" {
		return domain.Document{}, invalid("customerId and file are required")
	}
	if _, err := s.Store.Customers().GetCustomerByID(ctx, in.CustomerID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Document{}, ErrCustomerNotFound
		}
		return domain.Document{}, err
	}

	// 2. Sniff the content type from the first bytes
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(in.Body, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return domain.Document{}, fmt.Errorf("read upload: %w", err)
	}
	head = head[:n]
	mimeType := detectMime(strings.TrimSpace(in.MimeType), head)

	// 3. Write to disk, enforcing the size cap
	body := io.MultiReader(bytes.NewReader(head), in.Body)
	if s.MaxBytes > 0 {
		body = io.LimitReader(body, s.MaxBytes+1)
	}
	fileName, path, size, err := s.Files.Save(name, body)
	if err != nil {
		log.Error("failed to store upload", slog.Any("error", err))
		return domain.Document{}, err
	}
	if s.MaxBytes > 0 && size > s.MaxBytes {
		s.removeFile(ctx, path)
		return domain.Document{}, ErrFileTooLarge
	}

	ts := now()
	doc := domain.Document{
		ID:           idx.NewAt(ts).String(),
		CustomerID:   in.CustomerID,
		OriginalName: name,
		FileName:     fileName,
		MimeType:     mimeType,
		Size:         size,
		Path:         path,
		UploadedBy:   in.UploadedBy,
		CreatedAt:    ts,
	}

	// 4. Persist the row and mark customer activity
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Documents().CreateDocument(ctx, doc); err != nil {
			return err
		}
		return tx.Customers().TouchCustomer(ctx, doc.CustomerID, ts)
	})
	if err != nil {
		s.removeFile(ctx, path)
		if errors.Is(err, store.ErrReferenced) || errors.Is(err, store.ErrNotFound) {
			return domain.Document{}, ErrCustomerNotFound
		}
		log.Error("failed to save document row", slog.Any("error", err))
		return domain.Document{}, err
	}

	log.Info("document uploaded",
		slog.String("document_id", doc.ID),
		slog.String("customer_id", doc.CustomerID),
		slog.String("mime_type", doc.MimeType),
		slog.Int64("size", doc.Size),
	)
	return doc, nil
}

// Open returns the document row and its content. The caller closes the reader.
func (s *DocumentService) Open(ctx context.Context, id string) (domain.Document, io.ReadSeekCloser, error) {
	doc, err := s.Store.Documents().GetDocumentByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Document{}, nil, ErrDocumentNotFound
		}
		return domain.Document{}, nil, err
	}

	f, err := s.Files.Open(doc.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slogx.FromContext(ctx).Warn("document file missing", slog.String("document_id", doc.ID))
			return domain.Document{}, nil, ErrFileGone
		}
		return domain.Document{}, nil, err
	}
	return doc, f, nil
}

// Delete removes the row, then the file. A file that is already gone, or
// cannot be removed, does not fail the delete.
func (s *DocumentService) Delete(ctx context.Context, id string) error {
	doc, err := s.Store.Documents().GetDocumentByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrDocumentNotFound
		}
		return err
	}
	if err := s.Store.Documents().DeleteDocument(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrDocumentNotFound
		}
		return err
	}

	s.removeFile(ctx, doc.Path)
	slogx.FromContext(ctx).Info("document deleted", slog.String("document_id", id))
	return nil
}

func (s *DocumentService) removeFile(ctx context.Context, path string) {
	if err := s.Files.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slogx.FromContext(ctx).Warn("failed to remove document file",
			slog.String("path", path),
			slog.Any("error", err),
		)
	}
}
