package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/vos-crm/crm/internal/crm/domain"
	"github.com/vos-crm/crm/internal/crm/store"
	"github.com/vos-crm/crm/pkg/idx"
	"github.com/vos-crm/crm/pkg/slogx"
)

var (
	ErrNoteNotFound = errors.New("note not found")
	ErrForbidden    = errors.New("not allowed")
)

// MaxNoteLength bounds note content before sanitising.
const MaxNoteLength = 20000

// notePolicy is safe for concurrent use once built.
var notePolicy = bluemonday.UGCPolicy()

// SanitizeNote strips scripts, handlers and unknown markup from user HTML.
func SanitizeNote(content string) string {
	return strings.TrimSpace(notePolicy.Sanitize(content))
}

type NoteService struct {
	Store store.Store
}

func (s *NoteService) List(ctx context.Context, customerID string) ([]domain.Note, error) {
	notes, err := s.Store.Notes().ListNotes(ctx, strings.TrimSpace(customerID))
	if err != nil {
		return nil, err
	}
	if notes == nil {
		notes = []domain.Note{}
	}
	return notes, nil
}

// Create adds a note on behalf of authorID and bumps the customer's
// last activity.
func (s *NoteService) Create(ctx context.Context, customerID, content, authorID string) (domain.Note, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return domain.Note{}, invalid("customerId is required")
	}
	if len(content) > MaxNoteLength {
		return domain.Note{}, invalid("content must be at most %d characters", MaxNoteLength)
	}
	clean := SanitizeNote(content)
	if clean == "" {
		return domain.Note{}, invalid("content is required")
	}

	author, err := s.Store.Users().GetUserByID(ctx, authorID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Note{}, ErrUserNotFound
		}
		return domain.Note{}, err
	}

	ts := now()
	n := domain.Note{
		ID:         idx.NewAt(ts).String(),
		CustomerID: customerID,
		AuthorID:   author.ID,
		AuthorName: author.Name,
		Content:    clean,
		CreatedAt:  ts,
	}
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Customers().TouchCustomer(ctx, customerID, ts); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrCustomerNotFound
			}
			return err
		}
		return tx.Notes().CreateNote(ctx, n)
	})
	if err != nil {
		return domain.Note{}, err
	}

	slogx.FromContext(ctx).Info("note created", slog.String("note_id", n.ID), slog.String("customer_id", customerID))
	return n, nil
}

// Delete removes a note. Only its author or an administrator may do so.
func (s *NoteService) Delete(ctx context.Context, id, actorID string, actorRole domain.Role) error {
	n, err := s.Store.Notes().GetNoteByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNoteNotFound
		}
		return err
	}
	if n.AuthorID != actorID && actorRole != domain.RoleAdmin {
		return ErrForbidden
	}
	if err := s.Store.Notes().DeleteNote(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNoteNotFound
		}
		return err
	}
	slogx.FromContext(ctx).Info("note deleted", slog.String("note_id", id))
	return nil
}
