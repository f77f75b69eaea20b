// Package service holds the CRM business rules. Services are plain structs
// over store.Store; handlers translate their sentinel errors into HTTP
// status codes.
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidInput wraps every validation failure. The wrapped message is
// safe to show to API clients.
var ErrInvalidInput = errors.New("invalid input")

// MinPasswordLength applies to registration and password changes.
const MinPasswordLength = 8

var validate = validator.New(validator.WithRequiredStructEnabled())

// invalid builds an ErrInvalidInput with a client-facing message.
func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// validationError turns validator output into one readable sentence.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return invalid("%v", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := lowerFirst(fe.Field())
		switch fe.Tag() {
		case "required", "required_if":
			msgs = append(msgs, field+" is required")
		case "email":
			msgs = append(msgs, field+" must be a valid e-mail address")
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s characters", field, fe.Param()))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s characters", field, fe.Param()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of %s", field, fe.Param()))
		default:
			msgs = append(msgs, field+" is invalid")
		}
	}
	return invalid("%s", strings.Join(msgs, ", "))
}

// Message extracts the client-facing part of an ErrInvalidInput.
func Message(err error) string {
	msg := err.Error()
	if i := strings.Index(msg, ErrInvalidInput.Error()+": "); i >= 0 {
		return msg[i+len(ErrInvalidInput.Error())+2:]
	}
	return msg
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// now is the service clock: UTC, millisecond precision, which every
// supported database stores losslessly.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// FileStore keeps uploaded document bytes outside the database.
type FileStore interface {
	// Save writes r under a collision-free name derived from originalName
	// and returns the stored name, full path and byte count.
	Save(originalName string, r io.Reader) (fileName, path string, size int64, err error)

	// Open returns os.ErrNotExist (wrapped) when the file is gone.
	Open(path string) (io.ReadSeekCloser, error)

	Remove(path string) error
}

// InviteMailer delivers the registration link.
type InviteMailer interface {
	SendInvite(ctx context.Context, msg InviteMessage) error
}

// InviteMessage is what the invite mail template needs.
type InviteMessage struct {
	To        string
	Role      string
	Link      string
	ExpiresAt time.Time
}
