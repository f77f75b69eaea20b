package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/vos-crm/crm/internal/crm/domain"
	"github.com/vos-crm/crm/internal/crm/store"
	"github.com/vos-crm/crm/pkg/cryptox"
	"github.com/vos-crm/crm/pkg/idx"
	"github.com/vos-crm/crm/pkg/slogx"
)

var (
	ErrSelfDemotion  = errors.New("administrators cannot remove their own administrator role")
	ErrWrongPassword = errors.New("current password is incorrect")
)

type UserService struct {
	Store store.Store
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.Store.Users().ListUsers(ctx)
}

// ChangeRole sets another user's role. actorID is the administrator making
// the change.
func (s *UserService) ChangeRole(ctx context.Context, actorID, userID, role string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	r, ok := domain.ParseRole(role)
	if !ok {
		return domain.User{}, invalid("role must be one of BEHEERDER, MEDEWERKER, KLANT")
	}

	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	if user.ID == actorID && user.Role == domain.RoleAdmin && r != domain.RoleAdmin {
		return domain.User{}, ErrSelfDemotion
	}
	if user.Role == r {
		return user, nil
	}

	prev := user.Role
	user.Role = r
	user.UpdatedAt = now()
	if err := s.Store.Users().UpdateUser(ctx, user); err != nil {
		log.Error("failed to update role", slog.String("user_id", userID), slog.Any("error", err))
		return domain.User{}, err
	}

	log.Info("user role changed",
		slog.String("user_id", user.ID),
		slog.String("from", string(prev)),
		slog.String("to", string(r)),
	)
	return user, nil
}

// ChangePassword replaces the caller's password after checking the current one.
func (s *UserService) ChangePassword(ctx context.Context, userID, current, next string) error {
	log := slogx.FromContext(ctx)

	if len(next) < MinPasswordLength {
		return invalid("newPassword must be at least %d characters", MinPasswordLength)
	}

	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if err := cryptox.VerifyPassword(current, user.PasswordHash); err != nil {
		log.Info("password change rejected", slog.String("user_id", userID))
		return ErrWrongPassword
	}

	hash, err := cryptox.HashPassword(next)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	user.UpdatedAt = now()
	if err := s.Store.Users().UpdateUser(ctx, user); err != nil {
		return err
	}

	log.Info("password changed", slog.String("user_id", userID))
	return nil
}

// SeedUser creates the account or, when the e-mail exists, resets its name,
// role and password. Used by crmctl.
func (s *UserService) SeedUser(ctx context.Context, email, name, role, password string) (domain.User, bool, error) {
	email = domain.NormalizeEmail(email)
	if err := validate.Var(email, "required,email"); err != nil {
		return domain.User{}, false, invalid("email must be a valid e-mail address")
	}
	r, ok := domain.ParseRole(role)
	if !ok {
		return domain.User{}, false, invalid("role must be one of BEHEERDER, MEDEWERKER, KLANT")
	}
	if len(password) < MinPasswordLength {
		return domain.User{}, false, invalid("password must be at least %d characters", MinPasswordLength)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = domain.DefaultName(email)
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, false, err
	}

	var (
		user    domain.User
		created bool
	)
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		ts := now()
		existing, err := tx.Users().GetUserByEmail(ctx, email)
		switch {
		case err == nil:
			existing.Name = name
			existing.Role = r
			existing.PasswordHash = hash
			existing.UpdatedAt = ts
			user = existing
			return tx.Users().UpdateUser(ctx, user)
		case errors.Is(err, store.ErrNotFound):
			user = domain.User{
				ID:           idx.New().String(),
				Email:        email,
				Name:         name,
				Role:         r,
				PasswordHash: hash,
				CreatedAt:    ts,
				UpdatedAt:    ts,
			}
			created = true
			return tx.Users().CreateUser(ctx, user)
		default:
			return err
		}
	})
	if err != nil {
		return domain.User{}, false, err
	}
	return user, created, nil
}
