package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/vos-crm/crm/internal/crm/domain"
	"github.com/vos-crm/crm/internal/crm/store"
	"github.com/vos-crm/crm/pkg/cryptox"
	"github.com/vos-crm/crm/pkg/idx"
	"github.com/vos-crm/crm/pkg/jwtx"
	"github.com/vos-crm/crm/pkg/slogx"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInviteGone         = errors.New("invite is invalid, used or expired")
	ErrEmailTaken         = errors.New("an account with this e-mail already exists")
	ErrUserNotFound       = errors.New("user not found")
)

// Session is what login and registration hand back to the client.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      domain.User
}

type AuthService struct {
	Store  store.Store
	Signer jwtx.Signer
	Issuer string
	TTL    time.Duration
}

var (
	dummyHashOnce sync.Once
	dummyHash     string
)

// burnPasswordCheck spends the same work as a real verification so unknown
// e-mail addresses cannot be told apart by response time.
func burnPasswordCheck(password string) {
	dummyHashOnce.Do(func() {
		dummyHash, _ = cryptox.HashPassword("not-a-real-password")
	})
	if dummyHash != "" {
		_ = cryptox.VerifyPassword(password, dummyHash)
	}
}

// Login checks an e-mail/password pair and issues a bearer token.
func (s *AuthService) Login(ctx context.Context, email, password string) (Session, error) {
	log := slogx.FromContext(ctx)

	email = domain.NormalizeEmail(email)
	if email == "" || password == "" {
		return Session{}, invalid("email and password are required")
	}

	// 1. Look the account up; unknown addresses still pay for a hash.
	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			burnPasswordCheck(password)
			log.Info("login failed", slog.String("reason", "unknown_email"))
			return Session{}, ErrInvalidCredentials
		}
		log.Error("failed to load user", slog.Any("error", err))
		return Session{}, err
	}

	// 2. Verify the password.
	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		if !errors.Is(err, cryptox.ErrPasswordMismatch) {
			log.Error("password verification failed", slog.String("user_id", user.ID), slog.Any("error", err))
		}
		log.Info("login failed", slog.String("reason", "bad_password"), slog.String("user_id", user.ID))
		return Session{}, ErrInvalidCredentials
	}

	// 3. Upgrade legacy bcrypt hashes while we hold the plaintext.
	if cryptox.NeedsRehash(user.PasswordHash) {
		s.rehash(ctx, user, password)
	}

	sess, err := s.issue(user)
	if err != nil {
		log.Error("failed to sign token", slog.Any("error", err))
		return Session{}, err
	}

	log.Info("user logged in", slog.String("user_id", user.ID), slog.String("role", string(user.Role)))
	return sess, nil
}

func (s *AuthService) rehash(ctx context.Context, user domain.User, password string) {
	log := slogx.FromContext(ctx)

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Warn("password rehash failed", slog.String("user_id", user.ID), slog.Any("error", err))
		return
	}
	user.PasswordHash = hash
	user.UpdatedAt = now()
	if err := s.Store.Users().UpdateUser(ctx, user); err != nil {
		log.Warn("password rehash not stored", slog.String("user_id", user.ID), slog.Any("error", err))
		return
	}
	log.Info("password hash upgraded", slog.String("user_id", user.ID))
}

// Register consumes an invite and creates the account it was issued for.
// It performs the following steps:
// 1. Validates input
// 2. Looks the invite up by token hash and checks it is still usable
// 3. Rejects e-mail addresses that already have an account
// 4. Marks the invite used and creates the user in one transaction
// 5. Issues a token for the new account
func (s *AuthService) Register(ctx context.Context, token, name, password string) (Session, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input
	token = strings.TrimSpace(token)
	if token == "" || password == "" {
		return Session{}, invalid("token and password are required")
	}
	if len(password) < MinPasswordLength {
		return Session{}, invalid("password must be at least %d characters", MinPasswordLength)
	}

	// 2. Find a usable invite
	ts := now()
	invite, err := s.Store.Invites().GetInviteByTokenHash(ctx, cryptox.HashToken(token))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("registration with unknown invite token")
			return Session{}, ErrInviteGone
		}
		log.Error("failed to fetch invite", slog.Any("error", err))
		return Session{}, err
	}
	if !invite.Usable(ts) {
		log.Warn("registration with unusable invite", slog.String("invite_id", invite.ID))
		return Session{}, ErrInviteGone
	}

	// 3. One account per address
	if _, err := s.Store.Users().GetUserByEmail(ctx, invite.Email); err == nil {
		log.Warn("registration for existing account", slog.String("invite_id", invite.ID))
		return Session{}, ErrEmailTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return Session{}, err
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return Session{}, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = domain.DefaultName(invite.Email)
	}
	user := domain.User{
		ID:           idx.New().String(),
		Email:        invite.Email,
		Name:         name,
		Role:         invite.Role,
		PasswordHash: hash,
		CustomerID:   invite.CustomerID,
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}

	// 4. Consume the invite and create the user atomically. The conditional
	// update decides the winner when the same token is redeemed twice.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Invites().MarkInviteUsed(ctx, invite.ID, ts); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInviteGone
			}
			return err
		}
		if err := tx.Users().CreateUser(ctx, user); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrEmailTaken
			}
			return err
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrInviteGone) && !errors.Is(err, ErrEmailTaken) {
			log.Error("failed to register user", slog.String("invite_id", invite.ID), slog.Any("error", err))
		}
		return Session{}, err
	}

	log.Info("user registered via invite",
		slog.String("user_id", user.ID),
		slog.String("invite_id", invite.ID),
		slog.String("role", string(user.Role)),
	)

	// 5. Issue token
	return s.issue(user)
}

// Me returns the account behind a token subject.
func (s *AuthService) Me(ctx context.Context, userID string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, ErrUserNotFound
	}
	return u, err
}

func (s *AuthService) issue(user domain.User) (Session, error) {
	ttl := s.TTL
	if ttl <= 0 {
		ttl = jwtx.DefaultAccessTokenTTL
	}
	claims := jwtx.NewAccessClaims(user.ID, string(user.Role), user.Email, ttl, s.Issuer, time.Now())
	token, err := s.Signer.Sign(claims)
	if err != nil {
		return Session{}, err
	}
	return Session{Token: token, ExpiresAt: claims.ExpiresAt.Time.UTC(), User: user}, nil
}
