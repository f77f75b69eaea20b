package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vos-crm/crm/internal/crm/address"
	"github.com/vos-crm/crm/internal/crm/domain"
	"github.com/vos-crm/crm/internal/crm/files"
	"github.com/vos-crm/crm/internal/crm/service"
	"github.com/vos-crm/crm/internal/crm/store"
	"github.com/vos-crm/crm/internal/crm/store/drivers/sqlite"
	"github.com/vos-crm/crm/pkg/crmsdk"
	"github.com/vos-crm/crm/pkg/cryptox"
	"github.com/vos-crm/crm/pkg/idx"
	"github.com/vos-crm/crm/pkg/jwtx"
	"github.com/vos-crm/crm/pkg/slogx"
)

const (
	testSecret   = "0123456789abcdef0123456789abcdef"
	testIssuer   = "vos-crm"
	testPassword = "correct horse"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "crm-http-test")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

type sentMails struct {
	mu   sync.Mutex
	msgs []service.InviteMessage
	fail bool
}

func (m *sentMails) SendInvite(_ context.Context, msg service.InviteMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return fmt.Errorf("smtp: connection refused")
	}
	m.msgs = append(m.msgs, msg)
	return nil
}

func (m *sentMails) last() service.InviteMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.msgs[len(m.msgs)-1]
}

type fakeLookup struct {
	addr address.Address
	err  error
}

func (f *fakeLookup) Lookup(_ context.Context, postcode, number string) (address.Address, error) {
	if f.err != nil {
		return address.Address{}, f.err
	}
	a := f.addr
	a.Postcode, a.HouseNumber = postcode, number
	return a, nil
}

// testEnv is a router over an in-memory database with one account per role.
type testEnv struct {
	router *Router
	store  store.Store
	signer *jwtx.HS256
	mails  *sentMails
	lookup *fakeLookup

	admin, employee, customer domain.User
	adminToken                string
	employeeToken             string
	customerToken             string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	disk, err := files.NewDisk(t.TempDir())
	require.NoError(t, err)

	hs, err := jwtx.NewHS256([]byte(testSecret), testIssuer)
	require.NoError(t, err)

	env := &testEnv{
		store:  st,
		signer: hs,
		mails:  &sentMails{},
		lookup: &fakeLookup{addr: address.Address{Street: "Damrak 1", City: "Amsterdam"}},
	}

	r := NewRouter(hs, "test", "test", st, slogx.Discard(), []string{"*"})
	r.AuthService = &service.AuthService{Store: st, Signer: hs, Issuer: testIssuer, TTL: jwtx.DefaultAccessTokenTTL}
	r.UserService = &service.UserService{Store: st}
	r.CustomerService = &service.CustomerService{Store: st, Files: disk}
	r.DocumentService = &service.DocumentService{Store: st, Files: disk, MaxBytes: 64}
	r.InviteService = &service.InviteService{Store: st, Mailer: env.mails, FrontendURL: "http://crm.test"}
	r.PipelineService = &service.PipelineService{Store: st}
	r.TaskService = &service.TaskService{Store: st}
	r.NoteService = &service.NoteService{Store: st}
	r.DashboardService = &service.DashboardService{Store: st}
	r.AddressLookup = env.lookup
	r.ApplyRoutes()
	env.router = r

	env.admin, env.adminToken = env.seedUser(t, "beheer@vos-crm.nl", domain.RoleAdmin)
	env.employee, env.employeeToken = env.seedUser(t, "anne@vos-crm.nl", domain.RoleEmployee)
	env.customer, env.customerToken = env.seedUser(t, "klant@example.com", domain.RoleCustomer)
	return env
}

func (e *testEnv) seedUser(t *testing.T, email string, role domain.Role) (domain.User, string) {
	t.Helper()

	hash, err := cryptox.HashPassword(testPassword)
	require.NoError(t, err)
	ts := time.Now().UTC().Truncate(time.Millisecond)
	u := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		Name:         domain.DefaultName(email),
		Role:         role,
		PasswordHash: hash,
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}
	require.NoError(t, e.store.Users().CreateUser(context.Background(), u))

	token, err := e.signer.Sign(jwtx.NewAccessClaims(u.ID, string(role), email, time.Hour, testIssuer, time.Now()))
	require.NoError(t, err)
	return u, token
}

// do sends a request through the full middleware chain. A non-nil body is
// JSON encoded unless it is already an io.Reader.
func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var rdr io.Reader
	switch b := body.(type) {
	case nil:
	case io.Reader:
		rdr = b
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		rdr = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, rdr)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func (e *testEnv) createCustomer(t *testing.T, in crmsdk.CustomerInput) crmsdk.Customer {
	t.Helper()

	rec := e.do(t, http.MethodPost, "/customers", e.employeeToken, in)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[crmsdk.Customer](t, rec)
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)

	t.Run("valid credentials", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/auth/login", "", crmsdk.LoginRequest{Email: "Anne@vos-crm.nl", Password: testPassword})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

		resp := decode[crmsdk.AuthResponse](t, rec)
		require.Equal(t, env.employee.ID, resp.User.ID)
		require.Equal(t, "MEDEWERKER", resp.User.Role)

		claims, err := env.signer.Verify(resp.Token)
		require.NoError(t, err)
		require.Equal(t, env.employee.ID, claims.Subject)
	})

	t.Run("wrong password and unknown email answer identically", func(t *testing.T) {
		wrong := env.do(t, http.MethodPost, "/auth/login", "", crmsdk.LoginRequest{Email: "anne@vos-crm.nl", Password: "nope"})
		unknown := env.do(t, http.MethodPost, "/auth/login", "", crmsdk.LoginRequest{Email: "ghost@vos-crm.nl", Password: "nope"})
		require.Equal(t, http.StatusUnauthorized, wrong.Code)
		require.Equal(t, http.StatusUnauthorized, unknown.Code)
		require.JSONEq(t, `{"error":"invalid_credentials","message":"Invalid email or password"}`, wrong.Body.String())
		require.Equal(t, wrong.Body.String(), unknown.Body.String())
	})

	t.Run("missing fields", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/auth/login", "", crmsdk.LoginRequest{Email: "x@vos-crm.nl"})
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/auth/login", "", bytes.NewBufferString("{"))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "invalid_request", decode[crmsdk.ErrorResponse](t, rec).Error)
	})
}

func TestLoginRateLimited(t *testing.T) {
	env := newTestEnv(t)

	var last int
	for range 10 {
		rec := env.do(t, http.MethodPost, "/auth/login", "", crmsdk.LoginRequest{Email: "anne@vos-crm.nl", Password: "nope"})
		last = rec.Code
	}
	require.Equal(t, http.StatusTooManyRequests, last)
}

func TestAuthentication(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/auth/me", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Header().Get("WWW-Authenticate"), "Bearer")

	rec = env.do(t, http.MethodGet, "/auth/me", "not-a-jwt", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	expired, err := env.signer.Sign(jwtx.NewAccessClaims(env.admin.ID, "BEHEERDER", env.admin.Email, time.Hour, testIssuer, time.Now().Add(-2*time.Hour)))
	require.NoError(t, err)
	rec = env.do(t, http.MethodGet, "/auth/me", expired, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(t, http.MethodGet, "/auth/me", env.adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, env.admin.Email, decode[crmsdk.User](t, rec).Email)
}

func TestRoleEnforcement(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		want   int
	}{
		{"customer cannot list customers", http.MethodGet, "/customers", env.customerToken, http.StatusForbidden},
		{"customer cannot read tasks", http.MethodGet, "/tasks", env.customerToken, http.StatusForbidden},
		{"employee lists customers", http.MethodGet, "/customers", env.employeeToken, http.StatusOK},
		{"employee cannot list users", http.MethodGet, "/users", env.employeeToken, http.StatusForbidden},
		{"admin lists users", http.MethodGet, "/users", env.adminToken, http.StatusOK},
		{"employee cannot invite", http.MethodPost, "/invites", env.employeeToken, http.StatusForbidden},
		{"employee cannot edit stages", http.MethodPut, "/pipeline/stages", env.employeeToken, http.StatusForbidden},
		{"employee cannot delete customers", http.MethodDelete, "/customers/x", env.employeeToken, http.StatusForbidden},
		{"customer reads own account", http.MethodGet, "/auth/me", env.customerToken, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, tt.method, tt.path, tt.token, nil)
			require.Equal(t, tt.want, rec.Code, rec.Body.String())
		})
	}
}

func TestUsersEndpoints(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/users", env.adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	users := decode[crmsdk.UserList](t, rec)
	require.Len(t, users.Items, 3)
	require.NotContains(t, rec.Body.String(), "argon2")

	rec = env.do(t, http.MethodPatch, "/users/"+env.employee.ID+"/role", env.adminToken, crmsdk.ChangeRoleRequest{Role: "BEHEERDER"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Equal(t, "BEHEERDER", decode[crmsdk.User](t, rec).Role)

	rec = env.do(t, http.MethodPatch, "/users/"+env.admin.ID+"/role", env.adminToken, crmsdk.ChangeRoleRequest{Role: "KLANT"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPatch, "/users/"+idx.New().String()+"/role", env.adminToken, crmsdk.ChangeRoleRequest{Role: "KLANT"})
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodPut, "/users/me/password", env.customerToken, crmsdk.ChangePasswordRequest{CurrentPassword: "wrong", NewPassword: "longenough"})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(t, http.MethodPut, "/users/me/password", env.customerToken, crmsdk.ChangePasswordRequest{CurrentPassword: testPassword, NewPassword: "short"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPut, "/users/me/password", env.customerToken, crmsdk.ChangePasswordRequest{CurrentPassword: testPassword, NewPassword: "longenough"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodPost, "/auth/login", "", crmsdk.LoginRequest{Email: "klant@example.com", Password: "longenough"})
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	h := decode[crmsdk.HealthResponse](t, rec)
	require.True(t, h.OK)
	require.Equal(t, "test", h.Env)
	require.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	rec = env.do(t, http.MethodGet, "/health/db", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, decode[crmsdk.DBHealthResponse](t, rec).OK)

	require.NoError(t, env.store.Close())
	rec = env.do(t, http.MethodGet, "/health/db", "", nil)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.False(t, decode[crmsdk.DBHealthResponse](t, rec).OK)
}

func TestUnknownRoute(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/nope", "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "not_found", decode[crmsdk.ErrorResponse](t, rec).Error)
}

func TestCORSPreflight(t *testing.T) {
	env := newTestEnv(t)

	preflight := func(origin string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodOptions, "/customers", nil)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		req.Header.Set("Access-Control-Request-Headers", "authorization,content-type")
		rec := httptest.NewRecorder()
		env.router.ServeHTTP(rec, req)
		return rec
	}

	t.Run("allowed origin", func(t *testing.T) {
		rec := preflight("http://localhost:5173")
		require.Less(t, rec.Code, 300)
		require.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("disallowed origin", func(t *testing.T) {
		rec := preflight("https://evil.example")
		require.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
		require.Empty(t, rec.Header().Get("Access-Control-Allow-Methods"))
	})
}
