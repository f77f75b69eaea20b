package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/vos-crm/crm/internal/crm/domain"
	"github.com/vos-crm/crm/internal/crm/service"
	"github.com/vos-crm/crm/internal/crm/store"
	"github.com/vos-crm/crm/pkg/httpx"
	"github.com/vos-crm/crm/pkg/jwtx"
	"github.com/vos-crm/crm/pkg/slogx"

	_ "github.com/vos-crm/crm/api/crm" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

var (
	staffRoles = domain.RoleNames(domain.StaffRoles...)
	adminRoles = domain.RoleNames(domain.RoleAdmin)
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	env          string
	startTime    time.Time
	logger       *slog.Logger

	store            store.Store
	AuthService      *service.AuthService
	UserService      *service.UserService
	CustomerService  *service.CustomerService
	DocumentService  *service.DocumentService
	InviteService    *service.InviteService
	PipelineService  *service.PipelineService
	TaskService      *service.TaskService
	NoteService      *service.NoteService
	DashboardService *service.DashboardService
	AddressLookup    AddressLookup
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion, env string,
	st store.Store,
	logger *slog.Logger,
	corsOrigins []string,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		env:          env,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Default middleware chain, outermost first
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.Recoverer,
		httpx.CORS(corsOrigins),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerUsers()
	r.registerCustomers()
	r.registerDocuments()
	r.registerInvites()
	r.registerAddress()
	r.registerPipeline()
	r.registerTasks()
	r.registerNotes()
	r.registerDashboard()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
	r.Mux.HandleFunc("/", httpx.NotFound)
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title						VOS CRM API
//	@version					0.1.0
//	@description				REST backend for the VOS office-support CRM: customers in a sales pipeline, documents,
//	@description				tasks, notes, invitation based onboarding, CSV export and dashboard KPIs.
//	@description
//	@description				Tokens are HS256 signed JWTs valid for seven days.
//
//	@contact.name				VOS CRM
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// authed requires a valid token; roles, when given, restrict the caller.
func (r *Router) authed(h http.HandlerFunc, limit httpx.RateLimitConfig, roles []string) http.Handler {
	mws := []httpx.Middleware{httpx.AuthnMiddleware(r.verifier)}
	if len(roles) > 0 {
		mws = append(mws, httpx.RequireAnyRole(roles...))
	}
	mws = append(mws, httpx.RateLimitByUser(limit))
	return httpx.Chain(h, mws...)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{AuthService: r.AuthService}

	// POST /auth/login - strict rate limit by IP + e-mail (brute force)
	r.Mux.Handle("POST /auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "email"),
		),
	)

	// POST /auth/register - strict rate limit by IP (public signup endpoint)
	r.Mux.Handle("POST /auth/register",
		httpx.Chain(http.HandlerFunc(h.HandleRegister),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	r.Mux.Handle("GET /auth/me", r.authed(h.HandleMe, httpx.LenientLimit, nil))
}

func (r *Router) registerUsers() {
	h := &UsersHandler{UserService: r.UserService}

	r.Mux.Handle("GET /users", r.authed(h.HandleList, httpx.LenientLimit, adminRoles))
	r.Mux.Handle("PATCH /users/{id}/role", r.authed(h.HandleChangeRole, httpx.ModerateLimit, adminRoles))

	// Password changes verify the current password - strict by user
	r.Mux.Handle("PUT /users/me/password", r.authed(h.HandleChangePassword, httpx.StrictLimit, nil))
}

func (r *Router) registerCustomers() {
	h := &CustomersHandler{CustomerService: r.CustomerService}

	r.Mux.Handle("GET /customers", r.authed(h.HandleList, httpx.LenientLimit, staffRoles))
	r.Mux.Handle("POST /customers", r.authed(h.HandleCreate, httpx.LenientLimit, staffRoles))
	r.Mux.Handle("GET /customers/export", r.authed(h.HandleExport, httpx.ModerateLimit, staffRoles))
	r.Mux.Handle("GET /customers/{id}", r.authed(h.HandleGet, httpx.LenientLimit, staffRoles))
	r.Mux.Handle("PATCH /customers/{id}", r.authed(h.HandleUpdate, httpx.LenientLimit, staffRoles))
	r.Mux.Handle("PATCH /customers/{id}/status", r.authed(h.HandleSetStatus, httpx.LenientLimit, staffRoles))
	r.Mux.Handle("DELETE /customers/{id}", r.authed(h.HandleDelete, httpx.ModerateLimit, adminRoles))
}

func (r *Router) registerDocuments() {
	h := &DocumentsHandler{DocumentService: r.DocumentService}

	r.Mux.Handle("GET /documents", r.authed(h.HandleList, httpx.LenientLimit, staffRoles))
	r.Mux.Handle("POST /documents", r.authed(h.HandleUpload, httpx.ModerateLimit, staffRoles))
	r.Mux.Handle("GET /documents/{id}/download", r.authed(h.HandleDownload, httpx.LenientLimit, staffRoles))
	r.Mux.Handle("DELETE /documents/{id}", r.authed(h.HandleDelete, httpx.LenientLimit, staffRoles))
}

func (r *Router) registerInvites() {
	h := &InvitesHandler{InviteService: r.InviteService}

	// POST /invites - moderate rate limit by user (admin operation, sends mail)
	r.Mux.Handle("POST /invites", r.authed(h.HandleCreate, httpx.ModerateLimit, adminRoles))

	// GET /invites/validate - public, strict by IP (token probing)
	r.Mux.Handle("GET /invites/validate",
		httpx.Chain(http.HandlerFunc(h.HandleValidate),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerAddress() {
	h := &AddressHandler{Lookup: r.AddressLookup}

	// Outbound call per request - moderate by user
	r.Mux.Handle("GET /address/lookup", r.authed(h.ServeHTTP, httpx.ModerateLimit, staffRoles))
}

func (r *Router) registerPipeline() {
	h := &PipelineHandler{PipelineService: r.PipelineService}

	r.Mux.Handle("GET /pipeline/stages", r.authed(h.HandleListStages, httpx.LenientLimit, staffRoles))
	r.Mux.Handle("PUT /pipeline/stages", r.authed(h.HandleReplaceStages, httpx.ModerateLimit, adminRoles))
	r.Mux.Handle("GET /pipeline/board", r.authed(h.HandleBoard, httpx.LenientLimit, staffRoles))
}

func (r *Router) registerTasks() {
	h := &TasksHandler{TaskService: r.TaskService}

	r.Mux.Handle("GET /tasks", r.authed(h.HandleList, httpx.LenientLimit, staffRoles))
	r.Mux.Handle("POST /tasks", r.authed(h.HandleCreate, httpx.LenientLimit, staffRoles))
	r.Mux.Handle("GET /tasks/{id}", r.authed(h.HandleGet, httpx.LenientLimit, staffRoles))
	r.Mux.Handle("PATCH /tasks/{id}", r.authed(h.HandleUpdate, httpx.LenientLimit, staffRoles))
	r.Mux.Handle("DELETE /tasks/{id}", r.authed(h.HandleDelete, httpx.LenientLimit, staffRoles))
}

func (r *Router) registerNotes() {
	h := &NotesHandler{NoteService: r.NoteService}

	r.Mux.Handle("GET /notes", r.authed(h.HandleList, httpx.LenientLimit, staffRoles))
	r.Mux.Handle("POST /notes", r.authed(h.HandleCreate, httpx.LenientLimit, staffRoles))
	r.Mux.Handle("DELETE /notes/{id}", r.authed(h.HandleDelete, httpx.LenientLimit, staffRoles))
}

func (r *Router) registerDashboard() {
	h := &DashboardHandler{DashboardService: r.DashboardService}

	r.Mux.Handle("GET /dashboard/kpis/catalog", r.authed(h.HandleCatalog, httpx.LenientLimit, staffRoles))
	r.Mux.Handle("GET /dashboard/kpis", r.authed(h.HandleKPIs, httpx.LenientLimit, staffRoles))
	r.Mux.Handle("GET /dashboard/layout", r.authed(h.HandleGetLayout, httpx.LenientLimit, staffRoles))
	r.Mux.Handle("PUT /dashboard/layout", r.authed(h.HandleSaveLayout, httpx.LenientLimit, staffRoles))
}

func (r *Router) registerSystem() {
	// Health check endpoints - public limit (monitoring systems may poll frequently)
	r.Mux.Handle("GET /health",
		httpx.Chain(HealthHandler(r.startTime, r.buildVersion, r.env),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /health/db",
		httpx.Chain(DBHealthHandler(r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
