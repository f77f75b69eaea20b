package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vos-crm/crm/internal/crm/address"
	"github.com/vos-crm/crm/internal/crm/files"
	httpapi "github.com/vos-crm/crm/internal/crm/http"
	"github.com/vos-crm/crm/internal/crm/mail"
	"github.com/vos-crm/crm/internal/crm/service"
	"github.com/vos-crm/crm/internal/crm/store"
	"github.com/vos-crm/crm/pkg/cryptox"
	"github.com/vos-crm/crm/pkg/httpx"
	"github.com/vos-crm/crm/pkg/jwtx"
	"github.com/vos-crm/crm/pkg/slogx"
)

// BuildVersion is overridden at build time via -ldflags.
var BuildVersion = "v0.1.0"

// Application holds the CRM service and everything it depends on.
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db     store.Store
	signer *jwtx.HS256
	disk   *files.Disk
	mailer service.InviteMailer

	// Services
	authService         *service.AuthService
	userService         *service.UserService
	customerService     *service.CustomerService
	documentService     *service.DocumentService
	inviteService       *service.InviteService
	pipelineService     *service.PipelineService
	taskService         *service.TaskService
	noteService         *service.NoteService
	dashboardService    *service.DashboardService
	housekeepingService *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates an Application with every dependency initialised.
func New(cfg Config) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "crm",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	cryptox.SetPepperPath(app.cfg.PepperFile)

	proxies, err := httpx.ParseTrustedProxies(app.cfg.TrustedProxies)
	if err != nil {
		return nil, err
	}
	httpx.SetTrustedProxies(proxies)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}
	if err := app.initSigner(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	disk, err := files.NewDisk(app.cfg.UploadDir)
	if err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("failed to prepare upload directory: %w", err)
	}
	app.disk = disk

	app.initMailer()
	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("crm service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		app.housekeepingService.Stop()
		_ = app.db.Close()
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown drains in-flight requests, stops background work and closes
// the database.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down crm service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("crm service stopped")
	return nil
}

// Handler exposes the router, for tests that drive the full stack.
func (app *Application) Handler() http.Handler { return app.router }

func (app *Application) initDatabase() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := OpenStore(ctx, app.cfg.DatabaseURL)
	if err != nil {
		return err
	}
	app.db = db

	app.logger.Info("database migrations applied successfully", "driver", DriverName(app.cfg.DatabaseURL))
	return nil
}

// initSigner builds the HS256 signer. Outside production a missing secret
// is replaced by a random one, so tokens do not survive a restart.
func (app *Application) initSigner() error {
	secret := app.cfg.JWTSecret
	if secret == "" {
		generated, err := cryptox.GenerateSecret(48)
		if err != nil {
			return err
		}
		secret = generated
		app.logger.Warn("JWT_SECRET not set, using a random secret; tokens will not survive a restart")
	}

	signer, err := jwtx.NewHS256([]byte(secret), app.cfg.Issuer)
	if err != nil {
		return fmt.Errorf("failed to initialize JWT signer: %w", err)
	}
	app.signer = signer
	return nil
}

func (app *Application) initMailer() {
	if app.cfg.SMTPHost == "" {
		app.logger.Warn("SMTP_HOST not set, invite mails are only logged")
		app.mailer = &mail.LogSender{Logger: app.logger}
		return
	}
	app.mailer = &mail.SMTPSender{
		Host:        app.cfg.SMTPHost,
		Port:        app.cfg.SMTPPort,
		Secure:      app.cfg.SMTPSecure,
		Username:    app.cfg.SMTPUser,
		Password:    app.cfg.SMTPPass,
		From:        app.cfg.MailFrom,
		DialTimeout: 10 * time.Second,
	}
}

func (app *Application) initServices() {
	app.authService = &service.AuthService{
		Store:  app.db,
		Signer: app.signer,
		Issuer: app.cfg.Issuer,
		TTL:    app.cfg.JWTTTL,
	}
	app.userService = &service.UserService{Store: app.db}
	app.customerService = &service.CustomerService{Store: app.db, Files: app.disk}
	app.documentService = &service.DocumentService{
		Store:    app.db,
		Files:    app.disk,
		MaxBytes: app.cfg.MaxUploadBytes,
	}
	app.inviteService = &service.InviteService{
		Store:       app.db,
		Mailer:      app.mailer,
		FrontendURL: app.cfg.FrontendURL,
	}
	app.pipelineService = &service.PipelineService{Store: app.db}
	app.taskService = &service.TaskService{Store: app.db}
	app.noteService = &service.NoteService{Store: app.db}
	app.dashboardService = &service.DashboardService{Store: app.db}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.disk,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.signer,
		BuildVersion,
		app.cfg.Env,
		app.db,
		app.logger,
		app.cfg.CORSOrigins,
	)

	router.AuthService = app.authService
	router.UserService = app.userService
	router.CustomerService = app.customerService
	router.DocumentService = app.documentService
	router.InviteService = app.inviteService
	router.PipelineService = app.pipelineService
	router.TaskService = app.taskService
	router.NoteService = app.noteService
	router.DashboardService = app.dashboardService
	router.AddressLookup = address.NewClient(app.cfg.AddressLookupURL, app.cfg.AddressLookupTimeout)
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
