// Command crmctl runs maintenance tasks against the CRM database.
//
//	crmctl migrate
//	crmctl create-user [-email e] [-name n] [-role r] [-password p]
//
// create-user reads SEED_EMAIL, SEED_NAME, SEED_ROLE and SEED_PASSWORD as
// defaults and updates the account when the e-mail already exists.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/vos-crm/crm/internal/crm/app"
	"github.com/vos-crm/crm/internal/crm/service"
	"github.com/vos-crm/crm/pkg/cryptox"
	"github.com/vos-crm/crm/pkg/slogx"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: crmctl <migrate|create-user> [flags]")
	os.Exit(2)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}

	cfg := app.LoadConfig()
	logger := slogx.New(slogx.Config{
		Service: "crmctl",
		Version: app.BuildVersion,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  "text",
		Output:  os.Stderr,
	})
	cryptox.SetPepperPath(cfg.PepperFile)

	var err error
	switch os.Args[1] {
	case "migrate":
		err = migrate(cfg, logger)
	case "create-user":
		err = createUser(cfg, logger, os.Args[2:])
	default:
		usage()
	}
	if err != nil {
		logger.Error("command failed", "command", os.Args[1], "error", err)
		os.Exit(1)
	}
}

func migrate(cfg app.Config, logger *slog.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	st, err := app.OpenStore(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer st.Close()

	logger.Info("migrations applied", "driver", app.DriverName(cfg.DatabaseURL))
	return nil
}

func createUser(cfg app.Config, logger *slog.Logger, args []string) error {
	fs := flag.NewFlagSet("create-user", flag.ExitOnError)
	email := fs.String("email", envOr("SEED_EMAIL", "admin@voscrm.local"), "account e-mail")
	name := fs.String("name", envOr("SEED_NAME", "Admin"), "display name")
	role := fs.String("role", envOr("SEED_ROLE", "BEHEERDER"), "BEHEERDER, MEDEWERKER or KLANT")
	password := fs.String("password", os.Getenv("SEED_PASSWORD"), "password; generated when empty")
	if err := fs.Parse(args); err != nil {
		return err
	}

	generated := false
	if *password == "" {
		p, err := cryptox.GeneratePassword()
		if err != nil {
			return err
		}
		*password, generated = p, true
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	st, err := app.OpenStore(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer st.Close()

	users := &service.UserService{Store: st}
	u, created, err := users.SeedUser(ctx, *email, *name, *role, *password)
	if err != nil {
		return err
	}

	action := "updated"
	if created {
		action = "created"
	}
	logger.Info("user "+action, "user_id", u.ID, "email", u.Email, "role", string(u.Role))
	if generated {
		fmt.Printf("password for %s: %s\n", u.Email, *password)
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
