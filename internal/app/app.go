// Package app provides application-level wiring and dependency injection.
package app

import (
	"context"
	"database/sql"
	"log/slog"

	"peopled/internal/api"
	"peopled/internal/config"
	"peopled/internal/db/repository"
	"peopled/internal/service"
	"peopled/internal/token"
)

// Deps holds the external dependencies that main() must provide.
// These are things the app package cannot (or should not) create itself:
// database handles, config, and the logger.
type Deps struct {
	Cfg     *config.Config
	WriteDB *sql.DB
	ReadDB  *sql.DB
	Logger  *slog.Logger
}

// App holds the fully-wired application.
type App struct {
	Auth      *service.AuthService
	Directory *service.DirectoryService
	Handler   *api.Handler
	Tokens    *token.Issuer
}

// New wires repositories, services, and the HTTP handler from the provided
// deps, then seeds the bootstrap admin account when the user table is empty.
func New(ctx context.Context, deps Deps) (*App, error) {
	cfg := deps.Cfg

	// === Repositories ===
	// Writes go through the single-connection pool; scoped reads come from
	// the read pool so list traffic never queues behind a mutation.
	userRepo := repository.NewUserRepo(deps.WriteDB)
	employeeRepo := repository.NewEmployeeRepo(deps.WriteDB)
	departmentRepo := repository.NewDepartmentRepo(deps.WriteDB)
	membershipRepo := repository.NewMembershipRepo(deps.WriteDB)

	readUserRepo := repository.NewUserRepo(deps.ReadDB)

	// === Services ===
	tokens, err := token.NewIssuer(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		return nil, err
	}
	authSvc := service.NewAuthService(readUserRepo, tokens)
	directorySvc := service.NewDirectoryService(employeeRepo, departmentRepo, membershipRepo)

	if err := seedAdmin(ctx, cfg, userRepo, deps.Logger); err != nil {
		return nil, err
	}

	return &App{
		Auth:      authSvc,
		Directory: directorySvc,
		Handler:   api.NewHandler(authSvc, directorySvc),
		Tokens:    tokens,
	}, nil
}
