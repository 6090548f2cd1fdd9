package app

import (
	"context"
	"fmt"
	"log/slog"

	"peopled/internal/config"
	"peopled/internal/domain"
	"peopled/internal/service"
)

// seedAdmin creates the bootstrap HR admin credential. Idempotent — it is a
// no-op when any user already exists, so restarts never duplicate the account.
func seedAdmin(ctx context.Context, cfg *config.Config, users domain.UserRepository, logger *slog.Logger) error {
	n, err := users.Count(ctx)
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if n > 0 {
		return nil // already seeded
	}

	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		logger.Warn("user table is empty and HR_ADMIN_EMAIL/HR_ADMIN_PASSWORD are not set; nobody can log in")
		return nil
	}

	hash, err := service.HashPassword(cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	_, err = users.Create(ctx, &domain.User{
		ID:           domain.NewID(),
		Email:        cfg.AdminEmail,
		PasswordHash: hash,
		Role:         domain.RoleHRAdmin,
	})
	if err != nil {
		return fmt.Errorf("create admin user: %w", err)
	}

	logger.Info("seeded bootstrap admin account", "email", cfg.AdminEmail)
	return nil
}
