// Package store opens the todo repository selected by configuration.
package store

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/idilsaglam/webtutorials/internal/config"
	"github.com/idilsaglam/webtutorials/internal/store/gormstore"
	"github.com/idilsaglam/webtutorials/internal/store/jsonstore"
	"github.com/idilsaglam/webtutorials/internal/store/sqlxstore"
	"github.com/idilsaglam/webtutorials/internal/todo"
)

// Open returns the repository named by cfg.Backend.
func Open(ctx context.Context, cfg config.TodoConfig, log *zap.Logger, verbose bool) (todo.Repository, error) {
	var (
		repo todo.Repository
		err  error
	)
	switch strings.ToLower(cfg.Backend) {
	case "", "gorm":
		repo, err = gormstore.Open(cfg.DSN, log, verbose)
	case "sqlx":
		repo, err = sqlxstore.Open(ctx, cfg.DSN)
	case "json":
		repo, err = jsonstore.Open(cfg.JSONPath)
	default:
		return nil, fmt.Errorf("unknown todo backend %q", cfg.Backend)
	}
	if err != nil {
		return nil, err
	}
	return repo, nil
}
