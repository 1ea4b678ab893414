//go:build integration

package testutil

import (
	"context"
	"io"
	"log"

	pgrepo "github.com/Gunvolt24/restaurant_svc/internal/repo/postgres"
	"github.com/pressly/goose/v3"
)

// ApplyMigrationsGoose - применить миграции из <repo_root>/migrations (встроены в бинарь).
// Вывод goose глушится, чтобы не засорять лог тестов.
func ApplyMigrationsGoose(dsn string) error {
	goose.SetLogger(log.New(io.Discard, "", 0))
	return pgrepo.Migrate(context.Background(), dsn)
}
