// Package migrations embebe y aplica las migraciones SQL de postgres.
package migrations

import (
	"context"
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed *.sql
var FS embed.FS

// Apply ejecuta las migraciones *_up.sql en orden ascendente. Los
// scripts son idempotentes (IF NOT EXISTS / ON CONFLICT), así que
// aplicar dos veces es inocuo.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	entries, err := FS.ReadDir(".")
	if err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	var files []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), "_up.sql") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)

	for _, name := range files {
		sql, err := FS.ReadFile(name)
		if err != nil {
			return fmt.Errorf("migrations: leyendo %s: %w", name, err)
		}
		if _, err := pool.Exec(ctx, string(sql)); err != nil {
			return fmt.Errorf("migrations: aplicando %s: %w", name, err)
		}
	}
	return nil
}
