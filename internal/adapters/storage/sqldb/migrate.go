package sqldb

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5/stdlib"
	tern "github.com/jackc/tern/v2/migrate"

	"doggo/internal/config"
	"doggo/internal/errs"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrations embed.FS

const versionTable = "schema_version"

// Migrate deja el schema en la última versión. En PostgreSQL usa tern sobre
// la conexión pgx subyacente; en SQLite aplica schema.sql (idempotente).
func (s *Store) Migrate(ctx context.Context) error {
	conn, err := s.db.Connx(ctx)
	if err != nil {
		return errs.Connection("migrate", err)
	}
	defer conn.Close()

	if s.driver == config.DriverSQLite {
		schema, err := migrations.ReadFile("migrations/sqlite/schema.sql")
		if err != nil {
			return fmt.Errorf("read sqlite schema: %w", err)
		}
		if _, err := conn.ExecContext(ctx, string(schema)); err != nil {
			return translate(err, "schema", opWrite)
		}
		s.log.Info("sqlite schema applied", nil)
		return nil
	}

	subtree, err := fs.Sub(migrations, "migrations/postgres")
	if err != nil {
		return fmt.Errorf("retrieving migrations subtree: %w", err)
	}

	return conn.Raw(func(driverConn any) error {
		sc, ok := driverConn.(*stdlib.Conn)
		if !ok {
			return fmt.Errorf("unexpected driver connection %T", driverConn)
		}

		m, err := tern.NewMigrator(ctx, sc.Conn(), versionTable)
		if err != nil {
			return fmt.Errorf("constructing migrator: %w", err)
		}
		if err := m.LoadMigrations(subtree); err != nil {
			return fmt.Errorf("loading migrations: %w", err)
		}

		from, err := m.GetCurrentVersion(ctx)
		if err != nil {
			return fmt.Errorf("retrieving current migration version: %w", err)
		}
		if err := m.Migrate(ctx); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}

		to := int32(len(m.Migrations))
		if from == to {
			s.log.Info("database schema up to date", map[string]any{"version": to})
		} else {
			s.log.Info("migrated database schema", map[string]any{"from": from, "to": to})
		}
		return nil
	})
}
