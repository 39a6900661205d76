// Package sqldb implementa los repositorios sobre una base SQL (PostgreSQL
// vía pgx o SQLite vía modernc). Cada operación toma su propia conexión
// del pool, ejecuta una sola sentencia y la libera.
package sqldb

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"
	pgxzero "github.com/jackc/pgx-zerolog"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"doggo/internal/config"
	"doggo/internal/errs"
	"doggo/internal/platform/logger"
)

const defaultQueryTimeout = 5 * time.Second

type Store struct {
	db      *sqlx.DB
	driver  string
	dialect goqu.DialectWrapper
	timeout time.Duration
	log     logger.Logger
}

// Open valida la configuración, abre el pool y hace ping. Cualquier falla
// (DSN ausente, driver desconocido, base inalcanzable) es un ConnectionError.
func Open(ctx context.Context, cfg config.DatabaseConfig, log logger.Logger) (*Store, error) {
	if log == nil {
		log = logger.Nop()
	}
	op := "open " + cfg.Driver

	if strings.TrimSpace(cfg.DSN) == "" {
		return nil, errs.Connection(op, errors.New("database dsn is not configured"))
	}

	var (
		db      *sqlx.DB
		dialect string
	)
	switch cfg.Driver {
	case config.DriverPostgres:
		connCfg, err := pgx.ParseConfig(cfg.DSN)
		if err != nil {
			return nil, errs.Connection(op, fmt.Errorf("parse dsn: %w", err))
		}
		// SQL + args al log solo en debug: es muy ruidoso.
		if zl := logger.Underlying(log); zl.GetLevel() <= zerolog.DebugLevel {
			connCfg.Tracer = &tracelog.TraceLog{
				Logger:   pgxzero.NewLogger(zl),
				LogLevel: tracelog.LogLevelDebug,
			}
		}
		db = sqlx.NewDb(stdlib.OpenDB(*connCfg), "pgx")
		dialect = "postgres"

	case config.DriverSQLite:
		var err error
		db, err = sqlx.Open("sqlite", sqliteDSN(cfg.DSN))
		if err != nil {
			return nil, errs.Connection(op, err)
		}
		dialect = "sqlite3"

	default:
		return nil, errs.Connection(op, fmt.Errorf("unsupported driver %q", cfg.Driver))
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	pingTimeout := cfg.PingTimeout
	if pingTimeout <= 0 {
		pingTimeout = 3 * time.Second
	}
	pctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := db.PingContext(pctx); err != nil {
		_ = db.Close()
		return nil, errs.Connection(op, fmt.Errorf("ping: %w", err))
	}

	timeout := cfg.QueryTimeout
	if timeout <= 0 {
		timeout = defaultQueryTimeout
	}

	log.Info("connected to the database", map[string]any{"driver": cfg.Driver})

	return &Store{
		db:      db,
		driver:  cfg.Driver,
		dialect: goqu.Dialect(dialect),
		timeout: timeout,
		log:     log.With(map[string]any{"component": "sqldb"}),
	}, nil
}

// sqliteDSN fuerza FKs y busy_timeout en cada conexión del pool.
func sqliteDSN(dsn string) string {
	var pragmas []string
	if !strings.Contains(dsn, "foreign_keys") {
		pragmas = append(pragmas, "_pragma=foreign_keys(1)")
	}
	if !strings.Contains(dsn, "busy_timeout") {
		pragmas = append(pragmas, "_pragma=busy_timeout(5000)")
	}
	if len(pragmas) == 0 {
		return dsn
	}

	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + strings.Join(pragmas, "&")
}

func (s *Store) Driver() string { return s.driver }

func (s *Store) Close() error {
	s.log.Info("closing database pool", nil)
	return s.db.Close()
}

// withConn adquiere una conexión dedicada con el timeout por sentencia y la
// libera al salir, haya error o no.
func (s *Store) withConn(ctx context.Context, op string, fn func(ctx context.Context, conn *sqlx.Conn) error) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	conn, err := s.db.Connx(ctx)
	if err != nil {
		return errs.Connection(op, err)
	}
	defer conn.Close()

	start := time.Now()
	err = fn(ctx, conn)

	fields := map[string]any{
		"op":          op,
		"duration_ms": time.Since(start).Milliseconds(),
	}
	if err != nil {
		fields["error"] = err
	}
	s.log.Debug("sql op", fields)

	return err
}

// Ping verifica que la base responda dentro del timeout por sentencia.
func (s *Store) Ping(ctx context.Context) error {
	return s.withConn(ctx, "ping", func(ctx context.Context, conn *sqlx.Conn) error {
		if err := conn.PingContext(ctx); err != nil {
			return errs.Connection("ping", err)
		}
		return nil
	})
}
