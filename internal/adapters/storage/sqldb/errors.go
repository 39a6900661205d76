package sqldb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"doggo/internal/adapters/storage"
	"doggo/internal/errs"
)

type opKind int

const (
	opRead opKind = iota
	opWrite
	opDelete
)

// SQLSTATE relevantes (clase 23: integrity constraint violation).
const (
	pgNotNullViolation    = "23502"
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgCheckViolation      = "23514"
)

// foreignKeys: columnas FK por tabla. SQLite no dice cuál falló.
var foreignKeys = map[string][]string{
	"owner":  {"neighborhood_id"},
	"dog":    {"owner_id"},
	"walker": {"neighborhood_id"},
	"walk":   {"walker_id", "dog_id"},
}

// dependents: tablas que referencian a cada tabla.
var dependents = map[string]string{
	"neighborhood": "owner/walker",
	"owner":        "dog",
	"walker":       "walk",
	"dog":          "walk",
}

// translate convierte errores del driver en la taxonomía de errs.
func translate(err error, entity string, kind opKind) error {
	if err == nil {
		return nil
	}

	var (
		ce  *errs.ConnectionError
		me  *errs.MappingError
		cv  *errs.ConstraintError
		pg  *pgconn.PgError
		sq  *sqlite.Error
		ne  net.Error
		pce *pgconn.ConnectError
	)
	switch {
	case errors.As(err, &ce), errors.As(err, &me), errors.As(err, &cv):
		return err
	case errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled),
		errors.Is(err, driver.ErrBadConn),
		errors.Is(err, sql.ErrConnDone),
		errors.As(err, &pce),
		errors.As(err, &ne):
		return errs.Connection(entity, err)
	case errors.As(err, &pg):
		if cerr := fromPgError(pg, entity, kind); cerr != nil {
			return cerr
		}
	case errors.As(err, &sq):
		if cerr := fromSQLiteError(sq, entity, kind); cerr != nil {
			return cerr
		}
	}
	return fmt.Errorf("%s: %w", entity, err)
}

func fromPgError(pg *pgconn.PgError, entity string, kind opKind) error {
	if strings.HasPrefix(pg.Code, "08") {
		return errs.Connection(entity, pg)
	}

	table := pg.TableName
	if table == "" {
		table = entity
	}

	switch pg.Code {
	case pgForeignKeyViolation:
		if kind == opDelete {
			dep := pg.TableName
			if dep == "" || dep == entity {
				dep = dependents[entity]
			}
			return storage.StillReferenced(entity, dep)
		}
		return storage.MissingReference(entity, fieldFromConstraint(table, pg.ConstraintName, "_fkey"))
	case pgUniqueViolation:
		return storage.Duplicate(entity, fieldFromConstraint(table, pg.ConstraintName, "_key"))
	case pgNotNullViolation:
		return storage.Required(entity, pg.ColumnName)
	case pgCheckViolation:
		return checkViolation(entity, table, pg.ConstraintName)
	}
	return nil
}

// fromSQLiteError interpreta el mensaje: SQLite reporta la columna como
// "tabla.columna" (NOT NULL, UNIQUE) o el nombre del CHECK.
func fromSQLiteError(e *sqlite.Error, entity string, kind opKind) error {
	code := e.Code()
	switch code & 0xff {
	case sqlite3.SQLITE_BUSY, sqlite3.SQLITE_LOCKED, sqlite3.SQLITE_CANTOPEN:
		return errs.Connection(entity, e)
	case sqlite3.SQLITE_CONSTRAINT:
	default:
		return nil
	}

	msg := e.Error()
	switch {
	case code == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY || strings.Contains(msg, "FOREIGN KEY constraint failed"):
		if kind == opDelete {
			return storage.StillReferenced(entity, dependents[entity])
		}
		fks := foreignKeys[entity]
		if len(fks) == 1 {
			return storage.MissingReference(entity, fks[0])
		}
		return errs.Constraint(entity, strings.Join(fks, ","), "referenced record does not exist")
	case code == sqlite3.SQLITE_CONSTRAINT_NOTNULL || strings.Contains(msg, "NOT NULL constraint failed"):
		return storage.Required(entity, columnAfter(msg, "NOT NULL constraint failed: "))
	case code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || strings.Contains(msg, "UNIQUE constraint failed"):
		return storage.Duplicate(entity, columnAfter(msg, "UNIQUE constraint failed: "))
	case code == sqlite3.SQLITE_CONSTRAINT_CHECK || strings.Contains(msg, "CHECK constraint failed"):
		return checkViolation(entity, entity, columnAfter(msg, "CHECK constraint failed: "))
	}
	return errs.Constraint(entity, "", msg)
}

// checkViolation: los CHECK del schema se llaman <tabla>_<columna>_<regla>.
func checkViolation(entity, table, constraint string) error {
	switch {
	case strings.HasSuffix(constraint, "_required"):
		return storage.Required(entity, fieldFromConstraint(table, constraint, "_required"))
	case strings.HasSuffix(constraint, "_positive"):
		field := fieldFromConstraint(table, constraint, "_positive")
		return errs.Constraint(entity, field, "must be greater than 0")
	}
	return errs.Constraint(entity, "", "violates check "+constraint)
}

// fieldFromConstraint: ("dog", "dog_owner_id_fkey", "_fkey") -> "owner_id".
func fieldFromConstraint(table, constraint, suffix string) string {
	f := strings.TrimSuffix(constraint, suffix)
	f = strings.TrimPrefix(f, table+"_")
	return f
}

// columnAfter extrae "email" de "... UNIQUE constraint failed: owner.email (2067)".
func columnAfter(msg, marker string) string {
	_, rest, ok := strings.Cut(msg, marker)
	if !ok {
		return ""
	}
	rest = strings.TrimSpace(rest)
	if i := strings.IndexAny(rest, " ,("); i >= 0 {
		rest = rest[:i]
	}
	if _, col, ok := strings.Cut(rest, "."); ok {
		return col
	}
	return rest
}
