package sqldb

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/jmoiron/sqlx"

	"doggo/internal/config"
	"doggo/internal/errs"
)

// selectMany ejecuta ds y mapea todas las filas. Sin filas devuelve un
// slice vacío, no nil. Un fallo de mapeo descarta el resultado entero.
func selectMany[T any](ctx context.Context, s *Store, entity string, ds *goqu.SelectDataset, mapRow func(rowScanner) (T, error)) ([]T, error) {
	query, args, err := ds.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("%s: build select: %w", entity, err)
	}

	out := make([]T, 0)
	err = s.withConn(ctx, "select "+entity, func(ctx context.Context, conn *sqlx.Conn) error {
		rows, err := conn.QueryxContext(ctx, query, args...)
		if err != nil {
			return translate(err, entity, opRead)
		}
		defer rows.Close()

		for rows.Next() {
			v, err := mapRow(rows)
			if err != nil {
				s.logMappingError(entity, query, err)
				return err
			}
			out = append(out, v)
		}
		return translate(rows.Err(), entity, opRead)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// selectOne devuelve ok=false si ds no trae filas.
func selectOne[T any](ctx context.Context, s *Store, entity string, ds *goqu.SelectDataset, mapRow func(rowScanner) (T, error)) (T, bool, error) {
	var zero T

	items, err := selectMany(ctx, s, entity, ds.Limit(1), mapRow)
	if err != nil {
		return zero, false, err
	}
	if len(items) == 0 {
		return zero, false, nil
	}
	return items[0], true, nil
}

// insert devuelve el id generado. Postgres usa RETURNING; el dialecto
// sqlite3 de goqu no lo soporta, así que ahí se usa LastInsertId.
func (s *Store) insert(ctx context.Context, entity string, rec goqu.Record) (int64, error) {
	ds := s.dialect.Insert(entity).Prepared(true).Rows(rec)
	if s.driver != config.DriverSQLite {
		ds = ds.Returning("id")
	}

	query, args, err := ds.ToSQL()
	if err != nil {
		return 0, fmt.Errorf("%s: build insert: %w", entity, err)
	}

	var id int64
	err = s.withConn(ctx, "insert "+entity, func(ctx context.Context, conn *sqlx.Conn) error {
		if s.driver == config.DriverSQLite {
			res, err := conn.ExecContext(ctx, query, args...)
			if err != nil {
				return translate(err, entity, opWrite)
			}
			id, err = res.LastInsertId()
			return translate(err, entity, opWrite)
		}
		return translate(conn.QueryRowxContext(ctx, query, args...).Scan(&id), entity, opWrite)
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// update aplica rec a la fila id; NotFound si no existe.
func (s *Store) update(ctx context.Context, entity string, id int64, rec goqu.Record) error {
	query, args, err := s.dialect.Update(entity).Prepared(true).
		Set(rec).
		Where(goqu.C("id").Eq(id)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("%s: build update: %w", entity, err)
	}
	return s.execAffecting(ctx, entity, id, opWrite, query, args)
}

// delete borra la fila id; NotFound si no existe, ConstraintError si tiene
// dependientes.
func (s *Store) delete(ctx context.Context, entity string, id int64) error {
	query, args, err := s.dialect.Delete(entity).Prepared(true).
		Where(goqu.C("id").Eq(id)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("%s: build delete: %w", entity, err)
	}
	return s.execAffecting(ctx, entity, id, opDelete, query, args)
}

func (s *Store) execAffecting(ctx context.Context, entity string, id int64, kind opKind, query string, args []any) error {
	return s.withConn(ctx, "exec "+entity, func(ctx context.Context, conn *sqlx.Conn) error {
		res, err := conn.ExecContext(ctx, query, args...)
		if err != nil {
			return translate(err, entity, kind)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return translate(err, entity, kind)
		}
		if n == 0 {
			return errs.NotFound(entity, id)
		}
		return nil
	})
}

func (s *Store) logMappingError(entity, query string, err error) {
	s.log.Error("row mapping failed", map[string]any{
		"entity": entity,
		"query":  query,
		"error":  err,
	})
}

// from arma el SELECT base de una tabla con sus columnas, ordenado por id.
func (s *Store) from(table string, cols []any) *goqu.SelectDataset {
	return s.dialect.From(table).Prepared(true).Select(cols...).Order(goqu.C("id").Asc())
}
