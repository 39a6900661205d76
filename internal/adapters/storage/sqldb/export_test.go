package sqldb

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Truncate vacía todas las tablas y reinicia las secuencias (solo PostgreSQL).
func (s *Store) Truncate(ctx context.Context) error {
	return s.withConn(ctx, "truncate", func(ctx context.Context, conn *sqlx.Conn) error {
		_, err := conn.ExecContext(ctx, `TRUNCATE walk, walker, dog, owner, neighborhood RESTART IDENTITY`)
		return err
	})
}
