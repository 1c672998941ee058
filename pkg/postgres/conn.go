package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier - общий интерфейс пула, захваченного соединения и транзакции
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
	Begin(ctx context.Context) (pgx.Tx, error)
}

type connKey struct{}

// WithConn сохраняет соединение, захваченное на время запроса, в контексте
func WithConn(ctx context.Context, conn *pgxpool.Conn) context.Context {
	if conn == nil {
		return ctx
	}
	return context.WithValue(ctx, connKey{}, conn)
}

// ConnFrom возвращает соединение запроса, если оно есть
func ConnFrom(ctx context.Context) (*pgxpool.Conn, bool) {
	conn, ok := ctx.Value(connKey{}).(*pgxpool.Conn)
	return conn, ok
}

// QuerierFrom возвращает соединение запроса или пул, если запрос его не захватывал
// (фоновые задачи, тесты).
func QuerierFrom(ctx context.Context, pool *pgxpool.Pool) Querier {
	if conn, ok := ConnFrom(ctx); ok {
		return conn
	}
	return pool
}
