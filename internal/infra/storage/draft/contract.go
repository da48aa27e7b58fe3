package draft

import (
	"context"
	"database/sql"
)

// DBExecutor интерфейс исполнителя SQL запросов
// Реализуется как *sql.DB, так и обёрткой dbmetrics.DB
type DBExecutor interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}
