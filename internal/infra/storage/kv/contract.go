package kv

import (
	"context"
	"database/sql"
)

// Store абстракция key-value хранилища, за которой скрыт конкретный движок
// (PostgreSQL, Redis или память). Ключи - строки, значения - JSON-документы.
//
// Get возвращает found=false для отсутствующего ключа без ошибки:
// отсутствие записи - нормальное состояние (пустой день, пустые оверрайды).
type Store interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
}

// DBExecutor интерфейс для выполнения SQL запросов
// Поддерживает *sql.DB и *sql.Tx
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}
