package base

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository базовый репозиторий с общими методами.
// Каждая операция берёт соединение из пула и возвращает его сразу после одного запроса.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository создаёт новый базовый репозиторий
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// WithConn выполняет fn на отдельном соединении из пула.
// Соединение освобождается на любом пути выхода, в том числе при панике в fn.
func (r *Repository) WithConn(ctx context.Context, fn func(conn *pgxpool.Conn) error) error {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	return fn(conn)
}
