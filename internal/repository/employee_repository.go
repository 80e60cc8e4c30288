package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/attendance_bot/internal/model"
	"github.com/Freeeeeet/attendance_bot/internal/repository/base"
	"github.com/jackc/pgx/v5/pgxpool"
)

// EmployeeRepository читает сотрудников из внешней таблицы employee
type EmployeeRepository struct {
	*base.Repository
}

func NewEmployeeRepository(pool *pgxpool.Pool) *EmployeeRepository {
	return &EmployeeRepository{Repository: base.NewRepository(pool)}
}

// GetByIDs получает сотрудников по списку ID
func (r *EmployeeRepository) GetByIDs(ctx context.Context, ids []int64) ([]model.Employee, error) {
	if len(ids) == 0 {
		return []model.Employee{}, nil
	}

	query := `
		SELECT id, fullname, COALESCE(phone, ''), COALESCE(email, '')
		FROM employee
		WHERE id = ANY($1)
		ORDER BY fullname
	`

	employees := make([]model.Employee, 0, len(ids))
	err := r.WithConn(ctx, func(conn *pgxpool.Conn) error {
		rows, err := conn.Query(ctx, query, ids)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var e model.Employee
			if err := rows.Scan(&e.ID, &e.FullName, &e.Phone, &e.Email); err != nil {
				return fmt.Errorf("scan employee: %w", err)
			}
			employees = append(employees, e)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("get employees by ids: %w", err)
	}

	return employees, nil
}
