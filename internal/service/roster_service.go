package service

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/attendance_bot/internal/model"
	"go.uber.org/zap"
)

// EmployeeSource источник сотрудников (repository.EmployeeRepository)
type EmployeeSource interface {
	GetByIDs(ctx context.Context, ids []int64) ([]model.Employee, error)
}

// RosterService отдаёт сотрудников из настроенного списка id
type RosterService struct {
	employees EmployeeSource
	ids       []int64
	logger    *zap.Logger
}

func NewRosterService(employees EmployeeSource, ids []int64, logger *zap.Logger) *RosterService {
	return &RosterService{
		employees: employees,
		ids:       append([]int64(nil), ids...),
		logger:    logger,
	}
}

// ListEmployees возвращает сотрудников, которых можно отмечать
func (s *RosterService) ListEmployees(ctx context.Context) ([]model.Employee, error) {
	employees, err := s.employees.GetByIDs(ctx, s.ids)
	if err != nil {
		return nil, fmt.Errorf("list roster: %w", err)
	}

	if len(employees) < len(s.ids) {
		s.logger.Warn("Some roster ids were not found in employee table",
			zap.Int("configured", len(s.ids)),
			zap.Int("found", len(employees)))
	}

	return employees, nil
}
