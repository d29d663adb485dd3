package repository

import (
	"context"

	"github.com/canvacrancha/badge-api/internal/domain/entity"
)

// EmployeeRepository define el puerto de persistencia para funcionarios.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *entity.Employee) error
	GetByID(ctx context.Context, id int64) (*entity.Employee, error)
	// List devuelve todos los funcionarios, o solo los de companyName si no está vacío.
	List(ctx context.Context, companyName string) ([]*entity.Employee, error)
	ListCompanyNames(ctx context.Context) ([]string, error)
}
