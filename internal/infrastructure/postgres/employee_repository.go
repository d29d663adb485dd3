package postgres

import (
	"context"
	"fmt"

	"github.com/canvacrancha/badge-api/internal/domain"
	"github.com/canvacrancha/badge-api/internal/domain/entity"
	"github.com/canvacrancha/badge-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación del puerto EmployeeRepository sobre PostgreSQL.
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador de persistencia para funcionarios.
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

const employeeColumns = `id, name, registration_number, photo, company_name, admission_date, blood_type, cpf, rg`

// Create persiste un funcionario. Devuelve domain.ErrDuplicate si la matrícula ya existe en la empresa.
// ON CONFLICT DO NOTHING evita abortar la transacción del importador ante un duplicado.
func (r *EmployeeRepo) Create(ctx context.Context, e *entity.Employee) error {
	query := `
		INSERT INTO employees (name, registration_number, photo, company_name, admission_date, blood_type, cpf, rg)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (company_name, registration_number) WHERE registration_number <> '' DO NOTHING
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		e.Name, e.RegistrationNumber, e.Photo, e.CompanyName, e.AdmissionDate,
		e.BloodType, e.CPF, e.RG,
	).Scan(&e.ID)
	if err != nil {
		if isNoRows(err) || isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByID obtiene un funcionario por ID. nil si no existe.
func (r *EmployeeRepo) GetByID(ctx context.Context, id int64) (*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`
	e, err := scanEmployee(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return e, nil
}

// List devuelve los funcionarios ordenados por nombre; filtra por empresa si companyName no está vacío.
func (r *EmployeeRepo) List(ctx context.Context, companyName string) ([]*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees`
	var args []any
	if companyName != "" {
		query += ` WHERE company_name = $1`
		args = append(args, companyName)
	}
	query += ` ORDER BY name, id`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	var list []*entity.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// ListCompanyNames devuelve los nombres de empresa distintos, ordenados.
func (r *EmployeeRepo) ListCompanyNames(ctx context.Context) ([]string, error) {
	rows, err := r.q.Query(ctx,
		`SELECT DISTINCT company_name FROM employees WHERE company_name <> '' ORDER BY company_name`)
	if err != nil {
		return nil, fmt.Errorf("list company names: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("scan company name: %w", err)
		}
		names = append(names, n)
	}
	return names, rows.Err()
}

func scanEmployee(s pgxScanner) (*entity.Employee, error) {
	var e entity.Employee
	if err := s.Scan(
		&e.ID, &e.Name, &e.RegistrationNumber, &e.Photo, &e.CompanyName, &e.AdmissionDate,
		&e.BloodType, &e.CPF, &e.RG,
	); err != nil {
		return nil, err
	}
	return &e, nil
}
