package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/canvacrancha/badge-api/internal/domain"
	"github.com/canvacrancha/badge-api/internal/domain/entity"
	"github.com/canvacrancha/badge-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación del puerto EmployeeRepository sobre SQLite.
type EmployeeRepo struct {
	db DBTX
}

// NewEmployeeRepository construye el adaptador de persistencia para funcionarios.
func NewEmployeeRepository(db DBTX) *EmployeeRepo {
	return &EmployeeRepo{db: db}
}

const employeeColumns = `id, name, registration_number, photo, company_name, admission_date, blood_type, cpf, rg`

// Create persiste un funcionario. domain.ErrDuplicate si la matrícula ya existe en la empresa.
func (r *EmployeeRepo) Create(ctx context.Context, e *entity.Employee) error {
	const query = `
		INSERT INTO employees (name, registration_number, photo, company_name, admission_date, blood_type, cpf, rg)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (company_name, registration_number) WHERE registration_number <> '' DO NOTHING
		RETURNING id`

	var admission any
	if e.AdmissionDate != nil {
		admission = e.AdmissionDate.Format(dateLayout)
	}
	err := r.db.QueryRowContext(ctx, query,
		e.Name, e.RegistrationNumber, e.Photo, e.CompanyName, admission,
		e.BloodType, e.CPF, e.RG,
	).Scan(&e.ID)
	if err != nil {
		if isNoRows(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByID obtiene un funcionario por ID. nil si no existe.
func (r *EmployeeRepo) GetByID(ctx context.Context, id int64) (*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = ?`
	e, err := scanEmployee(r.db.QueryRowContext(ctx, query, id))
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
		query += ` WHERE company_name = ?`
		args = append(args, companyName)
	}
	query += ` ORDER BY name, id`

	rows, err := r.db.QueryContext(ctx, query, args...)
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
	rows, err := r.db.QueryContext(ctx,
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

func scanEmployee(s scanner) (*entity.Employee, error) {
	var (
		e         entity.Employee
		admission sql.NullString
	)
	if err := s.Scan(
		&e.ID, &e.Name, &e.RegistrationNumber, &e.Photo, &e.CompanyName, &admission,
		&e.BloodType, &e.CPF, &e.RG,
	); err != nil {
		return nil, err
	}
	if admission.Valid && admission.String != "" {
		d, err := time.Parse(dateLayout, admission.String)
		if err != nil {
			return nil, fmt.Errorf("admission_date inválida %q: %w", admission.String, err)
		}
		e.AdmissionDate = &d
	}
	return &e, nil
}
