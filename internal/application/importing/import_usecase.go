// Package importing carga funcionarios desde exportaciones CSV de sistemas de RH.
package importing

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/canvacrancha/badge-api/internal/domain"
	"github.com/canvacrancha/badge-api/internal/domain/badge"
	"github.com/canvacrancha/badge-api/internal/domain/entity"
	"github.com/canvacrancha/badge-api/internal/domain/repository"
)

// TxRunner ejecuta fn en una transacción con el repositorio de funcionarios atado a ella.
type TxRunner interface {
	Run(ctx context.Context, fn func(employees repository.EmployeeRepository) error) error
}

// Options opciones de lectura del CSV.
type Options struct {
	UTF8      bool // por defecto el archivo se decodifica como ISO-8859-1
	Delimiter rune // por defecto ';'
}

// RowError fila descartada.
type RowError struct {
	Line   int
	Reason string
}

// Result resumen de la importación.
type Result struct {
	Inserted   int
	Duplicates int
	Rejected   []RowError
}

// Columnas reconocidas (forma canónica del encabezado).
const (
	colNome          = "nome"
	colMatricula     = "matricula"
	colEmpresa       = "empresa"
	colAdmissao      = "admissao"
	colTipoSanguineo = "tipo_sanguineo"
	colCPF           = "cpf"
	colRG            = "rg"
	colFoto          = "foto"
)

var admissionLayouts = []string{"02/01/2006", time.DateOnly}

// ImportUseCase importa funcionarios en una única transacción.
type ImportUseCase struct {
	tx TxRunner
}

// NewImportUseCase construye el caso de uso.
func NewImportUseCase(tx TxRunner) *ImportUseCase {
	return &ImportUseCase{tx: tx}
}

// Import lee el CSV y crea cada funcionario. Duplicados (misma matrícula en la misma
// empresa) se cuentan y se omiten; filas sin nombre o con fecha inválida se rechazan.
// Un error de persistencia revierte toda la importación.
func (uc *ImportUseCase) Import(ctx context.Context, r io.Reader, opts Options) (*Result, error) {
	if !opts.UTF8 {
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}
	reader := csv.NewReader(r)
	reader.Comma = ';'
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: leer encabezado: %v", domain.ErrInvalidInput, err)
	}
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[badge.CanonicalTag(trimBOM(h))] = i
	}
	if _, ok := index[colNome]; !ok {
		return nil, fmt.Errorf("%w: columna %q ausente", domain.ErrInvalidInput, colNome)
	}

	type parsedRow struct {
		line     int
		employee *entity.Employee
	}
	var rows []parsedRow
	res := &Result{}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		line, _ := reader.FieldPos(0)
		field := func(col string) string {
			i, ok := index[col]
			if !ok || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		e := &entity.Employee{
			Name:               field(colNome),
			RegistrationNumber: field(colMatricula),
			CompanyName:        field(colEmpresa),
			BloodType:          strings.ToUpper(field(colTipoSanguineo)),
			CPF:                field(colCPF),
			RG:                 field(colRG),
			Photo:              field(colFoto),
		}
		if e.Name == "" {
			res.Rejected = append(res.Rejected, RowError{Line: line, Reason: "nome vacío"})
			continue
		}
		if raw := field(colAdmissao); raw != "" {
			d, ok := parseAdmission(raw)
			if !ok {
				res.Rejected = append(res.Rejected, RowError{Line: line, Reason: "admissao inválida: " + raw})
				continue
			}
			e.AdmissionDate = &d
		}
		rows = append(rows, parsedRow{line: line, employee: e})
	}

	err = uc.tx.Run(ctx, func(employees repository.EmployeeRepository) error {
		for _, row := range rows {
			if err := employees.Create(ctx, row.employee); err != nil {
				if errors.Is(err, domain.ErrDuplicate) {
					res.Duplicates++
					continue
				}
				return fmt.Errorf("línea %d: %w", row.line, err)
			}
			res.Inserted++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func parseAdmission(s string) (time.Time, bool) {
	for _, layout := range admissionLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}

// trimBOM quita el BOM UTF-8, también cuando llegó decodificado como Latin-1.
func trimBOM(s string) string {
	s = strings.TrimPrefix(s, "\ufeff")
	return strings.TrimPrefix(s, "\u00ef\u00bb\u00bf")
}
