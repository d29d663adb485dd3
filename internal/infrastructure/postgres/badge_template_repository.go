package postgres

import (
	"context"
	"fmt"

	"github.com/canvacrancha/badge-api/internal/domain/entity"
	"github.com/canvacrancha/badge-api/internal/domain/repository"
)

// Asegura que BadgeTemplateRepo implementa repository.BadgeTemplateRepository.
var _ repository.BadgeTemplateRepository = (*BadgeTemplateRepo)(nil)

// BadgeTemplateRepo implementación del puerto BadgeTemplateRepository sobre PostgreSQL (pool o tx).
type BadgeTemplateRepo struct {
	q Querier
}

// NewBadgeTemplateRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBadgeTemplateRepository(q Querier) *BadgeTemplateRepo {
	return &BadgeTemplateRepo{q: q}
}

const badgeTemplateColumns = `id, company_id, slot_number, template_name, front_image, back_image, layout_json, created_at, updated_at`

// UpsertByKey inserta o actualiza en una sola sentencia. El conflicto sobre
// UNIQUE (company_id, slot_number) lo resuelve PostgreSQL, así dos upserts
// concurrentes de la misma clave nunca crean dos filas. created_at no se toca en el update.
func (r *BadgeTemplateRepo) UpsertByKey(ctx context.Context, t *entity.BadgeTemplate) error {
	const query = `
		INSERT INTO badge_templates (company_id, slot_number, template_name, front_image, back_image, layout_json, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (company_id, slot_number) DO UPDATE SET
			template_name = EXCLUDED.template_name,
			front_image   = EXCLUDED.front_image,
			back_image    = EXCLUDED.back_image,
			layout_json   = EXCLUDED.layout_json,
			updated_at    = EXCLUDED.updated_at
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(ctx, query,
		t.CompanyID, t.SlotNumber, t.TemplateName, t.FrontImage, t.BackImage, t.Layout,
		t.CreatedAt, t.UpdatedAt,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert badge template: %w", err)
	}
	return nil
}

// FindByKey obtiene el template de (companyID, slot). nil si no existe.
func (r *BadgeTemplateRepo) FindByKey(ctx context.Context, companyID string, slot int) (*entity.BadgeTemplate, error) {
	query := `SELECT ` + badgeTemplateColumns + ` FROM badge_templates WHERE company_id = $1 AND slot_number = $2`
	t, err := scanBadgeTemplate(r.q.QueryRow(ctx, query, companyID, slot))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get badge template: %w", err)
	}
	return t, nil
}

// FindByOwner lista los templates de la empresa ordenados por slot.
func (r *BadgeTemplateRepo) FindByOwner(ctx context.Context, companyID string) ([]*entity.BadgeTemplate, error) {
	query := `SELECT ` + badgeTemplateColumns + ` FROM badge_templates WHERE company_id = $1 ORDER BY slot_number`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list badge templates: %w", err)
	}
	defer rows.Close()

	var list []*entity.BadgeTemplate
	for rows.Next() {
		t, err := scanBadgeTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan badge template: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// FindByID obtiene un template por ID. nil si no existe.
func (r *BadgeTemplateRepo) FindByID(ctx context.Context, id int64) (*entity.BadgeTemplate, error) {
	query := `SELECT ` + badgeTemplateColumns + ` FROM badge_templates WHERE id = $1`
	t, err := scanBadgeTemplate(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get badge template by id: %w", err)
	}
	return t, nil
}

type pgxScanner interface {
	Scan(dest ...any) error
}

func scanBadgeTemplate(s pgxScanner) (*entity.BadgeTemplate, error) {
	var t entity.BadgeTemplate
	if err := s.Scan(
		&t.ID, &t.CompanyID, &t.SlotNumber, &t.TemplateName, &t.FrontImage, &t.BackImage,
		&t.Layout, &t.CreatedAt, &t.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &t, nil
}
