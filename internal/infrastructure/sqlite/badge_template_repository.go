package sqlite

import (
	"context"
	"fmt"

	"github.com/canvacrancha/badge-api/internal/domain/entity"
	"github.com/canvacrancha/badge-api/internal/domain/repository"
)

var _ repository.BadgeTemplateRepository = (*BadgeTemplateRepo)(nil)

// BadgeTemplateRepo implementación del puerto BadgeTemplateRepository sobre SQLite.
type BadgeTemplateRepo struct {
	db DBTX
}

// NewBadgeTemplateRepository construye el adaptador. Pasar *sql.DB o *sql.Tx.
func NewBadgeTemplateRepository(db DBTX) *BadgeTemplateRepo {
	return &BadgeTemplateRepo{db: db}
}

const badgeTemplateColumns = `id, company_id, slot_number, template_name, front_image, back_image, layout_json, created_at, updated_at`

// UpsertByKey inserta o actualiza por (company_id, slot_number) en una sola sentencia.
func (r *BadgeTemplateRepo) UpsertByKey(ctx context.Context, t *entity.BadgeTemplate) error {
	const query = `
		INSERT INTO badge_templates (company_id, slot_number, template_name, front_image, back_image, layout_json, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (company_id, slot_number) DO UPDATE SET
			template_name = excluded.template_name,
			front_image   = excluded.front_image,
			back_image    = excluded.back_image,
			layout_json   = excluded.layout_json,
			updated_at    = excluded.updated_at
		RETURNING id, created_at, updated_at`

	var createdAt, updatedAt string
	err := r.db.QueryRowContext(ctx, query,
		t.CompanyID, t.SlotNumber, t.TemplateName, t.FrontImage, t.BackImage, t.Layout,
		formatTime(t.CreatedAt), formatTime(t.UpdatedAt),
	).Scan(&t.ID, &createdAt, &updatedAt)
	if err != nil {
		return fmt.Errorf("upsert badge template: %w", err)
	}
	if t.CreatedAt, err = parseTime(createdAt); err != nil {
		return err
	}
	if t.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return err
	}
	return nil
}

// FindByKey obtiene el template de (companyID, slot). nil si no existe.
func (r *BadgeTemplateRepo) FindByKey(ctx context.Context, companyID string, slot int) (*entity.BadgeTemplate, error) {
	query := `SELECT ` + badgeTemplateColumns + ` FROM badge_templates WHERE company_id = ? AND slot_number = ?`
	t, err := scanBadgeTemplate(r.db.QueryRowContext(ctx, query, companyID, slot))
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
	query := `SELECT ` + badgeTemplateColumns + ` FROM badge_templates WHERE company_id = ? ORDER BY slot_number`
	rows, err := r.db.QueryContext(ctx, query, companyID)
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
	query := `SELECT ` + badgeTemplateColumns + ` FROM badge_templates WHERE id = ?`
	t, err := scanBadgeTemplate(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get badge template by id: %w", err)
	}
	return t, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBadgeTemplate(s scanner) (*entity.BadgeTemplate, error) {
	var (
		t                    entity.BadgeTemplate
		createdAt, updatedAt string
	)
	if err := s.Scan(
		&t.ID, &t.CompanyID, &t.SlotNumber, &t.TemplateName, &t.FrontImage, &t.BackImage,
		&t.Layout, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}
	var err error
	if t.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if t.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}
