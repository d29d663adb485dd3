package repository

import (
	"context"

	"github.com/canvacrancha/badge-api/internal/domain/entity"
)

// BadgeTemplateRepository define el puerto de persistencia para BadgeTemplate (DIP).
// La unicidad de (CompanyID, SlotNumber) la garantiza el almacenamiento.
type BadgeTemplateRepository interface {
	// UpsertByKey inserta o sobrescribe el template de (CompanyID, SlotNumber) en una
	// sola escritura atómica y rellena ID, CreatedAt y UpdatedAt con lo persistido.
	UpsertByKey(ctx context.Context, template *entity.BadgeTemplate) error
	FindByKey(ctx context.Context, companyID string, slot int) (*entity.BadgeTemplate, error)
	FindByOwner(ctx context.Context, companyID string) ([]*entity.BadgeTemplate, error)
	FindByID(ctx context.Context, id int64) (*entity.BadgeTemplate, error)
}
