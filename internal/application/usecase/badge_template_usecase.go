package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/canvacrancha/badge-api/internal/application/dto"
	"github.com/canvacrancha/badge-api/internal/domain"
	"github.com/canvacrancha/badge-api/internal/domain/entity"
	"github.com/canvacrancha/badge-api/internal/domain/repository"
)

var errCompanyRequired = fmt.Errorf("%w: company_id es requerido", domain.ErrInvalidInput)

// BadgeTemplateUseCase aplica la regla de slots (1..3 por empresa) y el upsert por
// clave natural (company_id, slot_number).
type BadgeTemplateUseCase struct {
	repo repository.BadgeTemplateRepository
	now  func() time.Time
}

// NewBadgeTemplateUseCase construye el caso de uso con el puerto de persistencia.
func NewBadgeTemplateUseCase(repo repository.BadgeTemplateRepository) *BadgeTemplateUseCase {
	return &BadgeTemplateUseCase{repo: repo, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *BadgeTemplateUseCase) WithClock(now func() time.Time) *BadgeTemplateUseCase {
	uc.now = now
	return uc
}

// NormalizeBadgeTemplate convierte la petición en una entrada tipada: recorta
// company_id, aplica el nombre por defecto y serializa el layout tal cual llegó.
// Devuelve domain.ErrInvalidInput / domain.ErrInvalidSlot sin hacer I/O.
func NormalizeBadgeTemplate(in dto.UpsertBadgeTemplateRequest) (entity.BadgeTemplateInput, error) {
	companyID := strings.TrimSpace(in.CompanyID)
	if companyID == "" {
		return entity.BadgeTemplateInput{}, errCompanyRequired
	}
	if !validSlot(in.SlotNumber) {
		return entity.BadgeTemplateInput{}, domain.ErrInvalidSlot
	}
	name := strings.TrimSpace(in.TemplateName)
	if name == "" {
		name = entity.DefaultTemplateName
	}
	layout := strings.TrimSpace(string(in.Layout))
	if layout == "null" {
		layout = ""
	}
	return entity.BadgeTemplateInput{
		CompanyID:    companyID,
		SlotNumber:   in.SlotNumber,
		TemplateName: name,
		FrontImage:   in.FrontImage,
		BackImage:    in.BackImage,
		Layout:       layout,
	}, nil
}

// Upsert crea el template del slot o sobrescribe el existente (último en escribir gana).
// ID y CreatedAt de un template existente se conservan; UpdatedAt se renueva.
func (uc *BadgeTemplateUseCase) Upsert(ctx context.Context, in dto.UpsertBadgeTemplateRequest) (*dto.BadgeTemplateResponse, error) {
	input, err := NormalizeBadgeTemplate(in)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	template := &entity.BadgeTemplate{
		CompanyID:    input.CompanyID,
		SlotNumber:   input.SlotNumber,
		TemplateName: input.TemplateName,
		FrontImage:   input.FrontImage,
		BackImage:    input.BackImage,
		Layout:       input.Layout,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.UpsertByKey(ctx, template); err != nil {
		return nil, err
	}
	return toBadgeTemplateResponse(template), nil
}

// ListByCompany devuelve los templates de la empresa (vacío si no hay).
func (uc *BadgeTemplateUseCase) ListByCompany(ctx context.Context, companyID string) ([]dto.BadgeTemplateResponse, error) {
	list, err := uc.repo.FindByOwner(ctx, strings.TrimSpace(companyID))
	if err != nil {
		return nil, err
	}
	items := make([]dto.BadgeTemplateResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toBadgeTemplateResponse(t))
	}
	return items, nil
}

// GetBySlot obtiene el template de (companyID, slot). nil si no existe; un slot fuera
// de rango no puede existir y se responde como ausente sin consultar el almacenamiento.
func (uc *BadgeTemplateUseCase) GetBySlot(ctx context.Context, companyID string, slot int) (*dto.BadgeTemplateResponse, error) {
	if !validSlot(slot) {
		return nil, nil
	}
	t, err := uc.repo.FindByKey(ctx, strings.TrimSpace(companyID), slot)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, nil
	}
	return toBadgeTemplateResponse(t), nil
}

// GetByID obtiene un template por su ID de almacenamiento. nil si no existe.
func (uc *BadgeTemplateUseCase) GetByID(ctx context.Context, id int64) (*dto.BadgeTemplateResponse, error) {
	t, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, nil
	}
	return toBadgeTemplateResponse(t), nil
}

func validSlot(slot int) bool {
	return slot >= domain.MinSlot && slot <= domain.MaxSlot
}

func toBadgeTemplateResponse(t *entity.BadgeTemplate) *dto.BadgeTemplateResponse {
	if t == nil {
		return nil
	}
	return &dto.BadgeTemplateResponse{
		ID:           t.ID,
		CompanyID:    t.CompanyID,
		SlotNumber:   t.SlotNumber,
		TemplateName: t.TemplateName,
		FrontImage:   t.FrontImage,
		BackImage:    t.BackImage,
		Layout:       layoutJSON(t.Layout),
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,

		LegacyCNPJ:         t.CompanyID,
		LegacySlotNumber:   t.SlotNumber,
		LegacyTemplateName: t.TemplateName,
		LegacyLayoutJSON:   t.Layout,
	}
}

// layoutJSON devuelve el layout guardado como JSON crudo; si el texto no es JSON
// válido se devuelve como string JSON para no romper la respuesta.
func layoutJSON(layout string) json.RawMessage {
	if layout == "" {
		return nil
	}
	if json.Valid([]byte(layout)) {
		return json.RawMessage(layout)
	}
	quoted, _ := json.Marshal(layout)
	return quoted
}
