package dto

import (
	"encoding/json"
	"time"
)

// UpsertBadgeTemplateRequest entrada para guardar el template de un slot.
// Layout es un documento JSON arbitrario que se guarda sin interpretar.
//
// También acepta el payload del editor legado (cnpj, slotNumber, templateName,
// frenteImagem, versoImagem y layoutJson como string); las claves snake_case tienen prioridad.
type UpsertBadgeTemplateRequest struct {
	CompanyID    string          `json:"company_id" validate:"required"`
	SlotNumber   int             `json:"slot_number" validate:"min=1,max=3"`
	TemplateName string          `json:"template_name"`
	FrontImage   string          `json:"front_image"`
	BackImage    string          `json:"back_image"`
	Layout       json.RawMessage `json:"layout" swaggertype:"object"`
}

// legacyTemplateFields claves del editor legado.
type legacyTemplateFields struct {
	CNPJ         string  `json:"cnpj"`
	SlotNumber   int     `json:"slotNumber"`
	TemplateName string  `json:"templateName"`
	FrenteImagem string  `json:"frenteImagem"`
	VersoImagem  string  `json:"versoImagem"`
	LayoutJSON   *string `json:"layoutJson"`
}

func (r *UpsertBadgeTemplateRequest) UnmarshalJSON(data []byte) error {
	type plain UpsertBadgeTemplateRequest
	var aux struct {
		plain
		legacyTemplateFields
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*r = UpsertBadgeTemplateRequest(aux.plain)
	legacy := aux.legacyTemplateFields
	if r.CompanyID == "" {
		r.CompanyID = legacy.CNPJ
	}
	if r.SlotNumber == 0 {
		r.SlotNumber = legacy.SlotNumber
	}
	if r.TemplateName == "" {
		r.TemplateName = legacy.TemplateName
	}
	if r.FrontImage == "" {
		r.FrontImage = legacy.FrenteImagem
	}
	if r.BackImage == "" {
		r.BackImage = legacy.VersoImagem
	}
	if len(r.Layout) == 0 && legacy.LayoutJSON != nil {
		r.Layout = json.RawMessage(*legacy.LayoutJSON)
	}
	return nil
}

// BadgeTemplateResponse salida de un template persistido.
// cnpj, slotNumber, templateName y layoutJson (layout como string) repiten los
// datos con los nombres que lee el editor legado.
type BadgeTemplateResponse struct {
	ID           int64           `json:"id"`
	CompanyID    string          `json:"company_id"`
	SlotNumber   int             `json:"slot_number"`
	TemplateName string          `json:"template_name"`
	FrontImage   string          `json:"front_image,omitempty"`
	BackImage    string          `json:"back_image,omitempty"`
	Layout       json.RawMessage `json:"layout,omitempty" swaggertype:"object"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`

	LegacyCNPJ         string `json:"cnpj"`
	LegacySlotNumber   int    `json:"slotNumber"`
	LegacyTemplateName string `json:"templateName"`
	LegacyLayoutJSON   string `json:"layoutJson,omitempty"`
}
