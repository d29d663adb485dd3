package entity

import "time"

// DefaultTemplateName se usa cuando el cliente no envía nombre.
const DefaultTemplateName = "Sem nome"

// BadgeTemplate es el diseño de crachá guardado en uno de los slots de una empresa.
// (CompanyID, SlotNumber) es la identidad natural; ID es la identidad de almacenamiento.
type BadgeTemplate struct {
	ID           int64
	CompanyID    string // CNPJ
	SlotNumber   int
	TemplateName string
	FrontImage   string // data URI, opcional
	BackImage    string // data URI, opcional
	Layout       string // documento JSON opaco con los elementos del editor
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// BadgeTemplateInput es la entrada ya normalizada para el upsert.
type BadgeTemplateInput struct {
	CompanyID    string
	SlotNumber   int
	TemplateName string
	FrontImage   string
	BackImage    string
	Layout       string
}
