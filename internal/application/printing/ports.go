package printing

import (
	"context"

	"github.com/canvacrancha/badge-api/internal/domain/badge"
	"github.com/canvacrancha/badge-api/internal/domain/entity"
)

// SheetElement elemento ya resuelto (tags sustituidos) listo para dibujar.
type SheetElement struct {
	Type     badge.ElementType
	Content  string
	FontSize float64
	Bold     bool
	Align    string
}

// BadgeSheet datos completos de una hoja de impresión.
type BadgeSheet struct {
	Template *entity.BadgeTemplate
	Employee *entity.Employee // nil = vista previa sin funcionario
	Front    []SheetElement
	Back     []SheetElement
}

// BadgePDFGenerator genera el PDF de una hoja de crachá.
type BadgePDFGenerator interface {
	GenerateBadgePDF(ctx context.Context, sheet *BadgeSheet) ([]byte, error)
}
