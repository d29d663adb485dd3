// Package pdf genera la hoja imprimible de un crachá con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del template  │  CNPJ + slot                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  IMÁGENES: Frente             │  Verso                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FRENTE: elementos por zIndex (texto / QR / foto / imagen)   │
//	│  VERSO:  ídem                                                │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/canvacrancha/badge-api/internal/application/printing"
	"github.com/canvacrancha/badge-api/internal/domain/badge"
	"github.com/canvacrancha/badge-api/pkg/cnpj"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

const defaultFontSize = 10

// ── Generator ─────────────────────────────────────────────────────────────────

var _ printing.BadgePDFGenerator = (*MarotoBadgeGenerator)(nil)

// MarotoBadgeGenerator implementa printing.BadgePDFGenerator usando Maroto v2.
type MarotoBadgeGenerator struct{}

// NewMarotoBadgeGenerator construye el generador.
func NewMarotoBadgeGenerator() *MarotoBadgeGenerator { return &MarotoBadgeGenerator{} }

// GenerateBadgePDF genera el PDF y devuelve sus bytes.
func (g *MarotoBadgeGenerator) GenerateBadgePDF(_ context.Context, sheet *printing.BadgeSheet) ([]byte, error) {
	if sheet == nil || sheet.Template == nil {
		return nil, fmt.Errorf("pdf: hoja sin template")
	}
	tpl := sheet.Template

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Crachá - "+tpl.TemplateName, true).
		WithAuthor(tpl.CompanyID, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(sheet))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	if r, ok := imagesRow(tpl.FrontImage, tpl.BackImage); ok {
		m.AddRows(r)
		m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	}

	m.AddRows(sideRows("FRENTE", sheet.Front)...)
	m.AddRows(line.NewRow(3))
	m.AddRows(sideRows("VERSO", sheet.Back)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del template (izq) y CNPJ + slot (der).
func headerRow(sheet *printing.BadgeSheet) core.Row {
	tpl := sheet.Template
	companyID := tpl.CompanyID
	if cnpj.Validate(companyID) == nil {
		companyID = cnpj.Format(companyID)
	}
	subtitle := "Vista previa"
	if sheet.Employee != nil {
		subtitle = sheet.Employee.Name
	}

	return row.New(18).Add(
		col.New(7).Add(
			text.New(tpl.TemplateName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(subtitle, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("CNPJ: "+companyID, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1,
			}),
			text.New(fmt.Sprintf("Slot %d", tpl.SlotNumber), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// imagesRow: imágenes de fondo de frente y verso lado a lado. false si ninguna es un data URI de imagen.
func imagesRow(front, back string) (core.Row, bool) {
	frontImg, frontOK := imageComponent(front)
	backImg, backOK := imageComponent(back)
	if !frontOK && !backOK {
		return nil, false
	}

	frontCol := col.New(6)
	if frontOK {
		frontCol.Add(frontImg)
	}
	backCol := col.New(6)
	if backOK {
		backCol.Add(backImg)
	}
	return row.New(60).Add(frontCol, backCol), true
}

// sideRows: título del lado y una fila por elemento.
func sideRows(title string, elements []printing.SheetElement) []core.Row {
	rows := []core.Row{
		row.New(7).Add(col.New(12).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
	}
	if len(elements) == 0 {
		return append(rows, row.New(6).Add(col.New(12).Add(
			text.New("(sin elementos)", props.Text{Size: 8, Color: colorGray, Top: 1}),
		)))
	}

	for _, el := range elements {
		switch el.Type {
		case badge.ElementText:
			if strings.TrimSpace(el.Content) == "" {
				continue
			}
			rows = append(rows, textRow(el))
		case badge.ElementQR:
			if strings.TrimSpace(el.Content) == "" {
				continue
			}
			rows = append(rows, row.New(35).Add(
				col.New(4).Add(code.NewQr(el.Content, props.Rect{Percent: 95, Center: true})),
				col.New(8),
			))
		case badge.ElementPhoto, badge.ElementImage:
			img, ok := imageComponent(el.Content)
			if !ok {
				// vista previa: el tag sin resolver queda como marcador
				if badge.IsDynamic(el.Content) {
					rows = append(rows, placeholderRow(el.Content))
				}
				continue
			}
			rows = append(rows, row.New(35).Add(col.New(4).Add(img), col.New(8)))
		}
	}
	return rows
}

func textRow(el printing.SheetElement) core.Row {
	size := el.FontSize
	if size <= 0 {
		size = defaultFontSize
	}
	style := fontstyle.Normal
	if el.Bold {
		style = fontstyle.Bold
	}
	return row.New(size*0.5 + 3).Add(col.New(12).Add(
		text.New(el.Content, props.Text{
			Style: style, Size: size, Align: textAlign(el.Align), Top: 1,
		}),
	))
}

func placeholderRow(content string) core.Row {
	return row.New(35).Add(
		col.New(4).Add(text.New(strings.TrimSpace(content), props.Text{
			Size: 8, Color: colorGray, Align: align.Center, Top: 15,
		})),
		col.New(8),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func textAlign(s string) align.Type {
	switch strings.ToLower(s) {
	case "center":
		return align.Center
	case "right":
		return align.Right
	case "justify":
		return align.Justify
	default:
		return align.Left
	}
}

// imageComponent decodifica un data URI PNG/JPEG. Cualquier otro contenido se ignora.
func imageComponent(content string) (core.Component, bool) {
	if !strings.HasPrefix(strings.TrimSpace(content), "data:") {
		return nil, false
	}
	uri, err := badge.DecodeDataURI(content)
	if err != nil || len(uri.Data) == 0 {
		return nil, false
	}
	var ext extension.Type
	switch uri.MediaType {
	case "image/png":
		ext = extension.Png
	case "image/jpeg", "image/jpg":
		ext = extension.Jpg
	default:
		return nil, false
	}
	return image.NewFromBytes(uri.Data, ext, props.Rect{Percent: 95, Center: true}), true
}
