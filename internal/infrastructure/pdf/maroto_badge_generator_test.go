package pdf

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canvacrancha/badge-api/internal/application/printing"
	"github.com/canvacrancha/badge-api/internal/domain/badge"
	"github.com/canvacrancha/badge-api/internal/domain/entity"
)

func pngDataURI(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestGenerateBadgePDF(t *testing.T) {
	photo := pngDataURI(t)
	sheet := &printing.BadgeSheet{
		Template: &entity.BadgeTemplate{
			ID: 1, CompanyID: "12345678000195", SlotNumber: 1, TemplateName: "Portaria",
			FrontImage: photo,
		},
		Employee: &entity.Employee{Name: "Ana Souza"},
		Front: []printing.SheetElement{
			{Type: badge.ElementText, Content: "Ana Souza", FontSize: 14, Bold: true, Align: "center"},
			{Type: badge.ElementPhoto, Content: photo},
			{Type: badge.ElementQR, Content: "1234"},
		},
		Back: []printing.SheetElement{
			{Type: badge.ElementText, Content: "Tipo sanguíneo: O+"},
			{Type: badge.ElementImage, Content: "https://example.com/no-embebida.png"},
		},
	}

	out, err := NewMarotoBadgeGenerator().GenerateBadgePDF(context.Background(), sheet)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "debe ser un PDF")
}

func TestGenerateBadgePDF_SinElementos(t *testing.T) {
	sheet := &printing.BadgeSheet{
		Template: &entity.BadgeTemplate{CompanyID: "X", SlotNumber: 3, TemplateName: "Sem nome"},
	}
	out, err := NewMarotoBadgeGenerator().GenerateBadgePDF(context.Background(), sheet)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateBadgePDF_SinTemplate(t *testing.T) {
	_, err := NewMarotoBadgeGenerator().GenerateBadgePDF(context.Background(), &printing.BadgeSheet{})
	assert.Error(t, err)
}

func TestImageComponent(t *testing.T) {
	_, ok := imageComponent(pngDataURI(t))
	assert.True(t, ok)

	_, ok = imageComponent("data:image/gif;base64,R0lGODlh")
	assert.False(t, ok, "gif no soportado")

	_, ok = imageComponent("https://example.com/x.png")
	assert.False(t, ok)
}

func TestTextAlign(t *testing.T) {
	assert.Equal(t, align.Center, textAlign("CENTER"))
	assert.Equal(t, align.Left, textAlign(""))
}

func TestSideRows_FotoSinResolverQuedaComoMarcador(t *testing.T) {
	title := 1
	rows := sideRows("Frente", []printing.SheetElement{{Type: badge.ElementPhoto, Content: "{{foto}}"}})
	assert.Len(t, rows, title+1)

	rows = sideRows("Frente", []printing.SheetElement{{Type: badge.ElementImage, Content: "https://example.com/x.png"}})
	assert.Len(t, rows, title, "contenido no imprimible se omite")
}
