// Package badge interpreta el layout serializado por el editor de crachás.
// El almacenamiento trata el layout como documento opaco; solo la impresión lo lee.
package badge

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/canvacrancha/badge-api/internal/domain"
)

// Side lado del crachá.
type Side string

const (
	SideFront Side = "front"
	SideBack  Side = "back"
)

// ElementType tipos de elemento que produce el editor.
type ElementType string

const (
	ElementText  ElementType = "text"
	ElementImage ElementType = "image"
	ElementPhoto ElementType = "photo"
	ElementShape ElementType = "shape"
	ElementQR    ElementType = "qr"
)

// Element es un elemento visual posicionado sobre el crachá.
type Element struct {
	ID         string      `json:"id"`
	Type       ElementType `json:"type"`
	X          float64     `json:"x"`
	Y          float64     `json:"y"`
	Width      float64     `json:"width"`
	Height     float64     `json:"height"`
	Rotation   float64     `json:"rotation"`
	ZIndex     int         `json:"zIndex"`
	Content    string      `json:"content,omitempty"`
	FontSize   float64     `json:"fontSize,omitempty"`
	Color      string      `json:"color,omitempty"`
	FontWeight string      `json:"fontWeight,omitempty"`
	FontStyle  string      `json:"fontStyle,omitempty"`
	TextAlign  string      `json:"textAlign,omitempty"`
	ShapeType  string      `json:"shapeType,omitempty"`
	FillColor  string      `json:"fillColor,omitempty"`
	Side       Side        `json:"side"`
	// Style estilos del editor legado (fontSize, color, fontWeight, ...).
	Style map[string]any `json:"style,omitempty"`
}

// applyStyle completa los campos de texto vacíos con los valores de Style.
func (e *Element) applyStyle() {
	if len(e.Style) == 0 {
		return
	}
	if e.FontSize <= 0 {
		e.FontSize = styleNumber(e.Style["fontSize"])
	}
	if e.Color == "" {
		e.Color = styleString(e.Style["color"])
	}
	if e.FontWeight == "" {
		e.FontWeight = styleString(e.Style["fontWeight"])
	}
	if e.FontStyle == "" {
		e.FontStyle = styleString(e.Style["fontStyle"])
	}
	if e.TextAlign == "" {
		e.TextAlign = styleString(e.Style["textAlign"])
	}
}

// styleNumber acepta 14, "14" o "14px".
func styleNumber(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case string:
		f, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(n), "px"), 64)
		if err == nil {
			return f
		}
	}
	return 0
}

func styleString(v any) string {
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	}
	return ""
}

// Layout conjunto de elementos de ambos lados.
type Layout struct {
	Elements []Element
}

// ParseLayout acepta un arreglo JSON de elementos o un objeto con "elements"
// (estado completo del editor). Un layout vacío o null produce un Layout sin elementos.
// Un string JSON que contiene el documento (doble codificación) también se acepta.
func ParseLayout(raw string) (*Layout, error) {
	return parseLayout(raw, true)
}

func parseLayout(raw string, allowNested bool) (*Layout, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || trimmed == "null" {
		return &Layout{}, nil
	}

	var elements []Element
	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal([]byte(trimmed), &elements); err != nil {
			return nil, fmt.Errorf("%w: layout: %v", domain.ErrInvalidInput, err)
		}
	case '{':
		var state struct {
			Elements []Element `json:"elements"`
		}
		if err := json.Unmarshal([]byte(trimmed), &state); err != nil {
			return nil, fmt.Errorf("%w: layout: %v", domain.ErrInvalidInput, err)
		}
		elements = state.Elements
	case '"':
		if allowNested {
			var inner string
			if err := json.Unmarshal([]byte(trimmed), &inner); err != nil {
				return nil, fmt.Errorf("%w: layout: %v", domain.ErrInvalidInput, err)
			}
			return parseLayout(inner, false)
		}
		fallthrough
	default:
		return nil, fmt.Errorf("%w: layout debe ser un arreglo u objeto JSON", domain.ErrInvalidInput)
	}

	for i := range elements {
		if elements[i].Side != SideBack {
			elements[i].Side = SideFront
		}
		elements[i].applyStyle()
	}
	return &Layout{Elements: elements}, nil
}

// BySide devuelve los elementos de un lado ordenados por zIndex (estable).
func (l *Layout) BySide(side Side) []Element {
	out := make([]Element, 0, len(l.Elements))
	for _, el := range l.Elements {
		if el.Side == side {
			out = append(out, el)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ZIndex < out[j].ZIndex })
	return out
}
