package badge

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"
)

// DataURI contenido decodificado de un data URI ("data:image/png;base64,...").
type DataURI struct {
	MediaType string
	Data      []byte
}

// DecodeDataURI decodifica un data URI. Devuelve error si s no es un data URI válido.
func DecodeDataURI(s string) (*DataURI, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "data:") {
		return nil, fmt.Errorf("data uri: prefijo data: ausente")
	}
	header, payload, ok := strings.Cut(s[len("data:"):], ",")
	if !ok {
		return nil, fmt.Errorf("data uri: separador ausente")
	}
	isBase64 := strings.HasSuffix(header, ";base64")
	header = strings.TrimSuffix(header, ";base64")
	mediaType, _, _ := strings.Cut(header, ";")
	if mediaType == "" {
		mediaType = "text/plain"
	}

	var data []byte
	if isBase64 {
		decoded, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, fmt.Errorf("data uri: base64: %w", err)
		}
		data = decoded
	} else {
		unescaped, err := url.PathUnescape(payload)
		if err != nil {
			return nil, fmt.Errorf("data uri: %w", err)
		}
		data = []byte(unescaped)
	}
	return &DataURI{MediaType: strings.ToLower(mediaType), Data: data}, nil
}
