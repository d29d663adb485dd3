package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
)

// ErrInvalidSlot se devuelve cuando slot_number está fuera de [MinSlot, MaxSlot].
var ErrInvalidSlot = fmt.Errorf("%w: slot number must be between %d and %d", ErrInvalidInput, MinSlot, MaxSlot)

// Rango de slots por empresa.
const (
	MinSlot = 1
	MaxSlot = 3
)
