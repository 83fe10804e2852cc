package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrUnknownProduct    = errors.New("producto no encontrado")
	ErrInsufficientStock = errors.New("stock insuficiente")
)
