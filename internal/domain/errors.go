package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInsufficientStock = errors.New("stock insuficiente")
	// ErrAtomicity indica que la unidad atómica (asiento + saldo) no pudo
	// confirmarse. Es transitorio: nada parcial quedó visible y el caller
	// puede reintentar la misma operación tal cual.
	ErrAtomicity = errors.New("no se pudo confirmar la transacción")
)
