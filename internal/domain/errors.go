package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInvalidArgument   = errors.New("argumento inválido")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUserAlreadyExists = errors.New("el usuario ya existe")
	ErrUnauthorized      = errors.New("no autorizado")
)
