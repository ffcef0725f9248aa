package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrIdentifierTaken    = errors.New("el email ya está registrado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrAccountNotFound    = errors.New("cuenta no encontrada")
	ErrInvalidInput       = errors.New("entrada inválida")
)
