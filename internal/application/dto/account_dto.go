package dto

import "time"

// RegisterRequest entrada para el registro: email + password en texto plano.
// Roles es opcional; si viene vacío se asigna el rol por defecto.
type RegisterRequest struct {
	Email    string   `json:"email" validate:"required,email"`
	Password string   `json:"password" validate:"required,min=8"`
	Roles    []string `json:"roles" validate:"omitempty"`
}

// LoginRequest entrada para login (email + password).
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateAccountRequest payload parcial para la edición de perfil.
// Punteros nil = campo ausente en el JSON; solo los campos presentes
// sobrescriben el registro existente (merge, no reemplazo completo).
type UpdateAccountRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// AccountSummary respuesta de registro y login: identificador, token y roles.
// Las claves siguen el contrato público del API.
type AccountSummary struct {
	User     string   `json:"user"`
	APIToken string   `json:"apiToken"`
	Roles    []string `json:"roles"`
}

// AccountResponse vista de solo lectura de una cuenta (sin password hash).
type AccountResponse struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	APIToken  string     `json:"apiToken"`
	Roles     []string   `json:"roles"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}
