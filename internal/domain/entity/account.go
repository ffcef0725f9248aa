package entity

import "time"

// RoleUser rol por defecto asignado a toda cuenta nueva si no se indica otro.
const RoleUser = "ROLE_USER"

// Account representa un principal registrado en el sistema.
// El email actúa como identificador externo y es único en toda la tabla.
type Account struct {
	ID           string
	Email        string
	PasswordHash string     // bcrypt hash, nunca plano en dominio después de persistir
	APIToken     string     // credencial bearer opaca; se genera una sola vez en el registro
	Roles        []string   // asignados en el registro, ninguna operación los muta
	CreatedAt    time.Time
	UpdatedAt    *time.Time // solo lo toca la edición de perfil
}
