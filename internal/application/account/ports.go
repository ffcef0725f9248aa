package account

import "time"

// CredentialHasher puerto de hashing one-way de contraseñas.
type CredentialHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hash string) bool
}

// TokenIssuer emite el API token estable que se asigna en el registro.
// El token no se regenera nunca dentro del alcance de este servicio.
type TokenIssuer interface {
	Issue(accountID, email string) (string, error)
}

// Clock fuente de tiempo inyectable para createdAt/updatedAt.
type Clock interface {
	Now() time.Time
}

// SystemClock Clock de producción sobre time.Now en UTC.
type SystemClock struct{}

// Now devuelve la hora actual en UTC.
func (SystemClock) Now() time.Time { return time.Now().UTC() }
