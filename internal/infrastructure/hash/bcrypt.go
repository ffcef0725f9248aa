package hash

import "golang.org/x/crypto/bcrypt"

// BcryptHasher implementación del puerto CredentialHasher sobre bcrypt.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher construye el hasher. Con cost fuera de rango se usa
// bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash deriva el hash one-way de una password en texto plano.
func (h *BcryptHasher) Hash(plain string) (string, error) {
	out, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Verify comprueba una password en texto plano contra un hash almacenado.
func (h *BcryptHasher) Verify(plain, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
