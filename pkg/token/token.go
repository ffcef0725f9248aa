package token

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más el email de la cuenta.
// El token es la credencial bearer estable de la cuenta: se emite una sola
// vez en el registro y no lleva expiración (no hay rotación ni refresh).
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// Issuer emite y valida los API tokens firmados (HS256).
type Issuer struct {
	secret string
	issuer string
}

// NewIssuer construye el emisor con el secret de firma y el nombre del issuer.
func NewIssuer(secret, issuer string) *Issuer {
	return &Issuer{secret: secret, issuer: issuer}
}

// Issue genera el token firmado de una cuenta. Subject = accountID.
func (i *Issuer) Issue(accountID, email string) (string, error) {
	if i.secret == "" {
		return "", fmt.Errorf("token: secret vacío")
	}
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:  i.issuer,
			Subject: accountID,
		},
		Email: email,
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(i.secret))
}

// Parse valida la firma del token y devuelve el accountID (subject) y email.
// Retorna error si el token es inválido o tiene firma incorrecta.
func (i *Issuer) Parse(tokenString string) (accountID, email string, err error) {
	if i.secret == "" {
		return "", "", fmt.Errorf("token: secret vacío")
	}
	tok, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(i.secret), nil
	})
	if err != nil {
		return "", "", err
	}
	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid {
		return "", "", fmt.Errorf("claims inválidos")
	}
	return claims.Subject, claims.Email, nil
}
