package http

import (
	"fmt"
	"net/url"
	"strings"
)

// Locations construye URLs canónicas de recursos del API a partir de la base
// pública configurada (header Location de las respuestas de edición).
type Locations struct {
	base *url.URL
}

// NewLocations valida y parsea la base pública (ej. https://api.example.com).
func NewLocations(publicBaseURL string) (*Locations, error) {
	u, err := url.Parse(publicBaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse public base URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("public base URL incompleta: %q", publicBaseURL)
	}
	return &Locations{base: u}, nil
}

// Me devuelve la URL absoluta del recurso de perfil autenticado.
func (l *Locations) Me() string {
	u := *l.base
	u.Path = strings.TrimSuffix(u.Path, "/") + "/api/me"
	return u.String()
}
