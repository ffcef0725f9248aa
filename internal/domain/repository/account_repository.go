package repository

import "github.com/jhoicas/accounts-api/internal/domain/entity"

// AccountRepository define el puerto de persistencia para Account (DIP).
// Las búsquedas devuelven (nil, nil) cuando no hay fila; la unicidad del
// email la garantiza el store (índice único) devolviendo ErrIdentifierTaken.
type AccountRepository interface {
	Create(account *entity.Account) error
	FindByID(id string) (*entity.Account, error)
	FindByEmail(email string) (*entity.Account, error)
	Update(account *entity.Account) error
}
