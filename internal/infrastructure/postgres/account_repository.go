package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/accounts-api/internal/domain"
	"github.com/jhoicas/accounts-api/internal/domain/entity"
	"github.com/jhoicas/accounts-api/internal/domain/repository"
)

var _ repository.AccountRepository = (*AccountRepo)(nil)

// AccountRepo implementación del puerto AccountRepository sobre PostgreSQL.
type AccountRepo struct {
	pool *pgxpool.Pool
}

// NewAccountRepository construye el adaptador de persistencia para cuentas.
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepo {
	return &AccountRepo{pool: pool}
}

// Create persiste una cuenta nueva. El índice único sobre email convierte
// la violación 23505 en domain.ErrIdentifierTaken.
func (r *AccountRepo) Create(acct *entity.Account) error {
	query := `
		INSERT INTO accounts (id, email, password_hash, api_token, roles, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(context.Background(), query,
		acct.ID, acct.Email, acct.PasswordHash, acct.APIToken, acct.Roles,
		acct.CreatedAt, acct.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrIdentifierTaken
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// FindByID obtiene una cuenta por ID. Devuelve (nil, nil) si no existe.
func (r *AccountRepo) FindByID(id string) (*entity.Account, error) {
	query := `
		SELECT id, email, password_hash, api_token, roles, created_at, updated_at
		FROM accounts WHERE id = $1`
	return r.scanOne(r.pool.QueryRow(context.Background(), query, id), "get account by id")
}

// FindByEmail obtiene una cuenta por email. Devuelve (nil, nil) si no existe.
func (r *AccountRepo) FindByEmail(email string) (*entity.Account, error) {
	query := `
		SELECT id, email, password_hash, api_token, roles, created_at, updated_at
		FROM accounts WHERE email = $1 LIMIT 1`
	return r.scanOne(r.pool.QueryRow(context.Background(), query, email), "get account by email")
}

// Update actualiza los campos mutables de una cuenta (email, hash, updated_at).
// El API token y los roles no cambian después del registro.
func (r *AccountRepo) Update(acct *entity.Account) error {
	query := `
		UPDATE accounts SET email = $2, password_hash = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		acct.ID, acct.Email, acct.PasswordHash, acct.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrIdentifierTaken
		}
		return fmt.Errorf("update account: %w", err)
	}
	return nil
}

func (r *AccountRepo) scanOne(row pgx.Row, op string) (*entity.Account, error) {
	var a entity.Account
	err := row.Scan(
		&a.ID, &a.Email, &a.PasswordHash, &a.APIToken, &a.Roles,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &a, nil
}
