package account

import (
	"github.com/google/uuid"
	"github.com/jhoicas/accounts-api/internal/application/dto"
	"github.com/jhoicas/accounts-api/internal/domain"
	"github.com/jhoicas/accounts-api/internal/domain/entity"
	"github.com/jhoicas/accounts-api/internal/domain/repository"
)

// AccountUseCase casos de uso de cuentas: registro, login, perfil y edición.
type AccountUseCase struct {
	repo   repository.AccountRepository
	hasher CredentialHasher
	tokens TokenIssuer
	clock  Clock
}

// NewAccountUseCase construye el caso de uso con sus colaboradores.
// Si clock es nil se usa SystemClock.
func NewAccountUseCase(repo repository.AccountRepository, hasher CredentialHasher, tokens TokenIssuer, clock Clock) *AccountUseCase {
	if clock == nil {
		clock = SystemClock{}
	}
	return &AccountUseCase{repo: repo, hasher: hasher, tokens: tokens, clock: clock}
}

// Register crea una cuenta: hashea la password, emite el API token una sola
// vez y persiste. Devuelve ErrIdentifierTaken si el email ya existe.
func (uc *AccountUseCase) Register(in dto.RegisterRequest) (*dto.AccountSummary, error) {
	existing, err := uc.repo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrIdentifierTaken
	}
	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	id := uuid.New().String()
	token, err := uc.tokens.Issue(id, in.Email)
	if err != nil {
		return nil, err
	}
	roles := in.Roles
	if len(roles) == 0 {
		roles = []string{entity.RoleUser}
	}
	acct := &entity.Account{
		ID:           id,
		Email:        in.Email,
		PasswordHash: hash,
		APIToken:     token,
		Roles:        roles,
		CreatedAt:    uc.clock.Now(),
	}
	if err := uc.repo.Create(acct); err != nil {
		return nil, err
	}
	return toSummary(acct), nil
}

// Login verifica email/password y devuelve la cuenta sin efectos secundarios.
// Email desconocido y password incorrecta devuelven el mismo
// ErrInvalidCredentials para no permitir enumerar identificadores.
func (uc *AccountUseCase) Login(in dto.LoginRequest) (*dto.AccountSummary, error) {
	acct, err := uc.repo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if acct == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !uc.hasher.Verify(in.Password, acct.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	return toSummary(acct), nil
}

// Me proyecta una cuenta ya autenticada a su vista de solo lectura.
func (uc *AccountUseCase) Me(acct *entity.Account) *dto.AccountResponse {
	return toResponse(acct)
}

// Edit aplica un merge parcial sobre la cuenta: solo los campos presentes en
// el payload sobrescriben. La password se re-hashea únicamente si el campo
// vino en el request. Devuelve ErrAccountNotFound si el id no existe.
func (uc *AccountUseCase) Edit(id string, in dto.UpdateAccountRequest) (*dto.AccountResponse, error) {
	acct, err := uc.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if acct == nil {
		return nil, domain.ErrAccountNotFound
	}
	if in.Email != nil {
		acct.Email = *in.Email
	}
	if in.Password != nil {
		hash, err := uc.hasher.Hash(*in.Password)
		if err != nil {
			return nil, err
		}
		acct.PasswordHash = hash
	}
	now := uc.clock.Now()
	acct.UpdatedAt = &now
	if err := uc.repo.Update(acct); err != nil {
		return nil, err
	}
	return toResponse(acct), nil
}

func toSummary(a *entity.Account) *dto.AccountSummary {
	if a == nil {
		return nil
	}
	return &dto.AccountSummary{
		User:     a.Email,
		APIToken: a.APIToken,
		Roles:    a.Roles,
	}
}

func toResponse(a *entity.Account) *dto.AccountResponse {
	if a == nil {
		return nil
	}
	return &dto.AccountResponse{
		ID:        a.ID,
		Email:     a.Email,
		APIToken:  a.APIToken,
		Roles:     a.Roles,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
