package account_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/accounts-api/internal/application/account"
	"github.com/jhoicas/accounts-api/internal/application/dto"
	"github.com/jhoicas/accounts-api/internal/domain"
	"github.com/jhoicas/accounts-api/internal/domain/entity"
	"github.com/jhoicas/accounts-api/internal/infrastructure/hash"
	"github.com/jhoicas/accounts-api/pkg/token"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de test
// ──────────────────────────────────────────────────────────────────────────────

// fakeAccountRepo store en memoria que replica el contrato del adaptador
// PostgreSQL: (nil, nil) cuando no hay fila y ErrIdentifierTaken al violar
// la unicidad del email.
type fakeAccountRepo struct {
	byID map[string]*entity.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{byID: make(map[string]*entity.Account)}
}

func (r *fakeAccountRepo) Create(acct *entity.Account) error {
	for _, a := range r.byID {
		if a.Email == acct.Email {
			return domain.ErrIdentifierTaken
		}
	}
	cp := *acct
	r.byID[acct.ID] = &cp
	return nil
}

func (r *fakeAccountRepo) FindByID(id string) (*entity.Account, error) {
	a, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *fakeAccountRepo) FindByEmail(email string) (*entity.Account, error) {
	for _, a := range r.byID {
		if a.Email == email {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeAccountRepo) Update(acct *entity.Account) error {
	for id, a := range r.byID {
		if id != acct.ID && a.Email == acct.Email {
			return domain.ErrIdentifierTaken
		}
	}
	cp := *acct
	r.byID[acct.ID] = &cp
	return nil
}

// fakeClock reloj controlado por el test.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// newUseCase arma el caso de uso con fakes y colaboradores reales de
// hashing/token (bcrypt con coste mínimo para que los tests sean rápidos).
func newUseCase(t *testing.T) (*account.AccountUseCase, *fakeAccountRepo, *fakeClock) {
	t.Helper()
	repo := newFakeAccountRepo()
	clock := &fakeClock{now: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)}
	uc := account.NewAccountUseCase(
		repo,
		hash.NewBcryptHasher(bcrypt.MinCost),
		token.NewIssuer("test-secret-key-for-unit-tests", "accounts-api-test"),
		clock,
	)
	return uc, repo, clock
}

func register(t *testing.T, uc *account.AccountUseCase, email, password string) *dto.AccountSummary {
	t.Helper()
	out, err := uc.Register(dto.RegisterRequest{Email: email, Password: password})
	require.NoError(t, err)
	require.NotNil(t, out)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_CreaCuentaConTokenYRolPorDefecto(t *testing.T) {
	uc, repo, clock := newUseCase(t)

	out := register(t, uc, "a@x.com", "password1")

	assert.Equal(t, "a@x.com", out.User)
	assert.NotEmpty(t, out.APIToken)
	assert.Equal(t, []string{entity.RoleUser}, out.Roles)

	stored, err := repo.FindByEmail("a@x.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "password1", stored.PasswordHash, "la password nunca se persiste en plano")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("password1")))
	assert.Equal(t, clock.Now(), stored.CreatedAt)
	assert.Nil(t, stored.UpdatedAt, "updatedAt solo lo asigna la edición")
}

func TestRegister_RolesExplicitosSeConservan(t *testing.T) {
	uc, _, _ := newUseCase(t)

	out, err := uc.Register(dto.RegisterRequest{
		Email:    "admin@x.com",
		Password: "password1",
		Roles:    []string{"ROLE_ADMIN", entity.RoleUser},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"ROLE_ADMIN", entity.RoleUser}, out.Roles)
}

func TestRegister_EmailDuplicado_RetornaConflicto(t *testing.T) {
	uc, _, _ := newUseCase(t)
	register(t, uc, "a@x.com", "password1")

	_, err := uc.Register(dto.RegisterRequest{Email: "a@x.com", Password: "otrapassword"})
	assert.ErrorIs(t, err, domain.ErrIdentifierTaken)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesCorrectas_DevuelveMismaCuenta(t *testing.T) {
	uc, _, _ := newUseCase(t)
	created := register(t, uc, "a@x.com", "password1")

	out, err := uc.Login(dto.LoginRequest{Email: "a@x.com", Password: "password1"})
	require.NoError(t, err)
	assert.Equal(t, created.User, out.User)
	assert.Equal(t, created.APIToken, out.APIToken, "login no rota el token")
	assert.Equal(t, created.Roles, out.Roles)
}

func TestLogin_PasswordIncorrecta_YEmailDesconocido_SonIndistinguibles(t *testing.T) {
	uc, _, _ := newUseCase(t)
	register(t, uc, "a@x.com", "password1")

	_, errPassword := uc.Login(dto.LoginRequest{Email: "a@x.com", Password: "incorrecta"})
	_, errEmail := uc.Login(dto.LoginRequest{Email: "nadie@x.com", Password: "password1"})

	require.Error(t, errPassword)
	require.Error(t, errEmail)
	assert.Equal(t, errPassword, errEmail,
		"email desconocido y password incorrecta deben fallar igual para no enumerar identificadores")
	assert.ErrorIs(t, errPassword, domain.ErrInvalidCredentials)
}

// ──────────────────────────────────────────────────────────────────────────────
// Me
// ──────────────────────────────────────────────────────────────────────────────

func TestMe_NuncaExponeElHash(t *testing.T) {
	uc, repo, _ := newUseCase(t)
	register(t, uc, "a@x.com", "password1")
	stored, err := repo.FindByEmail("a@x.com")
	require.NoError(t, err)

	view := uc.Me(stored)
	require.NotNil(t, view)
	assert.Equal(t, stored.ID, view.ID)
	assert.Equal(t, "a@x.com", view.Email)
	assert.Equal(t, stored.APIToken, view.APIToken)

	raw, err := json.Marshal(view)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), stored.PasswordHash)
	assert.NotContains(t, string(raw), "password")
}

// ──────────────────────────────────────────────────────────────────────────────
// Edit
// ──────────────────────────────────────────────────────────────────────────────

func TestEdit_CambiaPassword_InvalidaLaAnterior(t *testing.T) {
	uc, repo, clock := newUseCase(t)
	register(t, uc, "a@x.com", "password1")
	stored, _ := repo.FindByEmail("a@x.com")
	hashAnterior := stored.PasswordHash

	clock.Advance(time.Minute)
	nueva := "password2"
	out, err := uc.Edit(stored.ID, dto.UpdateAccountRequest{Password: &nueva})
	require.NoError(t, err)
	require.NotNil(t, out.UpdatedAt)
	assert.True(t, out.UpdatedAt.After(out.CreatedAt))

	actualizada, _ := repo.FindByID(stored.ID)
	assert.NotEqual(t, hashAnterior, actualizada.PasswordHash)

	_, err = uc.Login(dto.LoginRequest{Email: "a@x.com", Password: "password2"})
	assert.NoError(t, err, "la password nueva debe funcionar")
	_, err = uc.Login(dto.LoginRequest{Email: "a@x.com", Password: "password1"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials, "la password anterior deja de funcionar")
}

// Payload sin campo password: el hash almacenado no se toca. El merge solo
// re-hashea cuando el campo vino explícitamente en el request.
func TestEdit_SinCampoPassword_NoRehashea(t *testing.T) {
	uc, repo, clock := newUseCase(t)
	register(t, uc, "a@x.com", "password1")
	stored, _ := repo.FindByEmail("a@x.com")

	clock.Advance(time.Minute)
	nuevoEmail := "b@x.com"
	_, err := uc.Edit(stored.ID, dto.UpdateAccountRequest{Email: &nuevoEmail})
	require.NoError(t, err)

	actualizada, _ := repo.FindByID(stored.ID)
	assert.Equal(t, stored.PasswordHash, actualizada.PasswordHash, "hash intacto si no vino password")
	assert.Equal(t, "b@x.com", actualizada.Email)

	_, err = uc.Login(dto.LoginRequest{Email: "b@x.com", Password: "password1"})
	assert.NoError(t, err)
}

func TestEdit_PayloadVacio_SoloTocaUpdatedAt(t *testing.T) {
	uc, repo, clock := newUseCase(t)
	register(t, uc, "a@x.com", "password1")
	stored, _ := repo.FindByEmail("a@x.com")

	clock.Advance(time.Minute)
	primera, err := uc.Edit(stored.ID, dto.UpdateAccountRequest{})
	require.NoError(t, err)
	require.NotNil(t, primera.UpdatedAt)

	actualizada, _ := repo.FindByID(stored.ID)
	assert.Equal(t, stored.Email, actualizada.Email)
	assert.Equal(t, stored.PasswordHash, actualizada.PasswordHash)
	assert.Equal(t, stored.APIToken, actualizada.APIToken)
	assert.Equal(t, stored.Roles, actualizada.Roles)

	// updatedAt crece estrictamente entre ediciones sucesivas.
	clock.Advance(time.Minute)
	segunda, err := uc.Edit(stored.ID, dto.UpdateAccountRequest{})
	require.NoError(t, err)
	assert.True(t, segunda.UpdatedAt.After(*primera.UpdatedAt))
}

func TestEdit_IdInexistente_RetornaNotFound(t *testing.T) {
	uc, _, _ := newUseCase(t)

	_, err := uc.Edit("00000000-0000-0000-0000-00000000dead", dto.UpdateAccountRequest{})
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestEdit_EmailOcupado_RetornaConflicto(t *testing.T) {
	uc, repo, _ := newUseCase(t)
	register(t, uc, "a@x.com", "password1")
	register(t, uc, "b@x.com", "password1")
	cuentaB, _ := repo.FindByEmail("b@x.com")

	ocupado := "a@x.com"
	_, err := uc.Edit(cuentaB.ID, dto.UpdateAccountRequest{Email: &ocupado})
	assert.ErrorIs(t, err, domain.ErrIdentifierTaken)
}
