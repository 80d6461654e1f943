package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jpcardoso/almoxarifado-api/internal/application/auth"
	"github.com/jpcardoso/almoxarifado-api/internal/application/dto"
	"github.com/jpcardoso/almoxarifado-api/internal/domain"
	"github.com/jpcardoso/almoxarifado-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake de UserRepository em memória
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	byMatricula map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byMatricula: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(user *entity.User) error {
	if _, ok := r.byMatricula[user.Matricula]; ok {
		return domain.ErrDuplicate
	}
	cp := *user
	r.byMatricula[user.Matricula] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.byMatricula {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByMatricula(matricula string) (*entity.User, error) {
	u, ok := r.byMatricula[matricula]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func newAuthUC(repo *fakeUserRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:   "test-secret",
		ExpHours: 24,
		Issuer:   "almoxarifado-api-test",
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_CriaUsuarioComHashBcrypt(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)

	user, err := uc.Register(context.Background(), dto.RegisterRequest{Matricula: "A001", Senha: "segredo123"})
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "A001", user.Matricula)
	assert.NotEmpty(t, user.ID)

	stored := repo.byMatricula["A001"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "segredo123", stored.PasswordHash, "a senha em claro nunca deve ser persistida")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("segredo123")),
		"o hash armazenado deve validar a senha original")
	assert.Equal(t, entity.RoleOperador, stored.Role)
	assert.True(t, stored.Active)
}

func TestRegister_MatriculaDuplicada_RetornaErrDuplicate(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{Matricula: "A001", Senha: "senha1"})
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), dto.RegisterRequest{Matricula: "A001", Senha: "senha2"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestRegister_CamposVazios_RetornaErrInvalidInput(t *testing.T) {
	uc := newAuthUC(newFakeUserRepo())

	_, err := uc.Register(context.Background(), dto.RegisterRequest{Matricula: "", Senha: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Register(context.Background(), dto.RegisterRequest{Matricula: "A001", Senha: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredenciaisValidas_EmiteToken(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{Matricula: "A001", Senha: "segredo123"})
	require.NoError(t, err)

	token, err := uc.Login(context.Background(), dto.LoginRequest{Matricula: "A001", Senha: "segredo123"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestLogin_MatriculaInexistente_RetornaErrUserNotFound(t *testing.T) {
	uc := newAuthUC(newFakeUserRepo())

	_, err := uc.Login(context.Background(), dto.LoginRequest{Matricula: "Z999", Senha: "qualquer"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_SenhaIncorreta_RetornaErrUnauthorized(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{Matricula: "A001", Senha: "correta"})
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Matricula: "A001", Senha: "errada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
