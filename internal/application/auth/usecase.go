package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jpcardoso/almoxarifado-api/internal/application/dto"
	"github.com/jpcardoso/almoxarifado-api/internal/domain"
	"github.com/jpcardoso/almoxarifado-api/internal/domain/entity"
	"github.com/jpcardoso/almoxarifado-api/internal/domain/repository"
	"github.com/jpcardoso/almoxarifado-api/pkg/jwt"
)

// JWTConfig configuração para emissão de tokens.
type JWTConfig struct {
	Secret   string
	ExpHours int
	Issuer   string
}

// AuthUseCase casos de uso de autenticação: cadastro e login por matrícula.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase constrói o caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register cria um usuário: hasheia a senha com bcrypt e persiste.
// Devolve ErrDuplicate se a matrícula já estiver cadastrada; a senha em claro
// nunca é comparada nem armazenada.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserDTO, error) {
	if in.Matricula == "" || in.Senha == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.GetByMatricula(in.Matricula)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Matricula:    in.Matricula,
		PasswordHash: string(hash),
		Role:         entity.RoleOperador,
		Active:       true,
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return &dto.UserDTO{ID: user.ID, Matricula: user.Matricula}, nil
}

// Login verifica matrícula/senha e emite um JWT com validade de 24h.
// ErrUserNotFound quando a matrícula não existe; ErrUnauthorized quando a
// comparação do hash falha.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (string, error) {
	if in.Matricula == "" || in.Senha == "" {
		return "", domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByMatricula(in.Matricula)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Senha)); err != nil {
		return "", domain.ErrUnauthorized
	}
	return jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Matricula, uc.jwtCfg.Issuer, uc.jwtCfg.ExpHours)
}
