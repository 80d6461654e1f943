package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jpcardoso/almoxarifado-api/internal/application/auth"
	"github.com/jpcardoso/almoxarifado-api/internal/application/dto"
	"github.com/jpcardoso/almoxarifado-api/internal/domain"
	"github.com/jpcardoso/almoxarifado-api/pkg/logger"
)

// AuthHandler trata cadastro e login (rotas públicas).
type AuthHandler struct {
	uc  *auth.AuthUseCase
	log *logger.Logger
}

// NewAuthHandler constrói o handler.
func NewAuthHandler(uc *auth.AuthUseCase, log *logger.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, log: log}
}

// Register godoc
// @Summary      Cadastrar usuário
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "matricula, senha"
// @Success      201   {object}  dto.RegisterResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("Corpo da requisição inválido"))
	}
	user, err := h.uc.Register(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Err("Matrícula e senha são obrigatórias"))
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Err("Matrícula já cadastrada"))
		}
		return internalError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.RegisterResponse{
		Success: true,
		Message: "Usuário cadastrado com sucesso",
		User:    *user,
	})
}

// Login godoc
// @Summary      Autenticar por matrícula e senha
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "matricula, senha"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("Corpo da requisição inválido"))
	}
	token, err := h.uc.Login(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Err("Matrícula e senha são obrigatórias"))
		}
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Err("Usuário não encontrado"))
		}
		if errors.Is(err, domain.ErrUnauthorized) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Err("Senha incorreta"))
		}
		return internalError(c, h.log, err)
	}
	return c.JSON(dto.LoginResponse{
		Success: true,
		Message: "Login realizado com sucesso",
		Token:   token,
	})
}
