package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jpcardoso/almoxarifado-api/internal/application/dto"
	"github.com/jpcardoso/almoxarifado-api/pkg/jwt"
)

// Locals keys para identidade do usuário autenticado no Fiber.
const (
	LocalUserID    = "user_id"
	LocalMatricula = "matricula"
)

// AuthMiddleware valida o Bearer Token JWT e extrai UserID e Matricula para
// c.Locals. Toda rota protegida recebe a identidade por aqui; nenhum handler
// reparse o token.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Err("Token não fornecido"))
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Err("Formato esperado: Bearer <token>"))
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Err("Token não fornecido"))
		}
		userID, matricula, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Err("Token inválido ou expirado"))
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalMatricula, matricula)
		return c.Next()
	}
}

// GetUserID devolve o UserID do contexto (depois do middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetMatricula devolve a matrícula do contexto (depois do middleware de auth).
func GetMatricula(c *fiber.Ctx) string {
	v := c.Locals(LocalMatricula)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
