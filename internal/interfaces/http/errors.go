package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jpcardoso/almoxarifado-api/internal/application/dto"
	"github.com/jpcardoso/almoxarifado-api/pkg/logger"
)

// internalError loga o erro com a rota e devolve 500 com mensagem genérica
// (detalhes internos nunca vazam para o cliente).
func internalError(c *fiber.Ctx, log *logger.Logger, err error) error {
	log.Error().Err(err).Str("path", c.Path()).Str("method", c.Method()).Msg("erro interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("Erro interno do servidor"))
}
