package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/catalogo-api/internal/application/dto"
	"github.com/tu-usuario/catalogo-api/internal/domain"
	"github.com/tu-usuario/catalogo-api/pkg/logger"
)

// respondDomainError mapea un error de dominio al status y código HTTP.
// Los errores inesperados se registran con operación y entidad, y al cliente
// solo le llega un mensaje genérico.
func respondDomainError(c *fiber.Ctx, log *logger.Logger, op, entityID string, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail("NOT_FOUND", "recurso no encontrado"))
	case errors.Is(err, domain.ErrDuplicateName):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("DUPLICATE_NAME", "el nombre de la categoría ya existe, elige otro"))
	case errors.Is(err, domain.ErrInvalidHierarchy):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("INVALID_HIERARCHY", "la categoría padre no puede ser a su vez una subcategoría"))
	case errors.Is(err, domain.ErrInUse):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("IN_USE", "no se puede borrar: otros registros aún referencian esta categoría"))
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("VALIDATION", "entrada inválida"))
	case errors.Is(err, domain.ErrOrderNotCancellable):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("NOT_CANCELLABLE", "no se puede cancelar la orden en su estado actual"))
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("EMAIL_EXISTS", "el email ya está registrado"))
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("UNAUTHORIZED", "credenciales inválidas"))
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.Fail("FORBIDDEN", "no tienes permisos para esta operación"))
	default:
		log.Error().Err(err).Str("op", op).Str("entity_id", entityID).Msg("error inesperado")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("INTERNAL", "ocurrió un error inesperado"))
	}
}
