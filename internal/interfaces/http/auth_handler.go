package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/catalogo-api/internal/application/auth"
	"github.com/tu-usuario/catalogo-api/internal/application/dto"
	"github.com/tu-usuario/catalogo-api/pkg/logger"
)

// AuthHandler maneja registro, login y perfil.
type AuthHandler struct {
	uc  *auth.AuthUseCase
	log *logger.Logger
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.AuthUseCase, log *logger.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, log: log}
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "Datos de registro"
// @Success      201  {object}  dto.Response
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("INVALID_BODY", "cuerpo inválido"))
	}
	if err := dto.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("VALIDATION", "email válido y password de al menos 8 caracteres son requeridos"))
	}
	out, err := h.uc.Register(in)
	if err != nil {
		return respondDomainError(c, h.log, "auth.register", in.Email, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("usuario registrado", fiber.Map{"user": out}))
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200  {object}  dto.Response
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("INVALID_BODY", "cuerpo inválido"))
	}
	if err := dto.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("VALIDATION", "email y password son requeridos"))
	}
	out, err := h.uc.Login(in)
	if err != nil {
		return respondDomainError(c, h.log, "auth.login", in.Email, err)
	}
	return c.JSON(dto.OK("sesión iniciada", out))
}

// Me godoc
// @Summary      Perfil del usuario autenticado
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Response
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID := GetUserID(c)
	out, err := h.uc.Me(userID)
	if err != nil {
		return respondDomainError(c, h.log, "auth.me", userID, err)
	}
	return c.JSON(dto.OK("perfil obtenido", fiber.Map{"user": out}))
}
