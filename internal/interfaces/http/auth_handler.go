package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/ronaldllamas12/carioca-Market/internal/application/auth"
	"github.com/ronaldllamas12/carioca-Market/internal/application/dto"
	"github.com/ronaldllamas12/carioca-Market/internal/domain"
)

// AuthHandler maneja registro, login, guard de admin y alta de admins.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "nombre, email, password, telefono"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Nombre == "" || in.Email == "" || in.Password == "" || in.Telefono == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Todos los campos son requeridos"})
	}
	if err := validateStruct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "La contraseña debe tener al menos 6 caracteres"})
	}
	if _, err := h.uc.Register(c.Context(), in); err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "El correo electrónico ya está registrado"})
		}
		log.Error().Err(err).Msg("error en el registro")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Error al registrar usuario"})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "Usuario registrado exitosamente"})
}

// Login godoc
// @Summary      Iniciar sesión (solo admins)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Credenciales requeridas"})
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
		}
		log.Error().Err(err).Msg("error en login")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Error al iniciar sesión"})
	}
	return c.JSON(out)
}

// CheckAdmin godoc
// @Summary      Verificar si la sesión es de un admin
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.CheckAdminResponse
// @Router       /api/auth/check-admin [get]
//
// Nunca devuelve error: sin sesión o ante fallo de la base responde isAdmin=false.
func (h *AuthHandler) CheckAdmin(c *fiber.Ctx) error {
	email := GetEmail(c)
	if email == "" {
		return c.JSON(dto.CheckAdminResponse{IsAdmin: false})
	}
	isAdmin, err := h.uc.IsAdmin(c.Context(), email)
	if err != nil {
		log.Error().Err(err).Msg("error al verificar admin")
		return c.JSON(dto.CheckAdminResponse{IsAdmin: false})
	}
	return c.JSON(dto.CheckAdminResponse{IsAdmin: isAdmin})
}

// CreateAdmin godoc
// @Summary      Crear un usuario admin (solo superadmin)
// @Tags         auth
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAdminRequest  true  "nombre, email, password, telefono"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/admins [post]
func (h *AuthHandler) CreateAdmin(c *fiber.Ctx) error {
	var in dto.CreateAdminRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Nombre == "" || in.Email == "" || in.Password == "" || in.Telefono == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Todos los campos son requeridos"})
	}
	if _, err := h.uc.CreateAdmin(c.Context(), GetEmail(c), in); err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "No autorizado"})
		}
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "Ya existe un usuario con ese correo"})
		}
		log.Error().Err(err).Msg("error al crear admin")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Error al crear admin"})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "Usuario admin creado exitosamente"})
}

// ListUsers godoc
// @Summary      Listar usuarios registrados (solo admin)
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.UserResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/usuarios [get]
func (h *AuthHandler) ListUsers(c *fiber.Ctx) error {
	out, err := h.uc.ListUsers(c.Context())
	if err != nil {
		log.Error().Err(err).Msg("error al obtener usuarios")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Error al obtener usuarios"})
	}
	return c.JSON(out)
}
