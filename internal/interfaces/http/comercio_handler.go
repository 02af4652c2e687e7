package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/ronaldllamas12/carioca-Market/internal/application/dto"
	"github.com/ronaldllamas12/carioca-Market/internal/application/usecase"
	"github.com/ronaldllamas12/carioca-Market/internal/domain"
)

// ComercioHandler maneja las peticiones HTTP del registro de comercios.
// Las rutas viven bajo /api/productos por compatibilidad con el cliente web.
type ComercioHandler struct {
	uc *usecase.ComercioUseCase
}

// NewComercioHandler construye el handler.
func NewComercioHandler(uc *usecase.ComercioUseCase) *ComercioHandler {
	return &ComercioHandler{uc: uc}
}

// List godoc
// @Summary      Listar todos los comercios
// @Tags         comercios
// @Produce      json
// @Success      200  {array}   dto.ComercioResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/productos [get]
func (h *ComercioHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		log.Error().Err(err).Msg("error al obtener comercios")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Error al obtener comercios"})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener un comercio por ID
// @Tags         comercios
// @Produce      json
// @Param        id   path  string  true  "ID del comercio"
// @Success      200  {object}  dto.ComercioResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [get]
func (h *ComercioHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		log.Error().Err(err).Msg("error al obtener comercio")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Error al obtener comercio"})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Comercio no encontrado"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar un comercio (solo admin)
// @Tags         comercios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateComercioRequest  true  "Datos del comercio"
// @Success      201   {object}  dto.CreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/productos [post]
func (h *ComercioHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateComercioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validateStruct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre es requerido"})
	}
	id, err := h.uc.Create(c.Context(), GetEmail(c), in)
	if err != nil {
		log.Error().Err(err).Msg("error al crear comercio")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Error al crear comercio"})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreatedResponse{Message: "Comercio creado exitosamente", ID: id})
}

// Update godoc
// @Summary      Editar un comercio (solo el admin propietario)
// @Tags         comercios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del comercio"
// @Param        body  body  dto.UpdateComercioRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [put]
func (h *ComercioHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateComercioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	// productosVenta es obligatorio en la edición: sin la lista la petición es
	// 400 en lugar del comportamiento indefinido de versiones anteriores.
	if err := validateStruct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre y productosVenta son requeridos"})
	}
	err := h.uc.Update(c.Context(), GetEmail(c), c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Comercio no encontrado"})
		}
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "Solo el admin que registró el comercio puede editarlo"})
		}
		log.Error().Err(err).Msg("error al actualizar comercio")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Error al actualizar comercio"})
	}
	return c.JSON(dto.MessageResponse{Message: "Comercio actualizado exitosamente"})
}

// Delete godoc
// @Summary      Eliminar un comercio y sus productos (solo admin)
// @Tags         comercios
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del comercio"
// @Success      200  {object}  dto.MessageResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [delete]
func (h *ComercioHandler) Delete(c *fiber.Ctx) error {
	err := h.uc.Delete(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Comercio no encontrado"})
		}
		log.Error().Err(err).Msg("error al eliminar comercio")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Error al eliminar comercio"})
	}
	return c.JSON(dto.MessageResponse{Message: "Comercio eliminado exitosamente"})
}
