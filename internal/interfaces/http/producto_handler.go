package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/ronaldllamas12/carioca-Market/internal/application/dto"
	"github.com/ronaldllamas12/carioca-Market/internal/application/usecase"
	"github.com/ronaldllamas12/carioca-Market/internal/domain"
)

// ProductoHandler maneja el catálogo de productos anidado bajo un comercio
// (/api/productos/:id/productos).
type ProductoHandler struct {
	uc *usecase.ProductoUseCase
}

// NewProductoHandler construye el handler.
func NewProductoHandler(uc *usecase.ProductoUseCase) *ProductoHandler {
	return &ProductoHandler{uc: uc}
}

// ListByComercio godoc
// @Summary      Obtener un comercio con sus productos
// @Tags         productos
// @Produce      json
// @Param        id   path  string  true  "ID del comercio"
// @Success      200  {object}  dto.ComercioConProductosResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/productos/{id}/productos [get]
func (h *ProductoHandler) ListByComercio(c *fiber.Ctx) error {
	out, err := h.uc.ListByComercio(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Comercio no encontrado"})
		}
		log.Error().Err(err).Msg("error al obtener productos")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Error al obtener productos"})
	}
	return c.JSON(out)
}

// Add godoc
// @Summary      Agregar un producto al comercio (solo el admin propietario)
// @Tags         productos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del comercio"
// @Param        body  body  dto.CreateProductoRequest  true  "Datos del producto"
// @Success      201   {object}  dto.CreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/productos/{id}/productos [post]
func (h *ProductoHandler) Add(c *fiber.Ctx) error {
	var in dto.CreateProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validateStruct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre es requerido"})
	}
	id, err := h.uc.Add(c.Context(), GetEmail(c), c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Comercio no encontrado o no autorizado"})
		}
		log.Error().Err(err).Msg("error al agregar producto")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Error al agregar producto"})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreatedResponse{Message: "Producto agregado exitosamente", ID: id})
}

// Update godoc
// @Summary      Editar un producto del comercio (solo el admin propietario)
// @Tags         productos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del comercio"
// @Param        body  body  dto.UpdateProductoRequest  true  "Datos a actualizar (incluye _id)"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/productos/{id}/productos [put]
func (h *ProductoHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "_id del producto es requerido"})
	}
	err := h.uc.Update(c.Context(), GetEmail(c), c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Producto no encontrado"})
		}
		log.Error().Err(err).Msg("error al actualizar producto")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Error al actualizar producto"})
	}
	return c.JSON(dto.MessageResponse{Message: "Producto actualizado exitosamente"})
}

// Delete godoc
// @Summary      Eliminar un producto del comercio (solo el admin propietario)
// @Tags         productos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del comercio"
// @Param        body  body  dto.DeleteProductoRequest  true  "productId a eliminar"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/productos/{id}/productos [delete]
func (h *ProductoHandler) Delete(c *fiber.Ctx) error {
	var in dto.DeleteProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "productId es requerido"})
	}
	err := h.uc.Delete(c.Context(), GetEmail(c), c.Params("id"), in.ProductID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Producto no encontrado"})
		}
		log.Error().Err(err).Msg("error al eliminar producto")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Error al eliminar producto"})
	}
	return c.JSON(dto.MessageResponse{Message: "Producto eliminado exitosamente"})
}
