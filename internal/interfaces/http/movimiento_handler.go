package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/botica-dev/botica-api/internal/application/dto"
	"github.com/botica-dev/botica-api/internal/application/inventario"
)

// MovimientoHandler registro y consulta de movimientos de inventario.
type MovimientoHandler struct {
	registrar *inventario.RegistrarMovimientoUseCase
	consulta  *inventario.MovimientosUseCase
}

// NewMovimientoHandler construye el handler.
func NewMovimientoHandler(registrar *inventario.RegistrarMovimientoUseCase, consulta *inventario.MovimientosUseCase) *MovimientoHandler {
	return &MovimientoHandler{registrar: registrar, consulta: consulta}
}

// Registrar godoc
// @Summary      Registrar movimiento de inventario
// @Description  ENTRADA suma, SALIDA descuenta con verificación de stock; TRANSFERENCIA,
//	AJUSTE y DEVOLUCION solo se registran.
// @Tags         movimientos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarMovimientoRequest  true  "inventario_id, tipo, cantidad, motivo opcional"
// @Success      201   {object}  dto.MovimientoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movimientos [post]
func (h *MovimientoHandler) Registrar(c *fiber.Ctx) error {
	var in dto.RegistrarMovimientoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.registrar.Registrar(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *MovimientoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.consulta.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *MovimientoHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	out, err := h.consulta.List(page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
