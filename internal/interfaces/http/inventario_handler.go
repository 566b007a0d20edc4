package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/botica-dev/botica-api/internal/application/dto"
	"github.com/botica-dev/botica-api/internal/application/inventario"
)

// InventarioHandler CRUD de inventarios, barrido de vencimientos y consulta
// del historial de movimientos de un inventario.
type InventarioHandler struct {
	uc            *inventario.InventarioUseCase
	vencimientos  *inventario.VencimientosUseCase
	movimientosUC *inventario.MovimientosUseCase
}

// NewInventarioHandler construye el handler.
func NewInventarioHandler(
	uc *inventario.InventarioUseCase,
	vencimientos *inventario.VencimientosUseCase,
	movimientosUC *inventario.MovimientosUseCase,
) *InventarioHandler {
	return &InventarioHandler{uc: uc, vencimientos: vencimientos, movimientosUC: movimientosUC}
}

// Create godoc
// @Summary      Crear inventario para una tripleta (medicamento, lote, distrito)
// @Tags         inventarios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInventarioRequest  true  "medicamento_id, lote_id, distrito_id, cantidad_disponible, punto_reorden opcional"
// @Success      201   {object}  dto.InventarioResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventarios [post]
func (h *InventarioHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInventarioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *InventarioHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List admite filtro por distrito (?distrito_id=) además de la paginación.
func (h *InventarioHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	out, err := h.uc.List(c.Query("distrito_id"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *InventarioHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateInventarioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *InventarioHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ActualizarVencimientos godoc
// @Summary      Barrido de vencimientos: marca VENCIDO y AMARILLO según el lote
// @Tags         inventarios
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.VencimientosResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/inventarios/vencimientos [post]
func (h *InventarioHandler) ActualizarVencimientos(c *fiber.Ctx) error {
	out, err := h.vencimientos.Actualizar(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListMovimientos historial de un inventario; admite ?from= y ?to= (RFC 3339).
func (h *InventarioHandler) ListMovimientos(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()

	from, err := parseTimeQuery(c.Query("from"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from inválido (RFC 3339)"})
	}
	to, err := parseTimeQuery(c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to inválido (RFC 3339)"})
	}

	out, err := h.movimientosUC.ListByInventario(c.Params("id"), from, to, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func parseTimeQuery(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
