package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/botica-dev/botica-api/internal/application/auth"
	"github.com/botica-dev/botica-api/internal/application/inventario"
	"github.com/botica-dev/botica-api/internal/application/pedido"
	"github.com/botica-dev/botica-api/internal/application/usecase"
	"github.com/botica-dev/botica-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	DistritoUC     *usecase.DistritoUseCase
	PersonaUC      *usecase.PersonaUseCase
	UsuarioUC      *usecase.UsuarioUseCase
	MedicamentoUC  *usecase.MedicamentoUseCase
	LoteUC         *usecase.LoteUseCase
	InventarioUC   *inventario.InventarioUseCase
	VencimientosUC *inventario.VencimientosUseCase
	RegistrarMov   *inventario.RegistrarMovimientoUseCase
	MovimientosUC  *inventario.MovimientosUseCase
	PedidoUC       *pedido.PedidoUseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth. Login es público; register queda restringido a admin.
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token no revocado)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.AuthUC))

	protected.Post("/auth/logout", authHandler.Logout)
	protected.Get("/auth/perfil", authHandler.Perfil)
	protected.Post("/auth/register", RequireRole(entity.RolAdmin), authHandler.Register)

	// Usuarios (solo admin)
	usuarios := protected.Group("/usuarios", RequireRole(entity.RolAdmin))
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	usuarios.Get("/", usuarioHandler.List)
	usuarios.Get("/:id", usuarioHandler.GetByID)
	usuarios.Put("/:id", usuarioHandler.Update)
	usuarios.Delete("/:id", usuarioHandler.Delete)

	// Distritos
	distritos := protected.Group("/distritos")
	distritoHandler := NewDistritoHandler(deps.DistritoUC)
	distritos.Post("/", RequireRole(entity.RolAdmin), distritoHandler.Create)
	distritos.Get("/", distritoHandler.List)
	distritos.Get("/:id", distritoHandler.GetByID)
	distritos.Put("/:id", RequireRole(entity.RolAdmin), distritoHandler.Update)
	distritos.Delete("/:id", RequireRole(entity.RolAdmin), distritoHandler.Delete)

	// Personas
	personas := protected.Group("/personas")
	personaHandler := NewPersonaHandler(deps.PersonaUC)
	personas.Post("/", personaHandler.Create)
	personas.Get("/", personaHandler.List)
	personas.Get("/:id", personaHandler.GetByID)
	personas.Put("/:id", personaHandler.Update)
	personas.Delete("/:id", RequireRole(entity.RolAdmin), personaHandler.Delete)

	// Medicamentos (catálogo: escritura admin o farmacéutico)
	medicamentos := protected.Group("/medicamentos")
	medicamentoHandler := NewMedicamentoHandler(deps.MedicamentoUC, deps.LoteUC)
	medicamentos.Post("/", RequireRole(entity.RolAdmin, entity.RolFarmaceutico), medicamentoHandler.Create)
	medicamentos.Get("/", medicamentoHandler.List)
	medicamentos.Get("/:id", medicamentoHandler.GetByID)
	medicamentos.Get("/:id/lotes", medicamentoHandler.ListLotes)
	medicamentos.Put("/:id", RequireRole(entity.RolAdmin, entity.RolFarmaceutico), medicamentoHandler.Update)
	medicamentos.Delete("/:id", RequireRole(entity.RolAdmin), medicamentoHandler.Delete)

	// Lotes
	lotes := protected.Group("/lotes")
	loteHandler := NewLoteHandler(deps.LoteUC)
	lotes.Post("/", RequireRole(entity.RolAdmin, entity.RolFarmaceutico, entity.RolAlmacenero), loteHandler.Create)
	lotes.Get("/", loteHandler.List)
	lotes.Get("/:id", loteHandler.GetByID)
	lotes.Delete("/:id", RequireRole(entity.RolAdmin), loteHandler.Delete)

	// Inventarios
	inventarios := protected.Group("/inventarios")
	inventarioHandler := NewInventarioHandler(deps.InventarioUC, deps.VencimientosUC, deps.MovimientosUC)
	inventarios.Post("/", RequireRole(entity.RolAdmin, entity.RolAlmacenero), inventarioHandler.Create)
	inventarios.Post("/vencimientos", RequireRole(entity.RolAdmin, entity.RolFarmaceutico), inventarioHandler.ActualizarVencimientos)
	inventarios.Get("/", inventarioHandler.List)
	inventarios.Get("/:id", inventarioHandler.GetByID)
	inventarios.Get("/:id/movimientos", inventarioHandler.ListMovimientos)
	inventarios.Put("/:id", RequireRole(entity.RolAdmin, entity.RolAlmacenero), inventarioHandler.Update)
	inventarios.Delete("/:id", RequireRole(entity.RolAdmin), inventarioHandler.Delete)

	// Movimientos
	movimientos := protected.Group("/movimientos")
	movimientoHandler := NewMovimientoHandler(deps.RegistrarMov, deps.MovimientosUC)
	movimientos.Post("/", RequireRole(entity.RolAdmin, entity.RolFarmaceutico, entity.RolAlmacenero), movimientoHandler.Registrar)
	movimientos.Get("/", movimientoHandler.List)
	movimientos.Get("/:id", movimientoHandler.GetByID)

	// Pedidos
	pedidos := protected.Group("/pedidos")
	pedidoHandler := NewPedidoHandler(deps.PedidoUC)
	pedidos.Post("/", pedidoHandler.Create)
	pedidos.Get("/", pedidoHandler.List)
	pedidos.Get("/:id", pedidoHandler.GetByID)
	pedidos.Put("/:id", pedidoHandler.Update)
	pedidos.Delete("/:id", pedidoHandler.Delete)
	pedidos.Patch("/:id/estado", RequireRole(entity.RolAdmin, entity.RolFarmaceutico), pedidoHandler.CambiarEstado)
	pedidos.Get("/:id/seguimientos", pedidoHandler.ListSeguimientos)

	// Detalles de pedido
	pedidos.Get("/:id/detalles", pedidoHandler.ListDetalles)
	pedidos.Post("/:id/detalles", pedidoHandler.AgregarDetalle)
	pedidos.Patch("/:id/detalles/:detalleId/aprobar", RequireRole(entity.RolAdmin, entity.RolFarmaceutico), pedidoHandler.AprobarDetalle)
	pedidos.Patch("/:id/detalles/:detalleId/entregar", RequireRole(entity.RolAdmin, entity.RolAlmacenero), pedidoHandler.EntregarDetalle)
	pedidos.Delete("/:id/detalles/:detalleId", pedidoHandler.EliminarDetalle)
}
