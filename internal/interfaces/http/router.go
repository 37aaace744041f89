package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/softfruver/fruver-ledger/internal/application/auth"
	"github.com/softfruver/fruver-ledger/internal/application/ledger"
	"github.com/softfruver/fruver-ledger/internal/application/usecase"
	"github.com/softfruver/fruver-ledger/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ClientesUC    *usecase.ClientesUseCase
	ProveedoresUC *usecase.ProveedoresUseCase
	ProductosUC   *usecase.ProductosUseCase
	UsuariosUC    *usecase.UsuariosUseCase
	VentasUC      *ledger.VentasUseCase
	ComprasUC     *ledger.ComprasUseCase
	PagosUC       *ledger.PagosUseCase
	Catalogo      *ledger.MetodoCatalogo
	AuthUC        *auth.AuthUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Eliminar documentos del libro y administrar cuentas queda reservado
	// al administrador.
	soloAdmin := RequireRole(entity.RolAdmin)

	// Usuarios (solo ADMIN)
	usuarios := protected.Group("/usuarios", soloAdmin)
	usuarioHandler := NewUsuarioHandler(deps.UsuariosUC)
	usuarios.Post("/", usuarioHandler.Create)
	usuarios.Get("/", usuarioHandler.List)
	usuarios.Post("/:id/activar", usuarioHandler.Activate)
	usuarios.Post("/:id/desactivar", usuarioHandler.Deactivate)
	usuarios.Put("/:id/password", usuarioHandler.ChangePassword)

	// Clientes (protegido)
	clientes := protected.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClientesUC)
	clientes.Post("/", clienteHandler.Create)
	clientes.Get("/", clienteHandler.List)
	clientes.Get("/opciones", clienteHandler.Options)
	clientes.Get("/:id", clienteHandler.GetByID)
	clientes.Put("/:id", clienteHandler.Update)
	clientes.Post("/:id/archivar", clienteHandler.Archive)
	clientes.Post("/:id/restaurar", clienteHandler.Restore)

	// Proveedores (protegido)
	proveedores := protected.Group("/proveedores")
	proveedorHandler := NewProveedorHandler(deps.ProveedoresUC)
	proveedores.Post("/", proveedorHandler.Create)
	proveedores.Get("/", proveedorHandler.List)
	proveedores.Get("/opciones", proveedorHandler.Options)
	proveedores.Get("/:id", proveedorHandler.GetByID)
	proveedores.Put("/:id", proveedorHandler.Update)
	proveedores.Post("/:id/archivar", proveedorHandler.Archive)
	proveedores.Post("/:id/restaurar", proveedorHandler.Restore)

	// Productos (protegido)
	productos := protected.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductosUC)
	productos.Post("/", productoHandler.Create)
	productos.Get("/", productoHandler.List)
	productos.Get("/opciones", productoHandler.Options)
	productos.Get("/:id", productoHandler.GetByID)
	productos.Post("/:id/archivar", productoHandler.Archive)
	productos.Post("/:id/restaurar", productoHandler.Restore)

	// Ventas (protegido)
	ventas := protected.Group("/ventas")
	ventaHandler := NewVentaHandler(deps.VentasUC)
	ventas.Post("/", ventaHandler.Create)
	ventas.Get("/", ventaHandler.List)
	ventas.Get("/:id", ventaHandler.GetByID)
	ventas.Put("/:id", ventaHandler.Update)
	ventas.Delete("/:id", soloAdmin, ventaHandler.Delete)

	// Compras (protegido)
	compras := protected.Group("/compras")
	compraHandler := NewCompraHandler(deps.ComprasUC)
	compras.Post("/", compraHandler.Create)
	compras.Get("/", compraHandler.List)
	compras.Get("/:id", compraHandler.GetByID)
	compras.Put("/:id", compraHandler.Update)
	compras.Delete("/:id", soloAdmin, compraHandler.Delete)

	// Pagos (protegido)
	pagos := protected.Group("/pagos")
	pagoHandler := NewPagoHandler(deps.PagosUC, deps.Catalogo)
	pagos.Post("/", pagoHandler.Create)
	pagos.Get("/", pagoHandler.List)
	pagos.Get("/metodos", pagoHandler.Methods)
	pagos.Get("/:id", pagoHandler.GetByID)
	pagos.Put("/:id", pagoHandler.Update)
	pagos.Delete("/:id", soloAdmin, pagoHandler.Delete)
}
