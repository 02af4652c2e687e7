package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ronaldllamas12/carioca-Market/internal/application/auth"
	"github.com/ronaldllamas12/carioca-Market/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	ComercioUC *usecase.ComercioUseCase
	ProductoUC *usecase.ProductoUseCase
	UploadUC   *usecase.UploadUseCase
	JWTSecret  string
}

// Router registra las rutas de la API. Los comercios viven bajo /api/productos
// y el catálogo de cada comercio bajo /api/productos/:id/productos, como lo
// espera el cliente web.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	// check-admin nunca rechaza: sin token responde isAdmin=false
	authGroup.Get("/check-admin", OptionalAuthMiddleware(deps.JWTSecret), authHandler.CheckAdmin)

	// Alta de admins: requiere sesión; el caso de uso verifica el superadmin
	api.Post("/admins", AuthMiddleware(deps.JWTSecret), authHandler.CreateAdmin)

	// Listado de usuarios: solo admins
	api.Get("/usuarios", AuthMiddleware(deps.JWTSecret), RequireAdmin(deps.AuthUC), authHandler.ListUsers)

	// Subida de imágenes (sin auth, como el cliente la consume)
	uploadHandler := NewUploadHandler(deps.UploadUC)
	api.Post("/upload", uploadHandler.Upload)

	// Comercios
	comercios := api.Group("/productos")
	comercioHandler := NewComercioHandler(deps.ComercioUC)
	comercios.Get("/", comercioHandler.List)
	comercios.Post("/", AuthMiddleware(deps.JWTSecret), RequireAdmin(deps.AuthUC), comercioHandler.Create)
	comercios.Get("/:id", comercioHandler.GetByID)
	comercios.Put("/:id", AuthMiddleware(deps.JWTSecret), comercioHandler.Update)
	comercios.Delete("/:id", AuthMiddleware(deps.JWTSecret), RequireAdmin(deps.AuthUC), comercioHandler.Delete)

	// Productos de un comercio
	productoHandler := NewProductoHandler(deps.ProductoUC)
	comercios.Get("/:id/productos", productoHandler.ListByComercio)
	comercios.Post("/:id/productos", AuthMiddleware(deps.JWTSecret), productoHandler.Add)
	comercios.Put("/:id/productos", AuthMiddleware(deps.JWTSecret), productoHandler.Update)
	comercios.Delete("/:id/productos", AuthMiddleware(deps.JWTSecret), productoHandler.Delete)
}
