package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/clientes-api/internal/application/auth"
	"github.com/jhoicas/clientes-api/internal/application/usecase"
	"github.com/jhoicas/clientes-api/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.UseCase
	UserUC     *usecase.UserUseCase
	CustomerUC *usecase.CustomerUseCase
	Tokens     *jwt.Service
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login público; /me requiere token)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", AuthMiddleware(deps.Tokens), authHandler.Me)

	// Users: el registro queda abierto para bootstrap; el resto protegido.
	users := api.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", AuthMiddleware(deps.Tokens), userHandler.List)
	users.Get("/:id", AuthMiddleware(deps.Tokens), userHandler.GetByID)
	users.Put("/:id", AuthMiddleware(deps.Tokens), userHandler.Update)
	users.Delete("/:id", AuthMiddleware(deps.Tokens), userHandler.Delete)

	// Customers (protegido)
	customers := api.Group("/customers", AuthMiddleware(deps.Tokens))
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)
}
