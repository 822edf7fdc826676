// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"marketplace/internal/cache"
	"marketplace/internal/database"
	"marketplace/internal/handler"
	"marketplace/internal/handler/auth"
	"marketplace/internal/handler/categories"
	"marketplace/internal/handler/products"
	"marketplace/internal/handler/uploads"
	"marketplace/internal/handler/users"
	"marketplace/internal/middleware"
	"marketplace/internal/service"
	"marketplace/internal/upload"
)

// Deps is everything the handlers need. Cache and Throttle may be nil.
type Deps struct {
	DB       database.DB
	Cache    cache.Cache
	Throttle *service.LoginThrottle
	Storage  *upload.Storage
	Tokens   auth.TokenConfig
}

// Setup 註冊 /api 下所有路由並注入相依元件
func Setup(e *echo.Echo, d Deps) {
	api := e.Group("/api")

	api.GET("/health", handler.HealthHandler(d.DB, d.Cache))

	api.POST("/uploads", uploads.UploadHandler(d.Storage))
	api.GET("/uploads/:filename", uploads.ServeUploadHandler(d.Storage))

	apiAuth := api.Group("/auth")
	apiAuth.POST("/register", auth.RegisterHandler(d.DB))
	apiAuth.POST("/login", auth.LoginHandler(d.DB, d.Throttle, d.Tokens))
	apiAuth.GET("/me", auth.MeHandler(d.DB), middleware.RequireAuth(d.Tokens.Secret))

	apiUsers := api.Group("/users")
	apiUsers.GET("", users.ListUsersHandler(d.DB))
	apiUsers.GET("/:id", users.GetUserHandler(d.DB))
	apiUsers.PUT("/:id/ban", users.BanUserHandler(d.DB))
	apiUsers.PUT("/:id/unban", users.UnbanUserHandler(d.DB))

	apiProducts := api.Group("/products")
	apiProducts.GET("", products.ListProductsHandler(d.DB))
	apiProducts.POST("", products.CreateProductHandler(d.DB))
	apiProducts.GET("/:id", products.GetProductHandler(d.DB))
	apiProducts.PUT("/:id/pay", products.MarkPaidHandler(d.DB))
	apiProducts.PUT("/:id/sold", products.MarkSoldHandler(d.DB))
	apiProducts.DELETE("/:id", products.DeleteProductHandler(d.DB))

	api.GET("/categories", categories.ListCategoriesHandler(d.DB))
}
