package routes

import (
	"github.com/pathania28/s2y-taste-trail/configs"
	"github.com/pathania28/s2y-taste-trail/controllers"
	"github.com/pathania28/s2y-taste-trail/entity"
	"github.com/pathania28/s2y-taste-trail/middlewares"
	"github.com/pathania28/s2y-taste-trail/repository"
	"github.com/pathania28/s2y-taste-trail/services"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, cfg *configs.Config) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	db := configs.DB()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	catalogSvc := services.NewCatalogService(restRepo, menuRepo)
	menuSvc := services.NewMenuService(menuRepo, restRepo)
	orderSvc := services.NewOrderService(db, orderRepo, restRepo, cfg.CheckoutPolicy)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	restCtrl := controllers.NewRestaurantController(catalogSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	vendorCtrl := controllers.NewVendorController(menuSvc, orderSvc)
	courierCtrl := controllers.NewCourierController(orderSvc)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	a.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Me)

	// Catalog (public)
	r.GET("/restaurants", restCtrl.List)
	r.GET("/restaurants/:id", restCtrl.Detail)
	r.GET("/restaurants/:id/menu", restCtrl.Menu)

	// Customer orders
	u := r.Group("/orders", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		u.POST("", orderCtrl.Create)
		u.GET("", orderCtrl.ListForMe)
		u.GET("/:id", orderCtrl.Detail)
	}

	// Vendor surface
	vendor := r.Group("/vendor", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleVendor))
	{
		vendor.GET("/restaurant", vendorCtrl.Restaurant)
		vendor.GET("/menu", vendorCtrl.ListMenu)
		vendor.POST("/menu", vendorCtrl.CreateMenuItem)
		vendor.PATCH("/menu/:id", vendorCtrl.UpdateMenuItem)
		vendor.DELETE("/menu/:id", vendorCtrl.DeleteMenuItem)
		vendor.PATCH("/menu/:id/availability", vendorCtrl.SetAvailability)
		vendor.GET("/orders", vendorCtrl.ListOrders)
		vendor.POST("/orders/:id/advance", vendorCtrl.AdvanceOrder)
	}

	// Courier surface
	courier := r.Group("/courier", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleCourier))
	{
		courier.GET("/orders/available", courierCtrl.Available)
		courier.GET("/orders/active", courierCtrl.Active)
		courier.POST("/orders/:id/advance", courierCtrl.AdvanceOrder)
	}
}
