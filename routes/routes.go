package routes

import (
	"github.com/SerfiMolotov/MissDelice/configs"
	"github.com/SerfiMolotov/MissDelice/controllers"
	"github.com/SerfiMolotov/MissDelice/middlewares"
	"github.com/SerfiMolotov/MissDelice/repository"
	"github.com/SerfiMolotov/MissDelice/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	supplementRepo := repository.NewSupplementRepository(db)
	hoursRepo := repository.NewHoursRepository(db)
	userRepo := repository.NewUserRepository(db)
	settingRepo := repository.NewSettingRepository(db)
	visitRepo := repository.NewVisitRepository(db)
	cartStore := repository.NewRedisCartStore(configs.Redis())

	// Services
	mailer := services.NewResendMailer(cfg.ResendAPIKey, cfg.MailFrom, cfg.MailTo)
	availability := services.NewAvailabilityService(hoursRepo)
	cartSvc := services.NewCartService(cartStore, productRepo, availability)
	orderSvc := services.NewOrderService(cartStore, services.NewMailIntake(mailer))

	// Controllers
	authCtrl := controllers.NewAuthController(services.NewAuthService(userRepo, cfg))
	categoryCtrl := controllers.NewCategoryController(services.NewCategoryService(categoryRepo), cfg)
	productCtrl := controllers.NewProductController(services.NewProductService(productRepo), cfg)
	supplementCtrl := controllers.NewSupplementController(services.NewSupplementService(supplementRepo, categoryRepo))
	hoursCtrl := controllers.NewHoursController(services.NewHoursService(hoursRepo), availability)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(cartSvc, orderSvc)
	analyticsCtrl := controllers.NewAnalyticsController(services.NewAnalyticsService(visitRepo))
	settingCtrl := controllers.NewSettingController(settingRepo)
	contactCtrl := controllers.NewContactController(services.NewContactService(cartStore, mailer))

	// Storefront (public)
	api := r.Group("/api")
	{
		api.POST("/login", authCtrl.Login)

		api.GET("/categories", categoryCtrl.List)
		api.GET("/categories/:id", categoryCtrl.Get)
		api.GET("/categories/:id/supplements", supplementCtrl.List)
		api.GET("/products", productCtrl.List)
		api.GET("/products/:id", productCtrl.Get)
		api.GET("/hours", hoursCtrl.List)
		api.GET("/slots", hoursCtrl.Slots)
		api.GET("/settings", settingCtrl.List)

		api.GET("/cart", cartCtrl.Get)
		api.POST("/cart/items/:productId", cartCtrl.Add)
		api.DELETE("/cart/items/:productId", cartCtrl.Remove)
		api.DELETE("/cart", cartCtrl.Clear)

		api.POST("/orders", orderCtrl.Create)
		api.POST("/contact", contactCtrl.Send)
	}

	// Admin panel
	admin := r.Group("/api/admin", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		admin.POST("/categories", categoryCtrl.Create)
		admin.PUT("/categories/reorder", categoryCtrl.Reorder)
		admin.PUT("/categories/:id", categoryCtrl.Update)
		admin.DELETE("/categories/:id", categoryCtrl.Delete)

		admin.POST("/categories/:id/supplements", supplementCtrl.Create)
		admin.PUT("/categories/:id/supplements/:supId", supplementCtrl.Update)
		admin.DELETE("/categories/:id/supplements/:supId", supplementCtrl.Delete)

		admin.POST("/products", productCtrl.Create)
		admin.PUT("/products/:id", productCtrl.Update)
		admin.DELETE("/products/:id", productCtrl.Delete)

		admin.PUT("/hours", hoursCtrl.Update)
		admin.PUT("/settings", settingCtrl.Update)
		admin.GET("/analytics", analyticsCtrl.LastWeek)
	}
}
