package routes

import (
	"fleet-admin/internal/alerts"
	"fleet-admin/internal/api/handlers"
	"fleet-admin/internal/api/middleware"
	"fleet-admin/internal/config"
	"fleet-admin/internal/repository"
	"fleet-admin/internal/services"
	"fleet-admin/pkg/cache"
	"fleet-admin/pkg/email"
	"fleet-admin/pkg/jwt"
	"fleet-admin/pkg/ratelimit"
	"fleet-admin/pkg/redis"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// SetupRoutes wires repositories, services and handlers onto the router and
// returns the alert service so the caller can run overlay pruning.
func SetupRoutes(router *gin.Engine, db *mongo.Database, redisClient *redis.Client, cfg *config.Config) *services.AlertService {
	// Repositories
	userRepo := repository.NewUserRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	driverRepo := repository.NewDriverRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	insuranceRepo := repository.NewInsuranceRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)

	// Shared infrastructure
	jwtUtil := jwt.NewJWTUtil(cfg.JWTSecret, cfg.JWTExpiry)
	overlay := alerts.NewOverlayStore(redisClient.GetClient(), cfg.Redis.KeyPrefix)
	statsCache := cache.NewStatsCache(redisClient, cfg.Redis.KeyPrefix, 0)

	var limiter ratelimit.RateLimiter
	if redisClient.IsConnected() {
		limiter = ratelimit.NewRedisRateLimiter(redisClient.GetClient(), ratelimit.DefaultConfig())
	} else {
		limiter = ratelimit.NewMemoryRateLimiter(ratelimit.DefaultConfig())
	}

	// Services
	authService := services.NewAuthService(userRepo, jwtUtil)
	userService := services.NewUserService(userRepo)
	vehicleService := services.NewVehicleService(vehicleRepo)
	vehicleService.SetStatsCache(statsCache)
	driverService := services.NewDriverService(driverRepo)
	driverService.SetStatsCache(statsCache)
	recordService := services.NewServiceRecordService(serviceRepo, vehicleRepo)
	recordService.SetStatsCache(statsCache)
	insuranceService := services.NewInsuranceService(insuranceRepo, vehicleRepo)
	insuranceService.SetStatsCache(statsCache)
	expenseService := services.NewExpenseService(expenseRepo, vehicleRepo)
	expenseService.SetStatsCache(statsCache)
	alertService := services.NewAlertService(serviceRepo, insuranceRepo, driverRepo, vehicleRepo, overlay)
	dashboardService := services.NewDashboardService(vehicleRepo, driverRepo, serviceRepo, insuranceRepo, expenseRepo)
	dashboardService.SetStatsCache(statsCache)

	if cfg.SMTP.Host != "" {
		alertService.SetEmailService(email.NewEmailService(
			cfg.SMTP.Host, cfg.SMTP.Port,
			cfg.SMTP.Username, cfg.SMTP.Password,
			cfg.SMTP.FromEmail, cfg.SMTP.FromName,
		))
	}

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	vehicleHandler := handlers.NewVehicleHandler(vehicleService)
	driverHandler := handlers.NewDriverHandler(driverService)
	recordHandler := handlers.NewServiceRecordHandler(recordService)
	insuranceHandler := handlers.NewInsuranceHandler(insuranceService)
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	alertHandler := handlers.NewAlertHandler(alertService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	metaHandler := handlers.NewMetaHandler()
	healthHandler := handlers.NewHealthHandler(db, redisClient)

	router.GET("/health", healthHandler.HealthCheck)

	api := router.Group("/api/v1")
	api.Use(middleware.RateLimitMiddleware(limiter))

	// Public routes
	auth := api.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
		auth.POST("/refresh", authHandler.RefreshToken)
	}

	// Protected routes
	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(jwtUtil))
	{
		protected.GET("/auth/profile", authHandler.GetProfile)
		protected.POST("/auth/change-password", authHandler.ChangePassword)

		users := protected.Group("/users")
		users.Use(middleware.RequireRole("admin"))
		{
			users.GET("", userHandler.GetUsers)
			users.POST("", userHandler.CreateUser)
			users.GET("/:id", userHandler.GetUser)
			users.PATCH("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
		}

		vehicles := protected.Group("/vehicles")
		{
			vehicles.GET("", vehicleHandler.GetVehicles)
			vehicles.POST("", vehicleHandler.CreateVehicle)
			vehicles.GET("/:id", vehicleHandler.GetVehicle)
			vehicles.PATCH("/:id", vehicleHandler.UpdateVehicle)
			vehicles.DELETE("/:id", vehicleHandler.DeleteVehicle)
		}

		drivers := protected.Group("/drivers")
		{
			drivers.GET("", driverHandler.GetDrivers)
			drivers.POST("", driverHandler.CreateDriver)
			drivers.GET("/:id", driverHandler.GetDriver)
			drivers.PATCH("/:id", driverHandler.UpdateDriver)
			drivers.DELETE("/:id", driverHandler.DeleteDriver)
		}

		maintenance := protected.Group("/maintenance")
		{
			maintenance.GET("", recordHandler.GetMaintenanceRecords)
			maintenance.POST("", recordHandler.CreateMaintenanceRecord)
			maintenance.GET("/:id", recordHandler.GetMaintenanceRecord)
			maintenance.PATCH("/:id", recordHandler.UpdateMaintenanceRecord)
			maintenance.DELETE("/:id", recordHandler.DeleteMaintenanceRecord)
		}

		oilChanges := protected.Group("/oil-changes")
		{
			oilChanges.GET("", recordHandler.GetOilChanges)
			oilChanges.POST("", recordHandler.CreateOilChange)
			oilChanges.GET("/:id", recordHandler.GetOilChange)
			oilChanges.PATCH("/:id", recordHandler.UpdateOilChange)
			oilChanges.DELETE("/:id", recordHandler.DeleteOilChange)
		}

		tireChanges := protected.Group("/tire-changes")
		{
			tireChanges.GET("", recordHandler.GetTireChanges)
			tireChanges.POST("", recordHandler.CreateTireChange)
			tireChanges.GET("/:id", recordHandler.GetTireChange)
			tireChanges.PATCH("/:id", recordHandler.UpdateTireChange)
			tireChanges.DELETE("/:id", recordHandler.DeleteTireChange)
		}

		washings := protected.Group("/washings")
		{
			washings.GET("", recordHandler.GetWashings)
			washings.POST("", recordHandler.CreateWashing)
			washings.GET("/:id", recordHandler.GetWashing)
			washings.PATCH("/:id", recordHandler.UpdateWashing)
			washings.DELETE("/:id", recordHandler.DeleteWashing)
		}

		inspections := protected.Group("/inspections")
		{
			inspections.GET("", insuranceHandler.GetInspections)
			inspections.POST("", insuranceHandler.CreateInspection)
			inspections.GET("/:id", insuranceHandler.GetInspection)
			inspections.PATCH("/:id", insuranceHandler.UpdateInspection)
			inspections.DELETE("/:id", insuranceHandler.DeleteInspection)
		}

		insurancePolicies := protected.Group("/insurance")
		{
			insurancePolicies.GET("", insuranceHandler.GetPolicies)
			insurancePolicies.POST("", insuranceHandler.CreatePolicy)
			insurancePolicies.GET("/:id", insuranceHandler.GetPolicy)
			insurancePolicies.PATCH("/:id", insuranceHandler.UpdatePolicy)
			insurancePolicies.DELETE("/:id", insuranceHandler.DeletePolicy)
		}

		fuel := protected.Group("/fuel")
		{
			fuel.GET("", expenseHandler.GetFuelRecords)
			fuel.POST("", expenseHandler.CreateFuelRecord)
			fuel.GET("/:id", expenseHandler.GetFuelRecord)
			fuel.PATCH("/:id", expenseHandler.UpdateFuelRecord)
			fuel.DELETE("/:id", expenseHandler.DeleteFuelRecord)
		}

		expenses := protected.Group("/expenses")
		{
			expenses.GET("", expenseHandler.GetExtraExpenses)
			expenses.POST("", expenseHandler.CreateExtraExpense)
			expenses.GET("/:id", expenseHandler.GetExtraExpense)
			expenses.PATCH("/:id", expenseHandler.UpdateExtraExpense)
			expenses.DELETE("/:id", expenseHandler.DeleteExtraExpense)
		}

		alertRoutes := protected.Group("/alerts")
		{
			alertRoutes.GET("", alertHandler.GetAlerts)
			alertRoutes.GET("/unread-count", alertHandler.GetUnreadCount)
			alertRoutes.PATCH("/:id/read", alertHandler.MarkRead)
			alertRoutes.POST("/read-all", alertHandler.MarkAllRead)
			alertRoutes.PATCH("/:id/dismiss", alertHandler.DismissAlert)
			alertRoutes.PATCH("/:id/complete", alertHandler.CompleteAlert)
			alertRoutes.POST("/digest", alertHandler.SendDigest)
		}

		protected.GET("/dashboard/stats", dashboardHandler.GetStats)
		protected.GET("/descriptors", metaHandler.GetDescriptors)
	}

	return alertService
}
