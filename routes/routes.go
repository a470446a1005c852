package routes

import (
	"os"

	"agenda-salao-backend/config"
	"agenda-salao-backend/controllers"
	"agenda-salao-backend/services"
	"agenda-salao-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	// Mobile clients call from any origin; credentials ride in the
	// Authorization header, not cookies.
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length", "X-Request-Id"},
	}))

	r.Use(config.PerformanceLogger())

	bookingService := services.NewBookingService(db)
	slotService := services.NewSlotService(db)
	notifyService := services.NewNotifyService()

	authController := controllers.AuthController{DB: db}
	serviceController := controllers.ServiceController{DB: db}
	slotController := controllers.SlotController{Slots: slotService}
	appointmentController := controllers.AppointmentController{
		Bookings: bookingService,
		Notifier: notifyService,
	}

	// Public routes
	r.GET("/servicos", serviceController.List)
	r.GET("/horarios", slotController.ListAvailable)
	r.POST("/agendamentos", appointmentController.Create)
	r.POST("/login", authController.Login)

	// Admin routes
	admin := r.Group("/", utils.AuthMiddleware())
	{
		admin.GET("/agendamentos", appointmentController.List)
		admin.POST("/servicos", serviceController.Create)
		admin.DELETE("/servicos/:id", serviceController.Delete)
		admin.POST("/horarios/gerar-semana", slotController.GenerateWeek)
		admin.DELETE("/agendamentos/:id", appointmentController.Delete)
	}

	// Dev bootstrap: rebuilds the schema and seeds demo data.
	if os.Getenv("APP_ENV") != "production" {
		syncController := controllers.SyncController{DB: db}
		r.GET("/sync", syncController.Sync)
	}

	return r
}
