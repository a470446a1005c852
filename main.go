package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"agenda-salao-backend/config"
	"agenda-salao-backend/models"
	"agenda-salao-backend/routes"
	"agenda-salao-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		dsn = "database.sqlite"
	}
	db, err := config.ConnectDB(dsn)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.AdminUser{},
		&models.Service{},
		&models.Slot{},
		&models.Appointment{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if err := seedAdmin(db); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	services.StartSlotScheduler(db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter(db)
	printRoutes(r)
	r.Run(":" + port)
}

// seedAdmin upserts the configured admin account. Admins are created only
// here or via the dev sync route; there is no self-registration.
func seedAdmin(db *gorm.DB) error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return nil
	}

	admin, err := models.NewAdminUser(email, password)
	if err != nil {
		return err
	}

	var existing models.AdminUser
	result := db.Where("email = ?", email).First(&existing)
	if result.Error == nil {
		existing.PasswordHash = admin.PasswordHash
		return db.Save(&existing).Error
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}
	return db.Create(admin).Error
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
