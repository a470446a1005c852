// controllers/sync.go
package controllers

import (
	"net/http"
	"os"

	"agenda-salao-backend/models"
	"agenda-salao-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SyncController rebuilds the schema and seeds demo data. Only registered
// outside production; it drops every table.
type SyncController struct {
	DB *gorm.DB
}

func (ctl *SyncController) Sync(c *gin.Context) {
	migrator := ctl.DB.Migrator()
	if err := migrator.DropTable(
		&models.Appointment{},
		&models.Slot{},
		&models.Service{},
		&models.AdminUser{},
	); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to reset schema")
		return
	}

	if err := ctl.DB.AutoMigrate(
		&models.AdminUser{},
		&models.Service{},
		&models.Slot{},
		&models.Appointment{},
	); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to migrate schema")
		return
	}

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@salao.com"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "senha_forte_123"
	}

	admin, err := models.NewAdminUser(email, password)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to seed admin")
		return
	}
	if err := ctl.DB.Create(admin).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to seed admin")
		return
	}

	seedServices := []models.Service{
		{Name: "Corte de Cabelo", Price: "R$ 50,00"},
		{Name: "Barba Tradicional", Price: "R$ 35,00"},
	}
	seedSlots := []models.Slot{
		{Date: "2025-07-28", Time: "09:00", Available: true},
		{Date: "2025-07-28", Time: "10:00", Available: true},
		{Date: "2025-07-29", Time: "19:00", Available: true},
		{Date: "2025-07-29", Time: "20:00", Available: true},
	}
	if err := ctl.DB.Create(&seedServices).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to seed services")
		return
	}
	if err := ctl.DB.Create(&seedSlots).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to seed slots")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Database synchronized"})
}
