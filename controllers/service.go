// controllers/service.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"agenda-salao-backend/models"
	"agenda-salao-backend/services"
	"agenda-salao-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateServiceInput defines the expected JSON structure for creating a service
type CreateServiceInput struct {
	Name  string `json:"name" binding:"required"`
	Price string `json:"price" binding:"required"`
}

type ServiceController struct {
	DB *gorm.DB
}

// List returns every service. Public: customers pick from this catalog.
func (ctl *ServiceController) List(c *gin.Context) {
	var services []models.Service
	if err := ctl.DB.Find(&services).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}

	c.JSON(http.StatusOK, services)
}

// Create adds a new service to the catalog. Admin only.
func (ctl *ServiceController) Create(c *gin.Context) {
	var input CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	service := models.Service{
		Name:  input.Name,
		Price: input.Price,
	}

	if err := ctl.DB.Create(&service).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create service")
		return
	}

	c.JSON(http.StatusCreated, service)
}

// Delete removes a service. A service still referenced by appointments
// cannot be deleted; freeing it requires cancelling those appointments
// first, which keeps every appointment's service reference valid.
func (ctl *ServiceController) Delete(c *gin.Context) {
	serviceID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	var rowsAffected int64
	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		var referencing int64
		if err := tx.Model(&models.Appointment{}).
			Where("service_id = ?", serviceID).
			Count(&referencing).Error; err != nil {
			return err
		}
		if referencing > 0 {
			return services.ErrServiceInUse
		}

		result := tx.Delete(&models.Service{}, serviceID)
		if result.Error != nil {
			return result.Error
		}
		rowsAffected = result.RowsAffected
		return nil
	})

	if err != nil {
		if errors.Is(err, services.ErrServiceInUse) {
			utils.RespondWithError(c, http.StatusConflict, "Service has appointments and cannot be deleted")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete service")
		}
		return
	}

	if rowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}
