// controllers/slot.go
package controllers

import (
	"errors"
	"net/http"

	"agenda-salao-backend/services"
	"agenda-salao-backend/utils"

	"github.com/gin-gonic/gin"
)

type SlotController struct {
	Slots *services.SlotService
}

// ListAvailable returns the open slots ordered by date then time, the list
// customers pick from when booking.
func (ctl *SlotController) ListAvailable(c *gin.Context) {
	slots, err := ctl.Slots.ListAvailable()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve slots")
		return
	}

	c.JSON(http.StatusOK, slots)
}

// GenerateWeek bulk-creates the coming week's slots. The body may override
// the window; an empty body uses the defaults. Admin only.
func (ctl *SlotController) GenerateWeek(c *gin.Context) {
	var input services.GenerateWeekInput
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}
	}

	created, err := ctl.Slots.GenerateWeek(input)
	if err != nil {
		if errors.Is(err, services.ErrInvalidWeekRange) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid generation range")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate slots")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Week generated successfully", "created": created})
}
