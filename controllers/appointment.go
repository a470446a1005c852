// controllers/appointment.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"agenda-salao-backend/services"
	"agenda-salao-backend/utils"

	"github.com/gin-gonic/gin"
)

// CreateAppointmentInput defines the expected JSON structure for booking a slot
type CreateAppointmentInput struct {
	CustomerName  string `json:"customerName" binding:"required"`
	CustomerPhone string `json:"customerPhone"`
	SlotID        uint   `json:"slotId" binding:"required"`
	ServiceID     uint   `json:"serviceId" binding:"required"`
}

type AppointmentController struct {
	Bookings *services.BookingService
	Notifier *services.NotifyService
}

// Create books a slot for a customer. Public. A slot that is unknown or
// already taken yields 409 so the client can tell "taken" apart from a
// server failure; two concurrent attempts on one slot get exactly one 201.
func (ctl *AppointmentController) Create(c *gin.Context) {
	var input CreateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.CustomerPhone != "" && !utils.ValidatePhone(input.CustomerPhone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	appointment, err := ctl.Bookings.Book(services.BookingInput{
		CustomerName:  input.CustomerName,
		CustomerPhone: input.CustomerPhone,
		SlotID:        input.SlotID,
		ServiceID:     input.ServiceID,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSlotNotFound), errors.Is(err, services.ErrSlotUnavailable):
			utils.RespondWithError(c, http.StatusConflict, "Slot already booked")
		case errors.Is(err, services.ErrServiceNotFound):
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		default:
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create appointment")
		}
		return
	}

	// Best effort, after the transaction committed.
	ctl.Notifier.ConfirmBooking(appointment)

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Appointment confirmed successfully",
		"appointment": appointment,
	})
}

// List returns every appointment with slot and service joined, ordered by
// slot date then time. Admin only.
func (ctl *AppointmentController) List(c *gin.Context) {
	appointments, err := ctl.Bookings.ListAppointments()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}

	c.JSON(http.StatusOK, appointments)
}

// Delete cancels an appointment and frees its slot. Admin only.
func (ctl *AppointmentController) Delete(c *gin.Context) {
	appointmentID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	if err := ctl.Bookings.Cancel(uint(appointmentID)); err != nil {
		if errors.Is(err, services.ErrAppointmentNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to cancel appointment")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appointment cancelled successfully"})
}
