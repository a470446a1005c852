// services/booking_service.go
package services

import (
	"errors"

	"agenda-salao-backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrSlotNotFound        = errors.New("slot not found")
	ErrSlotUnavailable     = errors.New("slot already booked")
	ErrServiceNotFound     = errors.New("service not found")
	ErrServiceInUse        = errors.New("service referenced by appointments")
	ErrAppointmentNotFound = errors.New("appointment not found")
)

// BookingService owns the two operations that touch a Slot and an
// Appointment together. Both run inside a single store transaction with the
// slot row locked, so a slot can never be claimed twice and an unavailable
// slot always has exactly one live appointment behind it.
type BookingService struct {
	db *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{db: db}
}

type BookingInput struct {
	CustomerName  string
	CustomerPhone string
	SlotID        uint
	ServiceID     uint
}

// Book reserves the slot and creates the appointment atomically. The slot
// row is read FOR UPDATE before the availability check: of two concurrent
// attempts on the same slot, the second blocks on the lock and then sees
// Available=false, so exactly one caller wins. Postgres honors the row
// lock; SQLite serializes writers and gives the same outcome.
func (s *BookingService) Book(input BookingInput) (*models.Appointment, error) {
	var appointment models.Appointment

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var slot models.Slot
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&slot, input.SlotID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSlotNotFound
			}
			return err
		}
		if !slot.Available {
			return ErrSlotUnavailable
		}

		var service models.Service
		if err := tx.First(&service, input.ServiceID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrServiceNotFound
			}
			return err
		}

		appointment = models.Appointment{
			CustomerName:  input.CustomerName,
			CustomerPhone: input.CustomerPhone,
			SlotID:        slot.ID,
			ServiceID:     service.ID,
		}
		if err := tx.Create(&appointment).Error; err != nil {
			return err
		}

		slot.Available = false
		if err := tx.Save(&slot).Error; err != nil {
			return err
		}

		appointment.Slot = slot
		appointment.Service = service
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

// Cancel deletes the appointment and frees its slot in one transaction.
func (s *BookingService) Cancel(appointmentID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var appointment models.Appointment
		if err := tx.First(&appointment, appointmentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAppointmentNotFound
			}
			return err
		}

		var slot models.Slot
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&slot, appointment.SlotID).Error
		switch {
		case err == nil:
			slot.Available = true
			if err := tx.Save(&slot).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			// Slot row gone; nothing to free, still drop the appointment.
		default:
			return err
		}

		return tx.Delete(&models.Appointment{}, appointment.ID).Error
	})
}

// ListAppointments returns every appointment with its slot and service
// joined, ordered by slot date then time.
func (s *BookingService) ListAppointments() ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := s.db.
		Joins("Slot").
		Joins("Service").
		Order(`"Slot"."date" ASC, "Slot"."time" ASC`).
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}
