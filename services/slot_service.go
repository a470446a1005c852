// services/slot_service.go
package services

import (
	"errors"
	"time"

	"agenda-salao-backend/models"
	"agenda-salao-backend/utils"

	"gorm.io/gorm"
)

var ErrInvalidWeekRange = errors.New("invalid week generation range")

const (
	defaultWeekDays  = 7
	defaultStartHour = 9
	defaultEndHour   = 19 // exclusive; last slot of a default day is 18:00
)

type SlotService struct {
	db *gorm.DB
}

func NewSlotService(db *gorm.DB) *SlotService {
	return &SlotService{db: db}
}

// GenerateWeekInput overrides the defaults of a generation run. Zero values
// mean "tomorrow, 7 days, 09:00-19:00".
type GenerateWeekInput struct {
	StartDate string `json:"startDate"`
	Days      int    `json:"days"`
	StartHour int    `json:"startHour"`
	EndHour   int    `json:"endHour"`
}

// GenerateWeek creates hourly slots over the requested window, skipping any
// date+time pair that already exists so rerunning (or the cron top-up) never
// duplicates or resets a slot. Returns how many slots were created.
func (s *SlotService) GenerateWeek(input GenerateWeekInput) (int, error) {
	start := utils.BeginningOfDay(time.Now()).AddDate(0, 0, 1)
	if input.StartDate != "" {
		parsed, err := utils.ParseSlotDate(input.StartDate)
		if err != nil {
			return 0, ErrInvalidWeekRange
		}
		start = parsed
	}

	days := input.Days
	if days == 0 {
		days = defaultWeekDays
	}
	startHour := input.StartHour
	if startHour == 0 {
		startHour = defaultStartHour
	}
	endHour := input.EndHour
	if endHour == 0 {
		endHour = defaultEndHour
	}

	if days < 1 || startHour < 0 || endHour > 24 || startHour >= endHour {
		return 0, ErrInvalidWeekRange
	}

	firstDate := utils.FormatSlotDate(start)
	lastDate := utils.FormatSlotDate(start.AddDate(0, 0, days-1))

	created := 0
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing []models.Slot
		if err := tx.Where("date >= ? AND date <= ?", firstDate, lastDate).
			Find(&existing).Error; err != nil {
			return err
		}
		taken := make(map[string]struct{}, len(existing))
		for _, slot := range existing {
			taken[slot.Date+" "+slot.Time] = struct{}{}
		}

		var slots []models.Slot
		for day := 0; day < days; day++ {
			date := utils.FormatSlotDate(start.AddDate(0, 0, day))
			for hour := startHour; hour < endHour; hour++ {
				t := utils.HourString(hour)
				if _, ok := taken[date+" "+t]; ok {
					continue
				}
				slots = append(slots, models.Slot{Date: date, Time: t, Available: true})
			}
		}
		if len(slots) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(slots, 100).Error; err != nil {
			return err
		}
		created = len(slots)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}

// ListAvailable returns the open slots, earliest first.
func (s *SlotService) ListAvailable() ([]models.Slot, error) {
	var slots []models.Slot
	err := s.db.Where("available = ?", true).
		Order(`"date" ASC, "time" ASC`).
		Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}
