// services/scheduler.go
package services

import (
	"log"
	"os"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// StartSlotScheduler keeps the slot grid topped up by running the same
// week generation the admin endpoint uses, on the schedule given by
// SLOT_TOPUP_CRON (e.g. "0 6 * * 1" for Mondays at 6 AM). When the
// variable is unset no scheduler runs and slots are generated manually.
func StartSlotScheduler(db *gorm.DB) *cron.Cron {
	spec := os.Getenv("SLOT_TOPUP_CRON")
	if spec == "" {
		return nil
	}

	slotService := NewSlotService(db)
	c := cron.New()

	if _, err := c.AddFunc(spec, func() {
		created, err := slotService.GenerateWeek(GenerateWeekInput{})
		if err != nil {
			log.Printf("Slot top-up failed: %v", err)
			return
		}
		log.Printf("Slot top-up created %d slots", created)
	}); err != nil {
		log.Printf("Invalid SLOT_TOPUP_CRON %q: %v", spec, err)
		return nil
	}

	c.Start()
	log.Println("Slot top-up scheduler started")
	return c
}
