package models

import "time"

// Appointment binds a customer to one Slot and one Service.
type Appointment struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	CustomerName  string `gorm:"not null" json:"customerName"`
	CustomerPhone string `json:"customerPhone,omitempty"`

	SlotID uint `gorm:"index;not null" json:"slotId"`
	Slot   Slot `gorm:"foreignKey:SlotID" json:"slot,omitempty"`

	ServiceID uint    `gorm:"index;not null" json:"serviceId"`
	Service   Service `gorm:"foreignKey:ServiceID" json:"service,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}
