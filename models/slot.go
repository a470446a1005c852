package models

// Slot is a bookable date+time unit. Date is "2006-01-02" and Time is
// "15:04"; both are stored as text so ordering by (date, time) is plain
// string comparison on every dialect.
//
// Available starts true and is flipped exactly once when an appointment
// claims the slot, and back when that appointment is cancelled. Exclusivity
// is enforced by the booking transaction, not by a uniqueness constraint.
type Slot struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Date      string `gorm:"not null;index:idx_slot_date_time,priority:1" json:"date"`
	Time      string `gorm:"not null;index:idx_slot_date_time,priority:2" json:"time"`
	Available bool   `gorm:"not null;default:true" json:"available"`
}
