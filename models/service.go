package models

// Service is a priced offering a customer selects when booking.
// Price is the display string shown to customers (e.g. "R$ 50,00"),
// not an amount the backend does arithmetic on.
type Service struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"not null" json:"name"`
	Price string `gorm:"not null" json:"price"`

	Appointments []Appointment `gorm:"foreignKey:ServiceID" json:"-"`
}
