package models

import "agenda-salao-backend/utils"

// AdminUser is a staff account. There is no self-registration: rows are
// created only by the startup seed or the dev sync bootstrap.
type AdminUser struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
}

// NewAdminUser hashes the password up front so a cleartext password never
// reaches the store. Deliberately not a gorm hook: hashing on construction
// keeps the model free of lifecycle callbacks.
func NewAdminUser(email, password string) (*AdminUser, error) {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	return &AdminUser{Email: email, PasswordHash: hash}, nil
}
