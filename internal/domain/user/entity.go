package user

import "time"

// User is a dashboard administrator account. Employees never log in; they
// check in by phone number at the kiosk.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
