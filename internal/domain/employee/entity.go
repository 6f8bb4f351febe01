package employee

import "time"

// Employee is identified by a unique phone number, which is what the
// attendance kiosk sends instead of a login.
type Employee struct {
	ID         string
	Name       string
	Phone      string
	Department string
	Email      *string
	Position   *string
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
