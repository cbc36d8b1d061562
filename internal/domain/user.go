package domain

import (
	"strings"
	"time"
)

// User represents a club member identified by phone number
type User struct {
	ID          int64
	Name        string
	PhoneNumber string
	Deleted     bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NormalizePhoneNumber brings a phone number to the form it is stored and looked up in
func NormalizePhoneNumber(phone string) string {
	return strings.TrimSpace(phone)
}
