package domain

import "time"

// Court represents a tennis court
type Court struct {
	ID        int64
	Name      string
	SurfaceID int64
	Surface   *Surface // заполняется при чтении с join
	Deleted   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive корт пригоден для бронирования, только если не удален ни он, ни его покрытие
func (c *Court) IsActive() bool {
	return c != nil && !c.Deleted && c.Surface != nil && !c.Surface.Deleted
}
