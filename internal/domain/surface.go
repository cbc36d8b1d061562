package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Surface represents a court surface type with its per-minute price
type Surface struct {
	ID             int64
	Name           string
	PricePerMinute decimal.Decimal
	Deleted        bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
