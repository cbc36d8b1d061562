package domain

import "github.com/shopspring/decimal"

// Business validation constants
const (
	MinReservationMinutes = 10
	MaxNameLength         = 255
	MaxPhoneNumberLength  = 32
)

// PricePerMinuteScale matches surfaces.price_per_minute NUMERIC(12, 4)
const PricePerMinuteScale = 4

// MaxPricePerMinute exclusive upper bound of a surface price
var MaxPricePerMinute = decimal.New(1, 12-PricePerMinuteScale)

// SinglesPriceMultiplier наценка на одиночную игру (doubles оплачивается по базовой цене)
var SinglesPriceMultiplier = decimal.RequireFromString("1.5")

// Seed data
const (
	SeedCourtsCount = 4
)
