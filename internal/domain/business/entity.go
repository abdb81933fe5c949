package business

import (
	"time"

	"github.com/shopspring/decimal"
)

// Business is the tenant scope isolating users, schedules and shifts from
// other tenants sharing the same database file.
type Business struct {
	ID              string
	Name            string
	MaxStartingCash decimal.Decimal
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
