package expiry

import "time"

// Batch is the minimal product batch record the expiry scanner works over.
type Batch struct {
	ID          string
	BusinessID  string
	ProductName string
	BatchCode   string
	Quantity    int
	ExpiryDate  time.Time
	CreatedAt   time.Time
}

type Level string

const (
	LevelWarning  Level = "warning"
	LevelCritical Level = "critical"
	LevelExpired  Level = "expired"
)

type NotificationStatus string

const (
	StatusNew          NotificationStatus = "new"
	StatusAcknowledged NotificationStatus = "acknowledged"
	StatusDismissed    NotificationStatus = "dismissed"
)

// Notification is one alert per (batch, level); re-scans do not duplicate.
type Notification struct {
	ID              string
	BusinessID      string
	BatchID         string
	ProductName     string
	ExpiryDate      time.Time
	DaysUntilExpiry int
	Level           Level
	Status          NotificationStatus
	CreatedAt       time.Time
}

// Settings holds the per-business alert thresholds in days.
type Settings struct {
	BusinessID   string
	WarningDays  int
	CriticalDays int
	Enabled      bool
	UpdatedAt    time.Time
}

// DefaultSettings applies when a business has never saved thresholds.
func DefaultSettings(businessID string) Settings {
	return Settings{
		BusinessID:   businessID,
		WarningDays:  7,
		CriticalDays: 2,
		Enabled:      true,
	}
}
