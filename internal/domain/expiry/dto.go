package expiry

import (
	"time"

	"github.com/auraswift/pos-backend-go/internal/pkg/validator"
)

type CreateBatchRequest struct {
	ProductName string `json:"product_name"`
	BatchCode   string `json:"batch_code"`
	Quantity    int    `json:"quantity"`
	ExpiryDate  int64  `json:"expiry_date"`
}

func (r *CreateBatchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ProductName) {
		errs = append(errs, validator.ValidationError{Field: "product_name", Message: "product_name is required"})
	}
	if r.ExpiryDate <= 0 {
		errs = append(errs, validator.ValidationError{Field: "expiry_date", Message: "expiry_date is required"})
	}
	if r.Quantity < 0 {
		errs = append(errs, validator.ValidationError{Field: "quantity", Message: "quantity cannot be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateSettingsRequest struct {
	WarningDays  *int  `json:"warning_days"`
	CriticalDays *int  `json:"critical_days"`
	Enabled      *bool `json:"enabled"`
}

type NotificationResponse struct {
	ID              string `json:"id"`
	BatchID         string `json:"batch_id"`
	ProductName     string `json:"product_name"`
	ExpiryDate      int64  `json:"expiry_date"`
	DaysUntilExpiry int    `json:"days_until_expiry"`
	Level           string `json:"level"`
	Status          string `json:"status"`
	CreatedAt       string `json:"created_at"`
}

func ToNotificationResponse(n Notification) NotificationResponse {
	return NotificationResponse{
		ID:              n.ID,
		BatchID:         n.BatchID,
		ProductName:     n.ProductName,
		ExpiryDate:      n.ExpiryDate.Unix(),
		DaysUntilExpiry: n.DaysUntilExpiry,
		Level:           string(n.Level),
		Status:          string(n.Status),
		CreatedAt:       n.CreatedAt.Format(time.RFC3339),
	}
}
