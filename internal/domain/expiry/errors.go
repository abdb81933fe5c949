package expiry

import "errors"

var (
	ErrNotificationNotFound = errors.New("expiry notification not found")
	ErrBatchNotFound        = errors.New("product batch not found")
)
