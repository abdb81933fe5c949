package settings

import "errors"

var (
	ErrSettingNotFound         = errors.New("setting not found")
	ErrEncryptionNotConfigured = errors.New("encryption is not configured")
)
