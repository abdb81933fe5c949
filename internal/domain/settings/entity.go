package settings

import "time"

// EncryptedMarkerSuffix names the companion row written alongside an
// encrypted key: "<key>_encrypted" = "1".
const EncryptedMarkerSuffix = "_encrypted"

type Setting struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}
