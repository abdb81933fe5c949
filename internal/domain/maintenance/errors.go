package maintenance

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDatabaseFile = errors.New("file is not a valid AuraSwift database")
	ErrBackupFailed        = errors.New("database backup failed")
)

// Import steps, reported back so the operator knows where a failed import
// stopped and that the previous database was restored.
const (
	StepValidate = "validate"
	StepBackup   = "backup"
	StepReplace  = "replace"
	StepVerify   = "verify"
)

// ImportError names the step an import failed at; the pre-import backup has
// been restored by the time it is returned.
type ImportError struct {
	Step string
	Err  error
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("import failed at %s step: %v", e.Step, e.Err)
}

func (e *ImportError) Unwrap() error {
	return e.Err
}
