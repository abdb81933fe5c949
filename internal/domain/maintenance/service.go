package maintenance

import "context"

type MaintenanceService interface {
	GetInfo(ctx context.Context) (DatabaseInfo, error)
	// Backup checkpoints the WAL and copies the database file to the
	// destination path.
	Backup(ctx context.Context, req BackupRequest) (BackupResult, error)
	// Empty snapshots the database first, then deletes every row.
	Empty(ctx context.Context) (EmptyResult, error)
	// Import validates the candidate file, backs up the live database,
	// swaps the file and verifies the result; failures restore the backup
	// and return an *ImportError naming the failed step.
	Import(ctx context.Context, req ImportRequest) error
}
