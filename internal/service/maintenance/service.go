package maintenance

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/auraswift/pos-backend-go/internal/domain/maintenance"
	"github.com/auraswift/pos-backend-go/internal/pkg/database"
)

type maintenanceServiceImpl struct {
	db *database.DB
}

func NewMaintenanceService(db *database.DB) maintenance.MaintenanceService {
	return &maintenanceServiceImpl{db: db}
}

// GetInfo implements maintenance.MaintenanceService.
func (s *maintenanceServiceImpl) GetInfo(ctx context.Context) (maintenance.DatabaseInfo, error) {
	info := maintenance.DatabaseInfo{
		Path:      s.db.Path(),
		TableRows: make(map[string]int64),
	}

	if stat, err := os.Stat(s.db.Path()); err == nil {
		info.SizeBytes = stat.Size()
	}

	tables, err := listTables(ctx, s.db.Conn())
	if err != nil {
		return maintenance.DatabaseInfo{}, err
	}

	for _, table := range tables {
		var count int64
		if err := s.db.Conn().QueryRowContext(ctx, `SELECT COUNT(*) FROM `+table).Scan(&count); err != nil {
			return maintenance.DatabaseInfo{}, fmt.Errorf("count rows in %s: %w", table, err)
		}
		info.TableRows[table] = count
		info.TotalRows += count
	}
	info.TableCount = len(tables)
	return info, nil
}

// Backup implements maintenance.MaintenanceService. The WAL is checkpointed
// first so a plain file copy is a complete snapshot.
func (s *maintenanceServiceImpl) Backup(ctx context.Context, req maintenance.BackupRequest) (maintenance.BackupResult, error) {
	if req.DestinationPath == "" {
		return maintenance.BackupResult{}, fmt.Errorf("%w: destination path is required", maintenance.ErrBackupFailed)
	}

	if err := s.db.Checkpoint(ctx); err != nil {
		return maintenance.BackupResult{}, err
	}
	if err := copyFile(s.db.Path(), req.DestinationPath); err != nil {
		return maintenance.BackupResult{}, fmt.Errorf("%w: %v", maintenance.ErrBackupFailed, err)
	}

	slog.Info("database backed up", "destination", req.DestinationPath)
	return maintenance.BackupResult{BackupPath: req.DestinationPath}, nil
}

// Empty implements maintenance.MaintenanceService. A safety backup is taken
// first; the wipe itself runs in one transaction.
func (s *maintenanceServiceImpl) Empty(ctx context.Context) (maintenance.EmptyResult, error) {
	backupPath := fmt.Sprintf("%s.backup-%s", s.db.Path(), time.Now().Format("20060102-150405"))
	if _, err := s.Backup(ctx, maintenance.BackupRequest{DestinationPath: backupPath}); err != nil {
		return maintenance.EmptyResult{}, err
	}

	tables, err := listTables(ctx, s.db.Conn())
	if err != nil {
		return maintenance.EmptyResult{}, err
	}

	var deleted int64
	tx, err := s.db.Conn().BeginTx(ctx, nil)
	if err != nil {
		return maintenance.EmptyResult{}, fmt.Errorf("begin wipe transaction: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `PRAGMA defer_foreign_keys = ON`); err != nil {
		_ = tx.Rollback()
		return maintenance.EmptyResult{}, fmt.Errorf("defer foreign keys: %w", err)
	}
	for _, table := range tables {
		res, err := tx.ExecContext(ctx, `DELETE FROM `+table)
		if err != nil {
			_ = tx.Rollback()
			return maintenance.EmptyResult{}, fmt.Errorf("empty table %s: %w", table, err)
		}
		if n, err := res.RowsAffected(); err == nil {
			deleted += n
		}
	}
	if err := tx.Commit(); err != nil {
		return maintenance.EmptyResult{}, fmt.Errorf("commit wipe: %w", err)
	}

	slog.Warn("database emptied", "rows_deleted", deleted, "backup", backupPath)
	return maintenance.EmptyResult{BackupPath: backupPath, RowsDeleted: deleted}, nil
}

// Import implements maintenance.MaintenanceService. The candidate file is
// validated before anything is touched; a pre-import backup guards the swap,
// and any later failure restores it.
func (s *maintenanceServiceImpl) Import(ctx context.Context, req maintenance.ImportRequest) error {
	if err := validateCandidate(ctx, req.SourcePath); err != nil {
		return &maintenance.ImportError{Step: maintenance.StepValidate, Err: err}
	}

	backupPath := fmt.Sprintf("%s.pre-import-%s", s.db.Path(), time.Now().Format("20060102-150405"))
	if err := s.db.Checkpoint(ctx); err != nil {
		return &maintenance.ImportError{Step: maintenance.StepBackup, Err: err}
	}
	if err := copyFile(s.db.Path(), backupPath); err != nil {
		return &maintenance.ImportError{Step: maintenance.StepBackup, Err: err}
	}

	err := s.db.Exclusive(func(path string) error {
		// WAL and SHM sidecars of the old database must not shadow the
		// imported file.
		_ = os.Remove(path + "-wal")
		_ = os.Remove(path + "-shm")

		if err := copyFile(req.SourcePath, path); err != nil {
			if restoreErr := copyFile(backupPath, path); restoreErr != nil {
				return fmt.Errorf("replace failed (%v) and restore failed: %w", err, restoreErr)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return &maintenance.ImportError{Step: maintenance.StepReplace, Err: err}
	}

	if err := verifyLive(ctx, s.db); err != nil {
		restoreErr := s.db.Exclusive(func(path string) error {
			return copyFile(backupPath, path)
		})
		if restoreErr != nil {
			slog.Error("restore after failed import verification failed", "error", restoreErr)
		}
		return &maintenance.ImportError{Step: maintenance.StepVerify, Err: err}
	}

	slog.Info("database imported", "source", req.SourcePath, "backup", backupPath)
	return nil
}

// validateCandidate opens the candidate read-only and checks the expected
// tables exist and at least one user account is present. An empty database
// would lock everyone out after the swap.
func validateCandidate(ctx context.Context, path string) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}

	candidate, err := sql.Open("sqlite", fmt.Sprintf("file:%s?mode=ro", path))
	if err != nil {
		return err
	}
	defer candidate.Close()

	if err := checkRequiredTables(ctx, candidate); err != nil {
		return err
	}

	var users int64
	if err := candidate.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&users); err != nil {
		return fmt.Errorf("%w: %v", maintenance.ErrInvalidDatabaseFile, err)
	}
	if users == 0 {
		return fmt.Errorf("%w: no user accounts", maintenance.ErrInvalidDatabaseFile)
	}
	return nil
}

// verifyLive confirms the reopened database answers queries before the
// import is declared done.
func verifyLive(ctx context.Context, db *database.DB) error {
	if err := checkRequiredTables(ctx, db.Conn()); err != nil {
		return err
	}

	var users int64
	if err := db.Conn().QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&users); err != nil {
		return fmt.Errorf("query users: %w", err)
	}
	return nil
}

func checkRequiredTables(ctx context.Context, conn *sql.DB) error {
	for _, table := range database.RequiredTables {
		var name string
		err := conn.QueryRowContext(ctx,
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		if err != nil {
			return fmt.Errorf("%w: missing table %s", maintenance.ErrInvalidDatabaseFile, table)
		}
	}
	return nil
}

func listTables(ctx context.Context, conn *sql.DB) ([]string, error) {
	rows, err := conn.QueryContext(ctx,
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		tables = append(tables, name)
	}
	return tables, rows.Err()
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}
