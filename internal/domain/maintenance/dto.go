package maintenance

// DatabaseInfo describes the live database file.
type DatabaseInfo struct {
	Path       string           `json:"path"`
	SizeBytes  int64            `json:"size_bytes"`
	TableRows  map[string]int64 `json:"table_rows"`
	TotalRows  int64            `json:"total_rows"`
	TableCount int              `json:"table_count"`
}

type BackupRequest struct {
	DestinationPath string `json:"destination_path"`
}

type ImportRequest struct {
	SourcePath string `json:"source_path"`
}

type BackupResult struct {
	BackupPath string `json:"backup_path"`
}

type EmptyResult struct {
	BackupPath  string `json:"backup_path"`
	RowsDeleted int64  `json:"rows_deleted"`
}
