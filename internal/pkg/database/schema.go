package database

// RequiredTables lists the tables an imported database must contain to be
// accepted as a valid AuraSwift database.
var RequiredTables = []string{
	"businesses",
	"users",
	"sessions",
	"roles",
	"schedules",
	"time_shifts",
	"pos_shifts",
}

const schema = `
CREATE TABLE IF NOT EXISTS businesses (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	max_starting_cash TEXT NOT NULL DEFAULT '500',
	created_at INTEGER NOT NULL,
	updated_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS users (
	id TEXT PRIMARY KEY,
	business_id TEXT NOT NULL REFERENCES businesses(id),
	email TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	first_name TEXT NOT NULL DEFAULT '',
	last_name TEXT NOT NULL DEFAULT '',
	role TEXT NOT NULL DEFAULT 'cashier',
	is_active INTEGER NOT NULL DEFAULT 1,
	created_at INTEGER NOT NULL,
	updated_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS sessions (
	id TEXT PRIMARY KEY,
	user_id TEXT NOT NULL REFERENCES users(id),
	token_hash TEXT NOT NULL UNIQUE,
	expires_at INTEGER NOT NULL,
	revoked_at INTEGER,
	user_agent TEXT NOT NULL DEFAULT '',
	ip_address TEXT NOT NULL DEFAULT '',
	created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS roles (
	id TEXT PRIMARY KEY,
	business_id TEXT NOT NULL,
	name TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	permissions TEXT NOT NULL DEFAULT '[]',
	requires_pos_shift INTEGER NOT NULL DEFAULT 1,
	is_system INTEGER NOT NULL DEFAULT 0,
	created_at INTEGER NOT NULL,
	updated_at INTEGER NOT NULL,
	UNIQUE (business_id, name)
);

CREATE TABLE IF NOT EXISTS user_roles (
	id TEXT PRIMARY KEY,
	user_id TEXT NOT NULL REFERENCES users(id),
	role_id TEXT NOT NULL REFERENCES roles(id),
	assigned_by TEXT NOT NULL,
	is_active INTEGER NOT NULL DEFAULT 1,
	created_at INTEGER NOT NULL,
	UNIQUE (user_id, role_id)
);

CREATE TABLE IF NOT EXISTS user_permissions (
	id TEXT PRIMARY KEY,
	user_id TEXT NOT NULL REFERENCES users(id),
	permission TEXT NOT NULL,
	granted_by TEXT NOT NULL,
	created_at INTEGER NOT NULL,
	UNIQUE (user_id, permission)
);

CREATE TABLE IF NOT EXISTS schedules (
	id TEXT PRIMARY KEY,
	business_id TEXT NOT NULL,
	staff_id TEXT NOT NULL,
	start_time INTEGER NOT NULL,
	end_time INTEGER NOT NULL,
	status TEXT NOT NULL DEFAULT 'upcoming',
	register_id TEXT,
	notes TEXT,
	created_by TEXT NOT NULL,
	created_at INTEGER NOT NULL,
	updated_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS time_shifts (
	id TEXT PRIMARY KEY,
	user_id TEXT NOT NULL,
	business_id TEXT NOT NULL,
	schedule_id TEXT,
	clock_in INTEGER NOT NULL,
	clock_out INTEGER,
	clock_out_source TEXT,
	break_start INTEGER,
	break_minutes INTEGER NOT NULL DEFAULT 0,
	status TEXT NOT NULL DEFAULT 'active',
	created_at INTEGER NOT NULL,
	updated_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS pos_shifts (
	id TEXT PRIMARY KEY,
	user_id TEXT NOT NULL,
	business_id TEXT NOT NULL,
	terminal_id TEXT NOT NULL,
	schedule_id TEXT,
	time_shift_id TEXT,
	starting_cash TEXT NOT NULL,
	final_cash TEXT,
	expected_cash TEXT,
	total_sales TEXT NOT NULL DEFAULT '0',
	total_transactions INTEGER NOT NULL DEFAULT 0,
	total_refunds TEXT NOT NULL DEFAULT '0',
	total_voids INTEGER NOT NULL DEFAULT 0,
	status TEXT NOT NULL DEFAULT 'active',
	end_reason TEXT,
	started_at INTEGER NOT NULL,
	ended_at INTEGER,
	created_at INTEGER NOT NULL,
	updated_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS shift_transactions (
	id TEXT PRIMARY KEY,
	shift_id TEXT NOT NULL REFERENCES pos_shifts(id),
	business_id TEXT NOT NULL,
	type TEXT NOT NULL,
	amount TEXT NOT NULL,
	payment_method TEXT NOT NULL DEFAULT 'cash',
	created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS product_batches (
	id TEXT PRIMARY KEY,
	business_id TEXT NOT NULL,
	product_name TEXT NOT NULL,
	batch_code TEXT NOT NULL,
	quantity INTEGER NOT NULL DEFAULT 0,
	expiry_date INTEGER NOT NULL,
	created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS expiry_notifications (
	id TEXT PRIMARY KEY,
	business_id TEXT NOT NULL,
	batch_id TEXT NOT NULL,
	product_name TEXT NOT NULL,
	expiry_date INTEGER NOT NULL,
	days_until_expiry INTEGER NOT NULL,
	level TEXT NOT NULL,
	status TEXT NOT NULL DEFAULT 'new',
	created_at INTEGER NOT NULL,
	UNIQUE (batch_id, level)
);

CREATE TABLE IF NOT EXISTS expiry_settings (
	business_id TEXT PRIMARY KEY,
	warning_days INTEGER NOT NULL DEFAULT 7,
	critical_days INTEGER NOT NULL DEFAULT 2,
	enabled INTEGER NOT NULL DEFAULT 1,
	updated_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS settings (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL,
	updated_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_sessions_expires ON sessions(expires_at);
CREATE INDEX IF NOT EXISTS idx_schedules_staff_start ON schedules(staff_id, start_time);
CREATE INDEX IF NOT EXISTS idx_time_shifts_user_status ON time_shifts(user_id, status);
CREATE INDEX IF NOT EXISTS idx_pos_shifts_user_status ON pos_shifts(user_id, status);
CREATE INDEX IF NOT EXISTS idx_pos_shifts_status_started ON pos_shifts(status, started_at);
CREATE INDEX IF NOT EXISTS idx_shift_transactions_shift ON shift_transactions(shift_id, created_at);
`
