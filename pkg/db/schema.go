package db

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;
PRAGMA temp_store = MEMORY;

-- Runs table: one row per generate invocation
CREATE TABLE IF NOT EXISTS runs (
    run_id INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    baseline_path TEXT NOT NULL,
    docs_dir TEXT NOT NULL,
    output_path TEXT NOT NULL,
    output_hash TEXT,

    total INTEGER NOT NULL DEFAULT 0,
    enhanced INTEGER NOT NULL DEFAULT 0,
    fallback INTEGER NOT NULL DEFAULT 0,
    with_syntax INTEGER NOT NULL DEFAULT 0,
    with_example INTEGER NOT NULL DEFAULT 0,
    docs_scanned INTEGER NOT NULL DEFAULT 0,
    docs_failed INTEGER NOT NULL DEFAULT 0,
    orphans INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);

-- Run commands: per-command outcome of a run
CREATE TABLE IF NOT EXISTS run_commands (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id INTEGER NOT NULL,
    name TEXT NOT NULL,
    source TEXT NOT NULL,           -- enhanced, fallback
    category TEXT,
    has_syntax BOOLEAN DEFAULT 0,
    has_example BOOLEAN DEFAULT 0,
    summary TEXT,
    FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_run_commands_run ON run_commands(run_id);
CREATE INDEX IF NOT EXISTS idx_run_commands_name ON run_commands(name);
CREATE INDEX IF NOT EXISTS idx_run_commands_source ON run_commands(source);
`
