package storage

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Decision is one row of the decision log: the signal a run produced plus
// enough context to review it later.
type Decision struct {
	ID        string
	RunID     string
	Ticker    string
	TradeDate string
	Signal    string
	Provider  string
	DeepModel string
	QuickMod  string
	CreatedAt time.Time
}

// Reflection is a lesson learned from reviewing a past decision against its
// outcome. Lessons feed back into future manager and trader prompts.
type Reflection struct {
	ID         string
	Ticker     string
	TradeDate  string
	Signal     string
	ReturnsPct float64
	Lesson     string
	CreatedAt  time.Time
}

// DecisionStorage persists the decision log and reflection memory in SQLite.
type DecisionStorage struct {
	db *sql.DB
}

// NewDecisionStorage opens (creating if needed) the decisions database under
// dataDir.
func NewDecisionStorage(dataDir string) (*DecisionStorage, error) {
	dbPath := filepath.Join(dataDir, "decisions.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	storage := &DecisionStorage{db: db}

	if err := storage.initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return storage, nil
}

func (ds *DecisionStorage) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS decisions (
		id TEXT PRIMARY KEY,
		run_id TEXT NOT NULL,
		ticker TEXT NOT NULL,
		trade_date TEXT NOT NULL,
		signal TEXT NOT NULL,
		provider TEXT NOT NULL,
		deep_model TEXT,
		quick_model TEXT,
		created_at DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_decisions_ticker ON decisions(ticker);

	CREATE TABLE IF NOT EXISTS reflections (
		id TEXT PRIMARY KEY,
		ticker TEXT NOT NULL,
		trade_date TEXT NOT NULL,
		signal TEXT NOT NULL,
		returns_pct REAL NOT NULL,
		lesson TEXT NOT NULL,
		created_at DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_reflections_ticker ON reflections(ticker);
	`

	_, err := ds.db.Exec(schema)
	if err != nil {
		return err
	}

	// Older databases predate per-role model columns
	if err := ds.migrateSchema(); err != nil {
		return fmt.Errorf("schema migration failed: %w", err)
	}

	return nil
}

// migrateSchema adds missing columns to existing databases.
func (ds *DecisionStorage) migrateSchema() error {
	hasDeepModel, err := ds.columnExists("decisions", "deep_model")
	if err != nil {
		return fmt.Errorf("failed to check for deep_model column: %w", err)
	}
	if !hasDeepModel {
		if _, err := ds.db.Exec(`ALTER TABLE decisions ADD COLUMN deep_model TEXT DEFAULT ''`); err != nil {
			return fmt.Errorf("failed to add deep_model column: %w", err)
		}
	}

	hasQuickModel, err := ds.columnExists("decisions", "quick_model")
	if err != nil {
		return fmt.Errorf("failed to check for quick_model column: %w", err)
	}
	if !hasQuickModel {
		if _, err := ds.db.Exec(`ALTER TABLE decisions ADD COLUMN quick_model TEXT DEFAULT ''`); err != nil {
			return fmt.Errorf("failed to add quick_model column: %w", err)
		}
	}

	return nil
}

// columnExists checks if a column exists in a table using PRAGMA table_info.
func (ds *DecisionStorage) columnExists(tableName, columnName string) (bool, error) {
	query := fmt.Sprintf("PRAGMA table_info(%s)", tableName)
	rows, err := ds.db.Query(query)
	if err != nil {
		return false, err
	}
	defer rows.Close()

	for rows.Next() {
		var cid int
		var name string
		var dataType string
		var notNull int
		var defaultValue interface{}
		var pk int

		if err := rows.Scan(&cid, &name, &dataType, &notNull, &defaultValue, &pk); err != nil {
			return false, err
		}

		if name == columnName {
			return true, nil
		}
	}

	return false, rows.Err()
}

// SaveDecision records a decision in the log.
func (ds *DecisionStorage) SaveDecision(d Decision) error {
	query := `
	INSERT OR REPLACE INTO decisions (id, run_id, ticker, trade_date, signal, provider, deep_model, quick_model, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := ds.db.Exec(query,
		d.ID,
		d.RunID,
		d.Ticker,
		d.TradeDate,
		d.Signal,
		d.Provider,
		d.DeepModel,
		d.QuickMod,
		d.CreatedAt,
	)

	return err
}

// ListDecisions returns decisions for a ticker, newest first. An empty
// ticker returns all decisions.
func (ds *DecisionStorage) ListDecisions(ticker string) ([]Decision, error) {
	query := `
	SELECT id, run_id, ticker, trade_date, signal, provider, deep_model, quick_model, created_at
	FROM decisions
	`
	args := []any{}
	if ticker != "" {
		query += ` WHERE ticker = ?`
		args = append(args, ticker)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := ds.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var decisions []Decision
	for rows.Next() {
		var d Decision
		err := rows.Scan(
			&d.ID,
			&d.RunID,
			&d.Ticker,
			&d.TradeDate,
			&d.Signal,
			&d.Provider,
			&d.DeepModel,
			&d.QuickMod,
			&d.CreatedAt,
		)
		if err != nil {
			continue
		}
		decisions = append(decisions, d)
	}

	return decisions, rows.Err()
}

// SaveReflection stores a lesson in the reflection memory.
func (ds *DecisionStorage) SaveReflection(r Reflection) error {
	query := `
	INSERT OR REPLACE INTO reflections (id, ticker, trade_date, signal, returns_pct, lesson, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := ds.db.Exec(query,
		r.ID,
		r.Ticker,
		r.TradeDate,
		r.Signal,
		r.ReturnsPct,
		r.Lesson,
		r.CreatedAt,
	)

	return err
}

// RecentLessons returns up to limit lessons for a ticker, newest first.
// Used to seed manager and trader prompts with past experience.
func (ds *DecisionStorage) RecentLessons(ticker string, limit int) ([]Reflection, error) {
	query := `
	SELECT id, ticker, trade_date, signal, returns_pct, lesson, created_at
	FROM reflections
	WHERE ticker = ?
	ORDER BY created_at DESC
	LIMIT ?
	`

	rows, err := ds.db.Query(query, ticker, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reflections []Reflection
	for rows.Next() {
		var r Reflection
		err := rows.Scan(
			&r.ID,
			&r.Ticker,
			&r.TradeDate,
			&r.Signal,
			&r.ReturnsPct,
			&r.Lesson,
			&r.CreatedAt,
		)
		if err != nil {
			continue
		}
		reflections = append(reflections, r)
	}

	return reflections, rows.Err()
}

func (ds *DecisionStorage) Close() error {
	if ds.db != nil {
		return ds.db.Close()
	}
	return nil
}
