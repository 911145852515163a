package record

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"github.com/portfolio-sim/portfolio-sim/sim"
)

// SQLiteRecorder persists simulation output to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so analysis tools can read while a run is writing.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	logrus.Infof("sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS risk_scores (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp   INTEGER NOT NULL,
			scenario    TEXT,
			horizon     INTEGER,
			probability REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_scores_ts ON risk_scores(timestamp)`,
	}
	for _, stmt := range stmts {
		if _, err := r.db.Exec(stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt[:40], err)
		}
	}
	return nil
}

// RecordIntervals writes the full event table into the intervals table. The
// covariate columns come from the table's own column order, so the schema is
// created here rather than in migrate. Inserts run in one transaction.
func (r *SQLiteRecorder) RecordIntervals(table *sim.EventTable) error {
	cols := make([]string, 0, len(table.Names))
	for _, name := range table.Names {
		cols = append(cols, fmt.Sprintf("%q REAL", name))
	}
	create := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS intervals (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		borrower   INTEGER NOT NULL,
		start      REAL NOT NULL,
		stop       REAL NOT NULL,
		event      INTEGER NOT NULL,
		state_from INTEGER NOT NULL,
		state_to   INTEGER NOT NULL,
		%s
	)`, strings.Join(cols, ",\n\t\t"))
	if _, err := r.db.Exec(create); err != nil {
		return fmt.Errorf("create intervals table: %w", err)
	}
	if _, err := r.db.Exec(`CREATE INDEX IF NOT EXISTS idx_intervals_borrower ON intervals(borrower)`); err != nil {
		return fmt.Errorf("create intervals index: %w", err)
	}

	quoted := make([]string, 0, len(table.Names))
	for _, name := range table.Names {
		quoted = append(quoted, fmt.Sprintf("%q", name))
	}
	placeholders := strings.TrimRight(strings.Repeat("?,", 6+len(table.Names)), ",")
	insert := fmt.Sprintf(`INSERT INTO intervals (borrower, start, stop, event, state_from, state_to, %s) VALUES (%s)`,
		strings.Join(quoted, ", "), placeholders)

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	stmt, err := tx.Prepare(insert)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	args := make([]any, 0, 6+len(table.Names))
	for _, rec := range table.Records {
		args = args[:0]
		args = append(args, rec.Borrower, rec.Start, rec.Stop, rec.Event, int(rec.StateFrom), int(rec.StateTo))
		for _, v := range rec.Covariates {
			args = append(args, v)
		}
		if _, err := stmt.Exec(args...); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert interval for borrower %d: %w", rec.Borrower, err)
		}
	}
	return tx.Commit()
}

// RecordRiskScore appends one projected default probability.
func (r *SQLiteRecorder) RecordRiskScore(scenario string, horizonDays int, probability float64) error {
	_, err := r.db.Exec(
		`INSERT INTO risk_scores (timestamp, scenario, horizon, probability) VALUES (?, ?, ?, ?)`,
		time.Now().Unix(), scenario, horizonDays, probability,
	)
	if err != nil {
		return fmt.Errorf("insert risk score: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (r *SQLiteRecorder) Close() error {
	return r.db.Close()
}
