package report

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/openentropy/openentropy-go/internal/run"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS reports (
	report_id    TEXT PRIMARY KEY,
	source       TEXT NOT NULL,
	verdict      TEXT NOT NULL,
	rule         TEXT NOT NULL,
	report_json  TEXT NOT NULL,
	created_at   TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_reports_source ON reports(source, created_at);

CREATE TABLE IF NOT EXISTS verdict_log (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	report_id     TEXT NOT NULL,
	source        TEXT NOT NULL,
	verdict       TEXT NOT NULL,
	rule          TEXT,
	created_at    TEXT NOT NULL,
	FOREIGN KEY (report_id) REFERENCES reports(report_id)
);
`

// #endregion schema

// #region store-struct

// Store persists validation reports and an append-only verdict log in SQLite.
type Store struct {
	db *sql.DB
}

// #endregion store-struct

// #region constructor

// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// #endregion constructor

// #region close

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for use by other packages.
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion close

// #region save

// SaveReport writes a report and its verdict-log entry in one transaction.
func (s *Store) SaveReport(rep run.Report) error {
	body, err := json.Marshal(rep)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	createdAt := rep.CreatedAt.Format(time.RFC3339Nano)
	_, err = tx.Exec(
		`INSERT INTO reports (report_id, source, verdict, rule, report_json, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rep.ReportID, rep.Source, string(rep.Decision.Verdict), rep.Decision.Rule, string(body), createdAt,
	)
	if err != nil {
		return fmt.Errorf("insert report: %w", err)
	}

	_, err = tx.Exec(
		`INSERT INTO verdict_log (report_id, source, verdict, rule, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		rep.ReportID, rep.Source, string(rep.Decision.Verdict), rep.Decision.Rule, createdAt,
	)
	if err != nil {
		return fmt.Errorf("insert verdict log: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// #endregion save

// #region queries

// Row is a report listing entry without the full report body.
type Row struct {
	ReportID  string
	Source    string
	Verdict   string
	Rule      string
	CreatedAt time.Time
}

// ListReports returns the lastN most recent reports, newest first.
func (s *Store) ListReports(lastN int) ([]Row, error) {
	rows, err := s.db.Query(
		`SELECT report_id, source, verdict, rule, created_at
		 FROM reports ORDER BY created_at DESC LIMIT ?`, lastN,
	)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer rows.Close()
	return scanRows(rows)
}

// ReportsBySource returns the lastN most recent reports for one source.
func (s *Store) ReportsBySource(source string, lastN int) ([]Row, error) {
	rows, err := s.db.Query(
		`SELECT report_id, source, verdict, rule, created_at
		 FROM reports WHERE source = ? ORDER BY created_at DESC LIMIT ?`, source, lastN,
	)
	if err != nil {
		return nil, fmt.Errorf("reports by source: %w", err)
	}
	defer rows.Close()
	return scanRows(rows)
}

// GetReport loads one full report by ID.
func (s *Store) GetReport(reportID string) (run.Report, error) {
	var body string
	err := s.db.QueryRow(
		`SELECT report_json FROM reports WHERE report_id = ?`, reportID,
	).Scan(&body)
	if err == sql.ErrNoRows {
		return run.Report{}, fmt.Errorf("report %s not found", reportID)
	}
	if err != nil {
		return run.Report{}, fmt.Errorf("get report: %w", err)
	}

	var rep run.Report
	if err := json.Unmarshal([]byte(body), &rep); err != nil {
		return run.Report{}, fmt.Errorf("unmarshal report %s: %w", reportID, err)
	}
	return rep, nil
}

func scanRows(rows *sql.Rows) ([]Row, error) {
	var out []Row
	for rows.Next() {
		var r Row
		var createdAt string
		if err := rows.Scan(&r.ReportID, &r.Source, &r.Verdict, &r.Rule, &createdAt); err != nil {
			return nil, fmt.Errorf("scan report row: %w", err)
		}
		t, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at %q: %w", createdAt, err)
		}
		r.CreatedAt = t
		out = append(out, r)
	}
	return out, rows.Err()
}

// #endregion queries
