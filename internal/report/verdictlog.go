package report

import (
	"fmt"
	"time"
)

// #region verdict-history

// VerdictEntry is one row of the append-only verdict log.
type VerdictEntry struct {
	ReportID  string
	Source    string
	Verdict   string
	Rule      string
	CreatedAt time.Time
}

// VerdictHistory returns the lastN verdicts for one source, newest first.
// The log survives report deletion, so reclassification over time stays
// auditable.
func (s *Store) VerdictHistory(source string, lastN int) ([]VerdictEntry, error) {
	rows, err := s.db.Query(
		`SELECT report_id, source, verdict, rule, created_at
		 FROM verdict_log WHERE source = ? ORDER BY created_at DESC LIMIT ?`, source, lastN,
	)
	if err != nil {
		return nil, fmt.Errorf("verdict history: %w", err)
	}
	defer rows.Close()

	var out []VerdictEntry
	for rows.Next() {
		var e VerdictEntry
		var createdAt string
		if err := rows.Scan(&e.ReportID, &e.Source, &e.Verdict, &e.Rule, &createdAt); err != nil {
			return nil, fmt.Errorf("scan verdict row: %w", err)
		}
		t, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at %q: %w", createdAt, err)
		}
		e.CreatedAt = t
		out = append(out, e)
	}
	return out, rows.Err()
}

// #endregion verdict-history
