package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/openentropy/openentropy-go/internal/report"
	"github.com/openentropy/openentropy-go/internal/run"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to openentropy.db")
	last := flag.Int("last", 20, "show N most recent reports")
	source := flag.String("source", "", "filter to one source")
	reportID := flag.String("report", "", "show single report detail")
	history := flag.Bool("history", false, "show verdict history for --source")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/openentropy.db [--last N] [--source name] [--report id] [--history] [--json]")
		os.Exit(2)
	}

	store, err := report.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case *reportID != "":
		err = runDetailMode(store, *reportID, *jsonOut)
	case *history:
		err = runHistoryMode(store, *source, *last, *jsonOut)
	default:
		err = runListMode(store, *source, *last, *jsonOut)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region detail-mode

func runDetailMode(store *report.Store, reportID string, jsonOut bool) error {
	rep, err := store.GetReport(reportID)
	if err != nil {
		return err
	}
	if jsonOut {
		body, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(body))
		return nil
	}
	fmt.Println(run.RenderText(rep))
	return nil
}

// #endregion detail-mode

// #region list-mode

func runListMode(store *report.Store, source string, last int, jsonOut bool) error {
	var rows []report.Row
	var err error
	if source != "" {
		rows, err = store.ReportsBySource(source, last)
	} else {
		rows, err = store.ListReports(last)
	}
	if err != nil {
		return err
	}

	if jsonOut {
		body, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(body))
		return nil
	}

	fmt.Printf("%-36s  %-18s  %-7s  %-19s  %s\n", "REPORT", "SOURCE", "VERDICT", "CREATED", "RULE")
	for _, r := range rows {
		fmt.Printf("%-36s  %-18s  %-7s  %-19s  %s\n",
			r.ReportID, r.Source, r.Verdict, r.CreatedAt.Format("2006-01-02 15:04:05"), r.Rule)
	}
	return nil
}

// #endregion list-mode

// #region history-mode

func runHistoryMode(store *report.Store, source string, last int, jsonOut bool) error {
	if source == "" {
		return fmt.Errorf("--history requires --source")
	}
	entries, err := store.VerdictHistory(source, last)
	if err != nil {
		return err
	}

	if jsonOut {
		body, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(body))
		return nil
	}

	fmt.Printf("%-19s  %-7s  %s\n", "CREATED", "VERDICT", "RULE")
	for _, e := range entries {
		fmt.Printf("%-19s  %-7s  %s\n", e.CreatedAt.Format("2006-01-02 15:04:05"), e.Verdict, e.Rule)
	}
	return nil
}

// #endregion history-mode
