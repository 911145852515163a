package sim

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// EventTable is the long-format counting-process dataset produced by a run:
// one IntervalRecord per borrower per day until absorption or censoring,
// grouped by borrower and ordered by interval start within each borrower.
type EventTable struct {
	// Names is the covariate column order shared by every record's snapshot.
	Names   []string
	Records []IntervalRecord
}

// Header returns the CSV column names:
// id, start, stop, event, state_from, state_to, then one column per covariate.
func (t *EventTable) Header() []string {
	header := []string{"id", "start", "stop", "event", "state_from", "state_to"}
	return append(header, t.Names...)
}

// WriteCSV writes the table in the long format expected by time-varying
// survival regression.
func (t *EventTable) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	row := make([]string, 0, 6+len(t.Names))
	for _, r := range t.Records {
		row = row[:0]
		row = append(row,
			strconv.Itoa(r.Borrower),
			formatFloat(r.Start),
			formatFloat(r.Stop),
			strconv.Itoa(r.Event),
			strconv.Itoa(int(r.StateFrom)),
			strconv.Itoa(int(r.StateTo)),
		)
		for _, v := range r.Covariates {
			row = append(row, formatFloat(v))
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write record for borrower %d: %w", r.Borrower, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the table to the given path, creating or truncating it.
func (t *EventTable) WriteCSVFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := t.WriteCSV(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// BorrowerRecords returns the contiguous record slice for one borrower.
// Records for a borrower are emitted consecutively, so this is a single scan.
func (t *EventTable) BorrowerRecords(id int) []IntervalRecord {
	start := -1
	for i, r := range t.Records {
		if r.Borrower == id && start < 0 {
			start = i
		}
		if r.Borrower != id && start >= 0 {
			return t.Records[start:i]
		}
	}
	if start < 0 {
		return nil
	}
	return t.Records[start:]
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
