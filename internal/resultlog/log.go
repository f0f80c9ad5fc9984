package resultlog

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	footing "Bearing/internal/calc/footing"
)

// ErrEmpty is returned by WriteCSV when there is nothing to export; callers
// must suppress the export entirely instead of emitting a bare header.
var ErrEmpty = errors.New("result log is empty")

const (
	// CSVHeader is the fixed export header. Fields carry no escaping; every
	// value is either a formatted number or comes from a fixed label set.
	CSVHeader = "Timestamp,P (kN),M (kN·m),B (m),D (m),e (m),qmax (kN/m²),Case"

	// ExportFilename is the download name for the CSV document.
	ExportFilename = "footing_pressure_results.csv"

	timeLayout = "2006-01-02 15:04:05"
)

// Entry is one saved calculation: the input snapshot together with the
// pressure it produced. Immutable once appended.
type Entry struct {
	Timestamp time.Time     `json:"timestamp"`
	Input     footing.Input `json:"input"`
	QmaxKNM2  float64       `json:"qmax_kn_m2"`
	Case      footing.Case  `json:"case"`
}

// Log is an append-only, unbounded sequence of entries for one session.
// Append order is display and export order. Safe for concurrent use since
// handlers for the same user may overlap.
type Log struct {
	mu      sync.RWMutex
	entries []Entry
}

func New() *Log {
	return &Log{}
}

func (l *Log) Append(e Entry) {
	l.mu.Lock()
	l.entries = append(l.entries, e)
	l.mu.Unlock()
}

// Entries returns a copy so a caller cannot mutate logged results.
func (l *Log) Entries() []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

func (l *Log) Clear() {
	l.mu.Lock()
	l.entries = nil
	l.mu.Unlock()
}

// WriteCSV serializes the log as a comma-separated table: the fixed header
// followed by one row per entry in append order, numeric fields rounded to
// three significant figures.
func (l *Log) WriteCSV(w io.Writer) error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if len(l.entries) == 0 {
		return ErrEmpty
	}
	if _, err := fmt.Fprintln(w, CSVHeader); err != nil {
		return err
	}
	for _, e := range l.entries {
		_, err := fmt.Fprintf(w, "%s,%s,%s,%s,%s,%s,%s,%s\n",
			e.Timestamp.Format(timeLayout),
			footing.Format3SF(e.Input.PKN),
			footing.Format3SF(e.Input.MKN),
			footing.Format3SF(e.Input.BM),
			footing.Format3SF(e.Input.DM),
			footing.Format3SF(e.Input.EM),
			footing.Format3SF(e.QmaxKNM2),
			e.Case,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
