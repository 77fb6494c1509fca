package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// DateLayout is the ISO date format used for all entry dates.
const DateLayout = "2006-01-02"

// TimeEntry is a single time-tracking record. The same shape is used for
// proposed entries (pending user review) and historical entries (already
// submitted). ID is unique within whichever collection the entry lives in;
// moving an entry between collections may change its ID.
type TimeEntry struct {
	ID       string
	Date     string // ISO yyyy-mm-dd
	Project  string
	Activity string
	WorkItem string
	Hours    float64
	Comment  string

	// SubmissionError carries the per-entry failure message from the most
	// recent submission attempt. Empty means no error.
	SubmissionError string
}

// Fingerprint returns the content hash used to deduplicate historical
// entries. Hours are excluded: scraped imports carry Hours=0, so hashing
// Hours would make a re-import of an hour-corrected entry a duplicate row.
func (e TimeEntry) Fingerprint() string {
	s := fmt.Sprintf("%s-%s-%s-%s-%s", e.Date, e.Project, e.Activity, e.WorkItem, e.Comment)
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// WithoutError returns a copy of the entry with SubmissionError cleared.
func (e TimeEntry) WithoutError() TimeEntry {
	e.SubmissionError = ""
	return e
}

// ClearSubmissionErrors returns a copy of entries with every
// SubmissionError cleared. Used on the editor-save path, where a fresh
// save invalidates stale per-entry errors.
func ClearSubmissionErrors(entries []TimeEntry) []TimeEntry {
	out := make([]TimeEntry, len(entries))
	for i, e := range entries {
		out[i] = e.WithoutError()
	}
	return out
}
