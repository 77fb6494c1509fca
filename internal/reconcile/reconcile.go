// Package reconcile partitions the proposed-entry set after a submission
// attempt with mixed per-entry results. It is pure: callers persist the
// outcome (successes become historical entries, failures stay proposed).
package reconcile

import "github.com/mwhite/chronoassist/internal/domain"

// EntryFailure is a per-entry failure reported by the submission script.
type EntryFailure struct {
	ID    string
	Error string
}

// SubmissionReport is the parsed outcome of one submission script run.
type SubmissionReport struct {
	OverallSuccess bool
	Message        string
	SubmittedIDs   []string
	Failures       []EntryFailure
}

// Outcome partitions the prior proposal set. Every prior entry lands in
// exactly one of the two slices.
type Outcome struct {
	// ToHistory holds entries the script confirmed as submitted, errors
	// cleared. The caller imports these via the historical store.
	ToHistory []domain.TimeEntry

	// StillProposed holds entries that remain pending: failed entries carry
	// the script's error message, entries the batch never covered are kept
	// unchanged with errors cleared. The caller must persist these WITHOUT
	// clearing errors, unlike the editor-save path.
	StillProposed []domain.TimeEntry
}

// Partition walks the prior proposal set against the script report:
//
//   - id reported failed: stays proposed, annotated with that failure's
//     error (overwriting any previous annotation)
//   - id reported submitted: moves to history with the error cleared
//   - id in neither list (the proposed set changed after the batch was
//     captured): stays proposed unchanged, error cleared — it was not part
//     of this submission attempt
//
// A failed entry therefore remains visible and resubmittable, and a
// partially successful batch never loses track of what succeeded.
func Partition(prior []domain.TimeEntry, report SubmissionReport) Outcome {
	failureByID := make(map[string]string, len(report.Failures))
	for _, f := range report.Failures {
		failureByID[f.ID] = f.Error
	}
	submitted := make(map[string]struct{}, len(report.SubmittedIDs))
	for _, id := range report.SubmittedIDs {
		submitted[id] = struct{}{}
	}

	var out Outcome
	for _, e := range prior {
		if msg, failed := failureByID[e.ID]; failed {
			e.SubmissionError = msg
			out.StillProposed = append(out.StillProposed, e)
			continue
		}
		if _, ok := submitted[e.ID]; ok {
			out.ToHistory = append(out.ToHistory, e.WithoutError())
			continue
		}
		out.StillProposed = append(out.StillProposed, e.WithoutError())
	}
	return out
}
