package service

import (
	"context"
	"fmt"
	"time"

	"github.com/mwhite/chronoassist/internal/reconcile"
	"github.com/mwhite/chronoassist/internal/repository"

	"github.com/mwhite/chronoassist/internal/domain"
)

// Submitter is the slice of the external submit script this service needs.
// script.Submitter satisfies it.
type Submitter interface {
	Submit(ctx context.Context, entries []domain.TimeEntry) (reconcile.SubmissionReport, error)
}

type submissionService struct {
	proposed   repository.ProposedRepo
	historical repository.HistoricalRepo
	submitter  Submitter
	observer   ActionObserver
	now        func() time.Time
}

func NewSubmissionService(
	proposed repository.ProposedRepo,
	historical repository.HistoricalRepo,
	submitter Submitter,
	observers ...ActionObserver,
) SubmissionService {
	return &submissionService{
		proposed:   proposed,
		historical: historical,
		submitter:  submitter,
		observer:   actionObserverOrNoop(observers),
		now:        time.Now,
	}
}

// Submit sends the current proposal set to the external script and
// reconciles its per-entry report: confirmed entries move to history, failed
// entries stay proposed with their error messages attached. A script-level
// failure (start, timeout, unparseable output) leaves the proposal set
// untouched.
func (s *submissionService) Submit(ctx context.Context, userID string) (outcome SubmitOutcome, err error) {
	event := ActionEvent{
		Action:    ActionSubmitEntries,
		UserID:    userID,
		StartedAt: s.now().UTC(),
	}
	defer func() {
		event.Duration = time.Since(event.StartedAt)
		event.Success = err == nil && outcome.Success
		event.Err = err
		s.observer.ObserveAction(ctx, event)
	}()

	prior, err := s.proposed.List(ctx, userID)
	if err != nil {
		return SubmitOutcome{}, fmt.Errorf("loading proposed entries: %w", err)
	}
	if len(prior) == 0 {
		return SubmitOutcome{}, ErrNoProposals
	}
	event.EntryCount = len(prior)

	report, scriptErr := s.submitter.Submit(ctx, prior)
	if scriptErr != nil {
		event.Detail = scriptErr.Error()
		outcome = SubmitOutcome{
			Result:    Result{Success: false, Message: fmt.Sprintf("Submission failed: %v. Your proposed entries are unchanged.", scriptErr)},
			Remaining: prior,
		}
		return outcome, nil
	}

	parted := reconcile.Partition(prior, report)
	event.SubmittedCount = len(parted.ToHistory)
	event.FailedCount = len(report.Failures)

	if len(parted.ToHistory) > 0 {
		if _, err = s.historical.AddAll(ctx, userID, parted.ToHistory); err != nil {
			return SubmitOutcome{}, fmt.Errorf("recording submitted entries: %w", err)
		}
	}
	// Straight through the repository: reconciliation owns the error
	// annotations and they must survive this write.
	if err = s.proposed.ReplaceAll(ctx, userID, parted.StillProposed); err != nil {
		return SubmitOutcome{}, fmt.Errorf("saving remaining proposed entries: %w", err)
	}

	failedCount := 0
	for _, e := range parted.StillProposed {
		if e.SubmissionError != "" {
			failedCount++
		}
	}

	outcome = SubmitOutcome{
		Result: Result{
			Success: report.OverallSuccess && failedCount == 0,
			Message: report.Message,
		},
		SubmittedCount: len(parted.ToHistory),
		FailedCount:    failedCount,
		Remaining:      parted.StillProposed,
	}
	return outcome, nil
}
