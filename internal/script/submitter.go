package script

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mwhite/chronoassist/internal/domain"
	"github.com/mwhite/chronoassist/internal/reconcile"
)

// submitPayload is one entry in the JSON array handed to the submit script.
// The client id lets the script report per-entry outcomes.
type submitPayload struct {
	ID       string  `json:"id"`
	Date     string  `json:"Date"`
	Project  string  `json:"Project"`
	Activity string  `json:"Activity"`
	WorkItem string  `json:"WorkItem"`
	Hours    float64 `json:"Hours"`
	Comment  string  `json:"Comment"`
}

// submitResponse is the JSON document the submit script prints on stdout.
type submitResponse struct {
	OverallSuccess          bool     `json:"overallSuccess"`
	Message                 string   `json:"message"`
	SubmittedEntryClientIDs []string `json:"submittedEntryClientIds"`
	FailedEntries           []struct {
		ClientID string `json:"client_id"`
		Error    string `json:"error"`
	} `json:"failedEntries"`
}

// Submitter runs the external submission script against a batch of entries.
type Submitter struct {
	runner     Runner
	command    string
	scriptPath string
	logger     *slog.Logger
}

func NewSubmitter(runner Runner, command, scriptPath string, logger *slog.Logger) *Submitter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Submitter{
		runner:     runner,
		command:    command,
		scriptPath: scriptPath,
		logger:     logger,
	}
}

// Submit sends the batch to the script and parses its per-entry report.
// Script-level failures (start, timeout, bad output) return an error; a
// script that ran and reported failures returns a normal report.
func (s *Submitter) Submit(ctx context.Context, entries []domain.TimeEntry) (reconcile.SubmissionReport, error) {
	payload := make([]submitPayload, 0, len(entries))
	for _, e := range entries {
		payload = append(payload, submitPayload{
			ID:       e.ID,
			Date:     e.Date,
			Project:  e.Project,
			Activity: e.Activity,
			WorkItem: e.WorkItem,
			Hours:    e.Hours,
			Comment:  e.Comment,
		})
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return reconcile.SubmissionReport{}, fmt.Errorf("submit: encode batch: %w", err)
	}

	res, err := s.runner.Run(ctx, s.command, s.scriptPath, string(body))
	if stderr := strings.TrimSpace(res.Stderr); stderr != "" {
		s.logger.Info("submit script stderr", "stderr", stderr)
	}
	if err != nil {
		return reconcile.SubmissionReport{}, fmt.Errorf("submit: %w", err)
	}

	raw := strings.TrimSpace(res.Stdout)
	if raw == "" {
		return reconcile.SubmissionReport{}, fmt.Errorf("submit: %w", ErrEmptyOutput)
	}

	var resp submitResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return reconcile.SubmissionReport{}, fmt.Errorf("submit: %w: %v", ErrBadOutput, err)
	}

	report := reconcile.SubmissionReport{
		OverallSuccess: resp.OverallSuccess,
		Message:        resp.Message,
		SubmittedIDs:   resp.SubmittedEntryClientIDs,
	}
	for _, f := range resp.FailedEntries {
		report.Failures = append(report.Failures, reconcile.EntryFailure{ID: f.ClientID, Error: f.Error})
	}
	return report, nil
}
