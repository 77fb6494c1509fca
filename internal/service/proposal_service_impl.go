package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mwhite/chronoassist/internal/domain"
	"github.com/mwhite/chronoassist/internal/proposal"
	"github.com/mwhite/chronoassist/internal/repository"
	"github.com/mwhite/chronoassist/internal/suggest"
)

type proposalService struct {
	notes      repository.NotesRepo
	settings   SettingsService
	historical repository.HistoricalRepo
	proposed   repository.ProposedRepo
	suggester  suggest.Service
	newID      proposal.IDGenerator
	observer   ActionObserver
	now        func() time.Time
}

func NewProposalService(
	notes repository.NotesRepo,
	settings SettingsService,
	historical repository.HistoricalRepo,
	proposed repository.ProposedRepo,
	suggester suggest.Service,
	observers ...ActionObserver,
) ProposalService {
	return &proposalService{
		notes:      notes,
		settings:   settings,
		historical: historical,
		proposed:   proposed,
		suggester:  suggester,
		newID:      NewProposedEntryID,
		observer:   actionObserverOrNoop(observers),
		now:        time.Now,
	}
}

func (s *proposalService) Suggest(ctx context.Context, userID string, mode proposal.Mode) (outcome SuggestOutcome, err error) {
	event := ActionEvent{
		Action:    ActionSuggestEntries,
		UserID:    userID,
		StartedAt: s.now().UTC(),
		Mode:      string(mode),
	}
	defer func() {
		event.Duration = time.Since(event.StartedAt)
		event.Success = err == nil && outcome.Success
		event.Err = err
		s.observer.ObserveAction(ctx, event)
	}()

	notes, err := s.notes.GetMainNotes(ctx, userID)
	if err != nil {
		return SuggestOutcome{}, fmt.Errorf("loading notes: %w", err)
	}
	if strings.TrimSpace(notes) == "" {
		return SuggestOutcome{}, ErrEmptyNotes
	}

	shorthand, err := s.notes.GetShorthand(ctx, userID)
	if err != nil {
		return SuggestOutcome{}, fmt.Errorf("loading shorthand: %w", err)
	}
	settings, err := s.settings.Get(ctx, userID)
	if err != nil {
		return SuggestOutcome{}, err
	}
	historical, err := s.historical.List(ctx, userID, nil)
	if err != nil {
		return SuggestOutcome{}, fmt.Errorf("loading historical context: %w", err)
	}

	raw, aiErr := s.suggester.Suggest(ctx, suggest.Input{
		Notes:          notes,
		Shorthand:      shorthand,
		Historical:     historical,
		PromptOverride: settings.PromptOverride,
		Today:          s.now(),
	})
	if aiErr != nil {
		// A failed model call is an outcome the user acts on, not a fault.
		event.Detail = aiErr.Error()
		outcome = SuggestOutcome{Result: Result{
			Success: false,
			Message: fmt.Sprintf("Suggestion failed: %v. Your proposed entries are unchanged.", aiErr),
		}}
		return outcome, nil
	}
	event.RawCount = len(raw)

	incoming := proposal.Normalize(raw, s.newID)

	existing, err := s.proposed.List(ctx, userID)
	if err != nil {
		return SuggestOutcome{}, fmt.Errorf("loading proposed entries: %w", err)
	}
	merged := proposal.Merge(existing, incoming, mode, s.newID)
	if err := s.proposed.ReplaceAll(ctx, userID, merged); err != nil {
		return SuggestOutcome{}, fmt.Errorf("saving proposed entries: %w", err)
	}
	event.EntryCount = len(merged)

	outcome = SuggestOutcome{
		Result:   Result{Success: true, Message: fmt.Sprintf("%d entries suggested.", len(incoming))},
		RawCount: len(raw),
		Entries:  merged,
	}
	return outcome, nil
}

func (s *proposalService) Get(ctx context.Context, userID string) ([]domain.TimeEntry, error) {
	entries, err := s.proposed.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading proposed entries: %w", err)
	}
	return entries, nil
}

// Save persists the user's edited proposal set. Editing an entry invalidates
// its previous submission failure, so errors are cleared here; the
// post-submission path persists through the repository directly to keep them.
func (s *proposalService) Save(ctx context.Context, userID string, entries []domain.TimeEntry) error {
	cleared := domain.ClearSubmissionErrors(entries)
	if err := s.proposed.ReplaceAll(ctx, userID, cleared); err != nil {
		return fmt.Errorf("saving proposed entries: %w", err)
	}
	return nil
}

func (s *proposalService) Clear(ctx context.Context, userID string) error {
	if err := s.proposed.Clear(ctx, userID); err != nil {
		return fmt.Errorf("clearing proposed entries: %w", err)
	}
	return nil
}
