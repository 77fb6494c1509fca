package service

import (
	"context"
	"fmt"
	"time"

	"github.com/mwhite/chronoassist/internal/domain"
	"github.com/mwhite/chronoassist/internal/repository"
	"github.com/mwhite/chronoassist/internal/script"
)

type historyService struct {
	historical repository.HistoricalRepo
	settings   SettingsService
	scraper    *script.Scraper
	observer   ActionObserver
	now        func() time.Time
}

func NewHistoryService(
	historical repository.HistoricalRepo,
	settings SettingsService,
	scraper *script.Scraper,
	observers ...ActionObserver,
) HistoryService {
	return &historyService{
		historical: historical,
		settings:   settings,
		scraper:    scraper,
		observer:   actionObserverOrNoop(observers),
		now:        time.Now,
	}
}

func (s *historyService) List(ctx context.Context, userID string, windowMonths *int) ([]domain.TimeEntry, error) {
	entries, err := s.historical.List(ctx, userID, windowMonths)
	if err != nil {
		return nil, fmt.Errorf("loading historical entries: %w", err)
	}
	return entries, nil
}

// Refresh runs the scrape script and imports its output. Script failures
// never lose data: the outcome carries the previously stored entries and a
// failure message instead.
func (s *historyService) Refresh(ctx context.Context, userID string) (outcome RefreshOutcome, err error) {
	event := ActionEvent{
		Action:    ActionRefreshHistory,
		UserID:    userID,
		StartedAt: s.now().UTC(),
	}
	defer func() {
		event.Duration = time.Since(event.StartedAt)
		event.Success = err == nil && outcome.Success
		event.Err = err
		s.observer.ObserveAction(ctx, event)
	}()

	settings, err := s.settings.Get(ctx, userID)
	if err != nil {
		return RefreshOutcome{}, err
	}
	event.WindowDays = settings.HistoricalDataDays

	scraped, scrapeErr := s.scraper.Scrape(ctx, settings.HistoricalDataDays)
	if scrapeErr != nil {
		event.Detail = scrapeErr.Error()
		existing, listErr := s.historical.List(ctx, userID, nil)
		if listErr != nil {
			return RefreshOutcome{}, fmt.Errorf("loading historical entries after failed scrape: %w", listErr)
		}
		outcome = RefreshOutcome{
			Result: Result{Success: false, Message: fallbackMessage(scrapeErr, len(existing))},
			Data:   existing,
		}
		return outcome, nil
	}

	imported := 0
	if len(scraped) > 0 {
		imported, err = s.historical.AddAll(ctx, userID, scraped)
		if err != nil {
			return RefreshOutcome{}, fmt.Errorf("importing scraped entries: %w", err)
		}
	}
	event.EntryCount = len(scraped)
	event.ImportedCount = imported

	all, err := s.historical.List(ctx, userID, nil)
	if err != nil {
		return RefreshOutcome{}, fmt.Errorf("loading historical entries: %w", err)
	}

	msg := "Historical data fetched and updated successfully."
	if len(scraped) == 0 {
		msg = "Historical data script ran but returned no entries."
	}
	outcome = RefreshOutcome{
		Result:   Result{Success: true, Message: msg},
		Imported: imported,
		Data:     all,
	}
	return outcome, nil
}

func (s *historyService) LastRefreshedAt(ctx context.Context, userID string) (*time.Time, error) {
	ts, err := s.historical.LatestImportedAt(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading last refresh time: %w", err)
	}
	return ts, nil
}

func fallbackMessage(scrapeErr error, existingCount int) string {
	suffix := "No historical data available."
	if existingCount > 0 {
		suffix = "Showing previously loaded data."
	}
	return fmt.Sprintf("Historical data refresh failed: %v. %s", scrapeErr, suffix)
}
