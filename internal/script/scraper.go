package script

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/mwhite/chronoassist/internal/domain"
)

// scrapedEntry is one row of the scrape script's JSON output. Hours may be
// present but is ignored: historical context only needs the combination
// fields.
type scrapedEntry struct {
	Date     string `json:"Date"`
	Project  string `json:"Project"`
	Activity string `json:"Activity"`
	WorkItem string `json:"WorkItem"`
	Comment  string `json:"Comment"`
}

// Scraper runs the external timesheet scrape script and parses its output
// into historical entries ready for import.
type Scraper struct {
	runner     Runner
	command    string // interpreter, e.g. "python3"
	scriptPath string
	logger     *slog.Logger
	now        func() time.Time
}

func NewScraper(runner Runner, command, scriptPath string, logger *slog.Logger) *Scraper {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scraper{
		runner:     runner,
		command:    command,
		scriptPath: scriptPath,
		logger:     logger,
		now:        time.Now,
	}
}

// Scrape fetches the last `days` days of timesheet data. Empty stdout is a
// failure: a clean run with nothing to report still prints an empty JSON
// array. Callers fall back to previously stored data on any error.
func (s *Scraper) Scrape(ctx context.Context, days int) ([]domain.TimeEntry, error) {
	res, err := s.runner.Run(ctx, s.command, s.scriptPath, strconv.Itoa(days))
	if stderr := strings.TrimSpace(res.Stderr); stderr != "" {
		s.logger.Info("scrape script stderr", "stderr", stderr)
	}
	if err != nil {
		return nil, fmt.Errorf("scrape: %w", err)
	}

	raw := strings.TrimSpace(res.Stdout)
	if raw == "" {
		return nil, fmt.Errorf("scrape: %w", ErrEmptyOutput)
	}

	var scraped []scrapedEntry
	if err := json.Unmarshal([]byte(raw), &scraped); err != nil {
		return nil, fmt.Errorf("scrape: %w: %v", ErrBadOutput, err)
	}

	runStamp := s.now().UnixMilli()
	entries := make([]domain.TimeEntry, 0, len(scraped))
	for i, se := range scraped {
		entries = append(entries, domain.TimeEntry{
			ID:       fmt.Sprintf("scraped_%d_%d", runStamp, i),
			Date:     normalizeDate(se.Date, s.now()),
			Project:  se.Project,
			Activity: se.Activity,
			WorkItem: se.WorkItem,
			Hours:    0,
			Comment:  se.Comment,
		})
	}
	return entries, nil
}

// normalizeDate reduces whatever date shape the script emitted to the
// canonical yyyy-mm-dd form, falling back to today.
func normalizeDate(raw string, today time.Time) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return today.Format(domain.DateLayout)
	}
	for _, layout := range []string{domain.DateLayout, time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(domain.DateLayout)
		}
	}
	return today.Format(domain.DateLayout)
}
