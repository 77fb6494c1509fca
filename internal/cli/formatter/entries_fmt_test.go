package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mwhite/chronoassist/internal/domain"
	"github.com/mwhite/chronoassist/internal/service"
)

func init() {
	DisableColor()
}

func TestFormatEntriesTable_Empty(t *testing.T) {
	out := FormatEntriesTable(nil)
	assert.Contains(t, out, "No entries")
	assert.True(t, strings.HasSuffix(out, "\n"), "every branch ends the block with a newline")
}

func TestFormatEntriesTable_RowsAndErrors(t *testing.T) {
	out := FormatEntriesTable([]domain.TimeEntry{
		{ID: "p1", Date: "2026-03-09", Project: "Apollo", Activity: "Dev", WorkItem: "API", Hours: 2.5, Comment: "endpoint"},
		{ID: "p2", Date: "2026-03-09", Project: "Apollo", Activity: "QA", WorkItem: "Suite", Hours: 1, SubmissionError: "work item closed"},
	})

	assert.Contains(t, out, "2026-03-09")
	assert.Contains(t, out, "2.5")
	assert.Contains(t, out, "Submission errors:")
	assert.Contains(t, out, "work item closed")
	assert.Contains(t, out, "2!")
}

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "2", formatHours(2.0))
	assert.Equal(t, "2.5", formatHours(2.5))
	assert.Equal(t, "0.75", formatHours(0.75))
	assert.Equal(t, "0", formatHours(0))
}

func TestFormatSuggestOutcome_SurfacesCounts(t *testing.T) {
	out := FormatSuggestOutcome(service.SuggestOutcome{
		Result:   service.Result{Success: true, Message: "3 entries suggested."},
		RawCount: 3,
		Entries: []domain.TimeEntry{
			{ID: "p1", Date: "2026-03-09", Project: "A", Activity: "Dev", WorkItem: "W", Hours: 1},
			{ID: "p2", Date: "2026-03-09", Project: "A", Activity: "Dev", WorkItem: "W", Hours: 1},
		},
	})

	assert.Contains(t, out, "OK")
	assert.Contains(t, out, "model produced 3 entries; proposal set now holds 2")
}

func TestFormatSubmitOutcome_Partial(t *testing.T) {
	out := FormatSubmitOutcome(service.SubmitOutcome{
		Result:         service.Result{Success: false, Message: "1 of 2 entries failed"},
		SubmittedCount: 1,
		FailedCount:    1,
		Remaining: []domain.TimeEntry{
			{ID: "p2", Date: "2026-03-09", Project: "A", Activity: "QA", WorkItem: "W", Hours: 1, SubmissionError: "closed"},
		},
	})

	assert.Contains(t, out, "FAILED")
	assert.Contains(t, out, "Submitted: 1  Failed: 1  Remaining: 1")
	assert.Contains(t, out, "closed")
}

func TestFormatLastRefreshed(t *testing.T) {
	assert.Contains(t, FormatLastRefreshed(nil), "never")

	ts := time.Date(2026, 3, 9, 10, 30, 0, 0, time.UTC)
	assert.Contains(t, FormatLastRefreshed(&ts), "Last refreshed:")
}
