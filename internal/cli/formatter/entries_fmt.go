package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mwhite/chronoassist/internal/domain"
	"github.com/mwhite/chronoassist/internal/service"
)

// FormatEntriesTable renders time entries as a numbered table. Proposed
// entries with a submission error get the error appended as a red line
// beneath the table.
func FormatEntriesTable(entries []domain.TimeEntry) string {
	if len(entries) == 0 {
		return Dim("No entries.") + "\n"
	}

	headers := []string{"#", "DATE", "PROJECT", "ACTIVITY", "WORK ITEM", "HOURS", "COMMENT"}
	rows := make([][]string, 0, len(entries))
	var failures []string
	for i, e := range entries {
		num := strconv.Itoa(i + 1)
		if e.SubmissionError != "" {
			num = StyleRed.Render(num + "!")
			failures = append(failures, fmt.Sprintf("  %s %s", StyleRed.Render(strconv.Itoa(i+1)+":"), e.SubmissionError))
		}
		rows = append(rows, []string{
			num,
			e.Date,
			e.Project,
			e.Activity,
			e.WorkItem,
			formatHours(e.Hours),
			e.Comment,
		})
	}

	out := RenderTable(headers, rows)
	if len(failures) > 0 {
		out += StyleRed.Render("Submission errors:") + "\n" + strings.Join(failures, "\n") + "\n"
	}
	return out
}

// FormatSuggestOutcome summarizes a suggestion run, surfacing how many raw
// model entries produced how many proposals.
func FormatSuggestOutcome(out service.SuggestOutcome) string {
	var b strings.Builder
	b.WriteString(OutcomeIndicator(out.Success) + " " + out.Message + "\n")
	if !out.Success {
		return b.String()
	}
	if out.RawCount != len(out.Entries) {
		b.WriteString(Dim(fmt.Sprintf("(model produced %d entries; proposal set now holds %d)\n", out.RawCount, len(out.Entries))))
	}
	b.WriteString("\n")
	b.WriteString(FormatEntriesTable(out.Entries))
	return b.String()
}

// FormatSubmitOutcome summarizes a submission attempt.
func FormatSubmitOutcome(out service.SubmitOutcome) string {
	var b strings.Builder
	b.WriteString(OutcomeIndicator(out.Success) + " " + out.Message + "\n")
	b.WriteString(fmt.Sprintf("Submitted: %d  Failed: %d  Remaining: %d\n",
		out.SubmittedCount, out.FailedCount, len(out.Remaining)))
	if len(out.Remaining) > 0 {
		b.WriteString("\n")
		b.WriteString(FormatEntriesTable(out.Remaining))
	}
	return b.String()
}

// FormatRefreshOutcome summarizes a historical-data refresh.
func FormatRefreshOutcome(out service.RefreshOutcome) string {
	var b strings.Builder
	b.WriteString(OutcomeIndicator(out.Success) + " " + out.Message + "\n")
	if out.Success {
		b.WriteString(Dim(fmt.Sprintf("%d new entries imported, %d total.\n", out.Imported, len(out.Data))))
	}
	return b.String()
}

// FormatLastRefreshed renders the last-refresh timestamp, or a hint when the
// history has never been fetched.
func FormatLastRefreshed(ts *time.Time) string {
	if ts == nil {
		return Dim("Historical data has never been refreshed.")
	}
	return Dim("Last refreshed: " + ts.Local().Format("2006-01-02 15:04"))
}

// formatHours trims trailing zeros so 2.50 prints as 2.5 and 2.00 as 2.
func formatHours(h float64) string {
	s := strconv.FormatFloat(h, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
