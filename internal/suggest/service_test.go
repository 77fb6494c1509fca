package suggest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwhite/chronoassist/internal/domain"
	"github.com/mwhite/chronoassist/internal/llm"
	"github.com/mwhite/chronoassist/internal/proposal"
	"github.com/mwhite/chronoassist/internal/testutil"
)

type fakeClient struct {
	response  string
	err       error
	lastReq   llm.GenerateRequest
	available bool
}

func (f *fakeClient) Generate(_ context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &llm.GenerateResponse{Text: f.response, Model: "fake"}, nil
}

func (f *fakeClient) Available(context.Context) bool { return f.available }

func fixedToday() time.Time {
	return time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
}

func TestSuggest_ParsesBareArray(t *testing.T) {
	client := &fakeClient{response: `[
		{"Date": "2026-03-10", "Project": "Apollo", "Activity": "Dev", "WorkItem": "API", "Hours": 2, "Comment": "endpoint work"},
		{"Date": "2026-03-09", "Project": "Apollo", "Activity": "Dev", "WorkItem": "API", "Hours": 1.5, "Comment": "review"}
	]`}
	svc := NewService(client)

	entries, err := svc.Suggest(context.Background(), Input{
		Notes: "worked on the endpoint\nreviewed PRs yesterday",
		Today: fixedToday(),
	})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Apollo", entries[0].Project)
	assert.Equal(t, proposal.FlexFloat(1.5), entries[1].Hours)
}

func TestSuggest_ParsesFencedArray(t *testing.T) {
	client := &fakeClient{response: "```json\n[{\"Date\": \"2026-03-10\", \"Project\": \"P\", \"Activity\": \"A\", \"WorkItem\": \"W\", \"Hours\": 1, \"Comment\": \"c\"}]\n```"}
	svc := NewService(client)

	entries, err := svc.Suggest(context.Background(), Input{Notes: "notes", Today: fixedToday()})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "P", entries[0].Project)
}

func TestSuggest_GenerateErrorPropagates(t *testing.T) {
	client := &fakeClient{err: llm.ErrTimeout}
	svc := NewService(client)

	_, err := svc.Suggest(context.Background(), Input{Notes: "notes", Today: fixedToday()})
	require.Error(t, err)
	assert.True(t, errors.Is(err, llm.ErrTimeout))
}

func TestSuggest_InvalidOutputError(t *testing.T) {
	client := &fakeClient{response: "I could not find any time entries in your notes."}
	svc := NewService(client)

	_, err := svc.Suggest(context.Background(), Input{Notes: "notes", Today: fixedToday()})
	require.Error(t, err)
	assert.True(t, errors.Is(err, llm.ErrInvalidOutput))
}

func TestBuildPrompt_DefaultTemplate(t *testing.T) {
	hist := []domain.TimeEntry{
		testutil.NewTestEntry("Apollo", "API", testutil.WithDate("2026-03-02"), testutil.WithComment("sprint work"), testutil.WithHours(6)),
	}
	prompt := BuildPrompt(Input{
		Notes:      "fixed the login bug",
		Historical: hist,
		Today:      fixedToday(),
	})

	assert.Contains(t, prompt, "today's date: 2026-03-10")
	assert.Contains(t, prompt, "fixed the login bug")
	assert.Contains(t, prompt, "Date: 2026-03-02, Project: Apollo")
	assert.Contains(t, prompt, "Comment: sprint work")
	// Hours never appear in the historical context.
	assert.NotContains(t, prompt, "Hours: 6")
	// No glossary was given, so the shorthand section is absent.
	assert.NotContains(t, prompt, "shorthand/abbreviations")
}

func TestBuildPrompt_IncludesShorthandWhenPresent(t *testing.T) {
	prompt := BuildPrompt(Input{
		Notes:     "mtg with team",
		Shorthand: "mtg = meeting",
		Today:     fixedToday(),
	})

	assert.Contains(t, prompt, "shorthand/abbreviations")
	assert.Contains(t, prompt, "mtg = meeting")
}

func TestBuildPrompt_OverrideReplacesTemplate(t *testing.T) {
	override := "Custom prompt for {{today}}: {{notes}}"
	prompt := BuildPrompt(Input{
		Notes:          "did things",
		PromptOverride: &override,
		Today:          fixedToday(),
	})

	assert.Equal(t, "Custom prompt for 2026-03-10: did things", prompt)
}

func TestBuildPrompt_EmptyOverrideUsedVerbatim(t *testing.T) {
	empty := ""
	prompt := BuildPrompt(Input{
		Notes:          "did things",
		PromptOverride: &empty,
		Today:          fixedToday(),
	})

	assert.Equal(t, "", prompt)
}

func TestFormatHistorical_Empty(t *testing.T) {
	assert.Equal(t, "(no historical entries available)", FormatHistorical(nil))
}
