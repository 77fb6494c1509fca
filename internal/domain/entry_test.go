package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFingerprint_StableAcrossCalls(t *testing.T) {
	e := TimeEntry{
		Date:     "2024-07-15",
		Project:  "Project Alpha",
		Activity: "Development",
		WorkItem: "Feature X",
		Hours:    2,
		Comment:  "Worked on API integration",
	}
	assert.Equal(t, e.Fingerprint(), e.Fingerprint())
}

func TestFingerprint_IgnoresHoursAndIDAndError(t *testing.T) {
	a := TimeEntry{
		ID:       "p1",
		Date:     "2024-07-15",
		Project:  "Project Alpha",
		Activity: "Development",
		WorkItem: "Feature X",
		Hours:    2,
		Comment:  "c",
	}
	b := a
	b.ID = "p2"
	b.Hours = 4.25
	b.SubmissionError = "network"

	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
}

func TestFingerprint_DiffersOnContentFields(t *testing.T) {
	base := TimeEntry{
		Date:     "2024-07-15",
		Project:  "Project Alpha",
		Activity: "Development",
		WorkItem: "Feature X",
		Comment:  "c",
	}

	tests := []struct {
		name   string
		mutate func(*TimeEntry)
	}{
		{"date", func(e *TimeEntry) { e.Date = "2024-07-16" }},
		{"project", func(e *TimeEntry) { e.Project = "Project Beta" }},
		{"activity", func(e *TimeEntry) { e.Activity = "Testing" }},
		{"work item", func(e *TimeEntry) { e.WorkItem = "Feature Y" }},
		{"comment", func(e *TimeEntry) { e.Comment = "d" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			other := base
			tt.mutate(&other)
			assert.NotEqual(t, base.Fingerprint(), other.Fingerprint())
		})
	}
}

func TestClearSubmissionErrors(t *testing.T) {
	in := []TimeEntry{
		{ID: "a", SubmissionError: "network"},
		{ID: "b"},
	}
	out := ClearSubmissionErrors(in)

	assert.Empty(t, out[0].SubmissionError)
	assert.Empty(t, out[1].SubmissionError)
	// Input is not mutated.
	assert.Equal(t, "network", in[0].SubmissionError)
}
