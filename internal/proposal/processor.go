// Package proposal turns raw AI suggestion output into normalized proposed
// entries and merges suggestion batches into the user's current proposal set.
// Everything here is pure; persistence is the caller's job.
package proposal

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/mwhite/chronoassist/internal/domain"
)

// RawEntry is one suggestion record as the AI returns it, before any
// normalization. Hours is untyped in practice, so it is decoded leniently
// and coerced during normalization.
type RawEntry struct {
	Date     string    `json:"Date"`
	Project  string    `json:"Project"`
	Activity string    `json:"Activity"`
	WorkItem string    `json:"WorkItem"`
	Hours    FlexFloat `json:"Hours"`
	Comment  string    `json:"Comment"`
}

// FlexFloat decodes a JSON number, a quoted number, or garbage (which
// becomes 0) without failing the surrounding document. Models routinely quote
// the Hours value.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if len(s) > 0 && s[0] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			*f = 0
			return nil
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
		if err != nil {
			*f = 0
			return nil
		}
		*f = FlexFloat(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		*f = 0
		return nil
	}
	*f = FlexFloat(v)
	return nil
}

// IDGenerator produces a fresh unique entry id per call.
type IDGenerator func() string

// Mode selects how an incoming suggestion batch combines with the existing
// proposal set.
type Mode string

const (
	// ModeGenerate replaces the existing set with the incoming batch.
	ModeGenerate Mode = "generate"

	// ModeAdd appends the incoming batch after the existing set, with fresh
	// ids for every incoming entry so ids never collide.
	ModeAdd Mode = "add"
)

// Normalize converts raw AI output into proposed entries: each record gets a
// fresh id, Hours is coerced to a usable non-negative number (0 on anything
// invalid), and submission errors are cleared. Entries with missing
// Project/Activity/WorkItem are kept as-is — the AI is trusted, and the
// caller surfaces counts instead of silently dropping records.
func Normalize(raw []RawEntry, newID IDGenerator) []domain.TimeEntry {
	entries := make([]domain.TimeEntry, 0, len(raw))
	for _, r := range raw {
		entries = append(entries, domain.TimeEntry{
			ID:       newID(),
			Date:     r.Date,
			Project:  r.Project,
			Activity: r.Activity,
			WorkItem: r.WorkItem,
			Hours:    coerceHours(float64(r.Hours)),
			Comment:  r.Comment,
		})
	}
	return entries
}

// Merge combines incoming entries with the existing proposal set according
// to mode. In ModeAdd every incoming entry is re-issued a fresh id before
// being appended, guaranteeing no collision with existing ids. Neither input
// slice is mutated.
func Merge(existing, incoming []domain.TimeEntry, mode Mode, newID IDGenerator) []domain.TimeEntry {
	if mode == ModeGenerate {
		out := make([]domain.TimeEntry, len(incoming))
		copy(out, incoming)
		return out
	}

	out := make([]domain.TimeEntry, 0, len(existing)+len(incoming))
	out = append(out, existing...)
	for _, e := range incoming {
		e.ID = newID()
		out = append(out, e)
	}
	return out
}

// coerceHours maps NaN, infinite, and negative values to 0. Quarter-hour
// granularity is a prompt-side convention, not enforced here.
func coerceHours(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) || h < 0 {
		return 0
	}
	return h
}
