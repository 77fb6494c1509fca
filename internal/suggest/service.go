package suggest

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mwhite/chronoassist/internal/domain"
	"github.com/mwhite/chronoassist/internal/llm"
	"github.com/mwhite/chronoassist/internal/proposal"
)

// Input bundles everything the suggestion prompt needs.
type Input struct {
	Notes          string
	Shorthand      string
	Historical     []domain.TimeEntry
	PromptOverride *string // nil means use the built-in template
	Today          time.Time
}

// Service turns free-form notes into raw structured entries via the LLM.
type Service interface {
	Suggest(ctx context.Context, in Input) ([]proposal.RawEntry, error)
}

type service struct {
	client llm.Client
}

func NewService(client llm.Client) Service {
	return &service{client: client}
}

func (s *service) Suggest(ctx context.Context, in Input) ([]proposal.RawEntry, error) {
	prompt := BuildPrompt(in)

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		SystemPrompt: systemPrompt,
		UserPrompt:   prompt,
	})
	if err != nil {
		return nil, fmt.Errorf("suggestion call: %w", err)
	}

	entries, err := llm.ExtractJSON[[]proposal.RawEntry](resp.Text, nil)
	if err != nil {
		return nil, fmt.Errorf("suggestion output: %w", err)
	}
	return entries, nil
}

// BuildPrompt renders the suggestion prompt. A non-nil override replaces the
// built-in template verbatim, including an empty override, and is rendered
// with the same placeholder substitution.
func BuildPrompt(in Input) string {
	tmpl := defaultTemplate
	if in.PromptOverride != nil {
		tmpl = *in.PromptOverride
	}

	today := in.Today
	if today.IsZero() {
		today = time.Now()
	}

	shorthand := ""
	if strings.TrimSpace(in.Shorthand) != "" {
		shorthand = strings.ReplaceAll(shorthandSection, "{{glossary}}", in.Shorthand)
	}

	r := strings.NewReplacer(
		"{{today}}", today.Format(domain.DateLayout),
		"{{notes}}", in.Notes,
		"{{shorthand}}", shorthand,
		"{{historical}}", FormatHistorical(in.Historical),
	)
	return r.Replace(tmpl)
}

// FormatHistorical renders historical entries one per line, hours omitted.
func FormatHistorical(entries []domain.TimeEntry) string {
	if len(entries) == 0 {
		return "(no historical entries available)"
	}
	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "Date: %s, Project: %s, Activity: %s, WorkItem: %s, Comment: %s",
			e.Date, e.Project, e.Activity, e.WorkItem, e.Comment)
	}
	return b.String()
}
