package llm

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type suggestion struct {
	Project string  `json:"Project"`
	Hours   float64 `json:"Hours"`
}

func TestExtractJSON_BareArray(t *testing.T) {
	raw := `[{"Project": "A", "Hours": 2}, {"Project": "B", "Hours": 0.5}]`

	got, err := ExtractJSON[[]suggestion](raw, nil)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].Project)
	assert.Equal(t, 0.5, got[1].Hours)
}

func TestExtractJSON_ArrayInsideCodeFence(t *testing.T) {
	raw := "Here you go:\n```json\n[{\"Project\": \"A\", \"Hours\": 1}]\n```\nLet me know!"

	got, err := ExtractJSON[[]suggestion](raw, nil)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "A", got[0].Project)
}

func TestExtractJSON_ObjectRoot(t *testing.T) {
	raw := `prefix {"Project": "A", "Hours": 2} suffix`

	got, err := ExtractJSON[suggestion](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "A", got.Project)
}

func TestExtractJSON_StripsComments(t *testing.T) {
	raw := `[
		{"Project": "A", "Hours": 2} // two hours of dev
	]`

	got, err := ExtractJSON[[]suggestion](raw, nil)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 2.0, got[0].Hours)
}

func TestExtractJSON_NormalizesLeadingDecimal(t *testing.T) {
	raw := `[{"Project": "A", "Hours": .75}]`

	got, err := ExtractJSON[[]suggestion](raw, nil)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 0.75, got[0].Hours)
}

func TestExtractJSON_BracesInsideStrings(t *testing.T) {
	raw := `[{"Project": "A {nested}", "Hours": 1}]`

	got, err := ExtractJSON[[]suggestion](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "A {nested}", got[0].Project)
}

func TestExtractJSON_NoJSONValue(t *testing.T) {
	_, err := ExtractJSON[[]suggestion]("sorry, I cannot help with that", nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_MalformedJSON(t *testing.T) {
	_, err := ExtractJSON[[]suggestion](`[{"Project": }]`, nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_ValidatorRejects(t *testing.T) {
	raw := `[{"Project": "", "Hours": 2}]`
	validator := func(s []suggestion) error {
		for i, e := range s {
			if e.Project == "" {
				return fmt.Errorf("entry %d: empty project", i)
			}
		}
		return nil
	}

	_, err := ExtractJSON[[]suggestion](raw, validator)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}
