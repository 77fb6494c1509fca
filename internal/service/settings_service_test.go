package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwhite/chronoassist/internal/domain"
)

func TestSettingsService_DefaultsWhenUnset(t *testing.T) {
	env := newTestEnv(t)

	s, err := env.settings.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultHistoricalDataDays, s.HistoricalDataDays)
	assert.Nil(t, s.PromptOverride)
}

func TestSettingsService_PartialSaveMergesOverCurrent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.settings.Save(ctx, "u1", domain.SettingsPatch{
		HistoricalDataDays: domain.IntPtr(60),
	}))
	require.NoError(t, env.settings.Save(ctx, "u1", domain.SettingsPatch{
		PromptOverride:    domain.StrPtr("custom prompt"),
		SetPromptOverride: true,
	}))

	s, err := env.settings.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 60, s.HistoricalDataDays, "earlier field survives later partial save")
	require.NotNil(t, s.PromptOverride)
	assert.Equal(t, "custom prompt", *s.PromptOverride)
}

func TestSettingsService_ClearingOverrideRestoresDefaultPrompt(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.settings.Save(ctx, "u1", domain.SettingsPatch{
		PromptOverride:    domain.StrPtr("custom"),
		SetPromptOverride: true,
	}))
	require.NoError(t, env.settings.Save(ctx, "u1", domain.SettingsPatch{
		PromptOverride:    nil,
		SetPromptOverride: true,
	}))

	s, err := env.settings.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, s.PromptOverride)
}

func TestSettingsService_EmptyOverrideIsNotDefault(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.settings.Save(ctx, "u1", domain.SettingsPatch{
		PromptOverride:    domain.StrPtr(""),
		SetPromptOverride: true,
	}))

	s, err := env.settings.Get(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, s.PromptOverride, "explicitly blank override is stored, not treated as unset")
	assert.Equal(t, "", *s.PromptOverride)
}
