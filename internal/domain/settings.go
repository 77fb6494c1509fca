package domain

// DefaultHistoricalDataDays is the scrape window used when a user has not
// configured one.
const DefaultHistoricalDataDays = 30

// UserSettings holds per-user configuration for the suggestion workflow.
type UserSettings struct {
	// HistoricalDataDays is the lookback window (in days) passed to the
	// scraping script when refreshing historical entries.
	HistoricalDataDays int

	// PromptOverride replaces the built-in suggestion prompt template.
	// nil means "use the built-in template"; an empty string is a valid,
	// explicitly blank override and must be preserved as such.
	PromptOverride *string
}

// DefaultSettings returns the settings applied when a user has no stored
// record.
func DefaultSettings() UserSettings {
	return UserSettings{
		HistoricalDataDays: DefaultHistoricalDataDays,
		PromptOverride:     nil,
	}
}

// EffectiveSettings resolves stored settings against defaults, field-wise.
// A nil stored record, or a non-positive lookback window, falls back to the
// default for that field. PromptOverride is taken verbatim, including nil
// and empty string, which are distinct values.
func EffectiveSettings(stored *UserSettings) UserSettings {
	if stored == nil {
		return DefaultSettings()
	}
	out := *stored
	if out.HistoricalDataDays <= 0 {
		out.HistoricalDataDays = DefaultHistoricalDataDays
	}
	return out
}

// SettingsPatch is a partial settings update. Nil fields are left unchanged.
// SetPromptOverride distinguishes "change PromptOverride (possibly to nil)"
// from "leave PromptOverride alone".
type SettingsPatch struct {
	HistoricalDataDays *int
	PromptOverride     *string
	SetPromptOverride  bool
}

// Apply merges the patch over current effective settings and returns the
// full resulting record.
func (p SettingsPatch) Apply(current UserSettings) UserSettings {
	out := current
	out.HistoricalDataDays = IntFromPtrWithDefault(current.HistoricalDataDays, p.HistoricalDataDays)
	if out.HistoricalDataDays <= 0 {
		out.HistoricalDataDays = DefaultHistoricalDataDays
	}
	if p.SetPromptOverride {
		out.PromptOverride = p.PromptOverride
	}
	return out
}
