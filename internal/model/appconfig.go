package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Defaults applied to new estimates
	DefaultSlabSize    string  `json:"default_slab_size"`
	DefaultPlacement   string  `json:"default_placement"`
	DefaultGapMM       float64 `json:"default_gap_mm"`
	DefaultCutPolicy   string  `json:"default_cut_policy"`
	DefaultStepConfig  string  `json:"default_step_config"`
	DefaultOrientation int     `json:"default_orientation"`

	// Application preferences
	RecentJobs []string `json:"recent_jobs"`
	Theme      string   `json:"theme"` // "light", "dark", "system"
}

// DefaultAppConfig returns an AppConfig populated with the same defaults as
// DefaultEstimateSettings().
func DefaultAppConfig() AppConfig {
	defaults := DefaultEstimateSettings()
	return AppConfig{
		DefaultSlabSize:    defaults.SlabSize,
		DefaultPlacement:   string(defaults.Placement),
		DefaultGapMM:       defaults.GapMM,
		DefaultCutPolicy:   string(defaults.Policy),
		DefaultStepConfig:  string(FrontsOnTop),
		DefaultOrientation: int(defaults.Orientation),
		RecentJobs:         []string{},
		Theme:              "system",
	}
}

// ApplyToSettings copies the saved defaults into an EstimateSettings, used
// when starting a new estimate so it inherits the user's preferences.
func (c AppConfig) ApplyToSettings(s *EstimateSettings) {
	s.SlabSize = c.DefaultSlabSize
	s.Placement = SlabPlacement(c.DefaultPlacement)
	s.GapMM = c.DefaultGapMM
	s.Policy = CutPolicy(c.DefaultCutPolicy)
	s.Orientation = Orientation(c.DefaultOrientation)
}
