package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Default engine settings applied to new projects
	DefaultFilling           FillingPolicy `json:"default_filling"`
	DefaultVerticalStability bool          `json:"default_vertical_stability"`
	DefaultMinFillRatio      float64       `json:"default_min_fill_ratio"`
	DefaultMaxBlocks         int           `json:"default_max_blocks"`

	// External reference solver
	SolverPath      string `json:"solver_path"`
	SolverTimeLimit int    `json:"solver_time_limit"` // seconds

	// Application preferences
	RecentProjects []string `json:"recent_projects"`
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults
// matching the values from DefaultSettings().
func DefaultAppConfig() AppConfig {
	defaults := DefaultSettings()
	return AppConfig{
		DefaultFilling:           defaults.Filling,
		DefaultVerticalStability: defaults.VerticalStability,
		DefaultMinFillRatio:      defaults.MinFillRatio,
		DefaultMaxBlocks:         defaults.MaxBlocks,
		SolverTimeLimit:          5,
		RecentProjects:           []string{},
	}
}

// ApplyToSettings copies the default values from AppConfig into a
// PackSettings struct. Used when creating a new project so it inherits
// the user's saved defaults.
func (c AppConfig) ApplyToSettings(s *PackSettings) {
	s.Filling = c.DefaultFilling
	s.VerticalStability = c.DefaultVerticalStability
	s.MinFillRatio = c.DefaultMinFillRatio
	s.MaxBlocks = c.DefaultMaxBlocks
}

// AddRecentProject prepends a path to the recent projects list, removing
// duplicates and keeping at most max entries.
func (c *AppConfig) AddRecentProject(path string, max int) {
	recent := []string{path}
	for _, p := range c.RecentProjects {
		if p != path && len(recent) < max {
			recent = append(recent, p)
		}
	}
	c.RecentProjects = recent
}
