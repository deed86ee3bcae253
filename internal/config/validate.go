package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Import.validate(); err != nil {
		return fmt.Errorf("import: %w", err)
	}

	return nil
}

func (i *ImportConfig) validate() error {
	if i.MatchThreshold < 0 || i.MatchThreshold > 1 {
		return fmt.Errorf("match_threshold must be within [0, 1] (got %v)", i.MatchThreshold)
	}
	if i.MatchConfidence < 0 || i.MatchConfidence > 1 {
		return fmt.Errorf("match_confidence must be within [0, 1] (got %v)", i.MatchConfidence)
	}
	if i.MatchConfidence < i.MatchThreshold {
		return fmt.Errorf("match_confidence (%v) must be >= match_threshold (%v)", i.MatchConfidence, i.MatchThreshold)
	}
	if i.MaxRows <= 0 {
		return fmt.Errorf("max_rows must be > 0 (got %d)", i.MaxRows)
	}
	return nil
}
