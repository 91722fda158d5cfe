package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/perplexity-mcp/internal/core/domain"
	"github.com/custodia-labs/perplexity-mcp/internal/logger"
)

// settings is the optional TOML overlay for the default query
// parameters. The credential is never read from here.
type settings struct {
	Model       string   `toml:"model"`
	MaxTokens   int      `toml:"max_tokens"`
	Temperature *float64 `toml:"temperature"`
}

// applySettings overlays values from the settings file onto cfg.
// A missing file is fine; a present file must parse and its values
// must be within the declared bounds.
func applySettings(cfg *domain.Config, path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("config: reading settings file: %w", err)
	}

	var s settings
	if err := toml.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("config: parsing %s: %w", path, err)
	}

	if s.Model != "" {
		if !domain.ValidModel(s.Model) {
			return fmt.Errorf("config: %s: model %q is not a known model", path, s.Model)
		}
		cfg.Model = s.Model
	}
	if s.MaxTokens != 0 {
		if s.MaxTokens < domain.MinMaxTokens || s.MaxTokens > domain.MaxMaxTokens {
			return fmt.Errorf("config: %s: max_tokens must be between %d and %d", path, domain.MinMaxTokens, domain.MaxMaxTokens)
		}
		cfg.MaxTokens = s.MaxTokens
	}
	if s.Temperature != nil {
		if *s.Temperature < domain.MinTemperature || *s.Temperature > domain.MaxTemperature {
			return fmt.Errorf("config: %s: temperature must be between %g and %g", path, domain.MinTemperature, domain.MaxTemperature)
		}
		cfg.Temperature = *s.Temperature
	}

	logger.Debug("Settings overlay applied from %s", path)
	return nil
}
