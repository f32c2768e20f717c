package tooling

import (
	"fmt"
	"strings"

	"github.com/harunnryd/tenki/internal/config"
	"github.com/harunnryd/tenki/internal/tool"
)

func resolveBuiltinOptions(cfg *config.Config) (tool.BuiltinOptions, error) {
	if cfg == nil {
		return tool.BuiltinOptions{}, fmt.Errorf("config cannot be nil")
	}

	locationTimeout, err := config.DurationOrDefault(cfg.Tools.Location.Timeout, config.DefaultLocationToolTimeout)
	if err != nil {
		return tool.BuiltinOptions{}, fmt.Errorf("parse tools.location.timeout: %w", err)
	}
	locationBaseURL := strings.TrimSpace(cfg.Tools.Location.BaseURL)
	if locationBaseURL == "" {
		locationBaseURL = config.DefaultLocationToolBaseURL
	}

	weatherTimeout, err := config.DurationOrDefault(cfg.Tools.Weather.Timeout, config.DefaultWeatherToolTimeout)
	if err != nil {
		return tool.BuiltinOptions{}, fmt.Errorf("parse tools.weather.timeout: %w", err)
	}
	weatherBaseURL := strings.TrimSpace(cfg.Tools.Weather.BaseURL)
	if weatherBaseURL == "" {
		weatherBaseURL = config.DefaultWeatherToolBaseURL
	}

	return tool.BuiltinOptions{
		LocationBaseURL: locationBaseURL,
		LocationTimeout: locationTimeout,
		WeatherBaseURL:  weatherBaseURL,
		WeatherTimeout:  weatherTimeout,
	}, nil
}
