package builtin

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	toolcore "github.com/harunnryd/tenki/internal/tool"
)

const defaultWeatherBaseURL = "https://api.open-meteo.com"

type meteoCurrentWeather struct {
	Temperature   float64 `json:"temperature"`
	Windspeed     float64 `json:"windspeed"`
	Winddirection float64 `json:"winddirection"`
	Weathercode   int     `json:"weathercode"`
	Time          string  `json:"time"`
}

type meteoResponse struct {
	Latitude       float64             `json:"latitude"`
	Longitude      float64             `json:"longitude"`
	CurrentWeather meteoCurrentWeather `json:"current_weather"`
}

func init() {
	toolcore.RegisterBuiltin("getCurrentWeather", func(options toolcore.BuiltinOptions) (toolcore.Tool, error) {
		timeout := options.WeatherTimeout
		if timeout <= 0 {
			timeout = toolcore.DefaultBuiltinHTTPTimeout
		}

		baseURL := strings.TrimSpace(options.WeatherBaseURL)
		if baseURL == "" {
			baseURL = defaultWeatherBaseURL
		}

		return &WeatherTool{
			Client:  &http.Client{Timeout: timeout},
			BaseURL: baseURL,
		}, nil
	})
}

// WeatherTool fetches current conditions for a coordinate pair. Arguments
// arrive positionally in declaration order: latitude first, longitude
// second.
type WeatherTool struct {
	Client  *http.Client
	BaseURL string
}

func (t *WeatherTool) Name() string { return "getCurrentWeather" }

func (t *WeatherTool) Description() string {
	return "Get the current weather for a location given its latitude and longitude."
}

func (t *WeatherTool) Schema() toolcore.Schema {
	return toolcore.Schema{
		Params: []toolcore.Param{
			{Name: "latitude", Type: toolcore.TypeString, Description: "Latitude of the location, e.g. \"52.5\"."},
			{Name: "longitude", Type: toolcore.TypeString, Description: "Longitude of the location, e.g. \"13.4\"."},
		},
		Required: []string{"longitude", "latitude"},
	}
}

func (t *WeatherTool) Call(ctx context.Context, args []string) (interface{}, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("getCurrentWeather expects latitude and longitude, got %d arguments", len(args))
	}

	latitude := strings.TrimSpace(args[0])
	longitude := strings.TrimSpace(args[1])
	if latitude == "" || longitude == "" {
		return nil, fmt.Errorf("latitude and longitude are required")
	}

	endpoint, err := weatherEndpoint(t.BaseURL, latitude, longitude)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Tenki/1.0 (+https://example.invalid)")

	client := t.Client
	if client == nil {
		client = &http.Client{Timeout: toolcore.DefaultBuiltinHTTPTimeout}
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("weather request failed: %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}

	var payload meteoResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode weather response: %w", err)
	}

	return map[string]interface{}{
		"latitude":         payload.Latitude,
		"longitude":        payload.Longitude,
		"temperature_c":    payload.CurrentWeather.Temperature,
		"windspeed_kmh":    payload.CurrentWeather.Windspeed,
		"weather_code":     payload.CurrentWeather.Weathercode,
		"observation_time": strings.TrimSpace(payload.CurrentWeather.Time),
	}, nil
}

func weatherEndpoint(baseURL, latitude, longitude string) (string, error) {
	base := strings.TrimSpace(baseURL)
	if base == "" {
		base = defaultWeatherBaseURL
	}

	parsed, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid weather endpoint: %w", err)
	}
	if strings.TrimSpace(parsed.Scheme) == "" || strings.TrimSpace(parsed.Host) == "" {
		return "", fmt.Errorf("invalid weather endpoint")
	}

	parsed.Path = strings.TrimSuffix(parsed.Path, "/") + "/v1/forecast"

	query := url.Values{}
	query.Set("latitude", latitude)
	query.Set("longitude", longitude)
	query.Set("current_weather", "true")
	parsed.RawQuery = query.Encode()

	return parsed.String(), nil
}
