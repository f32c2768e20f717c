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

const defaultLocationBaseURL = "https://ipapi.co"

type ipAPIResponse struct {
	IP          string  `json:"ip"`
	City        string  `json:"city"`
	Region      string  `json:"region"`
	CountryName string  `json:"country_name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Timezone    string  `json:"timezone"`
}

func init() {
	toolcore.RegisterBuiltin("getLocation", func(options toolcore.BuiltinOptions) (toolcore.Tool, error) {
		timeout := options.LocationTimeout
		if timeout <= 0 {
			timeout = toolcore.DefaultBuiltinHTTPTimeout
		}

		baseURL := strings.TrimSpace(options.LocationBaseURL)
		if baseURL == "" {
			baseURL = defaultLocationBaseURL
		}

		return &LocationTool{
			Client:  &http.Client{Timeout: timeout},
			BaseURL: baseURL,
		}, nil
	})
}

// LocationTool resolves the caller's approximate location from their IP
// address. It takes no arguments; the geolocation service works off the
// requesting address alone.
type LocationTool struct {
	Client  *http.Client
	BaseURL string
}

func (t *LocationTool) Name() string { return "getLocation" }

func (t *LocationTool) Description() string {
	return "Get the user's current location based on their IP address."
}

func (t *LocationTool) Schema() toolcore.Schema {
	return toolcore.Schema{}
}

func (t *LocationTool) Call(ctx context.Context, args []string) (interface{}, error) {
	_ = args

	endpoint, err := locationEndpoint(t.BaseURL)
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
		return nil, fmt.Errorf("location request failed: %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}

	var payload ipAPIResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode location response: %w", err)
	}

	return map[string]interface{}{
		"ip":        strings.TrimSpace(payload.IP),
		"city":      strings.TrimSpace(payload.City),
		"region":    strings.TrimSpace(payload.Region),
		"country":   strings.TrimSpace(payload.CountryName),
		"latitude":  payload.Latitude,
		"longitude": payload.Longitude,
		"timezone":  strings.TrimSpace(payload.Timezone),
	}, nil
}

func locationEndpoint(baseURL string) (string, error) {
	base := strings.TrimSpace(baseURL)
	if base == "" {
		base = defaultLocationBaseURL
	}

	parsed, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid location endpoint: %w", err)
	}
	if strings.TrimSpace(parsed.Scheme) == "" || strings.TrimSpace(parsed.Host) == "" {
		return "", fmt.Errorf("invalid location endpoint")
	}

	parsed.Path = strings.TrimSuffix(parsed.Path, "/") + "/json/"
	return parsed.String(), nil
}
