// Package generation talks to the hosted language model that invents
// themed palettes from a keyword.
package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/thatcatcamp/colorpick/internal/palette"
)

const (
	DefaultEndpoint = "https://generativelanguage.googleapis.com"
	DefaultModel    = "gemini-3-flash-preview"
	DefaultTimeout  = 60 * time.Second

	// PaletteSize is the number of colors requested per generation
	PaletteSize = 20

	emptyResponse  = "empty response"
	projectIDStart = "prj_"
)

// Generator produces a themed palette for a keyword
type Generator interface {
	Generate(ctx context.Context, keyword string) (*palette.Recommendation, error)
}

// GeneratorFunc adapts a function to the Generator interface
type GeneratorFunc func(ctx context.Context, keyword string) (*palette.Recommendation, error)

// Generate calls f
func (f GeneratorFunc) Generate(ctx context.Context, keyword string) (*palette.Recommendation, error) {
	return f(ctx, keyword)
}

// ClientConfig holds configuration for the generation client
type ClientConfig struct {
	APIKey   string
	Model    string // default: gemini-3-flash-preview
	Endpoint string // API base URL without version path
	Timeout  time.Duration
}

// HTTPClient calls the generateContent REST endpoint
type HTTPClient struct {
	apiKey     string
	model      string
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a generation client. Credentials are checked on every
// call so a server can start without them.
func NewClient(cfg ClientConfig) *HTTPClient {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &HTTPClient{
		apiKey:   strings.TrimSpace(cfg.APIKey),
		model:    model,
		endpoint: strings.TrimSuffix(endpoint, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// CheckAPIKey reports whether key can be used against the service
func CheckAPIKey(key string) error {
	key = strings.TrimSpace(key)
	if key == "" || key == "undefined" {
		return &ConfigurationError{
			Message: "The generation API key is not set. Set gemini.api_key in the config file or the API_KEY environment variable to a Google AI Studio key (starts with AIza).",
		}
	}
	if strings.HasPrefix(key, projectIDStart) {
		shown := key
		if len(shown) > 12 {
			shown = shown[:12]
		}
		return &ConfigurationError{
			Message: fmt.Sprintf("Wrong key format: '%s...' is a hosting project ID, not an API key. Create a key in Google AI Studio (https://aistudio.google.com/); it starts with AIza.", shown),
		}
	}
	return nil
}

// Generate requests a palette for keyword
func (c *HTTPClient) Generate(ctx context.Context, keyword string) (*palette.Recommendation, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, &ValidationError{Field: "keyword", Message: "must not be empty"}
	}
	if err := CheckAPIKey(c.apiKey); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(newRequest(keyword))
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.endpoint, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	var out generateResponse
	if err := c.doRequest(req, &out); err != nil {
		return nil, err
	}

	text := out.text()
	if strings.TrimSpace(text) == "" {
		return nil, newGenerationError(0, emptyResponse, nil)
	}
	return ParseRecommendation([]byte(text))
}

// doRequest executes req and decodes the response envelope into result
func (c *HTTPClient) doRequest(req *http.Request, result interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return newGenerationError(0, "request cancelled or timed out", err)
		}
		return newGenerationError(0, "request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return newGenerationError(resp.StatusCode, "read response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newGenerationError(resp.StatusCode, "service rejected the request", errors.New(upstreamMessage(body)))
	}

	if err := json.Unmarshal(body, result); err != nil {
		return newParseError("decode response envelope", err)
	}
	return nil
}

// ParseRecommendation strictly decodes a palette document. Trailing data
// and schema violations are rejected; nothing is repaired.
func ParseRecommendation(data []byte) (*palette.Recommendation, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	var rec palette.Recommendation
	if err := dec.Decode(&rec); err != nil {
		return nil, newParseError("invalid palette JSON", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, newParseError("unexpected data after palette JSON", err)
	}
	if err := palette.Validate(&rec); err != nil {
		return nil, newParseError("palette does not match schema", err)
	}
	return &rec, nil
}

func upstreamMessage(body []byte) string {
	var env struct {
		Error struct {
			Message string `json:"message"`
			Status  string `json:"status"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &env); err == nil && env.Error.Message != "" {
		return env.Error.Status + ": " + env.Error.Message
	}
	s := strings.TrimSpace(string(body))
	if len(s) > 200 {
		s = s[:200]
	}
	return s
}

// Ensure HTTPClient implements Generator.
var _ Generator = (*HTTPClient)(nil)
