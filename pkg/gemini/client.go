// Package gemini is a small client for the Gemini generateContent REST API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com"
	DefaultModel   = "gemini-2.5-flash"
	defaultTimeout = 20 * time.Second
)

// ErrEmptyResponse is returned when the API answers without any text.
var ErrEmptyResponse = errors.New("gemini returned no text")

// Config holds client settings.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// Client calls the generateContent endpoint.
type Client struct {
	apiKey   string
	endpoint string
	timeout  time.Duration
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generateRequest struct {
	SystemInstruction *content  `json:"systemInstruction,omitempty"`
	Contents          []content `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// NewClient creates a Client. An API key is required.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Client{
		apiKey:   cfg.APIKey,
		endpoint: fmt.Sprintf("%s/v1beta/models/%s:generateContent", strings.TrimRight(cfg.BaseURL, "/"), cfg.Model),
		timeout:  cfg.Timeout,
	}, nil
}

// Generate sends a single-turn prompt with a system instruction and returns
// the text of the first candidate.
func (c *Client) Generate(ctx context.Context, systemPrompt, message string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left < timeout {
			timeout = left
		}
	}

	req := generateRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: message}}}},
	}
	if systemPrompt != "" {
		req.SystemInstruction = &content{Parts: []part{{Text: systemPrompt}}}
	}

	agent := fiber.Post(c.endpoint)
	agent.Set("x-goog-api-key", c.apiKey)
	agent.JSON(req)
	agent.Timeout(timeout)

	var resp generateResponse
	code, body, errs := agent.Struct(&resp)
	if code != 0 && (code < fiber.StatusOK || code >= fiber.StatusMultipleChoices) {
		return "", fmt.Errorf("gemini request failed with status %d: %s", code, truncate(string(body), 200))
	}
	if len(errs) > 0 {
		return "", fmt.Errorf("gemini request failed: %w", errors.Join(errs...))
	}

	if len(resp.Candidates) == 0 {
		return "", ErrEmptyResponse
	}
	var sb strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
