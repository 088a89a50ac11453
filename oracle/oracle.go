// Package oracle wraps the Gemini API behind the two calls the dashboard
// makes: structured statement extraction and free-text insight commentary.
// The service is treated as an opaque oracle; everything it returns crosses
// a strict validation boundary before it reaches the domain.
package oracle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Ray-XRay/wealthdash-google"
	"google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash"

// generateFunc is the model call, the signature of
// genai.Models.GenerateContent. Tests substitute a scripted one.
type generateFunc func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)

// Client is a thin wrapper over the Gemini client.
type Client struct {
	call  generateFunc
	model string

	// retry policy for rate-limited calls
	attempts  int
	baseDelay time.Duration
}

// New creates a Client. The genai client picks its API key up from the
// environment. An empty model selects the default.
func New(ctx context.Context, model string) (*Client, error) {
	g, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("cannot initialize Gemini client: %w", err)
	}
	if model == "" {
		model = defaultModel
	}
	return &Client{call: g.Models.GenerateContent, model: model, attempts: 3, baseDelay: time.Second}, nil
}

// generate calls the model, retrying rate-limited attempts with exponential
// backoff. Any other failure is terminal for the attempt.
func (c *Client) generate(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (string, error) {
	delay := c.baseDelay
	var lastErr error
	for attempt := 0; attempt < c.attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return "", ctx.Err()
			}
			delay *= 2
		}
		resp, err := c.call(ctx, c.model, contents, config)
		if err != nil {
			if isRateLimited(err) {
				lastErr = &wealthdash.OracleError{RateLimited: true, Err: err}
				continue
			}
			return "", &wealthdash.OracleError{Err: err}
		}
		text := resp.Text()
		if text == "" {
			return "", &wealthdash.OracleError{Err: errors.New("empty response")}
		}
		return text, nil
	}
	return "", lastErr
}

func isRateLimited(err error) bool {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == 429
	}
	return false
}
