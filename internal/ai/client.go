// Package ai calls the Gemini generateContent REST endpoint to produce
// travel tips. Calls get a per-attempt timeout, at most one retry on
// transient failure, and a circuit breaker in front of the upstream.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"
	"github.com/sony/gobreaker"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/observability"
)

const maxResponseBytes = 1 << 20

// Recorder receives call outcomes. *observability.Metrics satisfies it.
type Recorder interface {
	ObserveAI(outcome string, d time.Duration)
	SetBreakerState(state int)
}

// Config configures a Client. Zero values fall back to defaults.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	// Timeout bounds each attempt, not the whole call.
	Timeout time.Duration
	// RetryDelay is the pause before the single retry.
	RetryDelay time.Duration
	// BreakerFailures consecutive upstream failures open the breaker.
	BreakerFailures uint32
	// BreakerCooldown is how long the breaker stays open.
	BreakerCooldown time.Duration

	HTTPClient *http.Client
	Logger     *slog.Logger
	Recorder   Recorder
}

// Client is safe for concurrent use.
type Client struct {
	cfg     Config
	http    *http.Client
	log     *slog.Logger
	rec     Recorder
	breaker *gobreaker.CircuitBreaker
}

// Status reports whether a credential is configured. It never calls out.
type Status struct {
	Configured bool   `json:"configured"`
	Model      string `json:"model"`
}

// New builds a Client. A Client without an API key is valid; every
// Generate call then fails with domain.ErrAuthRequired.
func New(cfg Config) *Client {
	if cfg.Model == "" {
		cfg.Model = "gemini-3-flash-preview"
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://generativelanguage.googleapis.com/v1beta"
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.Timeout <= 0 {
		cfg.Timeout = 20 * time.Second
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = 500 * time.Millisecond
	}
	if cfg.BreakerFailures == 0 {
		cfg.BreakerFailures = 5
	}
	if cfg.BreakerCooldown <= 0 {
		cfg.BreakerCooldown = 30 * time.Second
	}

	c := &Client{
		cfg:  cfg,
		http: cfg.HTTPClient,
		log:  cfg.Logger,
		rec:  cfg.Recorder,
	}
	if c.http == nil {
		c.http = &http.Client{}
	}
	if c.log == nil {
		c.log = slog.New(slog.DiscardHandler)
	}
	if c.rec == nil {
		c.rec = nopRecorder{}
	}

	c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "gemini",
		MaxRequests: 1,
		Timeout:     cfg.BreakerCooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.BreakerFailures
		},
		// Only upstream trouble counts against the breaker; a bad key or an
		// empty answer says nothing about availability.
		IsSuccessful: func(err error) bool {
			return err == nil || !errors.Is(err, domain.ErrUpstream)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.log.Warn("ai: breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
			c.rec.SetBreakerState(breakerGauge(to))
		},
	})
	return c
}

// Status reports the configured credential and model.
func (c *Client) Status() Status {
	return Status{Configured: c.cfg.APIKey != "", Model: c.cfg.Model}
}

// Generate sends prompt and returns the generated text.
//
// Errors wrap domain.ErrAuthRequired (no key, or the key was refused),
// domain.ErrUpstream (network, 5xx, breaker open, other refusals) or
// domain.ErrEmptyResponse.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	if c.cfg.APIKey == "" {
		c.rec.ObserveAI(observability.OutcomeAuth, 0)
		return "", fmt.Errorf("ai.Client.Generate: %w: no API key configured", domain.ErrAuthRequired)
	}

	var text string
	_, err := c.breaker.Execute(func() (any, error) {
		b := retry.WithMaxRetries(1, retry.NewConstant(c.cfg.RetryDelay))
		return nil, retry.Do(ctx, b, func(ctx context.Context) error {
			t, err := c.attempt(ctx, prompt)
			if err == nil {
				text = t
				return nil
			}
			var te *transientError
			if errors.As(err, &te) && ctx.Err() == nil {
				c.log.Warn("ai: transient failure", "error", te.err)
				return retry.RetryableError(te.err)
			}
			if te != nil {
				return te.err
			}
			return err
		})
	})

	switch {
	case err == nil:
		c.rec.ObserveAI(observability.OutcomeOK, time.Since(start))
		return text, nil
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		c.rec.ObserveAI(observability.OutcomeBreakerOpen, time.Since(start))
		return "", fmt.Errorf("ai.Client.Generate: %w: %w", domain.ErrUpstream, err)
	case errors.Is(err, domain.ErrAuthRequired):
		c.rec.ObserveAI(observability.OutcomeAuth, time.Since(start))
	case errors.Is(err, domain.ErrEmptyResponse):
		c.rec.ObserveAI(observability.OutcomeEmpty, time.Since(start))
	default:
		c.rec.ObserveAI(observability.OutcomeUpstream, time.Since(start))
	}
	return "", fmt.Errorf("ai.Client.Generate: %w", err)
}

// transientError marks a failure worth one more attempt.
type transientError struct{ err error }

func (e *transientError) Error() string { return e.err.Error() }
func (e *transientError) Unwrap() error { return e.err }

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

func (c *Client) attempt(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	body, err := json.Marshal(generateRequest{Contents: []content{{Parts: []part{{Text: prompt}}}}})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}
	url := fmt.Sprintf("%s/models/%s:generateContent", c.cfg.BaseURL, c.cfg.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.cfg.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", &transientError{fmt.Errorf("%w: %w", domain.ErrUpstream, err)}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", &transientError{fmt.Errorf("%w: read body: %w", domain.ErrUpstream, err)}
	}

	if resp.StatusCode != http.StatusOK {
		return "", classifyStatus(resp.StatusCode, raw)
	}

	var out generateResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("%w: decode response: %w", domain.ErrUpstream, err)
	}
	var sb strings.Builder
	if len(out.Candidates) > 0 {
		for _, p := range out.Candidates[0].Content.Parts {
			sb.WriteString(p.Text)
		}
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", fmt.Errorf("%w: no text in response", domain.ErrEmptyResponse)
	}
	return text, nil
}

// classifyStatus maps a non-200 reply onto the error kinds callers see.
func classifyStatus(code int, raw []byte) error {
	var ae apiError
	_ = json.Unmarshal(raw, &ae)
	msg := ae.Error.Message
	if msg == "" {
		msg = http.StatusText(code)
	}

	lower := strings.ToLower(msg)
	switch {
	case code == http.StatusUnauthorized, code == http.StatusForbidden, code == http.StatusNotFound,
		strings.Contains(lower, "api key not valid"), strings.Contains(lower, "api key not found"):
		return fmt.Errorf("%w: status %d: %s", domain.ErrAuthRequired, code, msg)
	case code >= 500:
		return &transientError{fmt.Errorf("%w: status %d: %s", domain.ErrUpstream, code, msg)}
	default:
		return fmt.Errorf("%w: status %d: %s", domain.ErrUpstream, code, msg)
	}
}

func breakerGauge(s gobreaker.State) int {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}

type nopRecorder struct{}

func (nopRecorder) ObserveAI(string, time.Duration) {}
func (nopRecorder) SetBreakerState(int)             {}
