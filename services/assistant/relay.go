package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/sahilchouksey/unimatch-api/utils/logger"
)

const (
	DefaultBaseURL = "https://inference.do-ai.run"
	DefaultModel   = "llama3-8b-instruct"
	DefaultTimeout = 60 * time.Second
)

// DefaultSystemPrompt is used when no prompt is configured
const DefaultSystemPrompt = "You are a helpful admissions assistant for South African school leavers. " +
	"Answer questions about university courses, APS scores, bursaries and residences concisely."

var (
	ErrNotConfigured = errors.New("chat relay is not configured")
	// ErrEmptyReply means the upstream answered 200 without any choices
	ErrEmptyReply = errors.New("upstream returned no choices")
)

// RateLimitedError is returned for an upstream 429
type RateLimitedError struct {
	RetryAfter time.Duration
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("chat upstream rate limited, retry after %s", e.RetryAfter)
}

// UpstreamError carries any other non-2xx upstream answer
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("chat upstream error (status %d): %s", e.Status, e.Body)
}

type Message struct {
	Role    string `json:"role"` // system, user or assistant
	Content string `json:"content"`
}

type completionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature,omitempty"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
}

type completionResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message      Message `json:"message"`
		FinishReason string  `json:"finish_reason"`
	} `json:"choices"`
}

// Reply is the assistant's answer and the model that produced it
type Reply struct {
	Message Message `json:"message"`
	Model   string  `json:"model"`
}

type Config struct {
	APIKey        string
	BaseURL       string
	Model         string
	FallbackModel string
	Timeout       time.Duration
}

// Relay forwards conversations to an OpenAI-compatible chat completions API
type Relay struct {
	apiKey        string
	baseURL       string
	model         string
	fallbackModel string
	httpClient    *http.Client
	log           zerolog.Logger
}

func NewRelay(cfg Config) (*Relay, error) {
	if cfg.APIKey == "" {
		return nil, ErrNotConfigured
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.FallbackModel == "" {
		cfg.FallbackModel = DefaultModel
	}
	if cfg.Model == "" {
		cfg.Model = cfg.FallbackModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &Relay{
		apiKey:        cfg.APIKey,
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		model:         cfg.Model,
		fallbackModel: cfg.FallbackModel,
		httpClient:    &http.Client{Timeout: cfg.Timeout},
		log:           logger.With("chat-relay"),
	}, nil
}

// Complete sends the system prompt followed by history. When the configured
// model is unavailable upstream it retries once with the fallback model.
func (r *Relay) Complete(ctx context.Context, systemPrompt string, history []Message) (*Reply, error) {
	messages := make([]Message, 0, len(history)+1)
	if systemPrompt != "" {
		messages = append(messages, Message{Role: "system", Content: systemPrompt})
	}
	messages = append(messages, history...)

	reply, err := r.send(ctx, r.model, messages)
	var upErr *UpstreamError
	if err != nil && r.model != r.fallbackModel && errors.As(err, &upErr) && modelUnavailable(upErr) {
		r.log.Warn().
			Str("model", r.model).
			Str("fallback", r.fallbackModel).
			Int("status", upErr.Status).
			Msg("Model unavailable, retrying with fallback")
		return r.send(ctx, r.fallbackModel, messages)
	}
	return reply, err
}

func (r *Relay) send(ctx context.Context, model string, messages []Message) (*Reply, error) {
	body, err := json.Marshal(completionRequest{
		Model:       model,
		Messages:    messages,
		Temperature: 0.3,
		MaxTokens:   1024,
	})
	if err != nil {
		return nil, errors.Wrap(err, "marshal request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}
	req.Header.Set("Authorization", "Bearer "+r.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "chat request failed")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read response body")
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, &RateLimitedError{RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"))}
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, &UpstreamError{Status: resp.StatusCode, Body: string(respBody)}
	}

	var out completionResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, errors.Wrap(err, "decode response")
	}
	if len(out.Choices) == 0 {
		return nil, ErrEmptyReply
	}
	if out.Model == "" {
		out.Model = model
	}
	return &Reply{Message: out.Choices[0].Message, Model: out.Model}, nil
}

func modelUnavailable(e *UpstreamError) bool {
	if e.Status == http.StatusNotFound {
		return true
	}
	if e.Status != http.StatusBadRequest {
		return false
	}
	body := strings.ToLower(e.Body)
	return strings.Contains(body, "model_not_found") || strings.Contains(body, "not available")
}

// parseRetryAfter accepts delta-seconds or an HTTP date; unknown values give 0
func parseRetryAfter(v string) time.Duration {
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(v); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}
