package answer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultGeminiURL = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash:generateContent"

const defaultTimeout = 30 * time.Second

// GeminiClient asks the Gemini generateContent endpoint. Retryable
// statuses (429 and 5xx) are retried with capped exponential backoff
// before the failure is translated into a fallback message.
type GeminiClient struct {
	apiKey  string
	url     string
	client  *http.Client
	retries int
	backoff time.Duration
}

func NewGeminiClient(cfg Config) *GeminiClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	u := strings.TrimSpace(cfg.BaseURL)
	if u == "" {
		u = defaultGeminiURL
	}
	return &GeminiClient{
		apiKey:  strings.TrimSpace(cfg.APIKey),
		url:     u,
		client:  &http.Client{Timeout: timeout},
		retries: 2,
		backoff: 200 * time.Millisecond,
	}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

type geminiErrorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *GeminiClient) Ask(ctx context.Context, question string) (string, error) {
	if !configured(c.apiKey) {
		// Not configured is a normal answer, not a failure.
		return MsgNotConfigured, nil
	}

	payload, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: question}}}},
	})
	if err != nil {
		return MsgServiceError, fmt.Errorf("marshal request: %w", err)
	}

	for attempt := 0; ; attempt++ {
		text, retryable, err := c.do(ctx, payload)
		if err == nil {
			return text, nil
		}
		if !retryable || attempt >= c.retries {
			return text, err
		}

		select {
		case <-ctx.Done():
			return MsgTimeout, ctx.Err()
		case <-time.After(exponentialBackoff(attempt, c.backoff, 2*time.Second)):
		}
	}
}

func (c *GeminiClient) do(ctx context.Context, payload []byte) (text string, retryable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return MsgServiceError, false, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-goog-api-key", c.apiKey)

	res, err := c.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return MsgTimeout, true, fmt.Errorf("gemini request timed out: %w", err)
		}
		return MsgNetworkError, true, fmt.Errorf("gemini request failed: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, 4<<20))
	if err != nil {
		return MsgNetworkError, true, fmt.Errorf("read response: %w", err)
	}

	if res.StatusCode != http.StatusOK {
		msg := MsgServiceError
		var apiErr geminiErrorResponse
		if jsonErr := json.Unmarshal(body, &apiErr); jsonErr == nil && apiErr.Error.Message != "" {
			msg = "API Error: " + apiErr.Error.Message
		}
		return msg, isRetryableStatus(res.StatusCode), fmt.Errorf("gemini status %d", res.StatusCode)
	}

	var parsed geminiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return MsgEmptyAnswer, false, fmt.Errorf("decode response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return MsgEmptyAnswer, false, errors.New("empty candidates")
	}

	out := strings.TrimSpace(parsed.Candidates[0].Content.Parts[0].Text)
	if out == "" {
		return MsgEmptyAnswer, false, errors.New("empty answer text")
	}
	return out, false, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var uerr *url.Error
	if errors.As(err, &uerr) && uerr.Timeout() {
		return true
	}
	var nerr net.Error
	return errors.As(err, &nerr) && nerr.Timeout()
}
