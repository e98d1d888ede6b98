// Package completion implements the outbound client for the external
// text-completion service (Hugging Face Inference-compatible API).
package completion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/attriflow/backend/internal/domain"
	"golang.org/x/time/rate"
)

// generationRequest is the text-generation payload
type generationRequest struct {
	Inputs     string               `json:"inputs"`
	Parameters generationParameters `json:"parameters"`
}

type generationParameters struct {
	MaxNewTokens   int     `json:"max_new_tokens"`
	Temperature    float64 `json:"temperature"`
	ReturnFullText bool    `json:"return_full_text"`
}

// generationResponse is one element of the array the inference API returns
type generationResponse struct {
	GeneratedText string `json:"generated_text"`
}

// Client handles communication with the text-completion service
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	model       string
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a new completion client. The limiter smooths bursts so
// a batch of uploads does not trip the provider's rate limits.
func NewClient(apiKey, baseURL, model string) *Client {
	limiter := rate.NewLimiter(rate.Limit(1), 5)

	return &Client{
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		apiKey:      apiKey,
		baseURL:     baseURL,
		model:       model,
		rateLimiter: limiter,
	}
}

// SetDebug enables request/response logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// Complete sends one prompt and returns the generated text. A single
// attempt: the pipeline degrades gracefully on failure, so retrying here
// would only delay the response.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter error: %w", err)
	}

	payload := generationRequest{
		Inputs: prompt,
		Parameters: generationParameters{
			MaxNewTokens:   1000,
			Temperature:    0.3,
			ReturnFullText: false,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	reqURL := fmt.Sprintf("%s/models/%s", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	if c.debug {
		log.Printf("[AI] completion request: model=%s prompt=%d bytes", c.model, len(prompt))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrCompletionFailure, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading response: %v", domain.ErrCompletionFailure, err)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", fmt.Errorf("%w: status %d", domain.ErrCompletionRateLimited, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		if c.debug {
			log.Printf("[AI] completion error - status: %d, body: %s", resp.StatusCode, string(respBody))
		}
		return "", fmt.Errorf("%w: status %d", domain.ErrCompletionFailure, resp.StatusCode)
	}

	return decodeGeneratedText(respBody)
}

// decodeGeneratedText accepts both the array and single-object response
// shapes the inference API produces
func decodeGeneratedText(body []byte) (string, error) {
	var list []generationResponse
	if err := json.Unmarshal(body, &list); err == nil && len(list) > 0 {
		return list[0].GeneratedText, nil
	}

	var single generationResponse
	if err := json.Unmarshal(body, &single); err == nil && single.GeneratedText != "" {
		return single.GeneratedText, nil
	}

	return "", fmt.Errorf("%w: unrecognized response payload", domain.ErrCompletionFailure)
}
