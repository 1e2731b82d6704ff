package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/user/broadcast-service/internal/repository"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Client implements repository.TextGenerator against the Gemini
// generateContent API. Multiple API keys are rotated round-robin through an
// atomic counter; the pipeline above makes no assumption about which key
// serves a given call.
type Client struct {
	apiKeys    []string
	model      string
	baseURL    string
	httpClient *http.Client
	next       atomic.Uint64
}

// New builds a client from a comma-separated key list. An empty list is
// allowed; calls then fail with repository.ErrGeneratorUnavailable and the
// parser pipeline degrades gracefully.
func New(apiKeys []string, model string, timeout time.Duration) *Client {
	keys := make([]string, 0, len(apiKeys))
	for _, k := range apiKeys {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return &Client{
		apiKeys:    keys,
		model:      model,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopP            float64 `json:"topP,omitempty"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// GenerateText sends one prompt and returns the concatenated candidate text.
func (c *Client) GenerateText(ctx context.Context, prompt string, cfg repository.GenerationConfig) (string, error) {
	if len(c.apiKeys) == 0 {
		return "", repository.ErrGeneratorUnavailable
	}
	key := c.apiKeys[c.next.Add(1)%uint64(len(c.apiKeys))]

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			Temperature:     cfg.Temperature,
			TopP:            cfg.TopP,
			MaxOutputTokens: cfg.MaxTokens,
		},
	})
	if err != nil {
		return "", fmt.Errorf("encoding generate request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, key)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("building generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling generative backend: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("reading generate response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("generative backend returned status %d: %s", resp.StatusCode, truncate(string(payload), 200))
	}

	var decoded generateResponse
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return "", fmt.Errorf("decoding generate response: %w", err)
	}
	if decoded.Error != nil {
		return "", fmt.Errorf("generative backend error %d: %s", decoded.Error.Code, decoded.Error.Message)
	}
	if len(decoded.Candidates) == 0 {
		return "", fmt.Errorf("generative backend returned no candidates")
	}

	var text strings.Builder
	for _, p := range decoded.Candidates[0].Content.Parts {
		text.WriteString(p.Text)
	}
	if text.Len() == 0 {
		return "", fmt.Errorf("generative backend returned empty text")
	}
	return text.String(), nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
