// Package enhance — клиент внешнего сервиса улучшения текста (Gemini API).
// Любая ошибка клиента обязана гаситься вызывающей стороной: пользователь
// никогда не видит сбой, вместо улучшенного текста используется исходный.
package enhance

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	defaultModel   = "gemini-3-flash-preview"
	defaultTimeout = 10 * time.Second
)

type Config struct {
	APIKey     string
	BaseURL    string
	Model      string
	Timeout    time.Duration
	HTTPClient *http.Client
}

type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// NewClient создаёт клиент Gemini API
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("enhance: api key is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimSuffix(baseURL, "/")

	mdl := cfg.Model
	if mdl == "" {
		mdl = defaultModel
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		model:      mdl,
		httpClient: httpClient,
	}, nil
}

// CheckLogQuality просит сервис переформулировать описание задач
// более профессионально. Возвращает только новый текст.
func (c *Client) CheckLogQuality(ctx context.Context, tasks string) (string, error) {
	prompt := fmt.Sprintf(`Evaluate the following OJT task description: %q. `+
		`Suggest a more professional and impactful way to phrase this for a resume. Return ONLY the new phrasing.`, tasks)
	return c.generate(ctx, prompt)
}

// CareerAdvice просит сервис дать студенту три совета по стажировке
func (c *Client) CareerAdvice(ctx context.Context, studentProfile, currentLogs string) (string, error) {
	prompt := fmt.Sprintf(`You are an expert career coach for students.
Student Profile: %s
Current Work Logs: %s

Provide 3 actionable tips for this student to excel in their OJT and improve their hiring chances. Keep it professional and encouraging.`,
		studentProfile, currentLogs)
	return c.generate(ctx, prompt)
}

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

// generate делает один запрос без ретраев: политика повторов не нужна,
// сбой означает откат на исходный текст у вызывающего
func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	if c == nil {
		return "", fmt.Errorf("enhance: client is nil")
	}

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("enhance: marshal request: %w", err)
	}

	u := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("enhance: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("enhance: request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("enhance: API error (%d): %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var payload generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("enhance: decode response: %w", err)
	}

	if len(payload.Candidates) == 0 || len(payload.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("enhance: empty response")
	}

	text := strings.TrimSpace(payload.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return "", fmt.Errorf("enhance: empty response")
	}

	return text, nil
}
