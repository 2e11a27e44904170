package narrative

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

	"github.com/ukaji3/exchart-go/pkg/exchart/models"
)

// DefaultBaseURL is the OpenAI-compatible endpoint used when none is configured.
const DefaultBaseURL = "https://dashscope.aliyuncs.com/compatible-mode/v1"

// DefaultModel is the model used when none is configured.
const DefaultModel = "qwen-plus"

// FailurePrefix starts the text returned when generation fails.
const FailurePrefix = "narrative generation failed: "

// Config holds narrative client settings.
type Config struct {
	BaseURL     string
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
	Guidance    string
	Logger      *slog.Logger
}

// Client talks to a chat completions endpoint.
type Client struct {
	baseURL     string
	apiKey      string
	model       string
	temperature float64
	maxTokens   int
	guidance    string
	httpClient  *http.Client
	logger      *slog.Logger
}

// NewClient creates a new narrative client.
func NewClient(cfg Config) *Client {
	url := strings.TrimRight(cfg.BaseURL, "/")
	if url == "" {
		url = DefaultBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = 200
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:     url,
		apiKey:      cfg.APIKey,
		model:       model,
		temperature: cfg.Temperature,
		maxTokens:   maxTokens,
		guidance:    cfg.Guidance,
		httpClient:  &http.Client{Timeout: timeout},
		logger:      logger,
	}
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Generate returns a narrative for the entity. Failures never surface as
// errors: the returned text is then an error message starting with FailurePrefix.
func (c *Client) Generate(ctx context.Context, entity string, summary models.Summary) string {
	text, err := c.generate(ctx, entity, summary)
	if err != nil {
		c.logger.Warn("narrative generation failed", "entity", entity, "error", err)
		return FailurePrefix + err.Error()
	}
	return text
}

func (c *Client) generate(ctx context.Context, entity string, summary models.Summary) (string, error) {
	if len(summary) == 0 {
		return "", errors.New("no numeric data for entity")
	}
	messages, err := BuildMessages(entity, summary, c.guidance)
	if err != nil {
		return "", err
	}

	body, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	var chatResp chatResponse
	if err := json.Unmarshal(respBody, &chatResp); err != nil {
		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("service error (%d): %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
		}
		return "", fmt.Errorf("decode response: %w", err)
	}
	if chatResp.Error != nil && chatResp.Error.Message != "" {
		return "", fmt.Errorf("service error (%d): %s", resp.StatusCode, chatResp.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("service error (%d)", resp.StatusCode)
	}
	if len(chatResp.Choices) == 0 {
		return "", errors.New("empty response")
	}
	return chatResp.Choices[0].Message.Content, nil
}
