package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"time"

	"golang.org/x/time/rate"
)

// OpenAIClient calls the OpenAI Chat Completions API and asks for JSON.
// See: https://platform.openai.com/docs/api-reference/chat
type OpenAIClient struct {
	http    *http.Client
	apiKey  string
	model   string
	baseURL string
	rl      *rate.Limiter
}

// NewOpenAIClient creates an OpenAI client. If apiKey is empty, it falls back
// to the OPENAI_API_KEY env var. rps <= 0 disables throttling.
func NewOpenAIClient(apiKey, model string, rps float64, burst int) *OpenAIClient {
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if model == "" {
		model = "gpt-4o"
	}
	var rl *rate.Limiter
	if rps > 0 {
		if burst <= 0 {
			burst = 1
		}
		rl = rate.NewLimiter(rate.Limit(rps), burst)
	}
	return &OpenAIClient{
		http:    &http.Client{Timeout: 120 * time.Second},
		apiKey:  apiKey,
		model:   model,
		baseURL: "https://api.openai.com/v1/chat/completions",
		rl:      rl,
	}
}

func (o *OpenAIClient) Name() string { return "OpenAI:" + o.model }
func (o *OpenAIClient) Close() error { return nil }

type chatReq struct {
	Model          string            `json:"model"`
	Messages       []chatMessage     `json:"messages"`
	Temperature    float32           `json:"temperature"`
	ResponseFormat map[string]string `json:"response_format,omitempty"`
}
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
type chatResp struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends one exchange with response_format json_object and retries
// transient failures with backoff.
func (o *OpenAIClient) Complete(ctx context.Context, system, user string, temperature float32) (string, error) {
	reqBody := chatReq{
		Model:          o.model,
		Temperature:    temperature,
		ResponseFormat: map[string]string{"type": "json_object"},
	}
	if system != "" {
		reqBody.Messages = append(reqBody.Messages, chatMessage{Role: "system", Content: system})
	}
	reqBody.Messages = append(reqBody.Messages, chatMessage{Role: "user", Content: user})
	b, _ := json.Marshal(reqBody)

	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		if o.rl != nil {
			if err := o.rl.Wait(ctx); err != nil {
				return "", err
			}
		}
		txt, err := o.once(ctx, b)
		if err == nil {
			return txt, nil
		}
		lastErr = err
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(time.Duration(300*(1<<attempt)) * time.Millisecond):
		}
	}
	return "", lastErr
}

func (o *OpenAIClient) once(ctx context.Context, body []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if o.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+o.apiKey)
	}

	resp, err := o.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errors.New("openai: unexpected status " + resp.Status)
	}
	var out chatResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Choices) == 0 || out.Choices[0].Message.Content == "" {
		return "", ErrCompletion
	}
	return out.Choices[0].Message.Content, nil
}
