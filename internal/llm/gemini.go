package llm

import (
	"context"
	"time"

	"golang.org/x/time/rate"
	genai "google.golang.org/genai"
)

// GeminiClient is a thin wrapper around the official genai client.
type GeminiClient struct {
	cli   *genai.Client
	model string
	rl    *rate.Limiter
}

// NewGeminiClient reads GEMINI_API_KEY from the environment via the SDK.
// rps <= 0 disables throttling.
func NewGeminiClient(ctx context.Context, model string, rps float64, burst int) (*GeminiClient, error) {
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{Backend: genai.BackendGeminiAPI})
	if err != nil {
		return nil, err
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}
	var rl *rate.Limiter
	if rps > 0 {
		if burst <= 0 {
			burst = 1
		}
		rl = rate.NewLimiter(rate.Limit(rps), burst)
	}
	return &GeminiClient{cli: cli, model: model, rl: rl}, nil
}

func (g *GeminiClient) Name() string { return "Gemini:" + g.model }
func (g *GeminiClient) Close() error { return nil }

// Complete sends the exchange requesting application/json and retries with
// backoff. Each attempt consumes a limiter token.
func (g *GeminiClient) Complete(ctx context.Context, system, user string, temperature float32) (string, error) {
	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		Temperature:      genai.Ptr(temperature),
	}
	if system != "" {
		cfg.SystemInstruction = &genai.Content{Parts: []*genai.Part{{Text: system}}}
	}

	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		if g.rl != nil {
			if err := g.rl.Wait(ctx); err != nil {
				return "", err
			}
		}
		resp, err := g.cli.Models.GenerateContent(ctx, g.model,
			[]*genai.Content{{Parts: []*genai.Part{{Text: user}}}},
			cfg,
		)
		if err != nil {
			lastErr = err
		} else if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
			lastErr = ErrCompletion
		} else {
			return resp.Candidates[0].Content.Parts[0].Text, nil
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(time.Duration(300*(1<<attempt)) * time.Millisecond):
		}
	}
	return "", lastErr
}
