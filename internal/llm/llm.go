// Package llm abstracts the chat-completion providers behind a single
// Complete call so the assembler never knows which vendor answered.
package llm

import (
	"context"
	"errors"
)

// ErrCompletion marks an empty or unusable model response after retries.
var ErrCompletion = errors.New("llm: completion failed")

// Client is a chat-completion provider asked for JSON-shaped text. Callers
// treat the reply as untrusted: it goes through recovery parsing regardless
// of what the provider promises.
type Client interface {
	// Complete sends one system/user exchange and returns the raw text reply.
	Complete(ctx context.Context, system, user string, temperature float32) (string, error)
	Name() string
	Close() error
}
