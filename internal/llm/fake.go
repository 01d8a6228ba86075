package llm

import "context"

// FakeClient returns scripted replies for offline runs and tests. If Fn is
// nil every call answers with an empty JSON object.
type FakeClient struct {
	Fn func(system, user string) (string, error)
}

func (f *FakeClient) Name() string { return "FakeLLM" }
func (f *FakeClient) Close() error { return nil }

func (f *FakeClient) Complete(ctx context.Context, system, user string, temperature float32) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if f.Fn == nil {
		return "{}", nil
	}
	return f.Fn(system, user)
}
