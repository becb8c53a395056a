package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/testlens/internal/logger"
	"github.com/abhisek/testlens/internal/store"
)

// RecordingProvider stores every request and its outcome as an LLM event.
type RecordingProvider struct {
	inner  Provider
	events store.LLMEventRepo
	log    *logger.Logger
}

func WithRecording(p Provider, events store.LLMEventRepo, log *logger.Logger) Provider {
	if log == nil {
		log = logger.Nop()
	}
	return &RecordingProvider{inner: p, events: events, log: log}
}

func (r *RecordingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := r.inner.Generate(ctx, req)

	ev := store.LLMRequestEventData{
		Provider:    providerName(r.inner),
		Model:       r.inner.ModelID(),
		Purpose:     PurposeFrom(ctx),
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: transcript(req),
	}
	if resp != nil {
		ev.Model = resp.Model
		ev.InputTokens = resp.Usage.InputTokens
		ev.OutputTokens = resp.Usage.OutputTokens
		ev.ResponseBody = string(resp.Content)
	}
	if err != nil {
		ev.ErrorMessage = err.Error()
		r.log.Warn("llm request failed", "model", ev.Model, "purpose", ev.Purpose, "error", err)
	} else {
		r.log.Debug("llm request", "model", ev.Model, "purpose", ev.Purpose,
			"input_tokens", ev.InputTokens, "output_tokens", ev.OutputTokens, "latency_ms", ev.LatencyMs)
	}

	// Recording is best effort; the caller still gets the response.
	if r.events != nil {
		if recErr := r.events.AppendLLMRequest(context.WithoutCancel(ctx), ev); recErr != nil {
			r.log.Warn("record llm event", "error", recErr)
		}
	}
	return resp, err
}

func (r *RecordingProvider) ModelID() string { return r.inner.ModelID() }

func providerName(p Provider) string {
	switch p.(type) {
	case *AnthropicProvider:
		return "anthropic"
	case *OpenAIProvider:
		return "openai"
	case *GeminiProvider:
		return "gemini"
	case *MockProvider:
		return "mock"
	default:
		return fmt.Sprintf("%T", p)
	}
}

// transcript renders a request the way `testlens llm view` prints it.
func transcript(req Request) string {
	var b strings.Builder
	if req.System != "" {
		fmt.Fprintf(&b, "[system]\n%s\n\n", req.System)
	}
	for _, m := range req.Messages {
		fmt.Fprintf(&b, "[%s]\n%s\n\n", m.Role, m.Content)
	}
	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			fmt.Fprintf(&b, "[schema: %s]\n%s\n", req.Schema.Name, def)
		}
	}
	return b.String()
}
