package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func retryConfig() RetryConfig {
	return RetryConfig{MaxAttempts: 3, InitialWait: time.Millisecond, MaxWait: 5 * time.Millisecond}
}

var okJSON = json.RawMessage(`{"ok":true}`)

func TestRetry(t *testing.T) {
	down := &ErrProviderUnavailable{Err: errors.New("down")}
	bad := &ErrInvalidResponse{Content: json.RawMessage(`bad`), Err: errors.New("bad")}

	tests := []struct {
		name      string
		responses []MockResponse
		wantErr   bool
		wantCalls int
	}{
		{"first attempt", []MockResponse{{Content: okJSON}}, false, 1},
		{"transient then success", []MockResponse{{Err: down}, {Content: okJSON}}, false, 2},
		{"all attempts fail", []MockResponse{{Err: down}, {Err: down}, {Err: down}, {Content: okJSON}}, true, 3},
		{"max tokens not retried", []MockResponse{{Err: &ErrMaxTokensExceeded{}}, {Content: okJSON}}, true, 1},
		{"schema mismatch retried once", []MockResponse{{Err: bad}, {Err: bad}, {Content: okJSON}}, true, 2},
		{"rate limit honours retry-after", []MockResponse{
			{Err: &ErrRateLimit{RetryAfter: time.Millisecond, Err: errors.New("429")}},
			{Content: okJSON},
		}, false, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := NewMockProvider(tt.responses...)
			resp, err := WithRetry(mock, retryConfig()).Generate(context.Background(), Request{})

			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && string(resp.Content) != string(okJSON) {
				t.Errorf("content = %s", resp.Content)
			}
			if mock.CallCount() != tt.wantCalls {
				t.Errorf("calls = %d, want %d", mock.CallCount(), tt.wantCalls)
			}
		})
	}
}

func TestRetry_CancelledContext(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: okJSON})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := WithRetry(mock, retryConfig()).Generate(ctx, Request{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if mock.CallCount() != 0 {
		t.Errorf("calls = %d, want 0", mock.CallCount())
	}
}

func TestRetry_WaitIsBounded(t *testing.T) {
	r := &RetryProvider{config: RetryConfig{MaxAttempts: 5, InitialWait: 10 * time.Millisecond, MaxWait: 40 * time.Millisecond}}
	for attempt := range 6 {
		w := r.wait(attempt, errors.New("x"))
		if w < 10*time.Millisecond || w > 40*time.Millisecond {
			t.Errorf("wait(%d) = %s, want within [10ms, 40ms]", attempt, w)
		}
	}
}

func TestRetry_ModelIDDelegates(t *testing.T) {
	if got := WithRetry(NewMockProvider(), retryConfig()).ModelID(); got != "mock" {
		t.Fatalf("ModelID() = %q, want mock", got)
	}
}
