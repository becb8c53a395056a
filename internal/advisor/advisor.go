// Package advisor asks an LLM for revision advice on flagged items.
package advisor

import (
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/abhisek/testlens/internal/analysis"
	"github.com/abhisek/testlens/internal/llm"
	"github.com/abhisek/testlens/internal/logger"
	"github.com/abhisek/testlens/internal/review"
)

const purpose = "item-advice"

type Config struct {
	Concurrency int
	MaxTokens   int
	Temperature float64
}

func DefaultConfig() Config {
	return Config{Concurrency: 4, MaxTokens: 1024, Temperature: 0.3}
}

// Subject is one review entry plus whatever content the backend knows.
type Subject struct {
	Entry   review.Entry
	Content string
	Options []analysis.OptionAnalysis
}

// Advice is the model's answer for one subject. Err is set instead of the
// other fields when generation for that item failed.
type Advice struct {
	ItemID      string   `json:"item_id"`
	Ordinal     int      `json:"ordinal"`
	Diagnosis   string   `json:"diagnosis,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
	Rewrite     string   `json:"rewrite,omitempty"`
	Err         string   `json:"error,omitempty"`
}

type adviceOutput struct {
	Diagnosis   string   `json:"diagnosis"`
	Suggestions []string `json:"suggestions"`
	Rewrite     string   `json:"rewrite"`
}

type Advisor struct {
	provider llm.Provider
	config   Config
	log      *logger.Logger
}

func New(provider llm.Provider, cfg Config, log *logger.Logger) *Advisor {
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Advisor{provider: provider, config: cfg, log: log}
}

// One requests advice for a single subject.
func (a *Advisor) One(ctx context.Context, s Subject) (Advice, error) {
	ctx = llm.WithPurpose(ctx, purpose)

	req := llm.UserPrompt(systemPrompt, buildUserMessage(s), AdviceSchema, a.config.MaxTokens)
	req.Temperature = a.config.Temperature

	resp, err := a.provider.Generate(ctx, req)
	if err != nil {
		return Advice{}, fmt.Errorf("advise item %s: %w", s.Entry.ItemID, err)
	}

	var out adviceOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return Advice{}, fmt.Errorf("parse advice for item %s: %w", s.Entry.ItemID, err)
	}
	return Advice{
		ItemID:      s.Entry.ItemID,
		Ordinal:     s.Entry.Ordinal,
		Diagnosis:   out.Diagnosis,
		Suggestions: out.Suggestions,
		Rewrite:     out.Rewrite,
	}, nil
}

// All requests advice for every subject with bounded concurrency. Results
// keep the input order. A failed item is reported through Advice.Err; only
// context cancellation aborts the batch.
func (a *Advisor) All(ctx context.Context, subjects []Subject) ([]Advice, error) {
	out := make([]Advice, len(subjects))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.config.Concurrency)

	for i, s := range subjects {
		g.Go(func() error {
			adv, err := a.One(gctx, s)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				a.log.Warn("item advice failed", "item", s.Entry.ItemID, "error", err)
				adv = Advice{ItemID: s.Entry.ItemID, Ordinal: s.Entry.Ordinal, Err: err.Error()}
			}
			out[i] = adv
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
