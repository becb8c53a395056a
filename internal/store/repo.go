package store

import (
	"context"
	"errors"
	"time"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/testlens/internal/review"
)

// ErrNotFound is returned when a lookup by ID matches nothing.
var ErrNotFound = errors.New("not found")

// QueryOpts filters and paginates history queries.
type QueryOpts struct {
	Limit  int       // 0 = unlimited
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // created_at >= From
	To     time.Time // created_at <= To
}

// Report is a saved review of one project under one item model.
type Report struct {
	ID           string
	Sequence     int64
	ProjectID    string
	Model        string
	CreatedAt    time.Time
	ItemCount    int
	Fit          int
	Considerable int
	NotFit       int
	Entries      []review.Entry
}

type ReportRepo interface {
	// Save assigns ID, Sequence and CreatedAt when unset and stores r.
	Save(ctx context.Context, r *Report) error

	// Get returns ErrNotFound when no report has the ID. A unique ID
	// prefix is accepted.
	Get(ctx context.Context, id string) (*Report, error)

	// List returns reports newest first; projectID "" matches all.
	List(ctx context.Context, projectID string, opts QueryOpts) ([]Report, error)

	Delete(ctx context.Context, id string) error
}

// LLMRequestEventData is what a caller records for one LLM request.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request.
type LLMEvent struct {
	ID        int64
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsage aggregates calls under one key (purpose or model).
type LLMUsage struct {
	Key          string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

type LLMEventRepo interface {
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)
	GetLLMEvent(ctx context.Context, id int64) (*LLMEvent, error)
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)
	LLMUsageByModel(ctx context.Context) ([]LLMUsage, error)
}

// applyOpts adds the sequence and time filters of opts to sel.
func applyOpts(sel *entsql.Selector, opts QueryOpts) {
	if opts.After > 0 {
		sel.Where(entsql.GT("sequence", opts.After))
	}
	if opts.Before > 0 {
		sel.Where(entsql.LT("sequence", opts.Before))
	}
	if !opts.From.IsZero() {
		sel.Where(entsql.GTE("created_at", opts.From.UnixMilli()))
	}
	if !opts.To.IsZero() {
		sel.Where(entsql.LTE("created_at", opts.To.UnixMilli()))
	}
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}
}
