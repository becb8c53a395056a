package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

var reportColumns = []string{
	"id", "sequence", "project_id", "model", "created_at",
	"item_count", "fit", "considerable", "not_fit", "entries",
}

type reportRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func (r *reportRepo) Save(ctx context.Context, rep *Report) error {
	if rep.ID == "" {
		rep.ID = uuid.NewString()
	}
	if rep.CreatedAt.IsZero() {
		rep.CreatedAt = time.Now().UTC()
	}
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}
	rep.Sequence = seq

	entries, err := json.Marshal(rep.Entries)
	if err != nil {
		return fmt.Errorf("marshal entries: %w", err)
	}

	query, args := builder().Insert(reportsTable).
		Columns(reportColumns...).
		Values(rep.ID, rep.Sequence, rep.ProjectID, rep.Model, rep.CreatedAt.UnixMilli(),
			rep.ItemCount, rep.Fit, rep.Considerable, rep.NotFit, string(entries)).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save report: %w", err)
	}
	return nil
}

func (r *reportRepo) Get(ctx context.Context, id string) (*Report, error) {
	query, args := builder().Select(reportColumns...).
		From(entsql.Table(reportsTable)).
		Where(entsql.HasPrefix("id", id)).
		Limit(2).
		Query()

	reports, err := r.query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("get report: %w", err)
	}
	switch len(reports) {
	case 0:
		return nil, fmt.Errorf("report %q: %w", id, ErrNotFound)
	case 1:
		return &reports[0], nil
	default:
		return nil, fmt.Errorf("report id %q is ambiguous", id)
	}
}

func (r *reportRepo) List(ctx context.Context, projectID string, opts QueryOpts) ([]Report, error) {
	sel := builder().Select(reportColumns...).
		From(entsql.Table(reportsTable)).
		OrderBy(entsql.Desc("sequence"))
	if projectID != "" {
		sel.Where(entsql.EQ("project_id", projectID))
	}
	applyOpts(sel, opts)

	query, args := sel.Query()
	reports, err := r.query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	return reports, nil
}

func (r *reportRepo) Delete(ctx context.Context, id string) error {
	query, args := builder().Delete(reportsTable).Where(entsql.EQ("id", id)).Query()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete report: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("report %q: %w", id, ErrNotFound)
	}
	return nil
}

func (r *reportRepo) query(ctx context.Context, query string, args []any) ([]Report, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Report
	for rows.Next() {
		var (
			rep     Report
			created int64
			entries string
		)
		if err := rows.Scan(&rep.ID, &rep.Sequence, &rep.ProjectID, &rep.Model, &created,
			&rep.ItemCount, &rep.Fit, &rep.Considerable, &rep.NotFit, &entries); err != nil {
			return nil, err
		}
		rep.CreatedAt = time.UnixMilli(created).UTC()
		if err := json.Unmarshal([]byte(entries), &rep.Entries); err != nil {
			return nil, fmt.Errorf("decode entries of %s: %w", rep.ID, err)
		}
		out = append(out, rep)
	}
	return out, rows.Err()
}

// IsNotFound reports whether err wraps ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
