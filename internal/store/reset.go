package store

import (
	"context"
	"fmt"
)

// ResetResult counts the rows removed by Reset.
type ResetResult struct {
	Reports   int64
	LLMEvents int64
}

// Reset deletes every saved report and, when llmEvents is set, every
// recorded LLM request, in one transaction.
func (s *Store) Reset(ctx context.Context, llmEvents bool) (ResetResult, error) {
	var res ResetResult

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return res, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	tables := map[string]*int64{reportsTable: &res.Reports}
	if llmEvents {
		tables[llmEventsTable] = &res.LLMEvents
	}

	for table, n := range tables {
		query, args := builder().Delete(table).Query()
		r, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return ResetResult{}, fmt.Errorf("clear %s: %w", table, err)
		}
		if *n, err = r.RowsAffected(); err != nil {
			return ResetResult{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return ResetResult{}, fmt.Errorf("commit: %w", err)
	}
	return res, nil
}
