package store

import (
	"context"
	"database/sql"
	"fmt"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

const (
	reportsTable   = "reports"
	llmEventsTable = "llm_request_events"
	sequenceTable  = "global_sequence"
)

var (
	reportsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "project_id", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeInt64},
		{Name: "item_count", Type: field.TypeInt},
		{Name: "fit", Type: field.TypeInt},
		{Name: "considerable", Type: field.TypeInt},
		{Name: "not_fit", Type: field.TypeInt},
		{Name: "entries", Type: field.TypeString},
	}
	reportsSchema = &schema.Table{
		Name:       reportsTable,
		Columns:    reportsColumns,
		PrimaryKey: []*schema.Column{reportsColumns[0]},
	}

	llmEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "created_at", Type: field.TypeInt64},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Default: ""},
		{Name: "response_body", Type: field.TypeString, Default: ""},
	}
	llmEventsSchema = &schema.Table{
		Name:       llmEventsTable,
		Columns:    llmEventsColumns,
		PrimaryKey: []*schema.Column{llmEventsColumns[0]},
	}

	sequenceColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt},
		{Name: "next_val", Type: field.TypeInt64, Default: 1},
	}
	sequenceSchema = &schema.Table{
		Name:       sequenceTable,
		Columns:    sequenceColumns,
		PrimaryKey: []*schema.Column{sequenceColumns[0]},
	}

	schemaTables = []*schema.Table{reportsSchema, llmEventsSchema, sequenceSchema}
)

// builder returns an ent SQL builder bound to the SQLite dialect.
func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

// migrate creates missing tables and columns. Nothing is dropped.
func migrate(ctx context.Context, db *sql.DB) error {
	m, err := schema.NewMigrate(entsql.OpenDB(dialect.SQLite, db))
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	if err := m.Create(ctx, schemaTables...); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}
	return nil
}
