package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name:        "test-object",
		Description: "A test object",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"name":  map[string]any{"type": "string"},
				"age":   map[string]any{"type": "integer", "minimum": 0},
				"grade": map[string]any{"type": "string", "enum": []any{"A", "B", "C"}},
			},
			"required": []any{"name", "age"},
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"name":"q1","age":10,"grade":"A"}`, false},
		{"optional omitted", `{"name":"q2","age":8}`, false},
		{"missing required", `{"name":"q3"}`, true},
		{"wrong type", `{"name":"q4","age":"ten"}`, true},
		{"enum violation", `{"name":"q5","age":9,"grade":"D"}`, true},
		{"below minimum", `{"name":"q6","age":-1}`, true},
		{"malformed", `{not json}`, true},
		{"empty", ``, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(testSchema(), json.RawMessage(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Fatalf("validateResponse(%s) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			var inv *ErrInvalidResponse
			if err != nil && !errors.As(err, &inv) {
				t.Fatalf("expected ErrInvalidResponse, got %T", err)
			}
		})
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`anything`)); err != nil {
		t.Fatalf("nil schema should accept anything, got %v", err)
	}
}

func TestValidateResponse_Nested(t *testing.T) {
	schema := &Schema{
		Name: "test-nested",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"item": map[string]any{
					"type":       "object",
					"properties": map[string]any{"id": map[string]any{"type": "string"}},
					"required":   []any{"id"},
				},
				"scores": map[string]any{"type": "array", "items": map[string]any{"type": "number"}},
			},
			"required": []any{"item", "scores"},
		},
	}

	if err := validateResponse(schema, json.RawMessage(`{"item":{"id":"q1"},"scores":[0.3,0.5]}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := validateResponse(schema, json.RawMessage(`{"item":{"id":"q1"},"scores":["x"]}`)); err == nil {
		t.Fatal("expected error for wrong item type")
	}
}
