package analysis

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Kind names a backend payload shape.
type Kind string

const (
	KindQuestions Kind = "questions"
	KindOptions   Kind = "options"
	KindRasch     Kind = "rasch-analysis"
	KindDetails   Kind = "general-details"
	KindHistogram Kind = "histogram"
	KindStudents  Kind = "students"
)

var ErrUnknownKind = errors.New("unknown payload kind")

var schemas = map[Kind]string{
	KindQuestions: `{
		"type": "array",
		"items": {
			"type": "object",
			"required": ["question_analysis"],
			"properties": {
				"id": {"type": "string"},
				"question_analysis": {
					"type": "object",
					"required": ["discrimination_index", "difficulty_index", "rpbis"],
					"properties": {
						"discrimination_index": {"type": "number"},
						"difficulty_index": {"type": "number"},
						"rpbis": {"type": "number"}
					}
				}
			}
		}
	}`,
	KindOptions: `{
		"type": "array",
		"items": {
			"type": "object",
			"required": ["option_analysis"],
			"properties": {
				"option_analysis": {
					"type": "object",
					"properties": {
						"selected_by": {"type": "integer", "minimum": 0},
						"top_selected": {"type": "integer", "minimum": 0},
						"bottom_selected": {"type": "integer", "minimum": 0}
					}
				}
			}
		}
	}`,
	KindRasch: `{
		"type": "array",
		"items": {
			"type": "object",
			"required": ["infit", "outfit", "reliability"],
			"properties": {
				"infit": {"type": "number"},
				"outfit": {"type": "number"},
				"reliability": {"type": "number"},
				"ability": {"type": "number"},
				"difficulty": {"type": "number"}
			}
		}
	}`,
	KindDetails: `{
		"type": "object",
		"required": ["cronbach_alpha"],
		"properties": {
			"cronbach_alpha": {"type": "number"},
			"avg_score": {"type": "number"}
		}
	}`,
	KindHistogram: `{
		"type": "object",
		"additionalProperties": {
			"type": "array",
			"items": {"type": "object", "additionalProperties": {"type": "number"}}
		}
	}`,
	KindStudents: `{
		"type": "array",
		"items": {
			"type": "object",
			"properties": {
				"grade": {"type": ["number", "null"], "minimum": 0, "maximum": 10}
			}
		}
	}`,
}

var (
	compileOnce sync.Once
	compiled    map[Kind]*jsonschema.Schema
	compileErr  error
)

func compileAll() (map[Kind]*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		c := jsonschema.NewCompiler()
		out := make(map[Kind]*jsonschema.Schema, len(schemas))
		for kind, src := range schemas {
			doc, err := jsonschema.UnmarshalJSON(bytes.NewReader([]byte(src)))
			if err != nil {
				compileErr = fmt.Errorf("parse %s schema: %w", kind, err)
				return
			}
			url := "mem://analysis/" + string(kind) + ".json"
			if err := c.AddResource(url, doc); err != nil {
				compileErr = fmt.Errorf("add %s schema: %w", kind, err)
				return
			}
			sch, err := c.Compile(url)
			if err != nil {
				compileErr = fmt.Errorf("compile %s schema: %w", kind, err)
				return
			}
			out[kind] = sch
		}
		compiled = out
	})
	return compiled, compileErr
}

// Unwrap strips the backend's {"data": ...} envelope when present and
// returns the payload untouched otherwise.
func Unwrap(raw []byte) json.RawMessage {
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &env); err == nil && len(env.Data) > 0 && !bytes.Equal(env.Data, []byte("null")) {
		return env.Data
	}
	return raw
}

// ValidatePayload checks raw, optionally enveloped, against the schema for kind.
func ValidatePayload(kind Kind, raw []byte) error {
	all, err := compileAll()
	if err != nil {
		return err
	}
	sch, ok := all[kind]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(Unwrap(raw)))
	if err != nil {
		return fmt.Errorf("invalid %s JSON: %w", kind, err)
	}
	if err := sch.Validate(doc); err != nil {
		return fmt.Errorf("invalid %s payload: %w", kind, err)
	}
	return nil
}

// Decode validates raw as kind and unmarshals it into T.
func Decode[T any](kind Kind, raw []byte) (T, error) {
	var out T
	if err := ValidatePayload(kind, raw); err != nil {
		return out, err
	}
	if err := json.Unmarshal(Unwrap(raw), &out); err != nil {
		return out, fmt.Errorf("decode %s: %w", kind, err)
	}
	return out, nil
}
