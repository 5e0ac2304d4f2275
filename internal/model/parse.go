package model

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/jsonschema-go/jsonschema"
)

// ValidationError reports a payload that does not match the envelope schema.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid lottery response: %v", e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

func nullable(t string) *jsonschema.Schema {
	return &jsonschema.Schema{Types: []string{"null", t}}
}

func required(t string) *jsonschema.Schema {
	return &jsonschema.Schema{Type: t}
}

// EnvelopeSchema describes the /history/last response. Unknown fields are
// allowed so upstream additions do not break parsing.
func EnvelopeSchema() *jsonschema.Schema {
	prizeGrade := &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"type":  nullable("string"),
			"num":   nullable("string"),
			"money": nullable("string"),
		},
	}
	draw := &jsonschema.Schema{
		Type:     "object",
		Required: []string{"code", "date", "red", "blue"},
		Properties: map[string]*jsonschema.Schema{
			"code":         required("string"),
			"date":         required("string"),
			"week":         nullable("string"),
			"red":          required("string"),
			"blue":         required("string"),
			"content":      nullable("string"),
			"prize_grades": {Type: "array", Items: prizeGrade},
			"sales":        nullable("string"),
			"poolmoney":    nullable("string"),
			"video_link":   nullable("string"),
			"details_link": nullable("string"),
			"creat_time":   nullable("string"),
			"update_time":  nullable("string"),
			"disabled":     required("integer"),
		},
	}
	return &jsonschema.Schema{
		Type:     "object",
		Required: []string{"code"},
		Properties: map[string]*jsonschema.Schema{
			"code":  required("integer"),
			"data":  {Types: []string{"null", "array"}, Items: draw},
			"total": nullable("integer"),
			"msg":   nullable("string"),
		},
	}
}

var resolvedEnvelope = sync.OnceValues(func() (*jsonschema.Resolved, error) {
	return EnvelopeSchema().Resolve(nil)
})

// Parse validates raw against the envelope schema and decodes it.
// Any mismatch is returned as a *ValidationError.
func Parse(raw map[string]any) (*ResponseEnvelope, error) {
	rs, err := resolvedEnvelope()
	if err != nil {
		return nil, fmt.Errorf("resolve envelope schema: %w", err)
	}
	if err := rs.Validate(raw); err != nil {
		return nil, &ValidationError{Err: err}
	}

	b, err := json.Marshal(raw)
	if err != nil {
		return nil, &ValidationError{Err: err}
	}
	var env ResponseEnvelope
	if err := json.Unmarshal(b, &env); err != nil {
		return nil, &ValidationError{Err: err}
	}
	for i := range env.Data {
		if env.Data[i].PrizeGrades == nil {
			env.Data[i].PrizeGrades = []PrizeGrade{}
		}
	}
	return &env, nil
}
