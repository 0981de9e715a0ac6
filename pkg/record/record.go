// Package record defines the analysis record consumed by the report engine
// and the normalization step that turns its loosely-typed payloads into a
// fully-defaulted shape.
package record

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrEmptyInput is returned when a record document contains no data.
var ErrEmptyInput = errors.New("empty record input")

// AnalysisRecord is one persisted analysis result as produced by the
// analysis service. The metric fields and nested payloads are kept as
// decoded JSON/YAML values so a mistyped value degrades to its default in
// Normalize instead of failing the whole record.
type AnalysisRecord struct {
	ID                 int64  `json:"id" yaml:"id"`
	ProjectID          *int64 `json:"project_id" yaml:"project_id"`
	CodeChangesSummary any    `json:"code_changes_summary" yaml:"code_changes_summary"`
	TestCoverageResult any    `json:"test_coverage_result" yaml:"test_coverage_result"`
	TestScore          any    `json:"test_score" yaml:"test_score"`
	AISuggestions      any    `json:"ai_suggestions" yaml:"ai_suggestions"`
	TokenUsage         any    `json:"token_usage" yaml:"token_usage"`
	Cost               any    `json:"cost" yaml:"cost"`
	DurationMS         any    `json:"duration_ms" yaml:"duration_ms"`
	CreatedAt          string `json:"created_at" yaml:"created_at"`
}

// Decode parses a JSON analysis record.
func Decode(data []byte) (*AnalysisRecord, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyInput
	}

	rec := &AnalysisRecord{}
	if err := json.Unmarshal(data, rec); err != nil {
		return nil, fmt.Errorf("parse JSON record: %w", err)
	}
	return rec, nil
}

// DecodeYAML parses a YAML analysis record.
func DecodeYAML(data []byte) (*AnalysisRecord, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyInput
	}

	rec := &AnalysisRecord{}
	if err := yaml.Unmarshal(data, rec); err != nil {
		return nil, fmt.Errorf("parse YAML record: %w", err)
	}
	return rec, nil
}
