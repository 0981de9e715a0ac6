// Package export turns analysis records into downloadable artifacts and
// hands them to a Saver.
package export

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"

	"github.com/yaklabco/codetestguard/internal/logging"
	"github.com/yaklabco/codetestguard/pkg/record"
	"github.com/yaklabco/codetestguard/pkg/report"
)

// Sentinel errors for error categorization via errors.Is.
var (
	// ErrNoSaver is returned by New when Options.Saver is nil.
	ErrNoSaver = errors.New("export: no saver configured")

	// ErrNilRecord is returned when asked to export a nil record.
	ErrNilRecord = errors.New("export: nil record")
)

// dataIndent is the indentation of JSON and YAML dumps.
const dataIndent = 2

// Options configures an Exporter.
type Options struct {
	// Saver receives every artifact. Required.
	Saver Saver

	// Renderer builds HTML documents. Defaults to report.NewRenderer(report.Options{}).
	Renderer *report.Renderer
}

// Artifact describes one saved export.
type Artifact struct {
	Format   Format
	Name     string
	Location string
	Size     int
}

// Exporter serializes records and delegates persistence to its Saver.
// Each export call invokes the Saver exactly once and never retries.
type Exporter struct {
	saver    Saver
	renderer *report.Renderer
}

// New creates an Exporter.
func New(opts Options) (*Exporter, error) {
	if opts.Saver == nil {
		return nil, ErrNoSaver
	}
	renderer := opts.Renderer
	if renderer == nil {
		renderer = report.NewRenderer(report.Options{})
	}
	return &Exporter{saver: opts.Saver, renderer: renderer}, nil
}

// Export dispatches to the exporter for format.
func (e *Exporter) Export(ctx context.Context, format Format, rec *record.AnalysisRecord, projectName string) (Artifact, error) {
	switch format {
	case FormatHTML:
		return e.ExportDocument(ctx, rec, projectName)
	case FormatJSON:
		return e.ExportData(ctx, rec)
	case FormatYAML:
		return e.ExportYAML(ctx, rec)
	default:
		return Artifact{}, fmt.Errorf("unsupported format: %s", format)
	}
}

// ExportDocument renders rec as HTML and saves it.
func (e *Exporter) ExportDocument(ctx context.Context, rec *record.AnalysisRecord, projectName string) (Artifact, error) {
	if rec == nil {
		return Artifact{}, ErrNilRecord
	}
	doc := e.renderer.Render(rec, projectName)
	return e.save(ctx, FormatHTML, rec.ID, DocumentFilename(rec.ID, projectName), []byte(doc))
}

// ExportData saves rec as indented JSON. Fields appear in declaration
// order and nested mappings in sorted key order, so the output is stable.
func (e *Exporter) ExportData(ctx context.Context, rec *record.AnalysisRecord) (Artifact, error) {
	if rec == nil {
		return Artifact{}, ErrNilRecord
	}
	payload, err := MarshalJSON(rec)
	if err != nil {
		return Artifact{}, err
	}
	return e.save(ctx, FormatJSON, rec.ID, DataFilename(rec.ID), payload)
}

// ExportYAML saves rec as a YAML document.
func (e *Exporter) ExportYAML(ctx context.Context, rec *record.AnalysisRecord) (Artifact, error) {
	if rec == nil {
		return Artifact{}, ErrNilRecord
	}
	payload, err := MarshalYAML(rec)
	if err != nil {
		return Artifact{}, err
	}
	return e.save(ctx, FormatYAML, rec.ID, YAMLFilename(rec.ID), payload)
}

func (e *Exporter) save(ctx context.Context, format Format, id int64, name string, payload []byte) (Artifact, error) {
	logger := logging.FromContext(ctx)

	location, err := e.saver.Save(ctx, name, payload)
	if err != nil {
		logger.Error("artifact save failed",
			logging.FieldReportID, id,
			logging.FieldName, name,
			logging.FieldError, err,
		)
		return Artifact{}, fmt.Errorf("save artifact: %w", err)
	}

	logger.Debug("artifact saved",
		logging.FieldReportID, id,
		logging.FieldFormat, format,
		logging.FieldPath, location,
		logging.FieldBytes, humanize.Bytes(uint64(len(payload))),
	)

	return Artifact{Format: format, Name: name, Location: location, Size: len(payload)}, nil
}

// MarshalJSON encodes rec with two-space indentation and without HTML
// escaping, so free text stays readable.
func MarshalJSON(rec *record.AnalysisRecord) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(rec); err != nil {
		return nil, fmt.Errorf("encode JSON: %w", err)
	}
	return buf.Bytes(), nil
}

// MarshalYAML encodes rec as YAML.
func MarshalYAML(rec *record.AnalysisRecord) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(dataIndent)
	if err := encoder.Encode(rec); err != nil {
		return nil, fmt.Errorf("encode YAML: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}
	return buf.Bytes(), nil
}
