// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError  = "error"
	FieldPath   = "path"
	FieldInput  = "input"
	FieldOutput = "output"
	FieldName   = "name"

	// Listing fields.
	FieldDescription = "description"

	// Report fields.
	FieldReportID = "report_id"
	FieldProject  = "project"
	FieldFormat   = "format"
	FieldBytes    = "bytes"
	FieldGrade    = "grade"
	FieldScore    = "score"

	// Configuration fields.
	FieldConfigFiles = "config_files"
	FieldTimeZone    = "time_zone"
	FieldOutputDir   = "output_dir"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
