package export_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/yaklabco/codetestguard/pkg/export"
	"github.com/yaklabco/codetestguard/pkg/record"
	"github.com/yaklabco/codetestguard/pkg/report"
)

// recordingSaver captures every Save call.
type recordingSaver struct {
	mu    sync.Mutex
	calls []savedArtifact
	err   error
}

type savedArtifact struct {
	name    string
	payload []byte
}

func (s *recordingSaver) Save(_ context.Context, name string, payload []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, savedArtifact{name: name, payload: payload})
	if s.err != nil {
		return "", s.err
	}
	return "memory://" + name, nil
}

func sampleRecord(t *testing.T) *record.AnalysisRecord {
	t.Helper()

	rec, err := record.Decode([]byte(`{
		"id": 17,
		"project_id": 4,
		"code_changes_summary": {"files": 3},
		"test_score": 92,
		"test_coverage_result": {"coverage_rate": 1, "covered": ["a.B.c"], "uncovered": []},
		"ai_suggestions": {"risk_assessment": "low", "improvement_suggestions": ["<b>keep</b> going"]},
		"token_usage": 800,
		"cost": 0.001,
		"duration_ms": 1200,
		"created_at": "2024-05-06 07:08:09"
	}`))
	require.NoError(t, err)
	return rec
}

func newExporter(t *testing.T, saver export.Saver) *export.Exporter {
	t.Helper()

	exp, err := export.New(export.Options{
		Saver: saver,
		Renderer: report.NewRenderer(report.Options{
			Clock:  report.FixedClock(time.Unix(0, 0)),
			Locale: report.NewLocale(time.UTC),
		}),
	})
	require.NoError(t, err)
	return exp
}

func TestNewRequiresSaver(t *testing.T) {
	t.Parallel()

	_, err := export.New(export.Options{})
	require.ErrorIs(t, err, export.ErrNoSaver)
}

func TestExportDocument(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		projectName string
		wantName    string
	}{
		{"with project", "订单服务", "订单服务-质检报告-17.html"},
		{"without project", "", "质检报告-17.html"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			saver := &recordingSaver{}
			artifact, err := newExporter(t, saver).ExportDocument(context.Background(), sampleRecord(t), testCase.projectName)
			require.NoError(t, err)

			require.Len(t, saver.calls, 1)
			assert.Equal(t, testCase.wantName, saver.calls[0].name)
			assert.Equal(t, export.FormatHTML, artifact.Format)
			assert.Equal(t, "memory://"+testCase.wantName, artifact.Location)
			assert.Equal(t, len(saver.calls[0].payload), artifact.Size)

			doc := string(saver.calls[0].payload)
			assert.True(t, strings.HasPrefix(doc, "<!DOCTYPE html>"))
			assert.Contains(t, doc, "#00b894")
			assert.Contains(t, doc, "&lt;b&gt;keep&lt;/b&gt; going")
		})
	}
}

func TestExportData(t *testing.T) {
	t.Parallel()

	saver := &recordingSaver{}
	artifact, err := newExporter(t, saver).ExportData(context.Background(), sampleRecord(t))
	require.NoError(t, err)

	require.Len(t, saver.calls, 1)
	assert.Equal(t, "analysis-report-17.json", saver.calls[0].name)
	assert.Equal(t, export.FormatJSON, artifact.Format)

	payload := saver.calls[0].payload
	assert.Contains(t, string(payload), "\n  \"id\": 17,")
	assert.Contains(t, string(payload), "<b>keep</b> going", "HTML is not escaped in data dumps")

	roundTrip, err := record.Decode(payload)
	require.NoError(t, err)
	assert.Equal(t, int64(17), roundTrip.ID)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(payload, &fields))
	assert.Contains(t, fields, "code_changes_summary")
}

func TestExportDataIsStable(t *testing.T) {
	t.Parallel()

	first, err := export.MarshalJSON(sampleRecord(t))
	require.NoError(t, err)
	second, err := export.MarshalJSON(sampleRecord(t))
	require.NoError(t, err)

	assert.True(t, bytes.Equal(first, second))
	assert.Less(t, bytes.Index(first, []byte(`"id"`)), bytes.Index(first, []byte(`"created_at"`)))
}

func TestExportYAML(t *testing.T) {
	t.Parallel()

	saver := &recordingSaver{}
	_, err := newExporter(t, saver).ExportYAML(context.Background(), sampleRecord(t))
	require.NoError(t, err)

	require.Len(t, saver.calls, 1)
	assert.Equal(t, "analysis-report-17.yaml", saver.calls[0].name)

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(saver.calls[0].payload, &decoded))
	assert.Equal(t, 17, decoded["id"])
}

func TestExportDispatch(t *testing.T) {
	t.Parallel()

	saver := &recordingSaver{}
	exp := newExporter(t, saver)
	ctx := context.Background()

	for _, format := range []export.Format{export.FormatHTML, export.FormatJSON, export.FormatYAML} {
		_, err := exp.Export(ctx, format, sampleRecord(t), "P")
		require.NoError(t, err)
	}

	require.Len(t, saver.calls, 3)
	assert.Equal(t, "P-质检报告-17.html", saver.calls[0].name)
	assert.Equal(t, "analysis-report-17.json", saver.calls[1].name, "data export ignores the project name")
	assert.Equal(t, "analysis-report-17.yaml", saver.calls[2].name)

	_, err := exp.Export(ctx, export.Format("pdf"), sampleRecord(t), "")
	require.Error(t, err)
	assert.Len(t, saver.calls, 3)
}

func TestExportSaveFailureIsNotRetried(t *testing.T) {
	t.Parallel()

	boom := errors.New("disk full")
	saver := &recordingSaver{err: boom}

	_, err := newExporter(t, saver).ExportDocument(context.Background(), sampleRecord(t), "")
	require.ErrorIs(t, err, boom)
	assert.Len(t, saver.calls, 1)
}

func TestExportNilRecord(t *testing.T) {
	t.Parallel()

	saver := &recordingSaver{}
	exp := newExporter(t, saver)

	_, err := exp.ExportDocument(context.Background(), nil, "")
	require.ErrorIs(t, err, export.ErrNilRecord)
	_, err = exp.ExportData(context.Background(), nil)
	require.ErrorIs(t, err, export.ErrNilRecord)
	assert.Empty(t, saver.calls)
}

func TestSaverFuncHandOff(t *testing.T) {
	t.Parallel()

	var names []string
	saver := export.SaverFunc(func(_ context.Context, name string, payload []byte) (string, error) {
		names = append(names, name)
		assert.NotEmpty(t, payload)
		return "device://downloads/" + name, nil
	})

	artifact, err := newExporter(t, saver).ExportData(context.Background(), sampleRecord(t))
	require.NoError(t, err)

	assert.Equal(t, []string{"analysis-report-17.json"}, names)
	assert.Equal(t, "device://downloads/analysis-report-17.json", artifact.Location)
}

func TestFileSaver(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	saver := &export.FileSaver{Dir: dir}

	location, err := saver.Save(context.Background(), "a/b-质检报告-1.html", []byte("<html></html>"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "a_b-质检报告-1.html"), location)

	got, err := os.ReadFile(location)
	require.NoError(t, err)
	assert.Equal(t, "<html></html>", string(got))
}

func TestWriterSaver(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	location, err := (&export.WriterSaver{W: &buf}).Save(context.Background(), "x.json", []byte("{}"))
	require.NoError(t, err)
	assert.Equal(t, "-", location)
	assert.Equal(t, "{}", buf.String())
}

func TestFilenames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "质检报告-3.html", export.DocumentFilename(3, ""))
	assert.Equal(t, "X-质检报告-3.html", export.DocumentFilename(3, "X"))
	assert.Equal(t, "analysis-report-3.json", export.DataFilename(3))
	assert.Equal(t, "analysis-report-3.yaml", export.YAMLFilename(3))
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    export.Format
		wantErr bool
	}{
		{"", export.FormatHTML, false},
		{"html", export.FormatHTML, false},
		{"json", export.FormatJSON, false},
		{"yml", export.FormatYAML, false},
		{"pdf", "", true},
	}

	for _, testCase := range tests {
		got, err := export.ParseFormat(testCase.input)
		if testCase.wantErr {
			assert.Error(t, err, testCase.input)
			continue
		}
		require.NoError(t, err, testCase.input)
		assert.Equal(t, testCase.want, got)
		assert.True(t, got.IsValid())
	}
}
