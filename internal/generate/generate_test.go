package generate

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Koran1/25ICN-NewsReport/internal/config"
)

const pressArticleSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "PressArticle",
  "type": "object",
  "x-python-package": "schema.entity",
  "x-python-class-name": "PressArticleEntity",
  "properties": {
    "title": {"type": "string"},
    "published_at": {"type": "string", "format": "date-time"}
  },
  "required": ["title"]
}`

const noMetadataSchema = `{
  "type": "object",
  "properties": {"id": {"type": "integer"}}
}`

const brokenSchema = `{
  "x-python-package": "schema.entity",
  "x-python-class-name": "Broken",
  "type": "definitely-not-a-type"
}`

func writeSchemaTree(t *testing.T) string {
	t.Helper()
	schemaDir := filepath.Join(t.TempDir(), "schema")
	nested := filepath.Join(schemaDir, "entity")
	require.NoError(t, os.MkdirAll(nested, 0o750))

	files := map[string]string{
		filepath.Join(nested, "press_article_entity.json"): pressArticleSchema,
		filepath.Join(schemaDir, "no_metadata.json"):       noMetadataSchema,
		filepath.Join(schemaDir, "not_json.json"):          "{ not json",
		filepath.Join(schemaDir, "broken_schema.json"):     brokenSchema,
		filepath.Join(schemaDir, "README.md"):              "not a schema",
	}
	for path, content := range files {
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
	return schemaDir
}

func TestScan(t *testing.T) {
	schemaDir := writeSchemaTree(t)

	targets, skips, err := Scan(schemaDir, "src")
	require.NoError(t, err)

	require.Len(t, targets, 1)
	target := targets[0]
	assert.Equal(t, filepath.Join(schemaDir, "entity", "press_article_entity.json"), target.SchemaPath)
	assert.Equal(t, "schema.entity", target.Package)
	assert.Equal(t, "PressArticleEntity", target.ClassName)
	assert.Equal(t, filepath.Join("src", "schema", "entity", "press_article_entity.py"), target.OutputFile)

	require.Len(t, skips, 3)
	reasons := map[string]string{}
	for _, s := range skips {
		reasons[filepath.Base(s.SchemaPath)] = s.Reason
	}
	assert.Contains(t, reasons["no_metadata.json"], "x-python-package")
	assert.Contains(t, reasons["not_json.json"], "invalid JSON")
	assert.Contains(t, reasons["broken_schema.json"], "invalid JSON Schema")
}

func TestScanMissingDirectory(t *testing.T) {
	_, _, err := Scan(filepath.Join(t.TempDir(), "nope"), "src")
	assert.Error(t, err)
}

type recordingRunner struct {
	calls [][]string
	err   error
}

func (r *recordingRunner) Run(_ context.Context, name string, args ...string) error {
	r.calls = append(r.calls, append([]string{name}, args...))
	return r.err
}

func TestRunDispatchesOncePerTarget(t *testing.T) {
	schemaDir := writeSchemaTree(t)
	outPrefix := filepath.Join(t.TempDir(), "src")

	cfg := config.Default()
	cfg.SchemaDir = schemaDir
	cfg.OutputPrefix = outPrefix

	runner := &recordingRunner{}
	require.NoError(t, Run(context.Background(), cfg, runner))

	require.Len(t, runner.calls, 1, "one accepted schema, one generator invocation")
	call := runner.calls[0]
	assert.Equal(t, "datamodel-codegen", call[0])
	assert.Contains(t, call, filepath.Join(schemaDir, "entity", "press_article_entity.json"))
	assert.Contains(t, call, filepath.Join(outPrefix, "schema", "entity", "press_article_entity.py"))
	assert.Contains(t, call, "--class-name")
	assert.Contains(t, call, "PressArticleEntity")
}

func TestRunCreatesPackageInitChain(t *testing.T) {
	schemaDir := writeSchemaTree(t)
	outPrefix := filepath.Join(t.TempDir(), "src")

	cfg := config.Default()
	cfg.SchemaDir = schemaDir
	cfg.OutputPrefix = outPrefix

	require.NoError(t, Run(context.Background(), cfg, &recordingRunner{}))

	for _, init := range []string{
		filepath.Join(outPrefix, "schema", "__init__.py"),
		filepath.Join(outPrefix, "schema", "entity", "__init__.py"),
	} {
		_, err := os.Stat(init)
		assert.NoError(t, err, "expected %s", init)
	}
}

func TestRunGeneratorFailureAborts(t *testing.T) {
	schemaDir := writeSchemaTree(t)

	cfg := config.Default()
	cfg.SchemaDir = schemaDir
	cfg.OutputPrefix = filepath.Join(t.TempDir(), "src")

	runner := &recordingRunner{err: errors.New("exit status 2")}
	err := Run(context.Background(), cfg, runner)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "press_article_entity.json")
}

func TestRunEmptySchemaDir(t *testing.T) {
	schemaDir := filepath.Join(t.TempDir(), "schema")
	require.NoError(t, os.MkdirAll(schemaDir, 0o750))

	cfg := config.Default()
	cfg.SchemaDir = schemaDir

	runner := &recordingRunner{}
	require.NoError(t, Run(context.Background(), cfg, runner))
	assert.Empty(t, runner.calls)
}
