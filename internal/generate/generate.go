// Package generate walks the schema directory and dispatches the external
// model generator once per accepted JSON Schema file.
package generate

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/Koran1/25ICN-NewsReport/internal/config"
	"github.com/Koran1/25ICN-NewsReport/internal/executor"
)

// Extension keys a schema must carry to be generated. They decide the
// output package path and the emitted class name.
const (
	packageKey   = "x-python-package"
	classNameKey = "x-python-class-name"
)

// Target is one schema file accepted for generation.
type Target struct {
	SchemaPath string
	Package    string // dotted package path, e.g. "schema.entity"
	ClassName  string
	OutputFile string
}

// Skip is a schema file passed over with a reason. Skips are reported but
// never fail the run.
type Skip struct {
	SchemaPath string
	Reason     string
}

// Scan walks schemaDir recursively for *.json files and resolves each one
// into a Target or a Skip. Output paths are rooted at outputPrefix.
func Scan(schemaDir, outputPrefix string) ([]Target, []Skip, error) {
	info, err := os.Stat(schemaDir)
	if err != nil || !info.IsDir() {
		return nil, nil, fmt.Errorf("schema directory %s not found", schemaDir)
	}

	var targets []Target
	var skips []Skip

	err = filepath.WalkDir(schemaDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".json") {
			return nil
		}

		target, skipReason := resolve(path, outputPrefix)
		if skipReason != "" {
			skips = append(skips, Skip{SchemaPath: path, Reason: skipReason})
			return nil
		}
		targets = append(targets, *target)
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("scan schema directory: %w", err)
	}

	return targets, skips, nil
}

func resolve(path, outputPrefix string) (*Target, string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Sprintf("unreadable: %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, "invalid JSON"
	}

	pkg, _ := doc[packageKey].(string)
	className, _ := doc[classNameKey].(string)
	if pkg == "" || className == "" {
		return nil, fmt.Sprintf("missing %s or %s", packageKey, classNameKey)
	}

	if err := compileSchema(path); err != nil {
		return nil, fmt.Sprintf("invalid JSON Schema: %v", err)
	}

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	outDir := filepath.Join(outputPrefix, filepath.FromSlash(strings.ReplaceAll(pkg, ".", "/")))

	return &Target{
		SchemaPath: path,
		Package:    pkg,
		ClassName:  className,
		OutputFile: filepath.Join(outDir, stem+".py"),
	}, ""
}

// compileSchema checks that the document is a well-formed JSON Schema
// before anything is handed to the generator.
func compileSchema(path string) error {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft7
	_, err := compiler.Compile(path)
	return err
}

// Run scans the schema directory and invokes the generator once per
// target. The first generator failure aborts the run; skips do not.
func Run(ctx context.Context, cfg *config.Config, runner executor.Runner) error {
	fmt.Printf("==> Scanning %s for JSON Schema files\n", cfg.SchemaDir)

	targets, skips, err := Scan(cfg.SchemaDir, cfg.OutputPrefix)
	if err != nil {
		return err
	}

	for _, s := range skips {
		fmt.Printf("    Skipping %s: %s\n", s.SchemaPath, s.Reason)
	}

	if len(targets) == 0 {
		fmt.Println("==> No schemas to generate.")
		return nil
	}

	for _, t := range targets {
		fmt.Printf("==> Generating %s -> %s\n", t.SchemaPath, t.OutputFile)

		if err := preparePackageDirs(cfg.OutputPrefix, t.Package); err != nil {
			return err
		}

		err := runner.Run(ctx, cfg.Generator,
			"--input", t.SchemaPath,
			"--input-file-type", "jsonschema",
			"--output", t.OutputFile,
			"--class-name", t.ClassName,
		)
		if err != nil {
			return fmt.Errorf("generate %s: %w", t.SchemaPath, err)
		}
	}

	fmt.Printf("==> Generated %d model(s) under %s\n", len(targets), cfg.OutputPrefix)
	return nil
}

// preparePackageDirs creates the output package directories and touches an
// __init__.py at every level so the generated modules are importable.
func preparePackageDirs(outputPrefix, pkg string) error {
	dir := outputPrefix
	for _, part := range strings.Split(pkg, ".") {
		dir = filepath.Join(dir, part)
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create package directory %s: %w", dir, err)
		}
		initFile := filepath.Join(dir, "__init__.py")
		f, err := os.OpenFile(initFile, os.O_CREATE|os.O_WRONLY, 0o640)
		if err != nil {
			return fmt.Errorf("create %s: %w", initFile, err)
		}
		if err := f.Close(); err != nil {
			return err
		}
	}
	return nil
}
