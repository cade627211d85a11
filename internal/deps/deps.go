// Package deps covers the two dependency tasks: the generate-code
// precondition check and install-dep.
package deps

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"github.com/Koran1/25ICN-NewsReport/internal/config"
	"github.com/Koran1/25ICN-NewsReport/internal/executor"
)

// NotInstalledError reports a missing generator dependency. Its message
// carries the remedy so the CLI can print it verbatim and exit 1.
type NotInstalledError struct {
	Package string
}

func (e *NotInstalledError) Error() string {
	return fmt.Sprintf("%s is not installed. Run 'devtask install-dep' first", e.Package)
}

type pipPackage struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Checker decides whether the model generator is available. The lookup is
// structured: first the executable on PATH, then the pip package listing
// in JSON form, never a textual grep of installer output.
type Checker struct {
	LookPath     func(file string) (string, error)
	ListPackages func(ctx context.Context) ([]byte, error)

	generator string
	pkg       string
}

func NewChecker(cfg *config.Config) *Checker {
	return &Checker{
		LookPath: exec.LookPath,
		ListPackages: func(ctx context.Context) ([]byte, error) {
			return exec.CommandContext(ctx, cfg.Pip, "list", "--format=json", "--disable-pip-version-check").Output()
		},
		generator: cfg.Generator,
		pkg:       cfg.GeneratorPackage,
	}
}

// CheckGenerator returns nil when the generator can be invoked, and a
// *NotInstalledError when it is missing from both PATH and the package
// listing.
func (c *Checker) CheckGenerator(ctx context.Context) error {
	if _, err := c.LookPath(c.generator); err == nil {
		return nil
	}

	out, err := c.ListPackages(ctx)
	if err != nil {
		// pip itself unavailable or broken; the generator cannot be
		// resolved either way.
		return &NotInstalledError{Package: c.pkg}
	}

	pkgs, err := parsePipList(out)
	if err != nil {
		return &NotInstalledError{Package: c.pkg}
	}

	want := normalizeName(c.pkg)
	for _, p := range pkgs {
		if normalizeName(p.Name) == want {
			return nil
		}
	}
	return &NotInstalledError{Package: c.pkg}
}

func parsePipList(data []byte) ([]pipPackage, error) {
	var pkgs []pipPackage
	if err := json.Unmarshal(data, &pkgs); err != nil {
		return nil, fmt.Errorf("parse pip list output: %w", err)
	}
	return pkgs, nil
}

var nameSeparators = regexp.MustCompile(`[-_.]+`)

// normalizeName applies PEP 503 name normalization so that
// "Datamodel_Code.Generator" and "datamodel-code-generator" compare equal.
func normalizeName(name string) string {
	return nameSeparators.ReplaceAllString(strings.ToLower(name), "-")
}

// Install runs the package installer against the static manifest. First
// failure aborts the whole install per pip's own semantics; the exit
// status propagates untouched.
func Install(ctx context.Context, cfg *config.Config, runner executor.Runner) error {
	fmt.Printf("==> Installing dependencies from %s\n", cfg.Requirements)
	return runner.Run(ctx, cfg.Pip, "install", "-r", cfg.Requirements)
}
