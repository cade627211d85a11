package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	env "github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file looked up in the working directory when
// no --config path is given. Its absence is not an error; defaults apply.
const DefaultFile = "devtask.yml"

type Config struct {
	SchemaDir        string `yaml:"schema_dir,omitempty" env:"SCHEMA_DIR" jsonschema:"description=Directory scanned recursively for JSON Schema definition files. Defaults to schema." default:"schema"`
	OutputPrefix     string `yaml:"output_prefix,omitempty" env:"OUTPUT_PREFIX" jsonschema:"description=Directory prefix under which generated model files are written. Defaults to src." default:"src"`
	TestsDir         string `yaml:"tests_dir,omitempty" env:"TESTS_DIR" jsonschema:"description=Directory pytest discovers tests under. Defaults to tests." default:"tests"`
	Requirements     string `yaml:"requirements,omitempty" env:"REQUIREMENTS_FILE" jsonschema:"description=Dependency manifest passed to pip install -r. Defaults to requirements.txt." default:"requirements.txt"`
	Generator        string `yaml:"generator,omitempty" env:"GENERATOR_BIN" jsonschema:"description=Model generator executable invoked per schema file. Defaults to datamodel-codegen." default:"datamodel-codegen"`
	GeneratorPackage string `yaml:"generator_package,omitempty" env:"GENERATOR_PACKAGE" jsonschema:"description=Distribution name checked in the pip package listing when the generator executable is not on PATH. Defaults to datamodel-code-generator." default:"datamodel-code-generator"`
	Pip              string `yaml:"pip,omitempty" env:"PIP_BIN" jsonschema:"description=pip executable. Defaults to pip." default:"pip"`
	Pytest           string `yaml:"pytest,omitempty" env:"PYTEST_BIN" jsonschema:"description=pytest executable. Defaults to pytest." default:"pytest"`
}

func Default() *Config {
	return &Config{
		SchemaDir:        "schema",
		OutputPrefix:     "src",
		TestsDir:         "tests",
		Requirements:     "requirements.txt",
		Generator:        "datamodel-codegen",
		GeneratorPackage: "datamodel-code-generator",
		Pip:              "pip",
		Pytest:           "pytest",
	}
}

// Load builds the effective configuration: defaults, then the yaml file,
// then environment variable overrides. An empty path means DefaultFile,
// which may be absent; an explicit path must exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		// No devtask.yml in the working directory; defaults apply.
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"schema_dir", c.SchemaDir},
		{"output_prefix", c.OutputPrefix},
		{"tests_dir", c.TestsDir},
		{"requirements", c.Requirements},
		{"generator", c.Generator},
		{"pip", c.Pip},
		{"pytest", c.Pytest},
	}
	for _, f := range fields {
		if f.value == "" {
			return fmt.Errorf("%s must not be empty", f.name)
		}
	}
	return nil
}
