// Package gen is the build entry point: it validates configuration, loads
// the optional overrides file and drives the orchestrator.
package gen

import (
	"fmt"
	"log"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/xsdkit/xsdgen/internal/orchestrator"
)

// Version of the generator.
const Version = "v0.1.0"

// DefaultOverridesFile is the location the generator will look for
// per-namespace overrides.
const DefaultOverridesFile = ".xsdgen.yaml"

// Debugger is the interface that wraps the basic Printf method.
type Debugger interface {
	Printf(format string, v ...interface{})
}

// Config presents Gen configurations.
type Config struct {
	Debugger Debugger

	// SchemaFiles are the schema documents to process, in order. Order
	// matters: a document can only import types from documents before it.
	SchemaFiles []string

	// OutputDir represents the output directory for generated packages.
	OutputDir string

	// PackageBase is the import path prefix of generated packages.
	PackageBase string

	// OverridesFile defines per-namespace package name overrides.
	OverridesFile string
}

// Overrides is the schema of the overrides file.
type Overrides struct {
	// Packages maps a target namespace URI to a package name.
	Packages map[string]string `json:"packages"`
}

// Gen presents the generate tool for xsdgen.
type Gen struct {
	debug Debugger
}

// New creates a new Gen.
func New() *Gen {
	return &Gen{debug: log.New(os.Stdout, "", log.LstdFlags)}
}

// Build generates Go source for the configured schema files.
func (g *Gen) Build(config *Config) error {
	if config.Debugger != nil {
		g.debug = config.Debugger
	}

	if len(config.SchemaFiles) == 0 {
		return fmt.Errorf("no schema files specified")
	}
	for _, file := range config.SchemaFiles {
		if _, err := os.Stat(file); os.IsNotExist(err) {
			return fmt.Errorf("schema file %s does not exist", file)
		}
	}

	overrides, err := g.loadOverrides(config.OverridesFile)
	if err != nil {
		return err
	}

	orc := orchestrator.New(&orchestrator.Config{
		OutputDir:        config.OutputDir,
		PackageBase:      config.PackageBase,
		PackageOverrides: overrides.Packages,
		Debug:            g.debug,
	})

	return orc.Run(config.SchemaFiles)
}

// loadOverrides reads the overrides file. A missing file is only an error
// when a non-default location was configured explicitly.
func (g *Gen) loadOverrides(path string) (*Overrides, error) {
	overrides := &Overrides{}
	if path == "" {
		path = DefaultOverridesFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && path == DefaultOverridesFile {
			return overrides, nil
		}
		return nil, fmt.Errorf("could not open overrides file: %w", err)
	}

	if err := yaml.Unmarshal(data, overrides); err != nil {
		return nil, fmt.Errorf("could not parse overrides file %s: %w", path, err)
	}

	g.debug.Printf("Using overrides from %s", path)
	return overrides, nil
}
