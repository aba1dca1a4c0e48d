// Package orchestrator coordinates the generation pipeline: it parses all
// schema documents, then resolves and renders them one at a time in the
// upstream-fixed document order.
package orchestrator

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/xsdkit/xsdgen/internal/model"
	"github.com/xsdkit/xsdgen/internal/naming"
	"github.com/xsdkit/xsdgen/internal/parser"
	"github.com/xsdkit/xsdgen/internal/render"
	"github.com/xsdkit/xsdgen/internal/resolver"
)

// Debugger is the interface for debug logging.
type Debugger interface {
	Printf(format string, v ...interface{})
}

// Config holds orchestrator configuration options.
type Config struct {
	// OutputDir is where generated packages are written, one directory
	// per document.
	OutputDir string

	// PackageBase is the import path prefix of generated packages, e.g.
	// "example.com/project/gen".
	PackageBase string

	// PackageOverrides maps a target namespace to a package name,
	// overriding the name derived from the schema file stem.
	PackageOverrides map[string]string

	Debug Debugger
}

// Service runs the generation pipeline. The resolver index is scoped to
// the Service, so one instance covers exactly one generation run.
type Service struct {
	parser   *parser.Service
	resolver *resolver.DependencyResolver
	renderer *render.Service
	index    *resolver.Index
	config   *Config

	// written tracks which document produced each package name, so two
	// documents mapping to the same name fail instead of one silently
	// overwriting the other's output file.
	written map[string]string
}

// New creates an orchestrator service with the given configuration.
func New(config *Config) *Service {
	if config == nil {
		config = &Config{}
	}
	if config.OutputDir == "" {
		config.OutputDir = "."
	}
	if config.PackageOverrides == nil {
		config.PackageOverrides = make(map[string]string)
	}

	index := resolver.NewIndex()

	return &Service{
		parser:   parser.NewService(),
		resolver: resolver.New(index),
		renderer: render.NewService(),
		index:    index,
		config:   config,
		written:  make(map[string]string),
	}
}

// Run generates Go source for the given schema files. Files are parsed
// concurrently, then resolved and rendered strictly in argument order:
// the resolver index is shared mutable state, and a document may only
// reference types placed by documents before it.
func (s *Service) Run(files []string) error {
	if len(files) == 0 {
		return fmt.Errorf("no schema files given")
	}

	docs, err := s.parseDocuments(files)
	if err != nil {
		return err
	}

	for _, doc := range docs {
		if err := s.generate(doc); err != nil {
			return err
		}
	}

	if s.config.Debug != nil {
		s.config.Debug.Printf("Generated %d packages, %d registered types", len(docs), s.index.Len())
	}

	return nil
}

// generate resolves and renders one document.
func (s *Service) generate(doc *parser.Document) error {
	pkgName := s.packageName(doc.Schema)
	if prev, ok := s.written[pkgName]; ok {
		return fmt.Errorf("package %q for %s already written from %s, rename the schema file or set a package override",
			pkgName, doc.Schema.Location, prev)
	}
	pkgPath := path.Join(s.config.PackageBase, pkgName)

	if s.config.Debug != nil {
		s.config.Debug.Printf("Processing %s -> %s", doc.Schema.Location, pkgPath)
	}

	if err := s.resolver.Process(doc.Classes, doc.Schema, pkgPath); err != nil {
		return fmt.Errorf("failed to resolve %s: %w", doc.Schema.Location, err)
	}

	imports := s.resolver.SortedImports()
	classes := s.resolver.SortedClasses()
	if len(classes) == 0 {
		if s.config.Debug != nil {
			s.config.Debug.Printf("Skipping %s: no classes generated", doc.Schema.Location)
		}
		return nil
	}

	fileName := filepath.Join(s.config.OutputDir, pkgName, pkgName+".go")
	source, err := s.renderer.Render(&render.Input{
		PackagePath: pkgPath,
		PackageName: pkgName,
		FileName:    fileName,
		Classes:     classes,
		Imports:     imports,
	})
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(fileName), os.ModePerm); err != nil {
		return err
	}
	if err := os.WriteFile(fileName, source, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", fileName, err)
	}
	s.written[pkgName] = doc.Schema.Location

	if s.config.Debug != nil {
		s.config.Debug.Printf("Wrote %s (%d classes, %d imports)", fileName, len(classes), len(imports))
	}

	return nil
}

// packageName picks the generated package name for a document: the
// configured override for its target namespace, else the schema file stem.
func (s *Service) packageName(schema *model.Schema) string {
	if name, ok := s.config.PackageOverrides[schema.TargetNamespace]; ok {
		return name
	}

	stem := filepath.Base(schema.Location)
	stem = strings.TrimSuffix(stem, filepath.Ext(stem))
	return naming.ToPackageName(stem)
}
