package orchestrator

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/xsdkit/xsdgen/internal/parser"
)

// parseDocuments parses all schema files concurrently using an errgroup
// bounded by the number of CPUs. Results keep the input order, so the
// document sequence the resolver sees never depends on scheduling.
func (s *Service) parseDocuments(files []string) ([]*parser.Document, error) {
	docs := make([]*parser.Document, len(files))

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())

	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			doc, err := s.parser.ParseFile(file)
			if err != nil {
				return fmt.Errorf("failed to parse schema %s: %w", file, err)
			}
			docs[i] = doc
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return docs, nil
}
