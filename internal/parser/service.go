// Package parser reads XML Schema documents into the intermediate class
// model consumed by the resolver. One Document per schema file: the
// namespace context plus the generated classes in schema order.
package parser

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"github.com/xsdkit/xsdgen/internal/model"
)

// XMLSchemaNamespace is the XML Schema definition namespace.
const XMLSchemaNamespace = "http://www.w3.org/2001/XMLSchema"

// Document is the parse result for one schema file.
type Document struct {
	Schema  *model.Schema
	Classes []*model.Class
}

// Service parses schema documents. It is stateless and safe to share.
type Service struct{}

// NewService creates a parser service.
func NewService() *Service {
	return &Service{}
}

// ParseFile parses the schema document at path.
func (s *Service) ParseFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return s.Parse(bytes.NewReader(data), path)
}

// Parse parses one schema document. location is recorded on the schema for
// diagnostics and package naming.
func (s *Service) Parse(r io.Reader, location string) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	schema, err := parseNamespaces(data, location)
	if err != nil {
		return nil, err
	}

	var root xsdSchema
	if err := xml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse schema %s: %w", location, err)
	}

	classes := buildClasses(&root, schema)
	markForwardRefs(classes)

	return &Document{Schema: schema, Classes: classes}, nil
}

// parseNamespaces scans the root element's attributes for targetNamespace
// and xmlns declarations. encoding/xml unmarshal drops prefix bindings, so
// this runs as a separate token pass.
func parseNamespaces(data []byte, location string) (*model.Schema, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			return nil, fmt.Errorf("no schema element found in %s", location)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse schema %s: %w", location, err)
		}

		start, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		if start.Name.Local != "schema" || start.Name.Space != XMLSchemaNamespace {
			return nil, fmt.Errorf("unexpected root element <%s> in %s", start.Name.Local, location)
		}

		schema := &model.Schema{
			NsMap:    make(map[string]string),
			Location: location,
		}
		for _, attr := range start.Attr {
			switch {
			case attr.Name.Space == "" && attr.Name.Local == "targetNamespace":
				schema.TargetNamespace = attr.Value
			case attr.Name.Space == "xmlns":
				schema.NsMap[attr.Name.Local] = attr.Value
			case attr.Name.Space == "" && attr.Name.Local == "xmlns":
				schema.NsMap[""] = attr.Value
			}
		}
		return schema, nil
	}
}
