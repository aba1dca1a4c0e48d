// Package naming converts schema names into valid Go identifiers: exported
// type and field names, sanitized import aliases and package names derived
// from namespaces or file stems.
package naming

import (
	"go/token"
	"strings"
	"unicode"

	"github.com/go-openapi/inflect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// safePrefix guards identifiers that would otherwise start with a digit or
// collide with a Go keyword.
const safePrefix = "Value"

var titleCaser = cases.Title(language.English, cases.NoLower)

// ToClassName converts a schema type name to an exported Go type name.
// Separators (-, _, ., :) become word boundaries.
func ToClassName(name string) string {
	return safeIdentifier(inflect.Camelize(normalize(name)))
}

// ToFieldName converts a schema attr name to an exported Go field name.
func ToFieldName(name string) string {
	return safeIdentifier(inflect.Camelize(normalize(name)))
}

// ToPackageName derives a Go package name from a schema file stem or the
// last path segment of a namespace URI.
func ToPackageName(name string) string {
	name = normalize(name)
	name = strings.ToLower(strings.ReplaceAll(name, "_", ""))
	if name == "" || unicode.IsDigit(rune(name[0])) || token.IsKeyword(name) {
		name = "schema" + name
	}
	return name
}

// ToImportAlias sanitizes a resolver alias such as "thug:life" into a
// usable Go identifier, title-casing each segment.
func ToImportAlias(alias string) string {
	parts := strings.FieldsFunc(alias, func(r rune) bool {
		return r == ':' || r == '.' || r == '-' || r == '_'
	})
	for i, part := range parts {
		parts[i] = titleCaser.String(part)
	}
	return safeIdentifier(strings.Join(parts, ""))
}

// normalize replaces schema-legal separators that Go identifiers cannot
// carry with underscores so inflect treats them as word boundaries.
func normalize(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '.', ':', ' ':
			return '_'
		}
		return r
	}, name)
}

func safeIdentifier(name string) string {
	if name == "" {
		return name
	}
	if unicode.IsDigit(rune(name[0])) || token.IsKeyword(name) {
		return safePrefix + name
	}
	return name
}
