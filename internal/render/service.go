// Package render turns resolved class sequences into Go source. It
// consumes the resolver's output as-is: classes arrive deduplicated in
// dependency order and imports arrive sorted, so emission is a single
// front-to-back pass.
package render

import (
	"bytes"
	"fmt"

	"github.com/dave/jennifer/jen"
	"golang.org/x/tools/imports"

	"github.com/xsdkit/xsdgen/internal/model"
	"github.com/xsdkit/xsdgen/internal/naming"
	"github.com/xsdkit/xsdgen/internal/parser"
)

// Input is one document's render unit: the destination package and the
// resolver's sorted, alias-annotated output.
type Input struct {
	// PackagePath is the full import path of the generated package; other
	// documents import this path.
	PackagePath string
	PackageName string
	FileName    string
	Classes     []*model.Class
	Imports     []model.Package
}

// Service renders Go source files. Stateless and safe to share.
type Service struct{}

// NewService creates a renderer.
func NewService() *Service {
	return &Service{}
}

// Render emits the Go source for one document and runs the result through
// goimports for final formatting.
func (s *Service) Render(in *Input) ([]byte, error) {
	f := jen.NewFilePathName(in.PackagePath, in.PackageName)
	f.HeaderComment("Code generated by xsdgen. DO NOT EDIT.")

	aliased := make(map[string]model.Package)
	byName := make(map[string]model.Package)
	for _, pkg := range in.Imports {
		if pkg.Alias != "" {
			aliased[pkg.Alias] = pkg
			f.ImportAlias(pkg.Source, naming.ToImportAlias(pkg.Alias))
		}
		byName[pkg.Name] = pkg
	}

	r := &fileRenderer{file: f, aliased: aliased, byName: byName}
	for _, obj := range in.Classes {
		r.renderClass(obj, "", newScope(obj, ""))
	}

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", in.FileName, err)
	}

	formatted, err := imports.Process(in.FileName, buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to format %s: %w", in.FileName, err)
	}
	return formatted, nil
}

// fileRenderer carries per-file import lookups through the class walk.
type fileRenderer struct {
	file    *jen.File
	aliased map[string]model.Package
	byName  map[string]model.Package
}

// newScope maps every class name visible inside a top-level class (the
// class itself and its nested classes) to its generated Go type name.
// Inner classes are emitted flattened, prefixed with their parent's name.
func newScope(obj *model.Class, parent string) map[string]string {
	scope := make(map[string]string)
	var walk func(obj *model.Class, parent string)
	walk = func(obj *model.Class, parent string) {
		generated := parent + naming.ToClassName(obj.Name)
		scope[obj.Name] = generated
		for _, inner := range obj.Inner {
			walk(inner, generated)
		}
	}
	walk(obj, parent)
	return scope
}

func (r *fileRenderer) renderClass(obj *model.Class, parent string, scope map[string]string) {
	generated := parent + naming.ToClassName(obj.Name)

	if isEnumeration(obj) {
		r.renderEnumeration(obj, generated)
		return
	}
	if isAlias(obj) {
		r.renderTypeAlias(obj, generated)
		return
	}

	fields := make([]jen.Code, 0, len(obj.Extensions)+len(obj.Attrs))
	for _, ext := range obj.Extensions {
		fields = append(fields, r.typeRef(ext, scope))
	}
	for _, attr := range obj.Attrs {
		fields = append(fields, r.renderAttr(attr, scope))
	}

	if obj.Help != "" {
		r.file.Comment(fmt.Sprintf("%s %s", generated, obj.Help))
	}
	r.file.Type().Id(generated).Struct(fields...)

	for _, inner := range obj.Inner {
		r.renderClass(inner, generated, scope)
	}
}

// renderEnumeration emits a typed constant set: the underlying kind
// derives from the restriction base, with one constant per facet.
func (r *fileRenderer) renderEnumeration(obj *model.Class, generated string) {
	base := ""
	if len(obj.Extensions) > 0 {
		base = obj.Extensions[0]
	}
	kind, literal := enumBase(base)

	if obj.Help != "" {
		r.file.Comment(fmt.Sprintf("%s %s", generated, obj.Help))
	}
	r.file.Type().Id(generated).Add(kind)

	defs := make([]jen.Code, 0, len(obj.Attrs))
	for _, attr := range obj.Attrs {
		defs = append(defs, jen.Id(generated+naming.ToClassName(attr.Name)).
			Id(generated).Op("=").Add(literal(attr.Default)))
	}
	r.file.Const().Defs(defs...)
}

// renderTypeAlias emits `type X = Y` for classes that only restate
// another type, e.g. a global element declared with a type reference.
func (r *fileRenderer) renderTypeAlias(obj *model.Class, generated string) {
	if obj.Help != "" {
		r.file.Comment(fmt.Sprintf("%s %s", generated, obj.Help))
	}
	r.file.Type().Id(generated).Op("=").Add(r.typeRef(obj.Extensions[0], map[string]string{}))
}

func (r *fileRenderer) renderAttr(attr *model.Attr, scope map[string]string) jen.Code {
	code := r.attrType(attr, scope)

	switch {
	case attr.IsList():
		code = jen.Index().Add(code)
	case attr.ForwardRef, attr.IsOptional() && !model.IsXSDType(attr.Type):
		code = jen.Op("*").Add(code)
	}

	tag := attr.Name
	if attr.LocalType == parser.LocalTypeAttribute {
		tag += ",attr"
	} else if attr.IsOptional() {
		tag += ",omitempty"
	}

	return jen.Id(naming.ToFieldName(attr.Name)).Add(code).
		Tag(map[string]string{"xml": tag})
}

// attrType resolves an attr's rendered type. Alias annotations from the
// resolver take precedence over the raw type reference.
func (r *fileRenderer) attrType(attr *model.Attr, scope map[string]string) jen.Code {
	if attr.TypeAlias != "" {
		if pkg, ok := r.aliased[attr.TypeAlias]; ok {
			return jen.Qual(pkg.Source, naming.ToClassName(pkg.Name))
		}
	}
	return r.typeRef(attr.Type, scope)
}

// typeRef renders a raw type reference: built-ins map to native types,
// qualified names resolve through the import list, local names through the
// current class scope.
func (r *fileRenderer) typeRef(ref string, scope map[string]string) jen.Code {
	if code, ok := nativeType(ref); ok {
		return code
	}

	_, local, qualified := model.SplitPrefix(ref)
	if qualified {
		if pkg, ok := r.byName[local]; ok {
			return jen.Qual(pkg.Source, naming.ToClassName(local))
		}
		return jen.Id(naming.ToClassName(local))
	}

	if generated, ok := scope[local]; ok {
		return jen.Id(generated)
	}
	if pkg, ok := r.byName[local]; ok {
		return jen.Qual(pkg.Source, naming.ToClassName(local))
	}
	return jen.Id(naming.ToClassName(local))
}

// isEnumeration reports whether every attr is an enumeration facet.
func isEnumeration(obj *model.Class) bool {
	if len(obj.Attrs) == 0 {
		return false
	}
	for _, attr := range obj.Attrs {
		if attr.LocalType != parser.LocalTypeEnumeration {
			return false
		}
	}
	return true
}

// isAlias reports whether the class only restates a single base type.
func isAlias(obj *model.Class) bool {
	return len(obj.Attrs) == 0 && len(obj.Inner) == 0 && len(obj.Extensions) == 1
}
