package resolver

import (
	"errors"
	"fmt"
	"sort"

	"github.com/xsdkit/xsdgen/internal/model"
)

// ErrUnresolvedReference is returned when a class list entry refers to a
// type that no processed document has registered. It signals a missing or
// misordered schema document and terminates the run.
var ErrUnresolvedReference = errors.New("unresolved reference")

// DependencyResolver holds the per-document resolution state plus the
// shared run-scoped Index. Create one per run with New, then call Process
// once per document, in document order, draining SortedClasses before the
// next Process call.
type DependencyResolver struct {
	index *Index

	schema    *model.Schema
	pkg       string
	classMap  map[string]*model.Class
	classList []string
	aliases   map[string]string
	imports   []model.Package
}

// New creates a resolver bound to the given run index.
func New(index *Index) *DependencyResolver {
	return &DependencyResolver{index: index}
}

// Process resets the session state and resolves one document: classes are
// the document's generated classes in schema order, schema carries the
// namespace bindings, pkg is the destination package path. Results are
// retrieved with SortedImports and SortedClasses.
func (r *DependencyResolver) Process(classes []*model.Class, schema *model.Schema, pkg string) error {
	r.imports = nil
	r.aliases = make(map[string]string)

	r.classMap = r.createClassMap(classes)
	r.classList = r.createClassList(classes)
	r.schema = schema
	r.pkg = pkg

	return r.resolveImports()
}

// SortedImports returns the deduplicated session imports sorted by name
// then source. The returned slice is a copy; the session list keeps
// discovery order.
func (r *DependencyResolver) SortedImports() []model.Package {
	result := make([]model.Package, len(r.imports))
	copy(result, r.imports)

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Name != result[j].Name {
			return result[i].Name < result[j].Name
		}
		return result[i].Source < result[j].Source
	})

	return result
}

// SortedClasses returns the document's local classes in dependency order,
// deduplicated by first occurrence. Every returned class has its alias
// annotations applied and is registered in the run index, so once the call
// returns the next document can safely resolve against this one.
func (r *DependencyResolver) SortedClasses() []*model.Class {
	var result []*model.Class
	seen := make(map[string]bool, len(r.classMap))

	for _, name := range r.classList {
		obj, ok := r.classMap[name]
		if !ok || seen[name] {
			continue
		}
		seen[name] = true

		r.applyAliases(obj)
		r.addPackage(obj)
		result = append(result, obj)
	}

	return result
}

// createClassMap indexes the document's top-level classes by name. On a
// duplicate name the last class wins, matching schema override semantics.
func (r *DependencyResolver) createClassMap(classes []*model.Class) map[string]*model.Class {
	result := make(map[string]*model.Class, len(classes))
	for _, obj := range classes {
		result[obj.Name] = obj
	}
	return result
}

// createClassList flattens the dependency graph into an ordered name
// sequence: a class appears directly after its last dependency, so
// definitions can be emitted front to back. References to other local
// classes pull those classes in first; external references are appended
// as-is and may repeat. Built-in schema types and forward references are
// treated as already satisfied and skipped.
func (r *DependencyResolver) createClassList(classes []*model.Class) []string {
	index := make(map[string]*model.Class, len(classes))
	for _, obj := range classes {
		index[obj.Name] = obj
	}

	var result []string
	done := make(map[string]bool, len(classes))

	var visit func(obj *model.Class)
	visit = func(obj *model.Class) {
		if done[obj.Name] {
			return
		}
		done[obj.Name] = true

		for _, dep := range collectDependencies(obj) {
			if local, ok := index[dep]; ok {
				visit(local)
			} else {
				result = append(result, dep)
			}
		}
		result = append(result, obj.Name)
	}

	for _, obj := range classes {
		visit(obj)
	}

	return result
}

// collectDependencies gathers a class's type references in definition
// order: own attrs, then inner classes recursively, then extensions.
func collectDependencies(obj *model.Class) []string {
	var deps []string

	for _, attr := range obj.Attrs {
		if attr.ForwardRef || model.IsXSDType(attr.Type) {
			continue
		}
		deps = append(deps, attr.Type)
	}

	for _, inner := range obj.Inner {
		deps = append(deps, collectDependencies(inner)...)
	}

	for _, ext := range obj.Extensions {
		if model.IsXSDType(ext) {
			continue
		}
		deps = append(deps, ext)
	}

	return deps
}

// resolveImports registers an import for every class list entry that is
// not defined in this document. A qualified reference whose local part is
// defined here is the collision case: the symbol is imported from its own
// package under the original prefixed string as alias, so in-document
// references keep resolving.
func (r *DependencyResolver) resolveImports() error {
	for _, name := range r.importClasses() {
		prefix, local, qualified := model.SplitPrefix(name)

		pkg, err := r.findPackage(prefix, local)
		if err != nil {
			return err
		}

		alias := ""
		if qualified {
			if _, ok := r.classMap[local]; ok {
				alias = name
			}
		}
		r.addImport(local, pkg, alias)
	}

	return nil
}

// importClasses filters the class list down to names absent from the
// class map, preserving order.
func (r *DependencyResolver) importClasses() []string {
	var result []string
	for _, name := range r.classList {
		if _, ok := r.classMap[name]; !ok {
			result = append(result, name)
		}
	}
	return result
}

// addImport appends an import record unless a logically identical one
// exists: the class list repeats external references, so repeated uses of
// the same type collapse to one record, keeping first-discovery order. A
// non-empty alias is also recorded in the alias map, keyed by the alias
// string itself, so substitution can recognize already-aliased references.
func (r *DependencyResolver) addImport(name, pkg, alias string) {
	record := model.Package{Name: name, Alias: alias, Source: pkg}
	for _, existing := range r.imports {
		if existing == record {
			return
		}
	}

	r.imports = append(r.imports, record)
	if alias != "" {
		r.aliases[alias] = alias
	}
}

// addPackage records a local class in the run index under its qualified
// name, making it resolvable by later documents.
func (r *DependencyResolver) addPackage(obj *model.Class) {
	qname := model.QName(r.schema.TargetNamespace, obj.Name)
	r.index.Register(qname, r.pkg)
}

// findPackage resolves prefix to a namespace URI through the current
// schema and looks the qualified name up in the run index. A miss on
// either step is fatal: the reference points at a type no document has
// produced yet.
func (r *DependencyResolver) findPackage(prefix, name string) (string, error) {
	namespace, ok := r.schema.Namespace(prefix)
	if !ok {
		return "", fmt.Errorf("%w: unknown namespace prefix %q for type %q", ErrUnresolvedReference, prefix, name)
	}

	pkg, ok := r.index.Lookup(model.QName(namespace, name))
	if !ok {
		return "", fmt.Errorf("%w: type %q not found in namespace %q (prefix %q)", ErrUnresolvedReference, name, namespace, prefix)
	}

	return pkg, nil
}

// applyAliases annotates every attr whose type is a known alias string,
// recursing into inner classes. Attrs with unaliased types are left
// untouched.
func (r *DependencyResolver) applyAliases(obj *model.Class) *model.Class {
	for _, attr := range obj.Attrs {
		if alias, ok := r.aliases[attr.Type]; ok {
			attr.TypeAlias = alias
		}
	}
	for _, inner := range obj.Inner {
		r.applyAliases(inner)
	}
	return obj
}
