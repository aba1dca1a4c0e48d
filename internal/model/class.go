// Package model contains the intermediate class model shared between the
// schema parser, the dependency resolver and the renderer. The parser owns
// construction of these values; the resolver only reads them and annotates
// attribute type aliases.
package model

// Class is a generated type extracted from one schema document: a named
// sequence of attributes, optional nested inner classes and base-type
// extension references.
type Class struct {
	// Name is unique among the top-level classes of one document.
	Name string

	// Attrs are the fields of the generated type, in schema order.
	Attrs []*Attr

	// Inner holds anonymous complex types defined inline, rendered as
	// nested declarations of this class.
	Inner []*Class

	// Extensions lists base-type references, possibly namespace-qualified
	// (prefix:local form).
	Extensions []string

	// Help carries schema annotation/documentation text.
	Help string
}

// Attr is a single field of a Class.
type Attr struct {
	Name string

	// Type is the referenced type name, either a built-in schema type,
	// a local class name, or a prefix:local qualified reference.
	Type string

	// LocalType records which schema construct produced the attr,
	// e.g. "Element" or "Attribute".
	LocalType string

	// ForwardRef marks a self-referential or circular reference that the
	// renderer satisfies with a deferred reference instead of requiring
	// prior definition.
	ForwardRef bool

	// TypeAlias is set by the resolver when Type collides with an
	// imported name and must be rendered under an alias. Unset otherwise.
	TypeAlias string

	MinOccurs int
	MaxOccurs int
	Default   string
}

// Unbounded is the MaxOccurs value for maxOccurs="unbounded".
const Unbounded = -1

// IsList reports whether the attr repeats and renders as a slice.
func (a *Attr) IsList() bool {
	return a.MaxOccurs == Unbounded || a.MaxOccurs > 1
}

// IsOptional reports whether the attr may be absent.
func (a *Attr) IsOptional() bool {
	return a.MinOccurs == 0
}

// Package is an import record produced by the resolver: a symbol imported
// from the package that emitted it, optionally under an alias.
type Package struct {
	Name   string
	Alias  string
	Source string
}
