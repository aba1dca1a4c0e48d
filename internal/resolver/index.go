// Package resolver decides, for each processed schema document, which
// generated classes are emitted locally and which are imported from
// packages produced by earlier documents. It orders local classes so that
// dependencies precede their dependents, assigns aliases to colliding
// names and maintains the run-wide record of where every qualified name
// was emitted.
package resolver

// Index records where each qualified name ({namespace}local) was emitted
// during the current generation run. It is created once per run and shared
// by every document's resolution pass; later documents use it to locate
// types placed by earlier ones.
//
// The index is not safe for concurrent use. Documents must be fully
// resolved one at a time, in a fixed order.
type Index struct {
	processed map[string]string
}

// NewIndex creates an empty run-scoped index.
func NewIndex() *Index {
	return &Index{processed: make(map[string]string)}
}

// Register records the package that emitted qname. The first registration
// wins; re-registering an already known name is a no-op, so reprocessing a
// class within a document is idempotent and later documents can never
// steal a name placed by an earlier one.
func (i *Index) Register(qname, pkg string) {
	if _, ok := i.processed[qname]; ok {
		return
	}
	i.processed[qname] = pkg
}

// Lookup returns the package that emitted qname.
func (i *Index) Lookup(qname string) (string, bool) {
	pkg, ok := i.processed[qname]
	return pkg, ok
}

// Len reports how many qualified names have been registered.
func (i *Index) Len() int {
	return len(i.processed)
}
