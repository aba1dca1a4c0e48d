package model

// Schema is the per-document context the resolver needs from the parser:
// the target namespace, the prefix bindings declared on the document root
// and the source location.
type Schema struct {
	TargetNamespace string

	// NsMap maps declared prefixes to namespace URIs. The empty prefix key
	// holds the default namespace when one is declared.
	NsMap map[string]string

	Location string
}

// Namespace resolves a prefix against the document's bindings. The empty
// prefix resolves to the target namespace.
func (s *Schema) Namespace(prefix string) (string, bool) {
	if prefix == "" {
		return s.TargetNamespace, true
	}
	uri, ok := s.NsMap[prefix]
	return uri, ok
}
