package model

import "strings"

// QName builds the {namespace}local identity key used by the process-wide
// index. A type with no namespace is keyed by its bare local name.
func QName(namespace, local string) string {
	if namespace == "" {
		return local
	}
	return "{" + namespace + "}" + local
}

// SplitPrefix splits a prefix:local type reference. ok is false when the
// reference carries no prefix.
func SplitPrefix(name string) (prefix, local string, ok bool) {
	idx := strings.Index(name, ":")
	if idx < 0 {
		return "", name, false
	}
	return name[:idx], name[idx+1:], true
}
