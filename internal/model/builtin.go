package model

// xsdTypes holds the XSD 1.0 built-in datatype names: primitives plus the
// derived string, numeric and token types.
var xsdTypes = map[string]struct{}{}

func init() {
	for _, name := range []string{
		// Primitive types
		"string", "boolean", "decimal", "float", "double", "duration",
		"dateTime", "time", "date", "gYearMonth", "gYear", "gMonthDay",
		"gDay", "gMonth", "hexBinary", "base64Binary", "anyURI", "QName",
		"NOTATION",
		// Derived string types
		"normalizedString", "token", "language", "Name", "NCName", "ID",
		"IDREF", "IDREFS", "ENTITY", "ENTITIES", "NMTOKEN", "NMTOKENS",
		// Derived numeric types
		"integer", "nonPositiveInteger", "negativeInteger", "long", "int",
		"short", "byte", "nonNegativeInteger", "unsignedLong",
		"unsignedInt", "unsignedShort", "unsignedByte", "positiveInteger",
		// Ur types
		"anyType", "anySimpleType",
	} {
		xsdTypes[name] = struct{}{}
	}
}

// schemaPrefixes are the conventional prefixes bound to the XML Schema
// namespace in schema documents.
var schemaPrefixes = map[string]struct{}{
	"xs":  {},
	"xsd": {},
}

// IsXSDType reports whether a type reference names a built-in schema
// datatype, e.g. "xs:string" or "xsd:int". Built-ins are never emitted or
// imported; the renderer maps them straight to native types.
func IsXSDType(name string) bool {
	prefix, local, ok := SplitPrefix(name)
	if !ok {
		return false
	}
	if _, ok := schemaPrefixes[prefix]; !ok {
		return false
	}
	_, ok = xsdTypes[local]
	return ok
}
