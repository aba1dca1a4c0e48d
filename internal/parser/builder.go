package parser

import (
	"strconv"
	"strings"

	"github.com/xsdkit/xsdgen/internal/model"
)

// Attr local-type markers.
const (
	LocalTypeElement     = "Element"
	LocalTypeAttribute   = "Attribute"
	LocalTypeEnumeration = "Enumeration"
)

// buildClasses maps the parsed grammar to classes: one per global complex
// type, one per global element and one per named simple type, in schema
// order.
func buildClasses(root *xsdSchema, schema *model.Schema) []*model.Class {
	var classes []*model.Class

	for _, el := range root.Elements {
		classes = append(classes, buildElementClass(&el, schema))
	}
	for _, ct := range root.ComplexTypes {
		classes = append(classes, buildComplexType(ct.Name, &ct, schema))
	}
	for _, st := range root.SimpleTypes {
		classes = append(classes, buildSimpleType(&st, schema))
	}

	return classes
}

// buildElementClass converts a global element. An inline complex type
// carries the full definition; a type reference becomes an extension.
func buildElementClass(el *xsdElement, schema *model.Schema) *model.Class {
	if el.ComplexType != nil {
		obj := buildComplexType(el.Name, el.ComplexType, schema)
		if obj.Help == "" {
			obj.Help = documentation(el.Annotation)
		}
		return obj
	}

	obj := &model.Class{
		Name: el.Name,
		Help: documentation(el.Annotation),
	}
	if el.Type != "" {
		obj.Extensions = append(obj.Extensions, normalizeTypeRef(schema, el.Type))
	}
	return obj
}

func buildComplexType(name string, ct *xsdComplexType, schema *model.Schema) *model.Class {
	obj := &model.Class{
		Name: name,
		Help: documentation(ct.Annotation),
	}

	appendGroup(obj, ct.Sequence, schema)
	appendGroup(obj, ct.Choice, schema)
	appendGroup(obj, ct.All, schema)
	appendAttributes(obj, ct.Attributes, schema)

	for _, content := range []*xsdContent{ct.ComplexContent, ct.SimpleContent} {
		if content == nil || content.Extension == nil {
			continue
		}
		ext := content.Extension
		obj.Extensions = append(obj.Extensions, normalizeTypeRef(schema, ext.Base))
		appendGroup(obj, ext.Sequence, schema)
		appendGroup(obj, ext.Choice, schema)
		appendAttributes(obj, ext.Attributes, schema)
	}

	return obj
}

// appendGroup flattens a sequence/choice/all particle, including nested
// groups, into attrs of obj.
func appendGroup(obj *model.Class, group *xsdGroup, schema *model.Schema) {
	if group == nil {
		return
	}

	for _, el := range group.Elements {
		obj.Attrs = append(obj.Attrs, buildAttr(obj, &el, schema))
	}
	for _, nested := range group.Sequences {
		appendGroup(obj, &nested, schema)
	}
	for _, nested := range group.Choices {
		appendGroup(obj, &nested, schema)
	}
}

// buildAttr converts one element particle. An anonymous complex type
// becomes an inner class of obj, referenced by a forward ref since nested
// declarations cannot precede their parent.
func buildAttr(obj *model.Class, el *xsdElement, schema *model.Schema) *model.Attr {
	attr := &model.Attr{
		Name:      el.Name,
		LocalType: LocalTypeElement,
		Default:   el.Default,
		MinOccurs: parseOccurs(el.MinOccurs, 1),
		MaxOccurs: parseOccurs(el.MaxOccurs, 1),
	}

	switch {
	case el.Ref != "":
		attr.Name = localName(el.Ref)
		attr.Type = normalizeTypeRef(schema, el.Ref)
	case el.ComplexType != nil:
		inner := buildComplexType(el.Name, el.ComplexType, schema)
		obj.Inner = append(obj.Inner, inner)
		attr.Type = inner.Name
		attr.ForwardRef = true
	default:
		attr.Type = normalizeTypeRef(schema, el.Type)
	}

	return attr
}

func appendAttributes(obj *model.Class, attributes []xsdAttribute, schema *model.Schema) {
	for _, at := range attributes {
		maxOccurs := 1
		minOccurs := 0
		if at.Use == "required" {
			minOccurs = 1
		}
		obj.Attrs = append(obj.Attrs, &model.Attr{
			Name:      at.Name,
			Type:      normalizeTypeRef(schema, at.Type),
			LocalType: LocalTypeAttribute,
			Default:   at.Default,
			MinOccurs: minOccurs,
			MaxOccurs: maxOccurs,
		})
	}
}

// buildSimpleType converts a named simple type. Enumeration facets become
// constant attrs; the restriction base is kept as an extension so the
// renderer knows the underlying type.
func buildSimpleType(st *xsdSimpleType, schema *model.Schema) *model.Class {
	obj := &model.Class{
		Name: st.Name,
		Help: documentation(st.Annotation),
	}

	if st.Restriction == nil {
		return obj
	}

	base := normalizeTypeRef(schema, st.Restriction.Base)
	obj.Extensions = append(obj.Extensions, base)

	for _, enum := range st.Restriction.Enumerations {
		obj.Attrs = append(obj.Attrs, &model.Attr{
			Name:      enum.Value,
			Type:      base,
			LocalType: LocalTypeEnumeration,
			Default:   enum.Value,
			MinOccurs: 1,
			MaxOccurs: 1,
		})
	}

	return obj
}

// markForwardRefs flags attrs that reference their own top-level class or
// any class nested inside it. Those references are circular by
// construction and are satisfied by the renderer without ordering.
func markForwardRefs(classes []*model.Class) {
	for _, obj := range classes {
		scope := make(map[string]bool)
		collectScope(obj, scope)
		flagForwardRefs(obj, scope)
	}
}

func collectScope(obj *model.Class, scope map[string]bool) {
	scope[obj.Name] = true
	for _, inner := range obj.Inner {
		collectScope(inner, scope)
	}
}

func flagForwardRefs(obj *model.Class, scope map[string]bool) {
	for _, attr := range obj.Attrs {
		if _, _, qualified := model.SplitPrefix(attr.Type); qualified {
			continue
		}
		if scope[attr.Type] {
			attr.ForwardRef = true
		}
	}
	for _, inner := range obj.Inner {
		flagForwardRefs(inner, scope)
	}
}

// normalizeTypeRef rewrites a raw type reference into resolver form:
// schema-namespace references get the canonical xs prefix, references into
// the document's own target namespace drop their prefix, anything else is
// kept verbatim.
func normalizeTypeRef(schema *model.Schema, ref string) string {
	if ref == "" {
		return ref
	}

	prefix, local, qualified := model.SplitPrefix(ref)
	if !qualified {
		if schema.NsMap[""] == XMLSchemaNamespace {
			return "xs:" + local
		}
		return ref
	}

	switch schema.NsMap[prefix] {
	case XMLSchemaNamespace:
		return "xs:" + local
	case schema.TargetNamespace:
		return local
	}
	return ref
}

func localName(ref string) string {
	_, local, _ := model.SplitPrefix(ref)
	return local
}

func parseOccurs(value string, fallback int) int {
	switch value {
	case "":
		return fallback
	case "unbounded":
		return model.Unbounded
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return n
}

func documentation(a *xsdAnnotation) string {
	if a == nil {
		return ""
	}
	return strings.TrimSpace(a.Documentation)
}
