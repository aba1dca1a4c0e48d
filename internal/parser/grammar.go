package parser

import "encoding/xml"

// Minimal XSD grammar: the subset of constructs mapped to the class model.
// Struct tags are namespace-qualified so foreign markup is ignored.

type xsdSchema struct {
	XMLName      xml.Name         `xml:"http://www.w3.org/2001/XMLSchema schema"`
	Elements     []xsdElement     `xml:"http://www.w3.org/2001/XMLSchema element"`
	ComplexTypes []xsdComplexType `xml:"http://www.w3.org/2001/XMLSchema complexType"`
	SimpleTypes  []xsdSimpleType  `xml:"http://www.w3.org/2001/XMLSchema simpleType"`
}

type xsdElement struct {
	Name        string          `xml:"name,attr"`
	Type        string          `xml:"type,attr"`
	Ref         string          `xml:"ref,attr"`
	MinOccurs   string          `xml:"minOccurs,attr"`
	MaxOccurs   string          `xml:"maxOccurs,attr"`
	Default     string          `xml:"default,attr"`
	ComplexType *xsdComplexType `xml:"http://www.w3.org/2001/XMLSchema complexType"`
	Annotation  *xsdAnnotation  `xml:"http://www.w3.org/2001/XMLSchema annotation"`
}

type xsdComplexType struct {
	Name           string         `xml:"name,attr"`
	Sequence       *xsdGroup      `xml:"http://www.w3.org/2001/XMLSchema sequence"`
	Choice         *xsdGroup      `xml:"http://www.w3.org/2001/XMLSchema choice"`
	All            *xsdGroup      `xml:"http://www.w3.org/2001/XMLSchema all"`
	Attributes     []xsdAttribute `xml:"http://www.w3.org/2001/XMLSchema attribute"`
	ComplexContent *xsdContent    `xml:"http://www.w3.org/2001/XMLSchema complexContent"`
	SimpleContent  *xsdContent    `xml:"http://www.w3.org/2001/XMLSchema simpleContent"`
	Annotation     *xsdAnnotation `xml:"http://www.w3.org/2001/XMLSchema annotation"`
}

type xsdGroup struct {
	Elements  []xsdElement `xml:"http://www.w3.org/2001/XMLSchema element"`
	Sequences []xsdGroup   `xml:"http://www.w3.org/2001/XMLSchema sequence"`
	Choices   []xsdGroup   `xml:"http://www.w3.org/2001/XMLSchema choice"`
}

type xsdContent struct {
	Extension *xsdExtension `xml:"http://www.w3.org/2001/XMLSchema extension"`
}

type xsdExtension struct {
	Base       string         `xml:"base,attr"`
	Sequence   *xsdGroup      `xml:"http://www.w3.org/2001/XMLSchema sequence"`
	Choice     *xsdGroup      `xml:"http://www.w3.org/2001/XMLSchema choice"`
	Attributes []xsdAttribute `xml:"http://www.w3.org/2001/XMLSchema attribute"`
}

type xsdAttribute struct {
	Name       string         `xml:"name,attr"`
	Type       string         `xml:"type,attr"`
	Use        string         `xml:"use,attr"`
	Default    string         `xml:"default,attr"`
	Annotation *xsdAnnotation `xml:"http://www.w3.org/2001/XMLSchema annotation"`
}

type xsdSimpleType struct {
	Name        string          `xml:"name,attr"`
	Restriction *xsdRestriction `xml:"http://www.w3.org/2001/XMLSchema restriction"`
	Annotation  *xsdAnnotation  `xml:"http://www.w3.org/2001/XMLSchema annotation"`
}

type xsdRestriction struct {
	Base         string           `xml:"base,attr"`
	Enumerations []xsdEnumeration `xml:"http://www.w3.org/2001/XMLSchema enumeration"`
}

type xsdEnumeration struct {
	Value string `xml:"value,attr"`
}

type xsdAnnotation struct {
	Documentation string `xml:"http://www.w3.org/2001/XMLSchema documentation"`
}
