package render

import (
	"strconv"

	"github.com/dave/jennifer/jen"

	"github.com/xsdkit/xsdgen/internal/model"
)

// nativeType maps a built-in schema datatype reference to its Go
// representation. Unknown built-ins fall back to string, matching the
// lexical space every schema type shares.
func nativeType(ref string) (jen.Code, bool) {
	if !model.IsXSDType(ref) {
		return nil, false
	}

	_, local, _ := model.SplitPrefix(ref)
	switch local {
	case "boolean":
		return jen.Bool(), true
	case "decimal", "float", "double":
		return jen.Float64(), true
	case "int", "integer", "negativeInteger", "nonPositiveInteger", "short", "byte":
		return jen.Int(), true
	case "long":
		return jen.Int64(), true
	case "nonNegativeInteger", "positiveInteger", "unsignedLong":
		return jen.Uint64(), true
	case "unsignedInt", "unsignedShort", "unsignedByte":
		return jen.Uint(), true
	case "date", "dateTime", "time":
		return jen.Qual("time", "Time"), true
	case "duration":
		return jen.Qual("time", "Duration"), true
	case "hexBinary", "base64Binary":
		return jen.Index().Byte(), true
	default:
		return jen.String(), true
	}
}

// enumBase picks the underlying kind for an enumeration restriction along
// with a literal constructor for its facet values. Only kinds that can
// appear in constant declarations qualify; every other base keeps the
// string lexical form. Facet values that fail to parse for their kind are
// emitted as-is.
func enumBase(ref string) (jen.Code, func(string) jen.Code) {
	str := func(value string) jen.Code { return jen.Lit(value) }

	if !model.IsXSDType(ref) {
		return jen.String(), str
	}

	_, local, _ := model.SplitPrefix(ref)
	switch local {
	case "boolean":
		return jen.Bool(), func(value string) jen.Code {
			b, err := strconv.ParseBool(value)
			if err != nil {
				return jen.Lit(value)
			}
			return jen.Lit(b)
		}
	case "decimal", "float", "double":
		return jen.Float64(), func(value string) jen.Code {
			f, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return jen.Lit(value)
			}
			return jen.Lit(f)
		}
	case "int", "integer", "negativeInteger", "nonPositiveInteger", "short", "byte",
		"long", "nonNegativeInteger", "positiveInteger", "unsignedLong",
		"unsignedInt", "unsignedShort", "unsignedByte":
		kind, _ := nativeType(ref)
		return kind, func(value string) jen.Code {
			n, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return jen.Lit(value)
			}
			return jen.Lit(int(n))
		}
	default:
		return jen.String(), str
	}
}
