package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xsdkit/xsdgen/internal/model"
	"github.com/xsdkit/xsdgen/internal/parser"
)

func renderInput(t *testing.T, in *Input) string {
	t.Helper()
	out, err := NewService().Render(in)
	require.NoError(t, err)
	return string(out)
}

func TestRenderStruct(t *testing.T) {
	source := renderInput(t, &Input{
		PackagePath: "example.com/gen/orders",
		PackageName: "orders",
		FileName:    "orders.go",
		Classes: []*model.Class{
			{
				Name: "address",
				Attrs: []*model.Attr{
					{Name: "street", Type: "xs:string", LocalType: parser.LocalTypeElement, MinOccurs: 1, MaxOccurs: 1},
					{Name: "next", Type: "address", LocalType: parser.LocalTypeElement, ForwardRef: true, MaxOccurs: 1},
					{Name: "verified", Type: "xs:boolean", LocalType: parser.LocalTypeAttribute, MinOccurs: 1, MaxOccurs: 1},
				},
			},
		},
	})

	assert.Contains(t, source, "package orders")
	assert.Contains(t, source, "Code generated by xsdgen. DO NOT EDIT.")
	assert.Contains(t, source, "type Address struct")
	// gofmt aligns struct fields, so match with flexible whitespace.
	assert.Regexp(t, "Street\\s+string\\s+`xml:\"street\"`", source)
	assert.Regexp(t, "Next\\s+\\*Address\\s+`xml:\"next,omitempty\"`", source)
	assert.Regexp(t, "Verified\\s+bool\\s+`xml:\"verified,attr\"`", source)
}

func TestRenderImportsAndAliases(t *testing.T) {
	source := renderInput(t, &Input{
		PackagePath: "example.com/gen/orders",
		PackageName: "orders",
		FileName:    "orders.go",
		Classes: []*model.Class{
			{
				Name: "order",
				Attrs: []*model.Attr{
					{Name: "billTo", Type: "common:address", LocalType: parser.LocalTypeElement, MinOccurs: 1, MaxOccurs: 1},
					{Name: "shipTo", Type: "thug:life", TypeAlias: "thug:life", LocalType: parser.LocalTypeElement, MinOccurs: 1, MaxOccurs: 1},
				},
			},
		},
		Imports: []model.Package{
			{Name: "address", Source: "example.com/gen/common"},
			{Name: "life", Alias: "thug:life", Source: "example.com/gen/thug"},
		},
	})

	assert.Contains(t, source, `ThugLife "example.com/gen/thug"`)
	assert.Contains(t, source, "common.Address")
	assert.Contains(t, source, "ThugLife.Life")
}

func TestRenderInnerClassesAreFlattened(t *testing.T) {
	source := renderInput(t, &Input{
		PackagePath: "example.com/gen/orders",
		PackageName: "orders",
		FileName:    "orders.go",
		Classes: []*model.Class{
			{
				Name: "purchaseOrder",
				Attrs: []*model.Attr{
					{Name: "items", Type: "items", LocalType: parser.LocalTypeElement, ForwardRef: true, MaxOccurs: model.Unbounded},
				},
				Inner: []*model.Class{
					{
						Name: "items",
						Attrs: []*model.Attr{
							{Name: "quantity", Type: "xs:positiveInteger", LocalType: parser.LocalTypeElement, MinOccurs: 1, MaxOccurs: 1},
						},
					},
				},
			},
		},
	})

	assert.Contains(t, source, "type PurchaseOrder struct")
	assert.Regexp(t, "Items\\s+\\[\\]PurchaseOrderItems\\s+`xml:\"items\"`", source)
	assert.Contains(t, source, "type PurchaseOrderItems struct")
	assert.Regexp(t, "Quantity\\s+uint64\\s+`xml:\"quantity\"`", source)
}

func TestRenderEnumeration(t *testing.T) {
	source := renderInput(t, &Input{
		PackagePath: "example.com/gen/orders",
		PackageName: "orders",
		FileName:    "orders.go",
		Classes: []*model.Class{
			{
				Name:       "status",
				Extensions: []string{"xs:string"},
				Attrs: []*model.Attr{
					{Name: "pending", Type: "xs:string", LocalType: parser.LocalTypeEnumeration, Default: "pending", MinOccurs: 1, MaxOccurs: 1},
					{Name: "shipped", Type: "xs:string", LocalType: parser.LocalTypeEnumeration, Default: "shipped", MinOccurs: 1, MaxOccurs: 1},
				},
			},
		},
	})

	assert.Contains(t, source, "type Status string")
	assert.Contains(t, source, `StatusPending Status = "pending"`)
	assert.Contains(t, source, `StatusShipped Status = "shipped"`)
}

func TestRenderNumericEnumeration(t *testing.T) {
	source := renderInput(t, &Input{
		PackagePath: "example.com/gen/orders",
		PackageName: "orders",
		FileName:    "orders.go",
		Classes: []*model.Class{
			{
				Name:       "priority",
				Extensions: []string{"xs:int"},
				Attrs: []*model.Attr{
					{Name: "low", Type: "xs:int", LocalType: parser.LocalTypeEnumeration, Default: "1", MinOccurs: 1, MaxOccurs: 1},
					{Name: "high", Type: "xs:int", LocalType: parser.LocalTypeEnumeration, Default: "10", MinOccurs: 1, MaxOccurs: 1},
				},
			},
		},
	})

	assert.Contains(t, source, "type Priority int")
	// gofmt aligns const blocks, so match with flexible whitespace.
	assert.Regexp(t, `PriorityLow\s+Priority = 1\n`, source)
	assert.Regexp(t, `PriorityHigh\s+Priority = 10\n`, source)
}

func TestRenderTypeAlias(t *testing.T) {
	source := renderInput(t, &Input{
		PackagePath: "example.com/gen/orders",
		PackageName: "orders",
		FileName:    "orders.go",
		Classes: []*model.Class{
			{Name: "comment", Extensions: []string{"xs:string"}},
		},
	})

	assert.Contains(t, source, "type Comment = string")
}
