package orchestrator

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xsdkit/xsdgen/internal/resolver"
)

const commonSchema = `<?xml version="1.0"?>
<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema"
           targetNamespace="http://example.com/common">
  <xs:complexType name="address">
    <xs:sequence>
      <xs:element name="street" type="xs:string"/>
      <xs:element name="city" type="xs:string"/>
    </xs:sequence>
  </xs:complexType>
</xs:schema>`

const ordersSchema = `<?xml version="1.0"?>
<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema"
           xmlns:tns="http://example.com/orders"
           xmlns:common="http://example.com/common"
           targetNamespace="http://example.com/orders">
  <xs:complexType name="customer">
    <xs:sequence>
      <xs:element name="name" type="xs:string"/>
    </xs:sequence>
  </xs:complexType>
  <xs:complexType name="order">
    <xs:sequence>
      <xs:element name="billTo" type="common:address"/>
      <xs:element name="customer" type="tns:customer"/>
    </xs:sequence>
  </xs:complexType>
</xs:schema>`

func writeSchemas(t *testing.T) (dir, common, orders string) {
	t.Helper()
	dir = t.TempDir()
	common = filepath.Join(dir, "common.xsd")
	orders = filepath.Join(dir, "orders.xsd")
	require.NoError(t, os.WriteFile(common, []byte(commonSchema), 0o644))
	require.NoError(t, os.WriteFile(orders, []byte(ordersSchema), 0o644))
	return dir, common, orders
}

func TestRunGeneratesCrossDocumentImports(t *testing.T) {
	dir, common, orders := writeSchemas(t)
	out := filepath.Join(dir, "gen")

	svc := New(&Config{
		OutputDir:   out,
		PackageBase: "example.com/gen",
	})

	require.NoError(t, svc.Run([]string{common, orders}))

	commonSrc, err := os.ReadFile(filepath.Join(out, "common", "common.go"))
	require.NoError(t, err)
	assert.Contains(t, string(commonSrc), "package common")
	assert.Contains(t, string(commonSrc), "type Address struct")

	ordersSrc, err := os.ReadFile(filepath.Join(out, "orders", "orders.go"))
	require.NoError(t, err)
	assert.Contains(t, string(ordersSrc), "package orders")
	assert.Contains(t, string(ordersSrc), `"example.com/gen/common"`)
	assert.Contains(t, string(ordersSrc), "common.Address")
	// customer precedes order: dependencies come first.
	customerIdx := strings.Index(string(ordersSrc), "type Customer struct")
	orderIdx := strings.Index(string(ordersSrc), "type Order struct")
	require.GreaterOrEqual(t, customerIdx, 0)
	require.GreaterOrEqual(t, orderIdx, 0)
	assert.Less(t, customerIdx, orderIdx)
}

func TestRunMisorderedDocumentsFail(t *testing.T) {
	dir, common, orders := writeSchemas(t)
	out := filepath.Join(dir, "gen")

	svc := New(&Config{
		OutputDir:   out,
		PackageBase: "example.com/gen",
	})

	err := svc.Run([]string{orders, common})
	require.Error(t, err)
	assert.True(t, errors.Is(err, resolver.ErrUnresolvedReference))
}

func TestRunPackageOverrides(t *testing.T) {
	dir, common, orders := writeSchemas(t)
	out := filepath.Join(dir, "gen")

	svc := New(&Config{
		OutputDir:   out,
		PackageBase: "example.com/gen",
		PackageOverrides: map[string]string{
			"http://example.com/common": "shared",
		},
	})

	require.NoError(t, svc.Run([]string{common, orders}))

	src, err := os.ReadFile(filepath.Join(out, "shared", "shared.go"))
	require.NoError(t, err)
	assert.Contains(t, string(src), "package shared")

	ordersSrc, err := os.ReadFile(filepath.Join(out, "orders", "orders.go"))
	require.NoError(t, err)
	assert.Contains(t, string(ordersSrc), `"example.com/gen/shared"`)
}

func TestRunDuplicatePackageNamesFail(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "a", "common.xsd")
	second := filepath.Join(dir, "b", "common.xsd")
	require.NoError(t, os.MkdirAll(filepath.Dir(first), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Dir(second), 0o755))
	require.NoError(t, os.WriteFile(first, []byte(commonSchema), 0o644))
	otherSchema := strings.ReplaceAll(commonSchema, "http://example.com/common", "http://example.com/other")
	require.NoError(t, os.WriteFile(second, []byte(otherSchema), 0o644))

	svc := New(&Config{
		OutputDir:   filepath.Join(dir, "gen"),
		PackageBase: "example.com/gen",
	})

	err := svc.Run([]string{first, second})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `package "common"`)
	assert.Contains(t, err.Error(), "already written")
}

func TestRunNoFiles(t *testing.T) {
	require.Error(t, New(nil).Run(nil))
}
