package naming

import "testing"

func TestToClassName(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"purchase-order", "PurchaseOrder"},
		{"purchase_order", "PurchaseOrder"},
		{"order", "Order"},
		{"common:type", "CommonType"},
		{"2ndItem", "Value2ndItem"},
	}

	for _, tt := range tests {
		if got := ToClassName(tt.in); got != tt.expected {
			t.Errorf("ToClassName(%q) = %q, want %q", tt.in, got, tt.expected)
		}
	}
}

func TestToFieldName(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"ship-to", "ShipTo"},
		{"comment", "Comment"},
		{"USPrice", "USPrice"},
	}

	for _, tt := range tests {
		if got := ToFieldName(tt.in); got != tt.expected {
			t.Errorf("ToFieldName(%q) = %q, want %q", tt.in, got, tt.expected)
		}
	}
}

func TestToPackageName(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"purchase-order", "purchaseorder"},
		{"Common", "common"},
		{"2common", "schema2common"},
	}

	for _, tt := range tests {
		if got := ToPackageName(tt.in); got != tt.expected {
			t.Errorf("ToPackageName(%q) = %q, want %q", tt.in, got, tt.expected)
		}
	}
}

func TestToImportAlias(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"thug:life", "ThugLife"},
		{"common:type", "CommonType"},
		{"plain", "Plain"},
	}

	for _, tt := range tests {
		if got := ToImportAlias(tt.in); got != tt.expected {
			t.Errorf("ToImportAlias(%q) = %q, want %q", tt.in, got, tt.expected)
		}
	}
}
