package server

import "testing"

func TestCorrectionSchema(t *testing.T) {
	valid := []struct {
		name string
		doc  string
	}{
		{name: "all fields set", doc: `{"total_value":"199.90","due_date":"2025-12-10","invoice_number":"123456789","carrier":"VIVO"}`},
		{name: "empty strings keep extracted values", doc: `{"total_value":"","due_date":"","invoice_number":"","carrier":""}`},
		{name: "integer total", doc: `{"total_value":"200"}`},
		{name: "empty object", doc: `{}`},
	}
	for _, tc := range valid {
		t.Run("accepts "+tc.name, func(t *testing.T) {
			if err := ValidateJSONAgainstSchema(correctionSchema, []byte(tc.doc)); err != nil {
				t.Fatalf("expected valid, got %v", err)
			}
		})
	}

	invalid := []struct {
		name string
		doc  string
	}{
		{name: "comma decimal separator", doc: `{"total_value":"199,90"}`},
		{name: "three decimal places", doc: `{"total_value":"199.901"}`},
		{name: "brazilian date format", doc: `{"due_date":"10/12/2025"}`},
		{name: "alphanumeric invoice number", doc: `{"invoice_number":"NF-123"}`},
		{name: "carrier too long", doc: `{"carrier":"UMA OPERADORA COM NOME MUITO LONGO MESMO"}`},
		{name: "wrong type", doc: `{"total_value":199.9}`},
	}
	for _, tc := range invalid {
		t.Run("rejects "+tc.name, func(t *testing.T) {
			if err := ValidateJSONAgainstSchema(correctionSchema, []byte(tc.doc)); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}
