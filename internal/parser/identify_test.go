package parser

import "testing"

func TestIdentifyCarrier(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string
	}{
		{name: "vivo brand", text: "fatura VIVO empresas", want: "VIVO"},
		{name: "telefonica maps to vivo", text: "TELEFONICA BRASIL S.A.", want: "VIVO"},
		{name: "claro brand", text: "sua conta Claro chegou", want: "CLARO"},
		{name: "embratel maps to claro", text: "EMBRATEL TVSAT", want: "CLARO"},
		{name: "vivo wins when both appear", text: "claro ... vivo", want: "VIVO"},
		{name: "unknown", text: "fatura de energia", want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IdentifyCarrier(tc.text); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
