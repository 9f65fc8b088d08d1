package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvoiceFormRequest_AmountFromJSON(t *testing.T) {
	cases := []struct {
		name string
		body string
		want FormAmount
	}{
		{"string", `{"amount":"12.50"}`, "12.50"},
		{"integer", `{"amount":69}`, "69"},
		{"fraction", `{"amount":12.5}`, "12.5"},
		{"exponent", `{"amount":1e3}`, "1e3"},
		{"negative", `{"amount":-1}`, "-1"},
		{"null", `{"amount":null}`, ""},
		{"absent", `{}`, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var req InvoiceFormRequest
			require.NoError(t, json.Unmarshal([]byte(tc.body), &req))
			assert.Equal(t, tc.want, req.Amount)
		})
	}
}

func TestInvoiceFormRequest_AmountRejectsNonScalar(t *testing.T) {
	for _, body := range []string{`{"amount":true}`, `{"amount":{}}`, `{"amount":[1]}`} {
		var req InvoiceFormRequest
		assert.Error(t, json.Unmarshal([]byte(body), &req), body)
	}
}
