package validation

import (
	"testing"

	"github.com/GabrielVilchis-215460/nextjs-practice/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_ValidInput(t *testing.T) {
	v := NewInvoiceValidator()

	res := v.Validate(RawInvoice{CustomerID: "c1", Amount: "69", Status: "pending"})

	require.True(t, res.Valid())
	assert.Equal(t, "c1", res.Fields.CustomerID)
	assert.True(t, decimal.NewFromInt(69).Equal(res.Fields.Amount))
	assert.Equal(t, domain.StatusPending, res.Fields.Status)
	assert.Equal(t, int64(6900), res.Fields.AmountInCents())
}

func TestValidate_AmountNotPositive(t *testing.T) {
	v := NewInvoiceValidator()

	for _, amount := range []string{"0", "-1", "-0.01", "", "   ", "abc", "12abc", "NaN", "$5"} {
		t.Run(amount, func(t *testing.T) {
			res := v.Validate(RawInvoice{CustomerID: "c1", Amount: amount, Status: "paid"})

			require.False(t, res.Valid())
			assert.Equal(t, []string{"Please enter an amount greater than $0."}, res.FieldErrors[FieldAmount])
			assert.NotContains(t, res.FieldErrors, FieldCustomerID)
			assert.NotContains(t, res.FieldErrors, FieldStatus)
		})
	}
}

func TestValidate_AmountTooLargeForCents(t *testing.T) {
	v := NewInvoiceValidator()

	for _, amount := range []string{"21474836.48", "21474836.475", "99999999", "184467440737095516.17", "1e30"} {
		t.Run(amount, func(t *testing.T) {
			res := v.Validate(RawInvoice{CustomerID: "c1", Amount: amount, Status: "paid"})

			require.False(t, res.Valid())
			assert.Equal(t, map[string][]string{
				FieldAmount: {"Please enter an amount greater than $0."},
			}, res.FieldErrors)
			assert.Zero(t, res.Fields.AmountInCents())
		})
	}
}

func TestValidate_CustomerMissing(t *testing.T) {
	v := NewInvoiceValidator()

	res := v.Validate(RawInvoice{CustomerID: "", Amount: "10", Status: "paid"})

	require.False(t, res.Valid())
	assert.Equal(t, map[string][]string{
		FieldCustomerID: {"Please select a customer"},
	}, res.FieldErrors)
}

func TestValidate_StatusOutsideEnum(t *testing.T) {
	v := NewInvoiceValidator()

	for _, status := range []string{"", "PAID", "Pending", "overdue", " paid"} {
		t.Run(status, func(t *testing.T) {
			res := v.Validate(RawInvoice{CustomerID: "c1", Amount: "10", Status: status})

			require.False(t, res.Valid())
			assert.Equal(t, []string{"Please select an invoice status."}, res.FieldErrors[FieldStatus])
		})
	}
}

func TestValidate_EveryFieldInvalid(t *testing.T) {
	v := NewInvoiceValidator()

	res := v.Validate(RawInvoice{})

	require.False(t, res.Valid())
	assert.Len(t, res.FieldErrors, 3)
	assert.Equal(t, InvoiceFields{}, res.Fields)
}

func TestValidate_AmountCoercion(t *testing.T) {
	v := NewInvoiceValidator()

	cases := []struct {
		amount string
		cents  int64
	}{
		{"69", 6900},
		{" 12.5 ", 1250},
		{"0.01", 1},
		{"19.999", 2000},
		{"10.005", 1001},
		{"1e3", 100000},
		{"1234567.89", 123456789},
		{"21474836.47", 2147483647},
	}
	for _, tc := range cases {
		t.Run(tc.amount, func(t *testing.T) {
			res := v.Validate(RawInvoice{CustomerID: "c1", Amount: tc.amount, Status: "paid"})

			require.True(t, res.Valid(), "errors: %v", res.FieldErrors)
			assert.Equal(t, tc.cents, res.Fields.AmountInCents())
		})
	}
}
