// Package validation holds the declarative rules for invoice form input.
// Create and update share the one schema declared here.
package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/GabrielVilchis-215460/nextjs-practice/internal/core/domain"
	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Form field names as submitted by the invoice form.
const (
	FieldCustomerID = "customerId"
	FieldAmount     = "amount"
	FieldStatus     = "status"
)

// fieldMessages is the message reported for any rule failure on a field.
var fieldMessages = map[string]string{
	FieldCustomerID: "Please select a customer",
	FieldAmount:     "Please enter an amount greater than $0.",
	FieldStatus:     "Please select an invoice status.",
}

// invoiceSchema declares the accepted shape of invoice input after coercion.
// 21474836.47 is the largest amount whose cents fit the 32-bit amount column.
type invoiceSchema struct {
	CustomerID string          `field:"customerId" validate:"required"`
	Amount     decimal.Decimal `field:"amount" validate:"gt=0,lte=21474836.47"`
	Status     string          `field:"status" validate:"required,oneof=pending paid"`
}

// RawInvoice is invoice input exactly as the form submitted it.
type RawInvoice struct {
	CustomerID string
	Amount     string
	Status     string
}

// InvoiceFields is invoice input that passed the schema.
type InvoiceFields struct {
	CustomerID string
	Amount     decimal.Decimal
	Status     domain.InvoiceStatus
}

var hundred = decimal.NewFromInt(100)

// AmountInCents converts the amount to minor units, rounding half away from zero.
func (f InvoiceFields) AmountInCents() int64 {
	return f.Amount.Mul(hundred).Round(0).IntPart()
}

// Result is either the coerced fields or the per-field error messages.
type Result struct {
	Fields      InvoiceFields
	FieldErrors map[string][]string
}

// Valid reports whether the input passed every rule.
func (r Result) Valid() bool {
	return len(r.FieldErrors) == 0
}

// InvoiceValidator applies the invoice schema. It is safe for concurrent use.
type InvoiceValidator struct {
	v *validatorv10.Validate
}

// NewInvoiceValidator returns a validator configured for the invoice schema.
func NewInvoiceValidator() *InvoiceValidator {
	v := validatorv10.New()

	// report errors under the form field names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("field")
	})

	// numeric rules (gt, lt, ...) see decimals as float64
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	return &InvoiceValidator{v: v}
}

// Validate coerces raw form input and checks it against the schema.
func (iv *InvoiceValidator) Validate(raw RawInvoice) Result {
	input := invoiceSchema{
		CustomerID: raw.CustomerID,
		Amount:     coerceAmount(raw.Amount),
		Status:     raw.Status,
	}

	if err := iv.v.Struct(input); err != nil {
		return Result{FieldErrors: fieldErrors(err)}
	}

	return Result{Fields: InvoiceFields{
		CustomerID: input.CustomerID,
		Amount:     input.Amount,
		Status:     domain.InvoiceStatus(input.Status),
	}}
}

// coerceAmount turns user-entered currency into a number. Empty or unparsable
// input becomes zero, which the gt=0 rule then rejects.
func coerceAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func fieldErrors(err error) map[string][]string {
	out := map[string][]string{}
	var ve validatorv10.ValidationErrors
	if !errors.As(err, &ve) {
		// only reachable on a schema programming error
		out["_form"] = []string{err.Error()}
		return out
	}
	for _, fe := range ve {
		msg, ok := fieldMessages[fe.Field()]
		if !ok {
			msg = fe.Error()
		}
		out[fe.Field()] = append(out[fe.Field()], msg)
	}
	return out
}
