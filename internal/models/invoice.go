package models

// Invoice is a row of the invoices table.
type Invoice struct {
	ID         string `db:"id"`
	CustomerID string `db:"customer_id"`
	Amount     int64  `db:"amount"` // cents
	Status     string `db:"status"`
	Date       string `db:"date"` // YYYY-MM-DD
}

// InvoiceWithCustomer is an invoices row joined with its customers row.
type InvoiceWithCustomer struct {
	Invoice
	Name     string `db:"name"`
	Email    string `db:"email"`
	ImageURL string `db:"image_url"`
}
