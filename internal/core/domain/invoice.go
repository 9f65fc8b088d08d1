package domain

// InvoiceStatus is the payment state of an invoice.
type InvoiceStatus string

const (
	StatusPending InvoiceStatus = "pending"
	StatusPaid    InvoiceStatus = "paid"
)

// InvoicesListingPath is the route of the invoices listing view. Every action
// invalidates it and create/update redirect to it.
const InvoicesListingPath = "/dashboard/invoices"

// DateLayout is the storage format of Invoice.Date.
const DateLayout = "2006-01-02"

// Invoice represents a single invoice record.
type Invoice struct {
	ID          string        `json:"id"`         // Assigned by storage, immutable
	CustomerID  string        `json:"customerId"` // FK -> customers.id
	AmountCents int64         `json:"amount"`     // Minor units (cents)
	Status      InvoiceStatus `json:"status"`     // pending | paid
	Date        string        `json:"date"`       // YYYY-MM-DD, set once at creation
}

// InvoiceUpdate carries the only fields an update may touch.
type InvoiceUpdate struct {
	CustomerID  string
	AmountCents int64
	Status      InvoiceStatus
}

// InvoiceListItem is an invoice joined with the customer it was issued to.
type InvoiceListItem struct {
	Invoice
	CustomerName     string `json:"name"`
	CustomerEmail    string `json:"email"`
	CustomerImageURL string `json:"imageUrl"`
}

// InvoicePage is one page of the filtered invoices listing.
type InvoicePage struct {
	Items      []InvoiceListItem
	Query      string
	Page       int
	TotalPages int
}
