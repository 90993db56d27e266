package catalog

import "errors"

var (
	ErrNilLender   = errors.New("lender cannot be nil")
	ErrNilNotifier = errors.New("notifier cannot be nil")
)

const (
	MsgCheckedOut  = "Book checked out successfully"
	MsgReturned    = "Book returned successfully"
	ErrMsgNotFound = "ISBN not found"
	ErrMsgNotAvail = "Book Not available"
	ErrMsgNotLent  = "Book is not checked out"
	dueDatePrefix  = "Due in "
)

// CheckoutResult is the outcome of CheckoutBook. On failure only Success
// and Error are set.
type CheckoutResult struct {
	Success        bool   `json:"success"`
	Message        string `json:"message,omitempty"`
	BookTitle      string `json:"book_title,omitempty"`
	DueDate        string `json:"due_date,omitempty"`
	CheckoutPeriod int    `json:"checkout_period,omitempty"`
	Notification   string `json:"notification,omitempty"`
	Error          string `json:"error,omitempty"`
}

// ReturnResult is the outcome of ReturnBook.
type ReturnResult struct {
	Success      bool   `json:"success"`
	Message      string `json:"message,omitempty"`
	BookTitle    string `json:"book_title,omitempty"`
	Notification string `json:"notification,omitempty"`
	Error        string `json:"error,omitempty"`
}

type TypeReport struct {
	Total     int `json:"total"`
	Available int `json:"available"`
}

type AvailabilityReport struct {
	TotalBooks            int                   `json:"total_books"`
	AvailableBooks        int                   `json:"available_books"`
	CheckedOutBooks       int                   `json:"checked_out_books"`
	ByType                map[string]TypeReport `json:"by_type"`
	AverageCheckoutPeriod float64               `json:"average_checkout_period"`
}
