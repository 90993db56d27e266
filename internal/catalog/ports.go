package catalog

//go:generate mockgen -source=ports.go -destination=mock_ports_test.go -package=catalog

// Lender decides whether an item can be lent and for how long.
type Lender interface {
	CalculateDueDate(item any) string
	CanCheckout(item any) bool
}

// Notifier formats the messages sent to borrowers.
type Notifier interface {
	SendCheckoutNotification(title, dueDate string) string
	SendReturnNotification(title string) string
}
