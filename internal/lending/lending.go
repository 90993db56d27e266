// Package lending holds checkout helpers that work on any value exposing
// the right capability, not only on catalog books.
package lending

import "fmt"

// CheckoutPerioder is implemented by anything with a checkout period.
type CheckoutPerioder interface {
	CheckoutPeriod() int
}

// Availabler is implemented by anything that can report availability.
type Availabler interface {
	IsAvailable() bool
}

// Service is stateless; the zero value is ready to use.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// CalculateDueDate returns "{N} days" for items with a checkout period
// and "" for everything else.
func (s *Service) CalculateDueDate(item any) string {
	p, ok := item.(CheckoutPerioder)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%d days", p.CheckoutPeriod())
}

// CanCheckout returns the item's availability, or false when the item
// cannot report one.
func (s *Service) CanCheckout(item any) bool {
	a, ok := item.(Availabler)
	if !ok {
		return false
	}
	return a.IsAvailable()
}
