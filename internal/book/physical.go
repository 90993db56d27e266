package book

import "fmt"

// PhysicalBookPeriod is the checkout period, in days, of a physical book.
const PhysicalBookPeriod = 14

// DefaultCondition is used when a physical book is created without one.
const DefaultCondition = "Good"

type physicalInput struct {
	Title    string `validate:"required"`
	Author   string `validate:"required"`
	ISBN     string `validate:"required"`
	Location string `validate:"required"`
}

// PhysicalBook is a shelved paper copy.
type PhysicalBook struct {
	base
	location  string
	condition string
}

// NewPhysicalBook creates a physical book. A blank condition becomes
// DefaultCondition.
func NewPhysicalBook(title, author, isbn, location, condition string) (*PhysicalBook, error) {
	b := &PhysicalBook{
		base:      newBase(title, author, isbn),
		location:  trim(location),
		condition: DefaultCondition,
	}
	if err := check(physicalInput{b.title, b.author, b.isbn, b.location}); err != nil {
		return nil, err
	}
	b.SetCondition(condition)
	return b, nil
}

func (b *PhysicalBook) CheckoutPeriod() int { return PhysicalBookPeriod }
func (b *PhysicalBook) Kind() Kind          { return KindPhysical }
func (b *PhysicalBook) Location() string    { return b.location }
func (b *PhysicalBook) Condition() string   { return b.condition }

// SetCondition updates the condition; blank values are ignored.
func (b *PhysicalBook) SetCondition(condition string) {
	if c := trim(condition); c != "" {
		b.condition = c
	}
}

func (b *PhysicalBook) Details() string {
	return fmt.Sprintf("%s [Physical: %s, %s]", b.DisplayInfo(), b.location, b.condition)
}
