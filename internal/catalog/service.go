package catalog

import (
	"libraryoop/internal/book"
)

// Service owns the in-memory collection of books. It is not safe for
// concurrent use.
type Service struct {
	books    []book.Book
	lender   Lender
	notifier Notifier
}

func NewService(lender Lender, notifier Notifier) (*Service, error) {
	if lender == nil {
		return nil, ErrNilLender
	}
	if notifier == nil {
		return nil, ErrNilNotifier
	}
	return &Service{
		books:    []book.Book{},
		lender:   lender,
		notifier: notifier,
	}, nil
}

func (s *Service) Lender() Lender     { return s.lender }
func (s *Service) Notifier() Notifier { return s.notifier }

// AddBook appends b. ISBN collisions are not checked; nil is ignored.
func (s *Service) AddBook(b book.Book) {
	if b == nil {
		return
	}
	s.books = append(s.books, b)
}

// AllBooks returns every book in insertion order. The slice is a copy;
// the books are shared.
func (s *Service) AllBooks() []book.Book {
	out := make([]book.Book, len(s.books))
	copy(out, s.books)
	return out
}

// BooksByType returns the books of kind ("digital", "physical" or
// "audio") in insertion order. Unknown kinds yield an empty slice.
func (s *Service) BooksByType(kind string) []book.Book {
	out := []book.Book{}
	k, ok := book.ParseKind(kind)
	if !ok {
		return out
	}
	for _, b := range s.books {
		if b.Kind() == k {
			out = append(out, b)
		}
	}
	return out
}

// BookByISBN returns the first book whose ISBN equals isbn.
func (s *Service) BookByISBN(isbn string) (book.Book, bool) {
	for _, b := range s.books {
		if b.ISBN() == isbn {
			return b, true
		}
	}
	return nil, false
}

func (s *Service) CheckoutBook(isbn string) CheckoutResult {
	b, ok := s.BookByISBN(isbn)
	if !ok {
		return CheckoutResult{Success: false, Error: ErrMsgNotFound}
	}
	if !s.lender.CanCheckout(b) {
		return CheckoutResult{Success: false, Error: ErrMsgNotAvail}
	}

	b.SetAvailability(false)
	dueDate := dueDatePrefix + s.lender.CalculateDueDate(b)

	return CheckoutResult{
		Success:        true,
		Message:        MsgCheckedOut,
		BookTitle:      b.Title(),
		DueDate:        dueDate,
		CheckoutPeriod: b.CheckoutPeriod(),
		Notification:   s.notifier.SendCheckoutNotification(b.Title(), dueDate),
	}
}

func (s *Service) ReturnBook(isbn string) ReturnResult {
	b, ok := s.BookByISBN(isbn)
	if !ok {
		return ReturnResult{Success: false, Error: ErrMsgNotFound}
	}
	if b.IsAvailable() {
		return ReturnResult{Success: false, Error: ErrMsgNotLent}
	}

	b.SetAvailability(true)
	return ReturnResult{
		Success:      true,
		Message:      MsgReturned,
		BookTitle:    b.Title(),
		Notification: s.notifier.SendReturnNotification(b.Title()),
	}
}

// AvailabilityReport summarises the collection. The average checkout
// period of an empty catalog is 0.
func (s *Service) AvailabilityReport() AvailabilityReport {
	report := AvailabilityReport{
		TotalBooks: len(s.books),
		ByType:     make(map[string]TypeReport, len(book.Kinds)),
	}
	for _, k := range book.Kinds {
		report.ByType[k.String()] = TypeReport{}
	}

	periodSum := 0
	for _, b := range s.books {
		periodSum += b.CheckoutPeriod()
		if b.IsAvailable() {
			report.AvailableBooks++
		}

		name := b.Kind().String()
		tr, ok := report.ByType[name]
		if !ok {
			continue
		}
		tr.Total++
		if b.IsAvailable() {
			tr.Available++
		}
		report.ByType[name] = tr
	}

	report.CheckedOutBooks = report.TotalBooks - report.AvailableBooks
	if report.TotalBooks > 0 {
		report.AverageCheckoutPeriod = float64(periodSum) / float64(report.TotalBooks)
	}
	return report
}

// SearchBooks returns books whose title or author contains query,
// ignoring case. An empty query matches everything.
func (s *Service) SearchBooks(query string) []book.Book {
	out := []book.Book{}
	for _, b := range s.books {
		if b.MatchesQuery(query) {
			out = append(out, b)
		}
	}
	return out
}
