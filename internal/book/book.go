package book

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ErrEmptyTitle is returned when a title is empty or whitespace-only.
var ErrEmptyTitle = errors.New("title cannot be empty")

// ErrInvalidBook is returned when a constructor receives invalid input.
var ErrInvalidBook = errors.New("invalid book")

// Book is the capability set shared by every book variant.
type Book interface {
	ID() string
	Title() string
	SetTitle(title string) error
	Author() string
	ISBN() string
	IsAvailable() bool
	SetAvailability(available bool)
	CheckoutPeriod() int
	Kind() Kind
	DisplayInfo() string
	Details() string
	MatchesQuery(query string) bool
}

// base holds the fields common to all variants. Variants embed it and
// supply CheckoutPeriod, Kind and Details.
type base struct {
	id        string
	title     string
	author    string
	isbn      string
	available bool
}

func newBase(title, author, isbn string) base {
	return base{
		id:        uuid.New().String(),
		title:     strings.TrimSpace(title),
		author:    strings.TrimSpace(author),
		isbn:      strings.TrimSpace(isbn),
		available: true,
	}
}

func (b *base) ID() string     { return b.id }
func (b *base) Title() string  { return b.title }
func (b *base) Author() string { return b.author }
func (b *base) ISBN() string   { return b.isbn }

// SetTitle replaces the title with its trimmed value.
func (b *base) SetTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitle
	}
	b.title = title
	return nil
}

func (b *base) IsAvailable() bool {
	return b.available
}

func (b *base) SetAvailability(available bool) {
	b.available = available
}

// DisplayInfo returns "'{title}' by {author}".
func (b *base) DisplayInfo() string {
	return fmt.Sprintf("'%s' by %s", b.title, b.author)
}

// MatchesQuery reports whether query is a case-insensitive substring of
// the title or the author. An empty query matches every book.
func (b *base) MatchesQuery(query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(b.title), q) ||
		strings.Contains(strings.ToLower(b.author), q)
}

func trim(s string) string {
	return strings.TrimSpace(s)
}
