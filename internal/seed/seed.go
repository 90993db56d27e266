// Package seed builds catalog fixtures, either the canonical three-book
// set or one decoded from JSON.
package seed

import (
	"errors"
	"fmt"
	"io"
	"os"

	"libraryoop/internal/book"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var ErrUnknownType = errors.New("unknown book type")

// Entry is one book in a seed file. Only the fields of its type are used.
type Entry struct {
	Type            string `json:"type"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	ISBN            string `json:"isbn"`
	FileFormat      string `json:"file_format,omitempty"`
	Location        string `json:"location,omitempty"`
	Condition       string `json:"condition,omitempty"`
	Narrator        string `json:"narrator,omitempty"`
	DurationMinutes int    `json:"duration_minutes,omitempty"`
}

// DefaultEntries is the canonical fixture.
var DefaultEntries = []Entry{
	{Type: "digital", Title: "Python OOP", Author: "Jane Developer", ISBN: "1111111111", FileFormat: "pdf"},
	{Type: "physical", Title: "Clean Code", Author: "Robert Martin", ISBN: "2222222222", Location: "Section A", Condition: "Excellent"},
	{Type: "audio", Title: "Design Patterns", Author: "Gang of Four", ISBN: "3333333333", Narrator: "John Narrator", DurationMinutes: 480},
}

// Default returns freshly built books for DefaultEntries.
func Default() []book.Book {
	books, err := Build(DefaultEntries)
	if err != nil {
		panic(fmt.Sprintf("seed: default fixture: %v", err))
	}
	return books
}

// Build turns entries into books, failing on the first bad entry.
func Build(entries []Entry) ([]book.Book, error) {
	books := make([]book.Book, 0, len(entries))
	for i, e := range entries {
		b, err := e.Book()
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		books = append(books, b)
	}
	return books, nil
}

// Book constructs the variant named by e.Type.
func (e Entry) Book() (book.Book, error) {
	kind, _ := book.ParseKind(e.Type)
	switch kind {
	case book.KindDigital:
		b, err := book.NewDigitalBook(e.Title, e.Author, e.ISBN, e.FileFormat)
		if err != nil {
			return nil, err
		}
		return b, nil
	case book.KindPhysical:
		b, err := book.NewPhysicalBook(e.Title, e.Author, e.ISBN, e.Location, e.Condition)
		if err != nil {
			return nil, err
		}
		return b, nil
	case book.KindAudio:
		b, err := book.NewAudioBook(e.Title, e.Author, e.ISBN, e.Narrator, e.DurationMinutes)
		if err != nil {
			return nil, err
		}
		return b, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, e.Type)
	}
}

// Load decodes a JSON array of entries from r and builds the books.
func Load(r io.Reader) ([]book.Book, error) {
	var entries []Entry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	return Build(entries)
}

// LoadFile is Load on the file at path.
func LoadFile(path string) ([]book.Book, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed: %w", err)
	}
	defer f.Close()
	return Load(f)
}
