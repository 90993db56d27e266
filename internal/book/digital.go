package book

import "fmt"

// DigitalBookPeriod is the checkout period, in days, of a digital book.
const DigitalBookPeriod = 7

type digitalInput struct {
	Title      string `validate:"required"`
	Author     string `validate:"required"`
	ISBN       string `validate:"required"`
	FileFormat string `validate:"required"`
}

// DigitalBook is a downloadable book.
type DigitalBook struct {
	base
	fileFormat  string
	downloadURL string
}

// NewDigitalBook creates a digital book. The download URL is derived from
// the ISBN and the file format.
func NewDigitalBook(title, author, isbn, fileFormat string) (*DigitalBook, error) {
	b := &DigitalBook{base: newBase(title, author, isbn), fileFormat: trim(fileFormat)}
	if err := check(digitalInput{b.title, b.author, b.isbn, b.fileFormat}); err != nil {
		return nil, err
	}
	b.downloadURL = fmt.Sprintf("/download/%s.%s", b.isbn, b.fileFormat)
	return b, nil
}

func (b *DigitalBook) CheckoutPeriod() int { return DigitalBookPeriod }
func (b *DigitalBook) Kind() Kind          { return KindDigital }
func (b *DigitalBook) FileFormat() string  { return b.fileFormat }
func (b *DigitalBook) DownloadURL() string { return b.downloadURL }

func (b *DigitalBook) Details() string {
	return fmt.Sprintf("%s [Digital: %s]", b.DisplayInfo(), b.fileFormat)
}
