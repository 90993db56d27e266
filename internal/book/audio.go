package book

import "fmt"

// AudioBookPeriod is the checkout period, in days, of an audio book.
const AudioBookPeriod = 21

type audioInput struct {
	Title           string `validate:"required"`
	Author          string `validate:"required"`
	ISBN            string `validate:"required"`
	Narrator        string `validate:"required"`
	DurationMinutes int    `validate:"gt=0"`
}

// AudioBook is a narrated recording.
type AudioBook struct {
	base
	narrator        string
	durationMinutes int
}

func NewAudioBook(title, author, isbn, narrator string, durationMinutes int) (*AudioBook, error) {
	b := &AudioBook{
		base:            newBase(title, author, isbn),
		narrator:        trim(narrator),
		durationMinutes: durationMinutes,
	}
	if err := check(audioInput{b.title, b.author, b.isbn, b.narrator, b.durationMinutes}); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *AudioBook) CheckoutPeriod() int  { return AudioBookPeriod }
func (b *AudioBook) Kind() Kind           { return KindAudio }
func (b *AudioBook) Narrator() string     { return b.narrator }
func (b *AudioBook) DurationMinutes() int { return b.durationMinutes }

func (b *AudioBook) DurationHours() float64 {
	return float64(b.durationMinutes) / 60.0
}

func (b *AudioBook) Details() string {
	return fmt.Sprintf("%s [Audio: %s, %.1fh]", b.DisplayInfo(), b.narrator, b.DurationHours())
}
