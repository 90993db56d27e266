package book

// View is a serialisable snapshot of a book.
type View struct {
	ID              string   `json:"id"`
	Type            string   `json:"type"`
	Title           string   `json:"title"`
	Author          string   `json:"author"`
	ISBN            string   `json:"isbn"`
	Available       bool     `json:"available"`
	CheckoutPeriod  int      `json:"checkout_period"`
	Details         string   `json:"details"`
	FileFormat      string   `json:"file_format,omitempty"`
	DownloadURL     string   `json:"download_url,omitempty"`
	Location        string   `json:"location,omitempty"`
	Condition       string   `json:"condition,omitempty"`
	Narrator        string   `json:"narrator,omitempty"`
	DurationMinutes int      `json:"duration_minutes,omitempty"`
	DurationHours   *float64 `json:"duration_hours,omitempty"`
}

// NewView snapshots b, including variant-specific fields.
func NewView(b Book) View {
	v := View{
		ID:             b.ID(),
		Type:           b.Kind().String(),
		Title:          b.Title(),
		Author:         b.Author(),
		ISBN:           b.ISBN(),
		Available:      b.IsAvailable(),
		CheckoutPeriod: b.CheckoutPeriod(),
		Details:        b.Details(),
	}

	switch t := b.(type) {
	case *DigitalBook:
		v.FileFormat = t.FileFormat()
		v.DownloadURL = t.DownloadURL()
	case *PhysicalBook:
		v.Location = t.Location()
		v.Condition = t.Condition()
	case *AudioBook:
		hours := t.DurationHours()
		v.Narrator = t.Narrator()
		v.DurationMinutes = t.DurationMinutes()
		v.DurationHours = &hours
	}
	return v
}

// NewViews snapshots every book in order.
func NewViews(books []Book) []View {
	views := make([]View, 0, len(books))
	for _, b := range books {
		views = append(views, NewView(b))
	}
	return views
}
