package model

import "fmt"

// Book is the domain model for one catalog entry.
// Kept minimal on purpose; it’s easy to evolve.
type Book struct {
	Title  string
	Author string
	Year   int
	Genre  string
	Read   bool
}

// ReadLabel returns the human-readable read status.
func (b Book) ReadLabel() string {
	if b.Read {
		return "Read"
	}
	return "Unread"
}

// Render produces the one-line listing form, with a caller-supplied
// 1-based index.
func (b Book) Render(index int) string {
	return fmt.Sprintf("%d. %s by %s (%d) - %s - %s",
		index, b.Title, b.Author, b.Year, b.Genre, b.ReadLabel())
}

// Stats summarizes a library for the statistics view.
type Stats struct {
	Total       int
	ReadCount   int
	PercentRead float64 // 0.0 for an empty library, one decimal place
}
