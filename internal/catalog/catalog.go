package catalog

import (
	"strings"

	"github.com/t3chE/online-bookstore-final-assessment/domain"
)

// Catalog is the immutable set of purchasable books, built once at
// startup and keyed by title. Duplicate titles keep the first entry.
type Catalog struct {
	books   []domain.Book
	byTitle map[string]domain.Book
}

func New(books []domain.Book) *Catalog {
	c := &Catalog{
		byTitle: make(map[string]domain.Book, len(books)),
	}
	for _, b := range books {
		if _, exists := c.byTitle[b.Title]; exists {
			continue
		}
		c.byTitle[b.Title] = b
		c.books = append(c.books, b)
	}
	return c
}

func (c *Catalog) Get(title string) (domain.Book, bool) {
	b, exists := c.byTitle[title]
	return b, exists
}

// List returns all books in load order.
func (c *Catalog) List() []domain.Book {
	books := make([]domain.Book, len(c.books))
	copy(books, c.books)
	return books
}

// Search returns books whose title contains the query,
// case-insensitively. An empty query matches nothing.
func (c *Catalog) Search(query string) []domain.Book {
	if query == "" {
		return nil
	}
	q := strings.ToLower(query)

	var matches []domain.Book
	for _, b := range c.books {
		if strings.Contains(strings.ToLower(b.Title), q) {
			matches = append(matches, b)
		}
	}
	return matches
}

// ByCategory returns books with exactly the given category.
func (c *Catalog) ByCategory(category string) []domain.Book {
	var matches []domain.Book
	for _, b := range c.books {
		if b.Category == category {
			matches = append(matches, b)
		}
	}
	return matches
}
