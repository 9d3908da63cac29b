package cart

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/t3chE/online-bookstore-final-assessment/domain"
)

var ErrInvalidQuantity = errors.New("invalid quantity")

// Cart is a per-session collection of cart lines, keyed by book title
// with insertion order preserved for display. Adding deliberately does
// not consult or reserve inventory: stock is checked only at checkout,
// and a line can outlive the stock that backed it.
//
// A cart belongs to one session and is not safe for concurrent use;
// the Store that hands carts out carries its own lock.
type Cart struct {
	lines []domain.CartLine
	index map[string]int // title -> position in lines
}

func New() *Cart {
	return &Cart{
		index: make(map[string]int),
	}
}

// AddBook puts quantity copies of a book into the cart. Adding a title
// already present sums the quantities onto the existing line.
func (c *Cart) AddBook(book domain.Book, quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidQuantity, quantity)
	}

	if pos, exists := c.index[book.Title]; exists {
		c.lines[pos].Quantity += quantity
		return nil
	}

	c.index[book.Title] = len(c.lines)
	c.lines = append(c.lines, domain.CartLine{Book: book, Quantity: quantity})
	return nil
}

// RemoveBook deletes the line for a title. Removing an absent title is
// a no-op, not an error.
func (c *Cart) RemoveBook(title string) {
	pos, exists := c.index[title]
	if !exists {
		return
	}

	c.lines = append(c.lines[:pos], c.lines[pos+1:]...)
	delete(c.index, title)
	for i := pos; i < len(c.lines); i++ {
		c.index[c.lines[i].Book.Title] = i
	}
}

// UpdateQuantity replaces the quantity on an existing line. Zero removes
// the line; negative values are rejected.
func (c *Cart) UpdateQuantity(title string, quantity int) error {
	if quantity < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidQuantity, quantity)
	}
	if quantity == 0 {
		c.RemoveBook(title)
		return nil
	}

	if pos, exists := c.index[title]; exists {
		c.lines[pos].Quantity = quantity
	}
	return nil
}

// Items returns the cart lines in insertion order. The slice is a copy;
// callers can hold onto it without seeing later cart mutation.
func (c *Cart) Items() []domain.CartLine {
	items := make([]domain.CartLine, len(c.lines))
	copy(items, c.lines)
	return items
}

// TotalItems returns the sum of quantities across all lines.
func (c *Cart) TotalItems() int {
	total := 0
	for _, line := range c.lines {
		total += line.Quantity
	}
	return total
}

// TotalPrice returns the cart subtotal, recomputed on every call.
func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.lines {
		total = total.Add(line.Subtotal())
	}
	return total
}

// Clear empties all lines.
func (c *Cart) Clear() {
	c.lines = nil
	c.index = make(map[string]int)
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}
