package inventory

import (
	"fmt"
	"sync"

	"github.com/t3chE/online-bookstore-final-assessment/domain"
)

// MemoryLedger implements Ledger with in-memory storage. One RWMutex
// guards the whole ledger; the check-then-decrement sequence in the
// commit methods runs entirely under the write lock, so concurrent
// checkouts cannot drive stock negative.
type MemoryLedger struct {
	mu     sync.RWMutex
	stocks map[string]int // title -> remaining quantity
}

// NewMemoryLedger creates an empty in-memory inventory ledger.
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{
		stocks: make(map[string]int),
	}
}

// GetStock returns the remaining quantity for a title.
func (l *MemoryLedger) GetStock(title string) (int, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	stock, exists := l.stocks[title]
	if !exists {
		return 0, fmt.Errorf("%w: %q", ErrUnknownItem, title)
	}
	return stock, nil
}

// HasSufficientStock reports current availability. This is advisory
// only: the answer can be stale by the time a commit happens, which is
// why the commit methods re-validate.
func (l *MemoryLedger) HasSufficientStock(title string, quantity int) bool {
	if quantity < 1 {
		return false
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	stock, exists := l.stocks[title]
	return exists && quantity <= stock
}

// CommitDecrement permanently deducts stock for a single title.
func (l *MemoryLedger) CommitDecrement(title string, quantity int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.decrementLocked(title, quantity)
}

// CommitDecrementLines deducts stock for every line or none of them.
func (l *MemoryLedger) CommitDecrementLines(lines []domain.CartLine) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	// First pass: validate all lines have sufficient stock
	for _, line := range lines {
		stock, exists := l.stocks[line.Book.Title]
		if !exists {
			return fmt.Errorf("%w: %q", ErrUnknownItem, line.Book.Title)
		}
		if line.Quantity > stock {
			return fmt.Errorf("%w: %q", ErrInsufficientStock, line.Book.Title)
		}
	}

	// Second pass: deduct
	for _, line := range lines {
		l.stocks[line.Book.Title] -= line.Quantity
	}
	return nil
}

// SetStock sets the stock level for a title.
func (l *MemoryLedger) SetStock(title string, quantity int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.stocks[title] = quantity
}

func (l *MemoryLedger) decrementLocked(title string, quantity int) error {
	stock, exists := l.stocks[title]
	if !exists {
		return fmt.Errorf("%w: %q", ErrUnknownItem, title)
	}
	if quantity > stock {
		return fmt.Errorf("%w: %q", ErrInsufficientStock, title)
	}
	l.stocks[title] = stock - quantity
	return nil
}
