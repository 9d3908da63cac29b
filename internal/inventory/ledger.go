package inventory

import (
	"errors"

	"github.com/t3chE/online-bookstore-final-assessment/domain"
)

// Common errors returned by the ledger
var (
	ErrUnknownItem       = errors.New("unknown item")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Ledger is the single source of truth for remaining stock. Titles are
// the keys; counts never go negative.
type Ledger interface {
	// GetStock returns the remaining quantity for a title, or
	// ErrUnknownItem if the title was never stocked.
	GetStock(title string) (int, error)

	// HasSufficientStock reports whether quantity copies of the title
	// are available right now. Quantities below 1 are never sufficient.
	HasSufficientStock(title string, quantity int) bool

	// CommitDecrement permanently reduces stock for one title.
	// Availability is re-checked under the write lock; on failure the
	// ledger is untouched.
	CommitDecrement(title string, quantity int) error

	// CommitDecrementLines decrements stock for every line, or for
	// none of them. Validation of all lines happens before any mutation.
	CommitDecrementLines(lines []domain.CartLine) error

	// SetStock sets the stock level for a title (used for seeding).
	SetStock(title string, quantity int)
}
