package checkout

import (
	"fmt"

	"github.com/t3chE/online-bookstore-final-assessment/domain"
	"github.com/t3chE/online-bookstore-final-assessment/internal/inventory"
)

// validateStock checks every line against the ledger at this instant.
// The check is advisory, not a reservation: nothing is held, and the
// commit step re-validates under the ledger's write lock.
func (s *Service) validateStock(lines []domain.CartLine) error {
	for _, line := range lines {
		if s.ledger.HasSufficientStock(line.Book.Title, line.Quantity) {
			continue
		}
		if _, err := s.ledger.GetStock(line.Book.Title); err != nil {
			return err
		}
		return fmt.Errorf("%w: %q", inventory.ErrInsufficientStock, line.Book.Title)
	}
	return nil
}
