package discount

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Rule is one discount code: either a percentage off the subtotal or a
// fixed amount off, never both.
type Rule struct {
	Code    string
	Percent int
	Amount  decimal.Decimal
}

// Registry maps discount codes to their reduction rules. Lookups are
// case-insensitive; an unknown or empty code means "no discount", not
// an error.
type Registry struct {
	rules map[string]Rule
}

func NewRegistry(rules ...Rule) *Registry {
	r := &Registry{rules: make(map[string]Rule, len(rules))}
	for _, rule := range rules {
		r.rules[normalize(rule.Code)] = rule
	}
	return r
}

// Default returns the registry with the stock discount codes.
func Default() *Registry {
	return NewRegistry(Rule{Code: "SAVE10", Percent: 10})
}

// Apply returns the subtotal after the code's rule. Pure with respect
// to its inputs: same subtotal and code always give the same result,
// and the result is never negative.
func (r *Registry) Apply(subtotal decimal.Decimal, code string) decimal.Decimal {
	rule, exists := r.rules[normalize(code)]
	if !exists {
		return subtotal
	}

	var total decimal.Decimal
	if rule.Percent > 0 {
		keep := decimal.NewFromInt(int64(100 - rule.Percent)).Div(decimal.NewFromInt(100))
		total = subtotal.Mul(keep)
	} else {
		total = subtotal.Sub(rule.Amount)
	}

	if total.IsNegative() {
		return decimal.Zero
	}
	return total.Round(2)
}

func normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
