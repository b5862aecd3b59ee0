package booking

import (
	"github.com/rentops/backend/internal/domain/shared"
	"github.com/rentops/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// DefaultDepositRatio is the suggested deposit as a fraction of the total price
var DefaultDepositRatio = decimal.NewFromFloat(0.20)

// Quote is the priced outcome of a requested rental period
type Quote struct {
	Days    int
	Total   valueobject.Money
	Deposit valueobject.Money
}

// CalculateQuote prices a rental period at the given daily rate. Rounding to
// two decimal places happens only on the final outputs, never on the
// per-day intermediates.
func CalculateQuote(dailyRate valueobject.Money, r DateRange, depositRatio decimal.Decimal) (Quote, error) {
	if dailyRate.IsNegative() {
		return Quote{}, shared.NewDomainError("INVALID_RATE", "Daily rate cannot be negative")
	}
	if depositRatio.IsNegative() || depositRatio.GreaterThan(decimal.NewFromInt(1)) {
		return Quote{}, shared.NewDomainError("INVALID_DEPOSIT_RATIO", "Deposit ratio must be between 0 and 1")
	}

	days := r.Days()
	total := dailyRate.MultiplyByInt(int64(days))
	deposit := total.Multiply(depositRatio)

	return Quote{
		Days:    days,
		Total:   total.Round(2),
		Deposit: deposit.Round(2),
	}, nil
}
