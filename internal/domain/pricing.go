package domain

import "github.com/shopspring/decimal"

const CleaningFee int64 = 25

var (
	serviceFeeRate = decimal.RequireFromString("0.10")
	taxRate        = decimal.RequireFromString("0.05")
)

// ComputePrice derives the price breakdown for a stay. Service fee and taxes are
// each rounded half-up to a whole currency unit before they are summed.
func ComputePrice(nightlyRate int64, nights int) PriceBreakdown {
	base := nightlyRate * int64(nights)
	return PriceBreakdown{
		BasePrice:   base,
		CleaningFee: CleaningFee,
		ServiceFee:  share(base, serviceFeeRate),
		Taxes:       share(base, taxRate),
	}
}

func share(amount int64, rate decimal.Decimal) int64 {
	return decimal.NewFromInt(amount).Mul(rate).Round(0).IntPart()
}
