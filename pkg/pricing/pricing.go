// Package pricing implements the single-seller margin model used for
// opportunity-level pricing. It is the reduced sibling of pkg/commission:
// one seller, no participant list, and no clamping anywhere. Negative
// margins, negative profit, and negative net figures all flow through
// unmodified; that divergence from pkg/commission's gross-difference clamp
// matches the source system and is intentional.
package pricing

import (
	"github.com/brokerdesk/dealmargin/pkg/mathutil"
)

// MarginType selects which formula computes the gross margin.
type MarginType string

const (
	// MarginGrossDifference is sale value minus cost value.
	MarginGrossDifference MarginType = "grossDifference"

	// MarginPercentOfSale is a percentage of the sale value.
	MarginPercentOfSale MarginType = "percentOfSale"

	// MarginFixedAmount is a flat margin regardless of sale and cost.
	MarginFixedAmount MarginType = "fixedAmount"
)

// Data is the pricing input for one sales opportunity. MarginParameter is
// the percentage for MarginPercentOfSale and the flat amount for
// MarginFixedAmount; nil degrades to zero. RBT12 is carried for display
// only.
type Data struct {
	SaleValue               float64    `json:"saleValue"`
	CostValue               float64    `json:"costValue"`
	MarginType              MarginType `json:"marginType"`
	MarginParameter         *float64   `json:"marginParameter,omitempty"`
	SellerCommissionPercent float64    `json:"sellerCommissionPercent"`
	OtherParticipantsCost   float64    `json:"otherParticipantsCost"`
	RBT12                   *float64   `json:"rbt12,omitempty"`
	EffectiveTaxRate        *float64   `json:"effectiveTaxRate,omitempty"`
}

// CalculatedMargins holds every derived figure for one opportunity.
type CalculatedMargins struct {
	GrossMargin           float64 `json:"grossMargin"`
	GrossCommissionAmount float64 `json:"grossCommissionAmount"`
	NetAdvisoryProfit     float64 `json:"netAdvisoryProfit"`
	TaxDue                float64 `json:"taxDue"`
	NetCommissionReceived float64 `json:"netCommissionReceived"`
}

// ComputeMargins derives all margin figures from the pricing data. It never
// fails; malformed numeric input is coerced to zero at the boundary.
func ComputeMargins(data Data) CalculatedMargins {
	sale := mathutil.NumberOrZero(data.SaleValue)
	cost := mathutil.NumberOrZero(data.CostValue)

	var grossMargin float64
	switch data.MarginType {
	case MarginGrossDifference:
		grossMargin = sale - cost
	case MarginPercentOfSale:
		grossMargin = mathutil.ApplyPercentage(sale, mathutil.OptionalOrZero(data.MarginParameter))
	case MarginFixedAmount:
		grossMargin = mathutil.OptionalOrZero(data.MarginParameter)
	default:
		grossMargin = 0
	}

	grossCommission := mathutil.ApplyPercentage(grossMargin, mathutil.NumberOrZero(data.SellerCommissionPercent))
	netAdvisoryProfit := grossMargin - grossCommission - mathutil.NumberOrZero(data.OtherParticipantsCost)
	taxDue := mathutil.ApplyPercentage(grossCommission, mathutil.OptionalOrZero(data.EffectiveTaxRate))

	return CalculatedMargins{
		GrossMargin:           grossMargin,
		GrossCommissionAmount: grossCommission,
		NetAdvisoryProfit:     netAdvisoryProfit,
		TaxDue:                taxDue,
		NetCommissionReceived: grossCommission - taxDue,
	}
}
