package types

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PositionSnapshot is a point-in-time view of an open isolated-margin
// position, as reported by the exchange service. Decimal fields accept both
// string and numeric JSON values, since exchanges disagree on which to send.
type PositionSnapshot struct {
	Symbol string   `json:"symbol"`
	Side   SideType `json:"side"`

	AverageCost decimal.Decimal `json:"avgPrice"`
	Size        decimal.Decimal `json:"size"`
	Leverage    decimal.Decimal `json:"leverage"`

	// LiquidationPrice is optional; zero means the exchange did not report
	// one and it has to be derived from AverageCost and Leverage.
	LiquidationPrice decimal.Decimal `json:"liquidationPrice"`
}

func (p *PositionSnapshot) String() string {
	return fmt.Sprintf("POSITION %s %s avg: %s size: %s leverage: %s",
		p.Symbol, p.Side, p.AverageCost.String(), p.Size.String(), p.Leverage.String())
}

// PnLRecord is one sample of the running total PnL. Sequences are expected
// to be sorted by timestamp ascending by the caller.
type PnLRecord struct {
	Time  Time            `json:"timestamp"`
	Value decimal.Decimal `json:"totalPnL"`
}
