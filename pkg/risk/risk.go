package risk

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"tradekit/pkg/types"
)

var one = decimal.NewFromInt(1)

// UnrealizedPnL computes the unrealized profit of pos against markPrice.
// The arithmetic stays in decimal form and only the final result is
// converted to float64, so intermediate rounding cannot compound.
func UnrealizedPnL(pos *types.PositionSnapshot, markPrice decimal.Decimal) float64 {
	var pnl decimal.Decimal
	if pos.Side == types.SideTypeLong {
		pnl = markPrice.Sub(pos.AverageCost).Mul(pos.Size)
	} else {
		pnl = pos.AverageCost.Sub(markPrice).Mul(pos.Size)
	}

	return pnl.InexactFloat64()
}

// LiquidationPrice estimates the isolated-margin liquidation price from the
// average entry price and leverage.
//
//	Long:  avg * leverage / (leverage + 1)
//	Short: avg * leverage / (leverage - 1)
//
// Leverage must be strictly greater than 1 for both sides. The long-side
// formula would tolerate leverage = 1, but the check is kept symmetric so
// both sides reject the same inputs.
func LiquidationPrice(side types.SideType, avgPrice, leverage decimal.Decimal) (decimal.Decimal, error) {
	if leverage.Cmp(one) <= 0 {
		return decimal.Zero, errors.Errorf("leverage must be greater than 1, got %s", leverage.String())
	}

	switch side {
	case types.SideTypeLong:
		return avgPrice.Mul(leverage).Div(leverage.Add(one)), nil

	case types.SideTypeShort:
		return avgPrice.Mul(leverage).Div(leverage.Sub(one)), nil
	}

	return decimal.Zero, errors.Errorf("invalid side type: %q", side)
}
