package charting

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"tradekit/pkg/types"
)

// LevelRole identifies the semantic meaning of a horizontal price level.
type LevelRole string

const (
	RoleSupport              = LevelRole("support")
	RoleResistance           = LevelRole("resistance")
	RoleLongTrigger          = LevelRole("longTrigger")
	RoleShortTrigger         = LevelRole("shortTrigger")
	RoleTrailingStop         = LevelRole("trailingStop")
	RoleTrailingStopBuffered = LevelRole("trailingStopBuffered")
	RoleAveragePrice         = LevelRole("avgPrice")
	RoleLiquidation          = LevelRole("liquidation")
)

// LabelAnchor selects which edge of the chart an annotation label sits on.
type LabelAnchor int

const (
	AnchorStart LabelAnchor = iota
	AnchorEnd
)

// LevelSet carries the externally supplied market-structure levels for one
// render call. A nil field means the level is unknown and draws nothing.
type LevelSet struct {
	Support              *decimal.Decimal
	Resistance           *decimal.Decimal
	LongTrigger          *decimal.Decimal
	ShortTrigger         *decimal.Decimal
	TrailingStop         *decimal.Decimal
	TrailingStopBuffered *decimal.Decimal
}

// Annotation is one horizontal reference line with its label. Annotations
// are built fresh for every render call and never mutated afterwards.
type Annotation struct {
	Role      LevelRole
	Price     decimal.Decimal
	Color     drawing.Color
	DashArray []float64
	Label     string
	Anchor    LabelAnchor
}

var (
	colorSupport         = drawing.Color{R: 255, G: 0, B: 0, A: 255}   // red
	colorResistance      = drawing.Color{R: 0, G: 100, B: 0, A: 255}   // dark green
	colorLongTrigger     = drawing.Color{R: 50, G: 205, B: 50, A: 255} // lime green
	colorShortTrigger    = drawing.Color{R: 255, G: 99, B: 71, A: 255} // tomato
	colorTrailingStop    = drawing.Color{R: 30, G: 144, B: 255, A: 255} // dodger blue
	colorTrailingStopBuf = drawing.Color{R: 0, G: 191, B: 255, A: 255}  // deep sky blue
	colorFavorable       = drawing.Color{R: 0, G: 128, B: 0, A: 255}    // green
	colorAdverse         = drawing.Color{R: 139, G: 0, B: 0, A: 255}    // dark red
)

var (
	dashTrigger      = []float64{8, 4}
	dashTrailingStop = []float64{4, 4}
	dashLiquidation  = []float64{2, 4}
)

// averageCostColor is green for longs and dark red for shorts.
func averageCostColor(side types.SideType) drawing.Color {
	if side == types.SideTypeLong {
		return colorFavorable
	}
	return colorAdverse
}

// liquidationColor is the inverse of averageCostColor: liquidation sits on
// the adverse side of the position.
func liquidationColor(side types.SideType) drawing.Color {
	if side == types.SideTypeLong {
		return colorAdverse
	}
	return colorFavorable
}

// BuildAnnotations derives the full annotation set for one render call from
// the position snapshot and the known market levels. Each present level
// yields exactly one annotation; the slice order is the fixed role order.
//
// Label anchors alternate per pair (support/resistance, long/short trigger,
// raw/buffered trailing stop, average/liquidation) so simultaneously drawn
// pairs do not overlap at the same chart edge.
func BuildAnnotations(pos *types.PositionSnapshot, levels LevelSet) []Annotation {
	var as []Annotation

	if levels.Support != nil {
		as = append(as, newAnnotation(RoleSupport, *levels.Support, colorSupport, nil, AnchorStart))
	}

	if levels.Resistance != nil {
		as = append(as, newAnnotation(RoleResistance, *levels.Resistance, colorResistance, nil, AnchorEnd))
	}

	if levels.LongTrigger != nil {
		as = append(as, newAnnotation(RoleLongTrigger, *levels.LongTrigger, colorLongTrigger, dashTrigger, AnchorStart))
	}

	if levels.ShortTrigger != nil {
		as = append(as, newAnnotation(RoleShortTrigger, *levels.ShortTrigger, colorShortTrigger, dashTrigger, AnchorEnd))
	}

	if levels.TrailingStop != nil {
		as = append(as, newAnnotation(RoleTrailingStop, *levels.TrailingStop, colorTrailingStop, dashTrailingStop, AnchorStart))
	}

	if levels.TrailingStopBuffered != nil {
		as = append(as, newAnnotation(RoleTrailingStopBuffered, *levels.TrailingStopBuffered, colorTrailingStopBuf, dashTrailingStop, AnchorEnd))
	}

	if pos != nil {
		as = append(as, newAnnotation(RoleAveragePrice, pos.AverageCost, averageCostColor(pos.Side), nil, AnchorStart))

		if showLiquidation(pos.LiquidationPrice, levels) {
			as = append(as, newAnnotation(RoleLiquidation, pos.LiquidationPrice, liquidationColor(pos.Side), dashLiquidation, AnchorEnd))
		}
	}

	return as
}

// showLiquidation gates the liquidation line: the price must be positive,
// and when a structural band is known the line must fall strictly inside
// it. A liquidation level outside the band is not actionable on this chart.
func showLiquidation(liquidation decimal.Decimal, levels LevelSet) bool {
	if liquidation.Sign() <= 0 {
		return false
	}

	if levels.Resistance != nil && liquidation.Cmp(*levels.Resistance) >= 0 {
		return false
	}

	if levels.Support != nil && liquidation.Cmp(*levels.Support) <= 0 {
		return false
	}

	return true
}

func newAnnotation(role LevelRole, price decimal.Decimal, color drawing.Color, dash []float64, anchor LabelAnchor) Annotation {
	return Annotation{
		Role:      role,
		Price:     price,
		Color:     color,
		DashArray: dash,
		Label:     fmt.Sprintf("%s %s", role, price.StringFixed(4)),
		Anchor:    anchor,
	}
}
