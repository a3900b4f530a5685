package charting

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradekit/pkg/types"
)

func level(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

func findAnnotation(as []Annotation, role LevelRole) *Annotation {
	for i := range as {
		if as[i].Role == role {
			return &as[i]
		}
	}
	return nil
}

func longPosition(avgPrice, liquidation float64) *types.PositionSnapshot {
	return &types.PositionSnapshot{
		Symbol:           "BTCUSDT",
		Side:             types.SideTypeLong,
		AverageCost:      decimal.NewFromFloat(avgPrice),
		Size:             decimal.NewFromFloat(1),
		Leverage:         decimal.NewFromFloat(10),
		LiquidationPrice: decimal.NewFromFloat(liquidation),
	}
}

func TestBuildAnnotationsEmpty(t *testing.T) {
	assert.Empty(t, BuildAnnotations(nil, LevelSet{}))
}

func TestBuildAnnotationsPresenceAndOrder(t *testing.T) {
	as := BuildAnnotations(longPosition(100, 95), LevelSet{
		Support:              level(90),
		Resistance:           level(110),
		LongTrigger:          level(105),
		ShortTrigger:         level(92),
		TrailingStop:         level(97),
		TrailingStopBuffered: level(96),
	})

	var roles []LevelRole
	for _, a := range as {
		roles = append(roles, a.Role)
	}

	assert.Equal(t, []LevelRole{
		RoleSupport, RoleResistance,
		RoleLongTrigger, RoleShortTrigger,
		RoleTrailingStop, RoleTrailingStopBuffered,
		RoleAveragePrice, RoleLiquidation,
	}, roles)
}

func TestBuildAnnotationsAbsentLevels(t *testing.T) {
	as := BuildAnnotations(nil, LevelSet{Support: level(90)})

	require.Len(t, as, 1)
	assert.Equal(t, RoleSupport, as[0].Role)
}

func TestBuildAnnotationsLabels(t *testing.T) {
	as := BuildAnnotations(nil, LevelSet{Support: level(90), Resistance: level(110.12345)})

	support := findAnnotation(as, RoleSupport)
	require.NotNil(t, support)
	assert.Equal(t, "support 90.0000", support.Label)

	resistance := findAnnotation(as, RoleResistance)
	require.NotNil(t, resistance)
	assert.Equal(t, "resistance 110.1235", resistance.Label)
}

func TestBuildAnnotationsAnchorsAlternatePerPair(t *testing.T) {
	as := BuildAnnotations(longPosition(100, 95), LevelSet{
		Support:              level(90),
		Resistance:           level(110),
		LongTrigger:          level(105),
		ShortTrigger:         level(92),
		TrailingStop:         level(97),
		TrailingStopBuffered: level(96),
	})

	pairs := []struct {
		start LevelRole
		end   LevelRole
	}{
		{RoleSupport, RoleResistance},
		{RoleLongTrigger, RoleShortTrigger},
		{RoleTrailingStop, RoleTrailingStopBuffered},
		{RoleAveragePrice, RoleLiquidation},
	}
	for _, p := range pairs {
		assert.Equal(t, AnchorStart, findAnnotation(as, p.start).Anchor, "%s", p.start)
		assert.Equal(t, AnchorEnd, findAnnotation(as, p.end).Anchor, "%s", p.end)
	}
}

func TestBuildAnnotationsSideColors(t *testing.T) {
	long := longPosition(100, 95)
	as := BuildAnnotations(long, LevelSet{})
	assert.Equal(t, colorFavorable, findAnnotation(as, RoleAveragePrice).Color)
	assert.Equal(t, colorAdverse, findAnnotation(as, RoleLiquidation).Color)

	short := longPosition(100, 105)
	short.Side = types.SideTypeShort
	as = BuildAnnotations(short, LevelSet{})
	assert.Equal(t, colorAdverse, findAnnotation(as, RoleAveragePrice).Color)
	assert.Equal(t, colorFavorable, findAnnotation(as, RoleLiquidation).Color)
}

func TestLiquidationVisibility(t *testing.T) {
	band := LevelSet{Support: level(90), Resistance: level(110)}

	tests := []struct {
		name        string
		liquidation float64
		levels      LevelSet
		visible     bool
	}{
		{name: "inside band", liquidation: 95, levels: band, visible: true},
		{name: "below support", liquidation: 85, levels: band, visible: false},
		{name: "above resistance", liquidation: 115, levels: band, visible: false},
		{name: "at support", liquidation: 90, levels: band, visible: false},
		{name: "at resistance", liquidation: 110, levels: band, visible: false},
		{name: "no band", liquidation: 95, levels: LevelSet{}, visible: true},
		{name: "only support, above it", liquidation: 95, levels: LevelSet{Support: level(90)}, visible: true},
		{name: "only support, below it", liquidation: 85, levels: LevelSet{Support: level(90)}, visible: false},
		{name: "only resistance, below it", liquidation: 95, levels: LevelSet{Resistance: level(110)}, visible: true},
		{name: "zero price", liquidation: 0, levels: LevelSet{}, visible: false},
		{name: "negative price", liquidation: -5, levels: LevelSet{}, visible: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			as := BuildAnnotations(longPosition(100, tt.liquidation), tt.levels)

			liquidation := findAnnotation(as, RoleLiquidation)
			if tt.visible {
				assert.NotNil(t, liquidation)
			} else {
				assert.Nil(t, liquidation)
			}

			// the average price line never depends on the liquidation gate
			assert.NotNil(t, findAnnotation(as, RoleAveragePrice))
		})
	}
}
