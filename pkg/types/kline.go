package types

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// KLine is a single candle. Sequences are chronological and the engine
// keeps the caller's insertion order.
type KLine struct {
	StartTime Time `json:"timestamp"`

	High  decimal.Decimal `json:"high"`
	Low   decimal.Decimal `json:"low"`
	Close decimal.Decimal `json:"close"`
}

func (k KLine) String() string {
	return fmt.Sprintf("%s H: %s L: %s C: %s",
		k.StartTime.Time().Format("2006-01-02 15:04"),
		k.High.String(), k.Low.String(), k.Close.String())
}

// KLineWindow is a chronological slice of candles.
type KLineWindow []KLine

func (w KLineWindow) Len() int {
	return len(w)
}

func (w KLineWindow) First() KLine {
	return w[0]
}

func (w KLineWindow) Last() KLine {
	return w[len(w)-1]
}

// Highs returns the high prices as float64 in insertion order.
func (w KLineWindow) Highs() []float64 {
	return w.collect(func(k KLine) decimal.Decimal { return k.High })
}

// Lows returns the low prices as float64 in insertion order.
func (w KLineWindow) Lows() []float64 {
	return w.collect(func(k KLine) decimal.Decimal { return k.Low })
}

// Closes returns the close prices as float64 in insertion order.
func (w KLineWindow) Closes() []float64 {
	return w.collect(func(k KLine) decimal.Decimal { return k.Close })
}

func (w KLineWindow) collect(f func(k KLine) decimal.Decimal) []float64 {
	vs := make([]float64, 0, len(w))
	for _, k := range w {
		vs = append(vs, f(k).InexactFloat64())
	}
	return vs
}
