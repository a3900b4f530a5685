package cmd

import (
	"encoding/json"
	"os"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"tradekit/pkg/charting"
	"tradekit/pkg/risk"
	"tradekit/pkg/types"
)

func init() {
	chartCmd.Flags().String("symbol", "BTCUSDT", "trading symbol")
	chartCmd.Flags().String("candles", "", "path to a JSON file with the candle window")
	chartCmd.Flags().String("position", "", "path to a JSON file with the position snapshot")
	chartCmd.Flags().String("mark-price", "", "current mark price, for the unrealized pnl summary")
	chartCmd.Flags().String("support", "", "support level")
	chartCmd.Flags().String("resistance", "", "resistance level")
	chartCmd.Flags().String("long-trigger", "", "long entry trigger level")
	chartCmd.Flags().String("short-trigger", "", "short entry trigger level")
	chartCmd.Flags().String("trailing-stop", "", "raw trailing stop level")
	chartCmd.Flags().String("trailing-stop-buffered", "", "buffered trailing stop level")
	chartCmd.Flags().Bool("save", false, "also write the chart png to the working directory")
	RootCmd.AddCommand(chartCmd)
}

var chartCmd = &cobra.Command{
	Use:          "chart",
	Short:        "render the annotated position chart",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		symbol, err := cmd.Flags().GetString("symbol")
		if err != nil {
			return err
		}

		candlesPath, err := cmd.Flags().GetString("candles")
		if err != nil {
			return err
		}

		var klines types.KLineWindow
		if err := loadJSON(candlesPath, &klines); err != nil {
			return errors.Wrap(err, "cannot load candles")
		}

		var pos *types.PositionSnapshot
		positionPath, err := cmd.Flags().GetString("position")
		if err != nil {
			return err
		}

		if positionPath != "" {
			pos = &types.PositionSnapshot{}
			if err := loadJSON(positionPath, pos); err != nil {
				return errors.Wrap(err, "cannot load position")
			}

			if !pos.Side.IsValid() {
				return errors.Errorf("invalid position side: %q", pos.Side)
			}

			if pos.LiquidationPrice.IsZero() {
				liquidation, err := risk.LiquidationPrice(pos.Side, pos.AverageCost, pos.Leverage)
				if err != nil {
					log.WithError(err).Warn("cannot derive liquidation price, the liquidation line will be hidden")
				} else {
					pos.LiquidationPrice = liquidation
				}
			}
		}

		if markPrice, err := decimalFlag(cmd, "mark-price"); err != nil {
			return err
		} else if markPrice != nil && pos != nil {
			printPnL(symbol, risk.UnrealizedPnL(pos, *markPrice))
		}

		levels, err := levelFlags(cmd)
		if err != nil {
			return err
		}

		annotations := charting.BuildAnnotations(pos, levels)
		log.Debugf("built %d annotations for %s", len(annotations), symbol)

		img, err := charting.RenderPositionChart(symbol, klines, pos, annotations)
		if err != nil {
			return err
		}

		save, err := cmd.Flags().GetBool("save")
		if err != nil {
			return err
		}

		if save {
			p, err := charting.SavePositionChart(img, symbol, klines.Last().StartTime.Time())
			if err != nil {
				return err
			}
			log.Infof("%s chart: %s (%d bytes)", symbol, p, len(img))
		}

		return nil
	},
}

func levelFlags(cmd *cobra.Command) (levels charting.LevelSet, err error) {
	if levels.Support, err = decimalFlag(cmd, "support"); err != nil {
		return
	}
	if levels.Resistance, err = decimalFlag(cmd, "resistance"); err != nil {
		return
	}
	if levels.LongTrigger, err = decimalFlag(cmd, "long-trigger"); err != nil {
		return
	}
	if levels.ShortTrigger, err = decimalFlag(cmd, "short-trigger"); err != nil {
		return
	}
	if levels.TrailingStop, err = decimalFlag(cmd, "trailing-stop"); err != nil {
		return
	}
	levels.TrailingStopBuffered, err = decimalFlag(cmd, "trailing-stop-buffered")
	return
}

func decimalFlag(cmd *cobra.Command, name string) (*decimal.Decimal, error) {
	s, err := cmd.Flags().GetString(name)
	if err != nil {
		return nil, err
	}

	if s == "" {
		return nil, nil
	}

	v, err := decimal.NewFromString(s)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid value for --%s", name)
	}

	return &v, nil
}

func printPnL(symbol string, pnl float64) {
	if pnl >= 0 {
		color.Green("%s UNREALIZED PNL: +%f", symbol, pnl)
	} else {
		color.Red("%s UNREALIZED PNL: %f", symbol, pnl)
	}
}

func loadJSON(path string, v interface{}) error {
	if path == "" {
		return errors.New("no input file given")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return json.Unmarshal(data, v)
}
