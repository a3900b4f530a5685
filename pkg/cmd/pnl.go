package cmd

import (
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"tradekit/pkg/charting"
	"tradekit/pkg/types"
)

func init() {
	pnlCmd.Flags().String("records", "", "path to a JSON file with the pnl history")
	pnlCmd.Flags().String("output", "pnl.png", "output image path")
	RootCmd.AddCommand(pnlCmd)
}

var pnlCmd = &cobra.Command{
	Use:          "pnl",
	Short:        "render the pnl progression chart",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		recordsPath, err := cmd.Flags().GetString("records")
		if err != nil {
			return err
		}

		var records []types.PnLRecord
		if err := loadJSON(recordsPath, &records); err != nil {
			return errors.Wrap(err, "cannot load pnl records")
		}

		img, err := charting.RenderPnLChart(records)
		if err != nil {
			return err
		}

		last := records[len(records)-1]
		printPnL("TOTAL", last.Value.InexactFloat64())

		output, err := cmd.Flags().GetString("output")
		if err != nil {
			return err
		}

		if err := os.WriteFile(output, img, 0644); err != nil {
			return errors.Wrapf(err, "cannot write pnl chart to %s", output)
		}

		log.Infof("pnl chart saved to %s", output)
		return nil
	},
}
