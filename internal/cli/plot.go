package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/haskel/carprice/internal/cli/chart"
)

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Chart a dataset against a trained model",
	Long: `Draw the km,price samples as a scatter with the model line over them.
The chart is interactive (press q to quit) unless --static is set.`,
	Example: `  carprice plot -f data.csv --model model.txt
  carprice plot -f data.csv --theta-0 8499.6 --theta-1 -0.0214 --static`,
	Args: cobra.NoArgs,
	RunE: runPlot,
}

var (
	plotFile   string
	plotStatic bool
	plotWidth  int
	plotHeight int
	plotModel  modelFlags
)

func init() {
	plotCmd.Flags().StringVarP(&plotFile, "file", "f", "", "dataset file (stdin by default)")
	plotCmd.Flags().BoolVar(&plotStatic, "static", false, "print the chart once instead of opening it")
	plotCmd.Flags().IntVar(&plotWidth, "width", 0, "chart width in cells (default from config)")
	plotCmd.Flags().IntVar(&plotHeight, "height", 0, "chart height in cells (default from config)")
	plotModel.register(plotCmd)
	rootCmd.AddCommand(plotCmd)
}

func runPlot(cmd *cobra.Command, args []string) error {
	model, err := plotModel.resolve(cmd)
	if err != nil {
		return err
	}

	samples, err := loadSamples(cmd, plotFile)
	if err != nil {
		return err
	}

	p := chart.Plot{
		Samples: samples,
		Model:   model,
		Width:   appConfig.Chart.Width,
		Height:  appConfig.Chart.Height,
	}
	if plotWidth > 0 {
		p.Width = plotWidth
	}
	if plotHeight > 0 {
		p.Height = plotHeight
	}

	if plotStatic {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), chart.Render(p))
		return err
	}
	return chart.Run(p)
}
