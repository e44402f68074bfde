package transform

import (
	"github.com/spf13/cobra"

	"github.com/BCJonkhout/turtle-transformer/graph"
	"github.com/BCJonkhout/turtle-transformer/log"
	engine "github.com/BCJonkhout/turtle-transformer/transform"
)

var (
	formatName = "turtle"
	logLevel   = "info"
)

// Cmd represents the "transform" command
var Cmd = &cobra.Command{
	Use:   "transform <input.csv> [output.ttl]",
	Short: "Transform household meter readings into a SAREF observation graph",
	Long: `Reads a household energy-meter CSV file and writes an RDF graph with
one saref:Observation per numeric (timestamp, channel) reading, linked
to its Sensor, Property and location FeatureOfInterest. Gzipped input
is detected by the .gz suffix. The output path defaults to graph.ttl.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		conf := log.DefaultLoggerConfig()
		conf.Level = logLevel
		log.ConfigureLogger(conf)

		format, err := graph.FormatFromName(formatName)
		if err != nil {
			return err
		}
		output := "graph.ttl"
		if len(args) > 1 {
			output = args[1]
		}

		sum, err := engine.Run(engine.Options{
			Input:  args[0],
			Output: output,
			Format: format,
		})
		if err != nil {
			return err
		}
		log.WithFields(log.Fields{
			"rows":         sum.Rows,
			"rowsSkipped":  sum.RowsSkipped,
			"observations": sum.Observations,
			"interpolated": sum.Interpolated,
			"emptyCells":   sum.Empty,
			"nonNumeric":   sum.NonNumeric,
		}).Info("Transform finished")
		return nil
	},
}

func init() {
	flags := Cmd.Flags()
	flags.StringVar(&formatName, "format", "turtle", "Output format: turtle or ntriples")
	flags.StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
}
