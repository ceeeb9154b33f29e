// Copyright © 2026 Geoff Holden <geoff@geoffholden.com>

package cmd

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/geoffholden/gopm/stream"
)

// collectCmd represents the collect command
var collectCmd = &cobra.Command{
	Use:     "collect",
	Aliases: []string{"parser", "log"},
	Short:   "Log serial sensor data",
	Long: `Reads frames from the sensor's serial port and appends one row per second
to the day's CSV file. A regular file can be given as the port to replay a
captured stream.`,
	RunE: collect,
}

func init() {
	RootCmd.AddCommand(collectCmd)

	collectCmd.Flags().String("port", "", "Serial port to connect to")
	collectCmd.Flags().Int("baud", 115200, "Serial baud rate")
	collectCmd.Flags().Duration("retry", stream.DefaultRetryInterval, "Wait between attempts to open the port")

	viper.BindPFlags(collectCmd.Flags())
}

func collect(cmd *cobra.Command, args []string) error {
	port := viper.GetString("port")
	if port == "" {
		return errors.New("no serial port given, use --port")
	}

	return run(source{
		address:   port,
		baud:      viper.GetInt("baud"),
		open:      stream.OpenSerial,
		stopAtEOF: stream.IsRegularFile(port),
	})
}
