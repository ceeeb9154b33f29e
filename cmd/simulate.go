// Copyright © 2026 Geoff Holden <geoff@geoffholden.com>

package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/geoffholden/gopm/simulator"
)

// simulateCmd represents the simulate command
var simulateCmd = &cobra.Command{
	Use:     "simulate",
	Aliases: []string{"sim"},
	Short:   "Log simulated sensor data",
	Long: `Runs the logger against a simulated dust sensor that produces plausible
readings, for trying out the logger and whatever consumes its files.`,
	RunE: simulate,
}

func init() {
	RootCmd.AddCommand(simulateCmd)

	simulateCmd.Flags().Duration("interval", time.Second, "Time between simulated frames")

	viper.BindPFlags(simulateCmd.Flags())
}

func simulate(cmd *cobra.Command, args []string) error {
	return run(source{
		address: "simulator",
		open:    simulator.Opener(viper.GetString("prefix"), viper.GetDuration("interval")),
	})
}
