// Copyright © 2026 Geoff Holden <geoff@geoffholden.com>

package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	jww "github.com/spf13/jwalterweatherman"
	"github.com/spf13/viper"

	"github.com/geoffholden/gopm/data"
	"github.com/geoffholden/gopm/sensors"
)

var cfgFile string
var verbose bool

// This represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "gopm",
	Short: "Go Particulate Matter Logger",
	Long: `Go Particulate Matter Logger is an unattended data logger for dust
sensors.

It reads the sensor's serial output, keeps at most one reading per second and
appends them to one CSV file per day, reconnecting whenever the device goes
away.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		jww.ERROR.Println(err)
		os.Exit(-1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is gopm.yaml)")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	RootCmd.PersistentFlags().String("datadir", ".", "Directory for the daily CSV files")
	RootCmd.PersistentFlags().String("logdir", "logs", "Directory for the error log")
	RootCmd.PersistentFlags().String("sensor", "dust", "Sensor protocol, one of ["+strings.Join(sensors.Names(), ", ")+"]")
	RootCmd.PersistentFlags().String("prefix", sensors.DustFormat.Prefix, "Label the sensor prints before each frame")
	RootCmd.PersistentFlags().String("database", "", "Also store records in this database (disabled when empty)")
	RootCmd.PersistentFlags().String("metricsFile", "", "Write pipeline counters to this Prometheus textfile (disabled when empty)")
	RootCmd.PersistentFlags().Duration("metricsInterval", defaultMetricsInterval, "How often the metrics file is rewritten")

	dbdrivers := data.DBDrivers()
	if len(dbdrivers) > 1 {
		RootCmd.PersistentFlags().String("dbDriver", "sqlite3", "Database Driver, one of ["+strings.Join(dbdrivers, ", ")+"]")
	} else {
		viper.SetDefault("dbDriver", "sqlite3")
	}

	viper.SetDefault("units", map[string]string{
		"Concentration": "ug/m3",
		"Count":         "0.1L",
	})

	viper.BindPFlags(RootCmd.PersistentFlags())
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" { // enable ability to specify config file via flag
		viper.SetConfigFile(cfgFile)
	}

	viper.SetConfigName("gopm") // name of config file (without extension)
	viper.AddConfigPath("/etc/gopm/")
	viper.AddConfigPath("$HOME/.gopm/")
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("gopm")
	viper.AutomaticEnv()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		jww.DEBUG.Println("Using config file:", viper.ConfigFileUsed())
	}
}
