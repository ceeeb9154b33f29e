// Copyright © 2026 Geoff Holden <geoff@geoffholden.com>

package cmd

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	jww "github.com/spf13/jwalterweatherman"
	"github.com/spf13/viper"

	"github.com/geoffholden/gopm/data"
	"github.com/geoffholden/gopm/errlog"
	"github.com/geoffholden/gopm/metrics"
	"github.com/geoffholden/gopm/pipeline"
	"github.com/geoffholden/gopm/sensors"
	"github.com/geoffholden/gopm/severity"
	"github.com/geoffholden/gopm/store"
	"github.com/geoffholden/gopm/stream"
)

const defaultMetricsInterval = 15 * time.Second

type source struct {
	address   string
	baud      int
	open      stream.Opener
	stopAtEOF bool
}

func run(src source) error {
	logFile := &errlog.File{Path: filepath.Join(viper.GetString("logdir"), errlog.DefaultName)}
	defer logFile.Close()
	log := errlog.NewNotepad(os.Stdout, logFile, verbose)

	format, ok := sensors.DefaultFormat(viper.GetString("sensor"))
	if ok {
		format.Prefix = viper.GetString("prefix")
	}
	parser, err := sensors.New(viper.GetString("sensor"), format)
	if err != nil {
		return err
	}

	csv := store.NewCSV(viper.GetString("datadir"), data.ParticleFields, store.WithLog(log))
	defer csv.Close()
	if err := csv.Rotate(time.Now()); err != nil {
		return err
	}

	renderer := severity.NewRenderer(os.Stdout)
	if u := unit("Concentration"); u != "" {
		renderer.ConcentrationUnit = u
	}
	if u := unit("Count"); u != "" {
		renderer.CountUnit = u
	}
	observers := []pipeline.Sink{renderer}

	if dsn := viper.GetString("database"); dsn != "" {
		db, err := data.OpenDatabase(viper.GetString("dbDriver"), dsn)
		if err != nil {
			return err
		}
		defer db.Close()
		observers = append(observers, db)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.New()
	if path := viper.GetString("metricsFile"); path != "" {
		go flushMetrics(ctx, m, path, viper.GetDuration("metricsInterval"), log)
		defer func() {
			if err := m.WriteTextfile(path); err != nil {
				log.ERROR.Println(err)
			}
		}()
	}

	p := &pipeline.Pipeline{
		Connector: &stream.Connector{
			Address:       src.address,
			Baud:          src.baud,
			Open:          src.open,
			RetryInterval: viper.GetDuration("retry"),
			Log:           log,
		},
		Parser:    parser,
		Store:     csv,
		Observers: observers,
		Metrics:   m,
		Log:       log,
		StopAtEOF: src.stopAtEOF,
	}

	err = p.Run(ctx)
	if ctx.Err() != nil {
		log.INFO.Println("Stopped by user (Ctrl + C)")
	}
	return err
}

// unit looks up a display unit, whatever case the config file used.
func unit(quantity string) string {
	units := viper.GetStringMapString("units")
	if u, ok := units[strings.ToLower(quantity)]; ok {
		return u
	}
	return units[quantity]
}

func flushMetrics(ctx context.Context, m *metrics.Metrics, path string, interval time.Duration, log *jww.Notepad) {
	if interval <= 0 {
		interval = defaultMetricsInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := m.WriteTextfile(path); err != nil {
				log.ERROR.Println(err)
			}
		}
	}
}
