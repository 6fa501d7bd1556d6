//go:build !tinygo

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"dhtconsole/app"
	"dhtconsole/firmware/monitor"
	"dhtconsole/hal"
)

func main() {
	var hcfg hal.HeadlessConfig
	var host hal.HostConfig
	var cfg app.Config
	flag.BoolVar(&hcfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&hcfg.Hz, "hz", 60, "Loop rate in headless mode.")
	flag.Uint64Var(&hcfg.Ticks, "ticks", 0, "Stop after N loop iterations in headless mode (0 = run forever).")
	flag.BoolVar(&hcfg.Virtual, "virtual-time", false, "Advance the clock one period per iteration instead of wall time (headless).")

	flag.StringVar(&host.Sensor, "sensor", "sim", "Sensor source: sim or sht4x.")
	flag.StringVar(&host.I2CBus, "i2c-bus", "", "periph I2C bus name for hardware sensors.")
	flag.Int64Var(&host.Seed, "seed", 1, "Simulated sensor seed.")
	flag.IntVar(&host.DropEvery, "drop-every", 0, "Make every Nth simulated sample invalid (0 = never).")
	flag.BoolVar(&host.Stdin, "stdin", true, "Read console commands from stdin.")

	flag.IntVar(&cfg.Lines, "lines", 10, "Console lines kept on screen.")
	flag.DurationVar(&cfg.SampleInterval, "interval", monitor.DefaultInterval, "Sensor sampling interval.")
	flag.Float64Var(&cfg.Threshold, "threshold", monitor.DefaultThreshold, "Minimum temperature change to report (0 or less uses the default).")
	flag.StringVar(&cfg.SensorName, "sensor-name", monitor.DefaultSensorName, "Sensor name used in error lines.")
	flag.BoolVar(&cfg.Highlight, "highlight", false, "Draw temperature lines in yellow.")
	flag.Parse()

	newApp := func(h hal.HAL) func() error {
		return app.New(h, cfg)
	}

	if hcfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, host, newApp, hcfg); err != nil {
			if err == context.Canceled {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(host, newApp); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
