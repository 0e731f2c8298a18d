// lchdash shows the live OpenLCH telemetry dashboard. The control loop (or
// the built-in simulator in -demo mode) pushes samples into the telemetry
// queue; this process drains and charts them.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/chrisangelothomas/OpenLCH/src/config"
	"github.com/chrisangelothomas/OpenLCH/src/dashboard"
	"github.com/chrisangelothomas/OpenLCH/src/sim"
	"github.com/chrisangelothomas/OpenLCH/src/telemetry"
)

func main() {
	var (
		configPath string
		logLevel   string
		demo       bool
	)
	flag.StringVar(&configPath, "config", "", "Path to dashboard config YAML (optional)")
	flag.StringVar(&logLevel, "loglevel", "", "Log level: debug, info, warn, error (overrides config)")
	flag.BoolVar(&demo, "demo", false, "Feed the dashboard from the built-in 50 Hz simulator")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		telemetry.Errorf("%v", err)
		os.Exit(1)
	}
	if logLevel == "" {
		logLevel = cfg.LogLevel
	}
	telemetry.SetLogLevel(logLevel)

	queue := telemetry.NewQueue(cfg.QueueCapacity)
	if demo {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go sim.New(queue).Run(ctx)
	}

	dashboard.New(cfg, queue).Run()
}
