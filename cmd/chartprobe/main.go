// chartprobe exercises the chart pipeline without a display: it replays a
// stretch of simulated telemetry through the queue and buffers, renders the
// three panels to PNG files, and prints the resulting stats.
package main

import (
	"flag"
	"fmt"
	"image"
	png "image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/chrisangelothomas/OpenLCH/src/config"
	"github.com/chrisangelothomas/OpenLCH/src/dashboard"
	"github.com/chrisangelothomas/OpenLCH/src/sim"
	"github.com/chrisangelothomas/OpenLCH/src/telemetry"
)

func main() {
	var (
		outDir string
		span   time.Duration
	)
	flag.StringVar(&outDir, "out", ".", "Directory for rendered PNGs")
	flag.DurationVar(&span, "span", 2*time.Second, "Simulated telemetry span to replay")
	flag.Parse()

	cfg := config.Default()
	queue := telemetry.NewQueue(cfg.QueueCapacity)
	producer := sim.New(queue)

	// Replay span seconds of samples at the nominal rate, all at once; the
	// queue's drop-oldest bound trims the replay to what fits.
	step := 1.0 / producer.Rate
	now := span.Seconds()
	for t := 0.0; t <= now; t += step {
		st, vr, freq := producer.Step(t)
		queue.Push(st)
		queue.Push(vr)
		queue.Push(freq)
	}

	var bufs dashboard.Buffers
	bufs.IngestAll(queue.Drain())
	bufs.Prune(now, cfg.Window.Seconds())

	w, h := cfg.ChartWidth, cfg.ChartHeight
	panels := []struct {
		name string
		img  image.Image
	}{
		{"frequency.png", dashboard.RenderFrequencyChart(&bufs.Freq, now, cfg, w, h, true)},
		{"positions.png", dashboard.RenderPositionChart(&bufs.PosActual, &bufs.PosDesired, now, cfg, w, h)},
		{"velocities.png", dashboard.RenderVelocityChart(&bufs.Vel, now, cfg, w, h)},
	}
	for _, p := range panels {
		if p.img == nil {
			telemetry.Errorf("%s: empty buffer, nothing rendered", p.name)
			os.Exit(1)
		}
		if err := writePNG(filepath.Join(outDir, p.name), p.img); err != nil {
			telemetry.Errorf("%v", err)
			os.Exit(1)
		}
	}

	st := queue.Stats()
	fmt.Printf("rendered 3 panels to %s (freq=%d pos=%d vel=%d points; queue pushed=%d dropped=%d)\n",
		outDir, bufs.Freq.Len(), bufs.PosActual.Len(), bufs.Vel.Len(), st.Pushed, st.Dropped)
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
