// Package dashboard renders live control-loop telemetry in three chart
// panels: inference frequency, joint positions, and joint velocities.
//
// One goroutine ticks at the configured cadence and marshals every buffer
// mutation onto the UI thread with fyne.Do, so the rolling buffers need no
// locking; the telemetry queue is the only concurrency-safe structure.
package dashboard

import (
	"image"
	"time"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/chrisangelothomas/OpenLCH/src/config"
	"github.com/chrisangelothomas/OpenLCH/src/telemetry"
)

// Dashboard owns all renderer state: the queue it drains, the rolling
// buffers, and the three chart canvases. Nothing is shared through globals.
type Dashboard struct {
	app    fyne.App
	window fyne.Window

	cfg   *config.Config
	queue *telemetry.Queue
	bufs  Buffers

	freqCanvas *canvas.Image
	posCanvas  *canvas.Image
	velCanvas  *canvas.Image

	paused  bool
	readout bool

	// now is the tick clock; swapped out in tests.
	now func() float64
}

// New builds the window and chart canvases. Run must be called afterwards.
func New(cfg *config.Config, queue *telemetry.Queue) *Dashboard {
	a := app.NewWithID("com.openlch.dashboard")
	w := a.NewWindow("OpenLCH Telemetry")
	w.Resize(fyne.NewSize(1100, 900))

	d := &Dashboard{
		app:    a,
		window: w,
		cfg:    cfg,
		queue:  queue,
		now:    telemetry.Now,
	}
	d.readout = a.Preferences().BoolWithFallback("readout", true)

	d.freqCanvas = newChartCanvas(cfg.ChartWidth, 220)
	d.posCanvas = newChartCanvas(cfg.ChartWidth, cfg.ChartHeight)
	d.velCanvas = newChartCanvas(cfg.ChartWidth, cfg.ChartHeight)

	pauseChk := widget.NewCheck("Pause", func(b bool) { d.paused = b })
	readoutChk := widget.NewCheck("Hz Readout", func(b bool) {
		d.readout = b
		a.Preferences().SetBool("readout", b)
	})
	readoutChk.SetChecked(d.readout)

	top := container.NewHBox(pauseChk, readoutChk)
	charts := container.NewVBox(
		d.freqCanvas,
		widget.NewSeparator(),
		d.posCanvas,
		widget.NewSeparator(),
		d.velCanvas,
	)
	scroll := container.NewVScroll(charts)
	scroll.SetMinSize(fyne.NewSize(1000, 820))
	w.SetContent(container.NewBorder(top, nil, nil, nil, scroll))

	return d
}

func newChartCanvas(w, h int) *canvas.Image {
	c := canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 100, 60)))
	c.FillMode = canvas.ImageFillContain
	c.SetMinSize(fyne.NewSize(float32(w), float32(h)))
	return c
}

// Run starts the tick loop and blocks until the window closes.
func (d *Dashboard) Run() {
	done := make(chan struct{})
	d.window.SetOnClosed(func() { close(done) })

	go func() {
		t := time.NewTicker(time.Duration(d.cfg.TickInterval))
		defer t.Stop()
		for {
			select {
			case <-done:
				return
			case <-t.C:
				fyne.Do(d.tick)
			}
		}
	}()

	telemetry.Infof("dashboard running: window=%v tick=%v stream=%s",
		time.Duration(d.cfg.Window), time.Duration(d.cfg.TickInterval), d.queue.StreamID())
	d.window.ShowAndRun()

	st := d.queue.Stats()
	telemetry.Infof("dashboard closed: pushed=%d drained=%d dropped=%d", st.Pushed, st.Drained, st.Dropped)
}

// tick runs one ingest/prune/redraw cycle on the UI thread.
func (d *Dashboard) tick() {
	if d.paused {
		return
	}
	now := d.now()
	d.bufs.IngestAll(d.queue.Drain())
	d.bufs.Prune(now, d.cfg.Window.Seconds())

	w, h := d.chartSize()
	if img := RenderFrequencyChart(&d.bufs.Freq, now, d.cfg, w, h*2/3, d.readout); img != nil {
		setCanvas(d.freqCanvas, img)
	}
	if img := RenderPositionChart(&d.bufs.PosActual, &d.bufs.PosDesired, now, d.cfg, w, h); img != nil {
		setCanvas(d.posCanvas, img)
	}
	if img := RenderVelocityChart(&d.bufs.Vel, now, d.cfg, w, h); img != nil {
		setCanvas(d.velCanvas, img)
	}
}

func setCanvas(c *canvas.Image, img image.Image) {
	c.Image = img
	b := img.Bounds()
	c.SetMinSize(fyne.NewSize(float32(b.Dx()), float32(b.Dy())))
	c.Refresh()
}

// chartSize sizes chart images from the window width so panels track resizes,
// with clamps that keep text readable.
func (d *Dashboard) chartSize() (int, int) {
	w, h := d.cfg.ChartWidth, d.cfg.ChartHeight
	if d.window == nil || d.window.Canvas() == nil {
		return w, h
	}
	cw := int(d.window.Canvas().Size().Width*0.95) - 12
	if cw < 800 {
		cw = 800
	}
	ch := int(float32(cw) * 0.3)
	if ch < 240 {
		ch = 240
	}
	if ch > 480 {
		ch = 480
	}
	return cw, ch
}
