// Package sim generates synthetic control-loop telemetry. It stands in for
// the real inference process in demo mode and in headless render checks.
package sim

import (
	"context"
	"math"
	"time"

	"github.com/chrisangelothomas/OpenLCH/src/telemetry"
)

// Producer pushes sine-wave joint telemetry into a queue at a fixed rate.
type Producer struct {
	queue *telemetry.Queue

	// Rate is the production rate in Hz. Defaults to 50.
	Rate float64
	// Amplitude is the position swing in radians. Defaults to 0.6.
	Amplitude float64
}

// New returns a producer with the stock 50 Hz gait-like waveform.
func New(q *telemetry.Queue) *Producer {
	return &Producer{queue: q, Rate: 50, Amplitude: 0.6}
}

// Step computes the three samples for one production instant t. Deterministic
// in t, so tests can replay exact sequences.
func (p *Producer) Step(t float64) (telemetry.JointState, telemetry.JointRate, telemetry.Frequency) {
	const gaitHz = 0.5
	omega := 2 * math.Pi * gaitHz

	var st telemetry.JointState
	var vr telemetry.JointRate
	st.T, vr.T = t, t
	for i := 0; i < telemetry.NumJoints; i++ {
		phase := omega*t + float64(i)*math.Pi/float64(telemetry.NumJoints)
		st.Desired[i] = p.Amplitude * math.Sin(phase)
		// actual tracks desired with a small lag
		st.Actual[i] = p.Amplitude * math.Sin(phase-0.08)
		vr.Rates[i] = p.Amplitude * omega * math.Cos(phase-0.08)
	}

	// measured rate wobbles a little around the nominal
	freq := telemetry.Frequency{T: t, Hz: p.Rate + 1.5*math.Sin(omega*3*t)}
	return st, vr, freq
}

// Run produces samples at Rate until the context is cancelled.
func (p *Producer) Run(ctx context.Context) {
	rate := p.Rate
	if rate <= 0 {
		rate = 50
	}
	ticker := time.NewTicker(time.Duration(float64(time.Second) / rate))
	defer ticker.Stop()

	telemetry.Infof("sim producer running at %.0f Hz (stream %s)", rate, p.queue.StreamID())
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t := telemetry.Now()
			st, vr, freq := p.Step(t)
			p.queue.Push(st)
			p.queue.Push(vr)
			p.queue.Push(freq)
		}
	}
}
