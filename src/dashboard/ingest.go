package dashboard

import (
	"github.com/chrisangelothomas/OpenLCH/src/series"
	"github.com/chrisangelothomas/OpenLCH/src/telemetry"
)

// Buffers holds the rolling window behind each chart. Positions keep actual
// and desired in lockstep: both are appended from one JointState and pruned
// with identical cutoffs, so their timestamps always match.
type Buffers struct {
	Freq       series.Rolling
	PosActual  series.VectorRolling
	PosDesired series.VectorRolling
	Vel        series.VectorRolling
}

// Ingest dispatches one sample into its buffer. Anything that is not a known
// sample kind is logged and skipped; ingestion never fails a tick.
func (b *Buffers) Ingest(s telemetry.Sample) {
	switch v := s.(type) {
	case telemetry.Frequency:
		if !b.Freq.Append(v.T, v.Hz) {
			telemetry.Debugf("dropped out-of-order frequency sample t=%.6f", v.T)
		}
	case telemetry.JointState:
		if !b.PosActual.Append(v.T, v.Actual) {
			telemetry.Debugf("dropped out-of-order joint state t=%.6f", v.T)
			return
		}
		b.PosDesired.Append(v.T, v.Desired)
	case telemetry.JointRate:
		if !b.Vel.Append(v.T, v.Rates) {
			telemetry.Debugf("dropped out-of-order joint rate t=%.6f", v.T)
		}
	default:
		telemetry.Warnf("skipping unhandled sample %T", s)
	}
}

// IngestAll dispatches a drained batch in order.
func (b *Buffers) IngestAll(batch []telemetry.Sample) {
	for _, s := range batch {
		b.Ingest(s)
	}
}

// Prune evicts entries older than window seconds before now from every buffer.
func (b *Buffers) Prune(now, window float64) {
	b.Freq.PruneOlderThan(now, window)
	b.PosActual.PruneOlderThan(now, window)
	b.PosDesired.PruneOlderThan(now, window)
	b.Vel.PruneOlderThan(now, window)
}
