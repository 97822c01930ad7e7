package store

import "time"

// Latency emulates the round-trip delay of a remote API. Each repository
// operation carries its own base delay (200-500ms, matching the upstream
// service it stands in for); Scale stretches or silences all of them at
// once. A started wait always runs to completion, callers cannot cancel it.
type Latency struct {
	Scale float64
}

// NoLatency is used by tests and anywhere delays would only slow things down.
var NoLatency = Latency{Scale: 0}

func NewLatency(scale float64) Latency {
	if scale < 0 {
		scale = 0
	}
	return Latency{Scale: scale}
}

func (l Latency) Wait(base time.Duration) {
	if l.Scale <= 0 || base <= 0 {
		return
	}
	time.Sleep(time.Duration(float64(base) * l.Scale))
}
